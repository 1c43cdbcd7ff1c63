// Package preset maps the PC1600 preset image onto named, range-checked
// parameters and composes the full dump codec on top of package sysex.
package preset

import "fmt"

// Kind classifies a schema field.
type Kind uint8

const (
	KindUint     Kind = iota // plain range-checked integer
	KindEnum                 // integer with labelled values
	KindASCII                // printable character array (the preset name)
	KindReserved             // padding, must hold zero
)

// Field is one entry of the preset schema: a named region of the
// unpacked stream with a declared bit position, width and valid range.
type Field struct {
	Name   string
	Offset int // bit offset into the unpacked stream
	Width  int // bits per element: 4, 8 or 16
	Count  int // elements; >1 only for ASCII
	Min    int
	Max    int
	Kind   Kind
	Labels []string // enum value labels, indexed by value
}

// span returns the total width of the field in bits.
func (f Field) span() int {
	n := f.Count
	if n == 0 {
		n = 1
	}
	return f.Width * n
}

var wheelLabels = []string{
	"fader 1", "fader 2", "fader 3", "fader 4",
	"fader 5", "fader 6", "fader 7", "fader 8",
	"fader 9", "fader 10", "fader 11", "fader 12",
	"fader 13", "fader 14", "fader 15", "fader 16",
	"cv 1", "cv 2", "last fader",
}

var faderModeLabels = []string{"disabled", "cc", "master", "string"}

var formatLabels = []string{
	"none",
	"single byte",
	"2 byte, 7 bits, hi->lo",
	"2 byte, 7 bits, lo->hi",
	"3 byte, 7 bits, lo->hi",
	"3 byte, 7 bits, hi->lo",
	"2 byte, nibs, hi->lo",
	"2 byte, nibs, lo->hi",
	"3 byte, nibs, hi->lo",
	"3 byte, nibs, lo->hi",
	"4 byte, nibs, hi->lo",
	"4 byte, nibs, lo->hi",
	"2 byte, bcd nibs, hi->lo",
	"2 byte, bcd nibs, lo->hi",
}

var buttonModeLabels = []string{
	"disabled", "mute", "solo", "program change", "note",
	"string", "press/release", "toggle", "send fader", "send scene",
}

// Layout constants of the unpacked preset image.
const (
	nameOffset   = 0   // 16 ASCII bytes
	wheelOffset  = 16 * 8
	sceneOffset  = 17 * 8
	maskOffset   = 18 * 8
	faderOffset  = 20 * 8
	faderStride  = 6 * 8
	faderCount   = 16
	cvOffset     = faderOffset + faderCount*faderStride // 116 * 8
	cvCount      = 2
	buttonOffset = cvOffset + cvCount*faderStride // 128 * 8
	buttonStride = 4 * 8
	buttonCount  = 16
)

// Schema is the static parameter table covering the entire unpacked
// stream. It is populated once at package init, validated for gap-free,
// non-overlapping coverage, and read-only afterwards, so concurrent
// conversions may share it freely.
var Schema = buildSchema()

func buildSchema() []Field {
	fields := []Field{
		{Name: "name", Offset: nameOffset, Width: 8, Count: 16, Min: 0, Max: 126, Kind: KindASCII},
		{Name: "data_wheel", Offset: wheelOffset, Width: 8, Max: 18, Kind: KindEnum, Labels: wheelLabels},
		{Name: "scene", Offset: sceneOffset, Width: 8, Max: 127, Kind: KindUint},
		{Name: "channel_mask", Offset: maskOffset, Width: 16, Max: 0xFFFF, Kind: KindUint},
	}
	for i := 0; i < faderCount; i++ {
		fields = append(fields, sliderFields(fmt.Sprintf("fader%02d", i+1), faderOffset+i*faderStride)...)
	}
	for i := 0; i < cvCount; i++ {
		fields = append(fields, sliderFields(fmt.Sprintf("cv%d", i+1), cvOffset+i*faderStride)...)
	}
	for i := 0; i < buttonCount; i++ {
		fields = append(fields, buttonFields(fmt.Sprintf("button%02d", i+1), buttonOffset+i*buttonStride)...)
	}
	return fields
}

// sliderFields describes one fader or CV block: mode and parameter
// format share the first byte as nibbles, then channel, CC number and
// the output range, with one trailing pad byte.
func sliderFields(prefix string, off int) []Field {
	return []Field{
		{Name: prefix + "_mode", Offset: off, Width: 4, Max: 3, Kind: KindEnum, Labels: faderModeLabels},
		{Name: prefix + "_format", Offset: off + 4, Width: 4, Max: 13, Kind: KindEnum, Labels: formatLabels},
		{Name: prefix + "_channel", Offset: off + 8, Width: 8, Max: 16, Kind: KindUint}, // 0 = global
		{Name: prefix + "_cc", Offset: off + 16, Width: 8, Max: 127, Kind: KindUint},
		{Name: prefix + "_min", Offset: off + 24, Width: 8, Max: 127, Kind: KindUint},
		{Name: prefix + "_max", Offset: off + 32, Width: 8, Max: 127, Kind: KindUint},
		{Offset: off + 40, Width: 8, Kind: KindReserved},
	}
}

func buttonFields(prefix string, off int) []Field {
	return []Field{
		{Name: prefix + "_mode", Offset: off, Width: 8, Max: 9, Kind: KindEnum, Labels: buttonModeLabels},
		{Name: prefix + "_channel", Offset: off + 8, Width: 8, Max: 16, Kind: KindUint}, // 0 = global
		{Name: prefix + "_data1", Offset: off + 16, Width: 8, Max: 127, Kind: KindUint},
		{Name: prefix + "_data2", Offset: off + 24, Width: 8, Max: 127, Kind: KindUint},
	}
}

func init() {
	if err := checkCoverage(Schema); err != nil {
		panic(err)
	}
}

// checkCoverage verifies that the schema tiles the stream exactly:
// every bit claimed once, no gaps, no field past the end.
func checkCoverage(fields []Field) error {
	const totalBits = streamBits
	claimed := make([]bool, totalBits)
	for _, f := range fields {
		if f.Width != 4 && f.Width != 8 && f.Width != 16 {
			return fmt.Errorf("schema: field %q has unsupported width %d", f.Name, f.Width)
		}
		if f.Offset%4 != 0 {
			return fmt.Errorf("schema: field %q is not nibble aligned (bit %d)", f.Name, f.Offset)
		}
		for b := f.Offset; b < f.Offset+f.span(); b++ {
			if b >= totalBits {
				return fmt.Errorf("schema: field %q extends past the stream", f.Name)
			}
			if claimed[b] {
				return fmt.Errorf("schema: bit %d claimed twice (field %q)", b, f.Name)
			}
			claimed[b] = true
		}
	}
	for b, ok := range claimed {
		if !ok {
			return fmt.Errorf("schema: bit %d is not covered", b)
		}
	}
	return nil
}
