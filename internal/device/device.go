// Package device moves preset dumps between this process and a PC1600
// over MIDI. It owns all transport concerns; the codec stays pure.
package device

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"

	"pc1600ctl/internal/sysex"
)

// PC1600 is an open connection to the device's MIDI output port.
type PC1600 struct {
	channel byte // global MIDI channel, 0-based
	out     drivers.Out
	log     zerolog.Logger
}

// Open opens the MIDI output port at portIdx for a device on the given
// 0-based channel. The returned closer releases the port and the driver.
func Open(channel byte, portIdx int, log zerolog.Logger) (*PC1600, func(), error) {
	if channel > 0x0F {
		return nil, nil, fmt.Errorf("channel %d out of range 0-15", channel)
	}
	outs, err := drivers.Outs()
	if err != nil {
		return nil, nil, err
	}
	if portIdx < 0 || portIdx >= len(outs) {
		return nil, nil, fmt.Errorf("output port index %d out of range", portIdx)
	}
	out := outs[portIdx]
	if err := out.Open(); err != nil {
		return nil, nil, err
	}
	closer := func() {
		_ = out.Close()
		drivers.Close()
	}
	log.Info().Str("port", out.String()).Int("channel", int(channel)+1).Msg("opened PC1600 MIDI output")
	return &PC1600{channel: channel, out: out, log: log}, closer, nil
}

// FindOutPort returns the number of the first MIDI output whose name
// contains fragment, case-insensitively.
func FindOutPort(fragment string) (int, error) {
	outs := midi.GetOutPorts()
	if len(outs) == 0 {
		return -1, errors.New("no MIDI outputs available")
	}
	lower := strings.ToLower(fragment)
	for _, out := range outs {
		if strings.Contains(strings.ToLower(out.String()), lower) {
			return out.Number(), nil
		}
	}
	return -1, fmt.Errorf("no MIDI output contains %q", fragment)
}

// FindInPort is the input-side counterpart of FindOutPort.
func FindInPort(fragment string) (int, error) {
	ins := midi.GetInPorts()
	if len(ins) == 0 {
		return -1, errors.New("no MIDI inputs available")
	}
	lower := strings.ToLower(fragment)
	for _, in := range ins {
		if strings.Contains(strings.ToLower(in.String()), lower) {
			return in.Number(), nil
		}
	}
	return -1, fmt.Errorf("no MIDI input contains %q", fragment)
}

// SendSysEx transmits a raw sysex frame.
func (d *PC1600) SendSysEx(data []byte) error {
	if !d.out.IsOpen() {
		if err := d.out.Open(); err != nil {
			return err
		}
	}
	return d.out.Send(data)
}

// SendDump validates raw as a PC1600 buffer dump and transmits it.
func (d *PC1600) SendDump(raw []byte) error {
	if _, err := sysex.Parse(raw); err != nil {
		return err
	}
	d.log.Debug().Int("bytes", len(raw)).Msg("sending preset dump")
	return d.SendSysEx(raw)
}

// RequestDump asks the device to transmit its edit buffer and waits up
// to timeout for a dump that parses as one. Foreign sysex traffic on the
// port is logged and skipped.
func (d *PC1600) RequestDump(in drivers.In, timeout time.Duration) ([]byte, error) {
	msgCh := make(chan []byte, 4)
	stop, err := midi.ListenTo(in, func(msg midi.Message, _ int32) {
		if len(msg) > 0 && msg[0] == sysex.Start {
			buf := make([]byte, len(msg))
			copy(buf, msg)
			select {
			case msgCh <- buf:
			default:
			}
		}
	}, midi.UseSysEx(), midi.SysExBufferSize(2048))
	if err != nil {
		return nil, fmt.Errorf("failed to listen for dump: %w", err)
	}
	defer stop()

	d.log.Debug().Int("channel", int(d.channel)+1).Msg("requesting edit buffer dump")
	if err := d.SendSysEx(sysex.DumpRequest(d.channel)); err != nil {
		return nil, fmt.Errorf("failed to send dump request: %w", err)
	}

	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	for {
		select {
		case raw := <-msgCh:
			if _, err := sysex.Parse(raw); err != nil {
				d.log.Debug().Err(err).Int("bytes", len(raw)).Msg("ignoring sysex that is not a buffer dump")
				continue
			}
			d.log.Info().Int("bytes", len(raw)).Msg("received preset dump")
			return raw, nil
		case <-deadline.C:
			return nil, errors.New("timed out waiting for preset dump")
		}
	}
}
