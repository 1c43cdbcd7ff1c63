package preset

import "pc1600ctl/internal/sysex"

// FromSysex decodes one raw buffer dump into a Document: envelope check,
// nibble unpack, checksum verification, then field mapping. Errors
// surface from the first stage that detects them.
func FromSysex(raw []byte) (*Document, error) {
	frame, err := sysex.Parse(raw)
	if err != nil {
		return nil, err
	}
	stream, err := sysex.Unpack(frame.Payload())
	if err != nil {
		return nil, err
	}
	if !sysex.VerifyChecksum(stream, frame.Checksum()) {
		return nil, &sysex.ChecksumError{Want: sysex.Checksum(stream), Got: frame.Checksum()}
	}
	doc, err := DecodeStream(stream)
	if err != nil {
		return nil, err
	}
	doc.GlobalChannel = int(frame.Channel)
	return doc, nil
}

// ToSysex is the exact inverse of FromSysex, ending with a freshly
// framed dump carrying the computed checksum.
func ToSysex(doc *Document) ([]byte, error) {
	if doc.GlobalChannel < 0 || doc.GlobalChannel > 15 {
		return nil, &FieldError{Name: "global_channel", Value: doc.GlobalChannel, Min: 0, Max: 15}
	}
	stream, err := EncodeStream(doc)
	if err != nil {
		return nil, err
	}
	return sysex.Build(byte(doc.GlobalChannel), sysex.AppendChecksum(stream))
}
