package ihex

import (
	"encoding/binary"
	"io"
)

const (
	RecordData                = 0x00
	RecordEOF                 = 0x01
	RecordExtendedSegmentAddr = 0x02
	RecordStartSegmentAddr    = 0x03
	RecordExtendedLinearAddr  = 0x04
	RecordStartLinearAddr     = 0x05
)

const (
	startCode      = ':'
	recordOverhead = 10 /* length, address, type and checksum characters */
)

type Record struct {
	Length  byte
	Address uint16
	Type    byte

	/* Data records keep their bytes in Image.Data starting at Offset, other
	 * records keep them here */
	Offset int
	Data   []byte

	/* Checksum as read; it is never used for encoding */
	Checksum   byte
	Terminator string
}

type Image struct {
	Data    []byte
	Records []Record
}

func hexNibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

func hexByte(s []byte) (byte, bool) {
	hi, ok := hexNibble(s[0])
	if !ok {
		return 0, false
	}
	lo, ok := hexNibble(s[1])
	if !ok {
		return 0, false
	}
	return hi<<4 | lo, true
}

func isTerminator(c byte) bool {
	return c == '\r' || c == '\n'
}

// Decode reads a complete Intel HEX image from r.
func Decode(r io.Reader) (*Image, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(buf)
}

func Parse(buf []byte) (*Image, error) {
	img := &Image{}

	for i := 0; i < len(buf); {
		j := i
		for j < len(buf) && !isTerminator(buf[j]) {
			j++
		}

		rec, err := img.parseRecord(buf[i:j], len(img.Records)+1)
		if err != nil {
			return nil, err
		}

		i = j
		for j < len(buf) && isTerminator(buf[j]) {
			j++
		}
		rec.Terminator = string(buf[i:j])
		i = j

		img.Records = append(img.Records, rec)
	}

	if len(img.Records) == 0 {
		return nil, ErrorEmptyInput
	}

	return img, nil
}

func (img *Image) parseRecord(line []byte, index int) (Record, error) {
	var rec Record

	if len(line) == 0 || line[0] != startCode {
		return rec, malformed(index, "missing start code")
	}
	if len(line) < 3 {
		return rec, malformed(index, "line too short")
	}

	length, ok := hexByte(line[1:])
	if !ok {
		return rec, malformed(index, "invalid length field %q", line[1:3])
	}
	if want := 2*int(length) + recordOverhead; len(line)-1 != want {
		return rec, malformed(index, "length %d needs %d characters, got %d", length, want, len(line)-1)
	}

	raw := make([]byte, (len(line)-1)/2)
	for k := range raw {
		col := 1 + 2*k
		b, ok := hexByte(line[col:])
		if !ok {
			return rec, malformed(index, "invalid hex digits %q at column %d", line[col:col+2], col+1)
		}
		raw[k] = b
	}

	rec.Length = length
	rec.Address = binary.BigEndian.Uint16(raw[1:])
	rec.Type = raw[3]
	rec.Checksum = raw[len(raw)-1]
	rec.Offset = len(img.Data)

	data := raw[4 : 4+int(length)]
	if rec.Type == RecordData {
		img.Data = append(img.Data, data...)
	} else {
		rec.Data = data
	}

	return rec, nil
}

// RecordBytes returns the current data bytes of record index.
func (img *Image) RecordBytes(index int) []byte {
	rec := &img.Records[index]
	if rec.Type != RecordData {
		return rec.Data
	}
	return img.Data[rec.Offset : rec.Offset+int(rec.Length)]
}

// BadChecksums lists the records whose stored checksum does not match their
// current contents.
func (img *Image) BadChecksums() []int {
	var result []int
	for i := range img.Records {
		rec := &img.Records[i]
		if rec.Type == RecordData && rec.Offset+int(rec.Length) > len(img.Data) {
			result = append(result, i)
		} else if checksum(rec, img.RecordBytes(i)) != rec.Checksum {
			result = append(result, i)
		}
	}
	return result
}

func checksum(rec *Record, data []byte) byte {
	csum := rec.Length + byte(rec.Address>>8) + byte(rec.Address) + rec.Type
	for _, m := range data {
		csum += m
	}
	return -csum
}
