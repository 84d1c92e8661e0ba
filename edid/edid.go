// Package edid validates EDID blobs and finds them inside decoded firmware images.
package edid

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

const (
	BlockSize = 128
	Size      = 2 * BlockSize
)

// Magic is the fixed header every EDID base block starts with.
var Magic = [8]byte{0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x00}

// Payload is an EDID base block plus one extension block. A payload read from a
// 128 byte file has an all-zero extension block.
type Payload [Size]byte

func Sum(b []byte) byte {
	var csum byte
	for _, m := range b {
		csum += m
	}
	return csum
}

// Decode reads a 128 or 256 byte EDID from r and validates it.
func Decode(r io.Reader) (Payload, error) {
	/* Read one byte past the maximum so oversized files are noticed */
	buf, err := io.ReadAll(io.LimitReader(r, Size+1))
	if err != nil {
		var p Payload
		return p, err
	}

	return Parse(buf)
}

func Parse(buf []byte) (Payload, error) {
	var p Payload

	if len(buf) != BlockSize && len(buf) != Size {
		return p, fmt.Errorf("%w: got %d bytes", ErrorInvalidLength, len(buf))
	}

	if !bytes.Equal(buf[:len(Magic)], Magic[:]) {
		return p, ErrorInvalidSignature
	}

	if csum := Sum(buf); csum != 0 {
		return p, fmt.Errorf("%w: sum is 0x%02x", ErrorChecksumMismatch, csum)
	}

	copy(p[:], buf)
	return p, nil
}

type Info struct {
	Manufacturer string
	ProductCode  uint16
	Serial       uint32
	Week         int
	Year         int
	Version      int
	Revision     int
	Extensions   int
}

func (p *Payload) Info() Info {
	/* Three 5-bit letters, 'A' = 1 */
	id := binary.BigEndian.Uint16(p[8:])
	mfg := []byte{
		byte('@' + (id>>10)&0x1F),
		byte('@' + (id>>5)&0x1F),
		byte('@' + id&0x1F),
	}

	return Info{
		Manufacturer: string(mfg),
		ProductCode:  binary.LittleEndian.Uint16(p[10:]),
		Serial:       binary.LittleEndian.Uint32(p[12:]),
		Week:         int(p[16]),
		Year:         1990 + int(p[17]),
		Version:      int(p[18]),
		Revision:     int(p[19]),
		Extensions:   int(p[126]),
	}
}
