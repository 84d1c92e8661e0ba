package ihex

import (
	"encoding/binary"
	"fmt"
	"io"
)

const hexDigits = "0123456789ABCDEF"

func appendHex(dst []byte, b byte) []byte {
	return append(dst, hexDigits[b>>4], hexDigits[b&0x0F])
}

func appendRecord(dst []byte, rec *Record, data []byte) []byte {
	dst = append(dst, startCode)
	dst = appendHex(dst, rec.Length)
	dst = appendHex(dst, byte(rec.Address>>8))
	dst = appendHex(dst, byte(rec.Address))
	dst = appendHex(dst, rec.Type)
	for _, m := range data {
		dst = appendHex(dst, m)
	}
	dst = appendHex(dst, checksum(rec, data))
	return append(dst, rec.Terminator...)
}

// AppendTo encodes the image onto dst. Field values and line terminators come
// from the decoded records, data bytes from img.Data and every checksum is
// computed again.
func (img *Image) AppendTo(dst []byte) ([]byte, error) {
	if len(img.Records) == 0 {
		return dst, ErrorEmptyInput
	}

	for i := range img.Records {
		rec := &img.Records[i]
		if rec.Type == RecordData && rec.Offset+int(rec.Length) > len(img.Data) {
			return dst, fmt.Errorf("%w: record %d ends at %d, data has %d bytes",
				ErrorDataMismatch, i+1, rec.Offset+int(rec.Length), len(img.Data))
		}
		dst = appendRecord(dst, rec, img.RecordBytes(i))
	}

	return dst, nil
}

func (img *Image) Bytes() ([]byte, error) {
	size := 0
	for i := range img.Records {
		size += 1 + 2*(int(img.Records[i].Length)+5) + len(img.Records[i].Terminator)
	}
	return img.AppendTo(make([]byte, 0, size))
}

// Encode writes the image to w. Nothing is written if encoding fails.
func (img *Image) Encode(w io.Writer) error {
	out, err := img.Bytes()
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

type Position struct {
	Record int
	Column int

	/* Load address including any segment or linear base */
	Address uint32
}

// Locate maps an index into img.Data back to the record holding that byte.
func (img *Image) Locate(offset int) (Position, bool) {
	var base uint32

	for i := range img.Records {
		rec := &img.Records[i]
		switch rec.Type {
		case RecordExtendedSegmentAddr:
			if len(rec.Data) == 2 {
				base = uint32(binary.BigEndian.Uint16(rec.Data)) << 4
			}
		case RecordExtendedLinearAddr:
			if len(rec.Data) == 2 {
				base = uint32(binary.BigEndian.Uint16(rec.Data)) << 16
			}
		case RecordData:
			if offset >= rec.Offset && offset < rec.Offset+int(rec.Length) {
				col := offset - rec.Offset
				return Position{
					Record:  i,
					Column:  col,
					Address: base + uint32(rec.Address) + uint32(col),
				}, true
			}
		}
	}

	return Position{}, false
}

// Overlapping returns the data records holding any byte of img.Data[start:end].
func (img *Image) Overlapping(start, end int) []int {
	var result []int
	for i := range img.Records {
		rec := &img.Records[i]
		if rec.Type != RecordData || rec.Length == 0 {
			continue
		}
		if rec.Offset < end && rec.Offset+int(rec.Length) > start {
			result = append(result, i)
		}
	}
	return result
}
