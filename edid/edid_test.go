package edid

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/* makeBlock returns a base block carrying Prefix and a valid checksum */
func makeBlock(fill byte) []byte {
	b := make([]byte, BlockSize)
	copy(b, Prefix[:])
	for i := len(Prefix); i < BlockSize-1; i++ {
		b[i] = fill + byte(i)
	}
	b[BlockSize-1] = -Sum(b[:BlockSize-1])
	return b
}

func TestDecodeBaseBlockIsZeroExtended(t *testing.T) {
	short := makeBlock(3)
	long := append(append([]byte{}, short...), make([]byte, BlockSize)...)

	p128, err := Decode(bytes.NewReader(short))
	require.NoError(t, err)
	p256, err := Decode(bytes.NewReader(long))
	require.NoError(t, err)

	assert.Equal(t, p256, p128)
	assert.Equal(t, make([]byte, BlockSize), p128[BlockSize:])
}

func TestDecodeWithExtension(t *testing.T) {
	buf := append(makeBlock(1), makeBlock(9)...)
	buf[BlockSize] = 0x02
	buf[Size-1] -= 0x02

	p, err := Decode(bytes.NewReader(buf))
	require.NoError(t, err)
	assert.Equal(t, buf, p[:])
}

func TestDecodeErrors(t *testing.T) {
	badSig := makeBlock(0)
	badSig[3] = 0xFE

	badSum := makeBlock(0)
	badSum[BlockSize-1]++

	tests := []struct {
		name string
		in   []byte
		err  error
	}{
		{name: "empty", in: nil, err: ErrorInvalidLength},
		{name: "short", in: makeBlock(0)[:127], err: ErrorInvalidLength},
		{name: "between", in: make([]byte, 200), err: ErrorInvalidLength},
		{name: "too long", in: make([]byte, 257), err: ErrorInvalidLength},
		{name: "signature", in: badSig, err: ErrorInvalidSignature},
		{name: "checksum", in: badSum, err: ErrorChecksumMismatch},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(bytes.NewReader(tc.in))
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestInfo(t *testing.T) {
	b := makeBlock(0)
	b[10], b[11] = 0x34, 0x12
	b[12], b[13], b[14], b[15] = 0x01, 0x00, 0x00, 0x00
	b[16], b[17] = 12, 30
	b[18], b[19] = 1, 3
	b[126] = 1
	b[127] = 0
	b[127] = -Sum(b)

	p, err := Parse(b)
	require.NoError(t, err)

	assert.Equal(t, Info{
		Manufacturer: "EXP",
		ProductCode:  0x1234,
		Serial:       1,
		Week:         12,
		Year:         2020,
		Version:      1,
		Revision:     3,
		Extensions:   1,
	}, p.Info())
}
