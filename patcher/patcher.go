// Package patcher replaces the EDID stored in an Intel HEX firmware image.
package patcher

import (
	"bytes"
	"fmt"
	"io"

	"github.com/BertoldVdb/edid-patch/edid"
	"github.com/BertoldVdb/edid-patch/ihex"
)

type LogFunc func(level int, format string, param ...interface{})

type Config struct {
	LogFunc LogFunc
}

func (c *Config) log(level int, format string, param ...interface{}) {
	if c.LogFunc != nil {
		c.LogFunc(level, format, param...)
	}
}

type Result struct {
	/* Index of the EDID block in the decoded image data */
	Offset   int
	Position ihex.Position

	Before edid.Payload
	After  edid.Payload

	/* Data records holding part of the EDID block */
	Records []int
	Changed bool
}

// Apply overwrites the first EDID block found in img with payload.
func Apply(img *ihex.Image, payload edid.Payload, config Config) (*Result, error) {
	offset, err := edid.Find(img.Data)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Offset:  offset,
		After:   payload,
		Records: img.Overlapping(offset, offset+edid.Size),
	}
	res.Position, _ = img.Locate(offset)

	window := img.Data[offset : offset+edid.Size]
	copy(res.Before[:], window)
	res.Changed = !bytes.Equal(window, payload[:])

	config.log(1, "Found EDID at offset 0x%x (record %d, address 0x%04x)",
		offset, res.Position.Record+1, res.Position.Address)
	config.log(2, "EDID spans %d records", len(res.Records))

	copy(window, payload[:])
	return res, nil
}

// Run reads an EDID from payload and an Intel HEX image from container, patches
// the image and writes it to sink. The sink is only written once every stage
// succeeded.
func Run(payload io.Reader, container io.Reader, sink io.Writer, config Config) (*Result, error) {
	p, err := edid.Decode(payload)
	if err != nil {
		return nil, fmt.Errorf("payload: %w", err)
	}
	config.log(2, "EDID payload is valid")

	img, err := ihex.Decode(container)
	if err != nil {
		return nil, fmt.Errorf("container: %w", err)
	}
	config.log(2, "Decoded %d records, %d data bytes", len(img.Records), len(img.Data))

	res, err := Apply(img, p, config)
	if err != nil {
		return nil, fmt.Errorf("container: %w", err)
	}

	out, err := img.Bytes()
	if err != nil {
		return nil, err
	}

	for _, m := range res.Records {
		config.log(3, "Record %d rewritten", m+1)
	}

	if _, err := sink.Write(out); err != nil {
		return nil, err
	}

	return res, nil
}
