package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/BertoldVdb/edid-patch/edid"
	"github.com/BertoldVdb/edid-patch/ihex"
	"github.com/inancgumus/screen"
)

type ShowCmd struct {
	Firmware string `arg name:"firmware.hex" type:"existingfile" help:"Intel HEX firmware image."`

	EDID   string `optional name:"edid" type:"existingfile" help:"Mark bytes that differ from this EDID file."`
	Offset int    `optional type:"hex" default:"-1" help:"Offset of the block in the image data (hex), -1 searches for it."`
	Clear  bool   `optional help:"Clear the terminal first."`
}

func diffMarks(a []byte, b []byte) []bool {
	mark := make([]bool, len(a))
	for i := range a {
		mark[i] = i >= len(b) || a[i] != b[i]
	}
	return mark
}

func (s *ShowCmd) Run(c *Context) error {
	f, err := os.Open(s.Firmware)
	if err != nil {
		return fmt.Errorf("can't open firmware hex-file: %w", err)
	}
	img, err := ihex.Decode(f)
	f.Close()
	if err != nil {
		return explain(err)
	}

	offset := s.Offset
	if offset < 0 {
		offset, err = edid.Find(img.Data)
		if err != nil {
			return explain(err)
		}
	}
	if offset+edid.Size > len(img.Data) {
		return errors.New("offset is beyond the end of the image")
	}
	window := img.Data[offset : offset+edid.Size]

	var mark []bool
	if s.EDID != "" {
		ef, err := os.Open(s.EDID)
		if err != nil {
			return fmt.Errorf("can't open EDID bin-file: %w", err)
		}
		p, err := edid.Decode(ef)
		ef.Close()
		if err != nil {
			return explain(err)
		}
		mark = diffMarks(window, p[:])
	}

	if s.Clear {
		screen.Clear()
		screen.MoveTopLeft()
	}

	pos, _ := img.Locate(offset)
	fmt.Printf("EDID block at offset 0x%x, record %d, address 0x%08x\n", offset, pos.Record+1, pos.Address)
	fmt.Print(hexdump(offset, window, mark))
	return nil
}
