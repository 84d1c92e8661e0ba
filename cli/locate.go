package main

import (
	"fmt"
	"os"

	"github.com/BertoldVdb/edid-patch/edid"
	"github.com/BertoldVdb/edid-patch/ihex"
	"github.com/goccy/go-json"
)

type LocateCmd struct {
	Firmware string `arg name:"firmware.hex" type:"existingfile" help:"Intel HEX firmware image."`
	JSON     bool   `optional name:"json" help:"Print the result as JSON."`
}

type locateEntry struct {
	Offset       int    `json:"offset"`
	Record       int    `json:"record"`
	Address      uint32 `json:"address"`
	Manufacturer string `json:"manufacturer"`
	ProductCode  uint16 `json:"productCode"`
	Extensions   int    `json:"extensions"`
	Patched      bool   `json:"patched"`
}

func locateAll(img *ihex.Image) []locateEntry {
	var result []locateEntry
	for i, offset := range edid.FindAll(img.Data) {
		var p edid.Payload
		copy(p[:], img.Data[offset:])
		info := p.Info()

		pos, _ := img.Locate(offset)
		result = append(result, locateEntry{
			Offset:       offset,
			Record:       pos.Record + 1,
			Address:      pos.Address,
			Manufacturer: info.Manufacturer,
			ProductCode:  info.ProductCode,
			Extensions:   info.Extensions,
			Patched:      i == 0,
		})
	}
	return result
}

func (l *LocateCmd) Run(c *Context) error {
	f, err := os.Open(l.Firmware)
	if err != nil {
		return fmt.Errorf("can't open firmware hex-file: %w", err)
	}
	defer f.Close()

	img, err := ihex.Decode(f)
	if err != nil {
		return explain(err)
	}

	entries := locateAll(img)
	c.log(2, "Scanned %d data bytes", len(img.Data))

	if l.JSON {
		if entries == nil {
			entries = []locateEntry{}
		}
		out, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	} else {
		for _, m := range entries {
			mark := ""
			if m.Patched {
				mark = " (patch target)"
			}
			fmt.Printf("Offset 0x%05x  record %-5d address 0x%08x  %s %04x, %d extensions%s\n",
				m.Offset, m.Record, m.Address, m.Manufacturer, m.ProductCode, m.Extensions, mark)
		}
	}

	if len(entries) == 0 {
		return explain(edid.ErrorSignatureNotFound)
	}
	return nil
}
