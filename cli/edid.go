package main

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/BertoldVdb/edid-patch/edid"
)

type CheckEDIDCmd struct {
	EDID string `arg name:"edid.bin" type:"existingfile" help:"EDID file, 128 or 256 bytes."`
}

func (e *CheckEDIDCmd) Run(c *Context) error {
	f, err := os.Open(e.EDID)
	if err != nil {
		return fmt.Errorf("can't open EDID bin-file: %w", err)
	}
	defer f.Close()

	p, err := edid.Decode(f)
	if err != nil {
		return explain(err)
	}

	hash := sha256.Sum256(p[:])
	info := p.Info()

	fmt.Printf("Manufacturer   %s\n", info.Manufacturer)
	fmt.Printf("Product        %04x\n", info.ProductCode)
	fmt.Printf("Serial         %08x\n", info.Serial)
	fmt.Printf("Manufactured   week %d, %d\n", info.Week, info.Year)
	fmt.Printf("Version        %d.%d\n", info.Version, info.Revision)
	fmt.Printf("Extensions     %d\n", info.Extensions)
	fmt.Printf("SHA256         %s\n", hex.EncodeToString(hash[:]))

	if p[8] != edid.Prefix[8] || p[9] != edid.Prefix[9] {
		fmt.Printf("Warning: manufacturer differs from %02X%02X, the firmware can't be patched again afterwards.\n",
			edid.Prefix[8], edid.Prefix[9])
	}
	return nil
}
