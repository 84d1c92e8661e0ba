package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/BertoldVdb/edid-patch/edid"
	"github.com/BertoldVdb/edid-patch/ihex"
	"github.com/BertoldVdb/edid-patch/patcher"
)

/* explain maps pipeline errors to the messages users of the original tool know */
func explain(err error) error {
	switch {
	case errors.Is(err, edid.ErrorSignatureNotFound):
		return fmt.Errorf("can't find EDID data in HEX file: %w", err)
	case errors.Is(err, edid.ErrorInvalidLength),
		errors.Is(err, edid.ErrorInvalidSignature),
		errors.Is(err, edid.ErrorChecksumMismatch):
		return fmt.Errorf("EDID bin-file does not conform to EDID standard: %w", err)
	case errors.Is(err, ihex.ErrorMalformedRecord),
		errors.Is(err, ihex.ErrorEmptyInput):
		return fmt.Errorf("firmware hex-file does not conform to Intel HEX format: %w", err)
	}
	return err
}

type PatchCmd struct {
	Firmware string `arg name:"firmware.hex" type:"existingfile" help:"Intel HEX firmware image."`
	EDID     string `arg name:"edid.bin" type:"existingfile" help:"EDID file, 128 or 256 bytes."`

	Output   string `optional short:"o" type:"path" help:"Write the result here instead of overwriting the firmware."`
	Backup   bool   `optional help:"Keep a copy of the original firmware next to it."`
	Compress bool   `optional help:"Compress the backup with LZ4."`
	DryRun   bool   `optional help:"Do everything except writing the result."`
}

func (p *PatchCmd) Run(c *Context) error {
	orig, err := os.ReadFile(p.Firmware)
	if err != nil {
		return fmt.Errorf("can't open firmware hex-file: %w", err)
	}

	payload, err := os.Open(p.EDID)
	if err != nil {
		return fmt.Errorf("can't open EDID bin-file: %w", err)
	}
	defer payload.Close()

	var out bytes.Buffer
	res, err := patcher.Run(payload, bytes.NewReader(orig), &out, patcher.Config{LogFunc: c.log})
	if err != nil {
		return explain(err)
	}

	fmt.Println("Found EDID data in HEX file, patching ...")
	if !res.Changed {
		fmt.Println("EDID in firmware is already identical.")
	}

	if p.DryRun {
		fmt.Printf("Dry run: %d records would be rewritten.\n", len(res.Records))
		return nil
	}

	dest := p.Firmware
	if p.Output != "" {
		dest = p.Output
	}

	if p.Backup {
		name, err := writeBackup(p.Firmware, orig, p.Compress)
		if err != nil {
			return fmt.Errorf("can't write backup: %w", err)
		}
		c.log(1, "Backup written to %s", name)
	}

	if err := writeFileAtomic(dest, out.Bytes()); err != nil {
		return err
	}

	fmt.Println("patching done!")
	return nil
}

type FixCmd struct {
	Firmware string `arg name:"firmware.hex" type:"existingfile" help:"Intel HEX firmware image."`
	Output   string `optional short:"o" type:"path" help:"Write the result here instead of overwriting the firmware."`
}

func (f *FixCmd) Run(c *Context) error {
	in, err := os.Open(f.Firmware)
	if err != nil {
		return err
	}
	img, err := ihex.Decode(in)
	in.Close()
	if err != nil {
		return explain(err)
	}

	bad := img.BadChecksums()
	for _, m := range bad {
		c.log(1, "Record %d has a wrong checksum", m+1)
	}

	if len(bad) == 0 && f.Output == "" {
		fmt.Println("All record checksums are valid.")
		return nil
	}

	out, err := img.Bytes()
	if err != nil {
		return err
	}

	dest := f.Firmware
	if f.Output != "" {
		dest = f.Output
	}
	if err := writeFileAtomic(dest, out); err != nil {
		return err
	}

	fmt.Printf("Fixed %d records.\n", len(bad))
	return nil
}

type RestoreCmd struct {
	Firmware string `arg name:"firmware.hex" type:"path" help:"Firmware image whose backup should be restored."`
}

func (r *RestoreCmd) Run(c *Context) error {
	data, name, err := readBackup(r.Firmware)
	if err != nil {
		return fmt.Errorf("can't read backup: %w", err)
	}

	/* Refuse to restore something that is not an image */
	if _, err := ihex.Parse(data); err != nil {
		return fmt.Errorf("backup %s: %w", name, explain(err))
	}

	if err := writeFileAtomic(r.Firmware, data); err != nil {
		return err
	}

	fmt.Printf("Restored %s from %s.\n", r.Firmware, name)
	return nil
}
