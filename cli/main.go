package main

import (
	"fmt"
	"os"

	"github.com/BertoldVdb/edid-patch/patcher"
	"github.com/alecthomas/kong"
	"go.uber.org/zap"
)

type Context struct {
	log    patcher.LogFunc
	logger *zap.SugaredLogger
}

var CLI struct {
	LogLevel int    `optional help:"Higher values give more output."`
	LogFile  string `optional type:"path" help:"Also write log output to this file (rotated)."`

	Patch     PatchCmd     `cmd help:"Replace the EDID inside an Intel HEX firmware image."`
	CheckEDID CheckEDIDCmd `cmd name:"check-edid" help:"Validate an EDID file and show its header."`
	Locate    LocateCmd    `cmd help:"List EDID blocks found in a firmware image."`
	Show      ShowCmd      `cmd help:"Hexdump the EDID block of a firmware image."`
	Fix       FixCmd       `cmd help:"Recompute the checksum of every record."`
	Restore   RestoreCmd   `cmd help:"Put back the backup made by patch --backup."`
}

func run() int {
	k, err := kong.New(&CLI,
		kong.Name("edid-patch"),
		kong.Description("EDID patch tool"),
		kong.NamedMapper("hex", intMapper{base: 16}),
		kong.Configuration(yamlLoader, "~/.config/edid-patch.yaml", "edid-patch.yaml"))
	if err != nil {
		fmt.Println(err)
		return 1
	}

	ctx, err := k.Parse(os.Args[1:])
	if err != nil {
		fmt.Println(err)
		return 1
	}

	logger := newLogger(CLI.LogFile)
	defer logger.Sync()

	c := &Context{
		logger: logger.Sugar(),
	}
	c.log = c.logFunc(CLI.LogLevel)

	if err := ctx.Run(c); err != nil {
		c.logger.Debugw("Command failed", "command", ctx.Command(), "error", err)
		fmt.Println("Error:", err)
		return 1
	}

	return 0
}

func main() {
	os.Exit(run())
}
