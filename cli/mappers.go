package main

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
)

/* intMapper parses integers in a fixed base, an optional 0x prefix is ignored
 * for base 16 */
type intMapper struct {
	base int
}

func (h intMapper) Decode(ctx *kong.DecodeContext, target reflect.Value) error {
	var value string
	if err := ctx.Scan.PopValueInto("int", &value); err != nil {
		return err
	}

	neg := strings.HasPrefix(value, "-")
	value = strings.TrimPrefix(value, "-")
	if h.base == 16 {
		value = strings.TrimPrefix(strings.TrimPrefix(value, "0x"), "0X")
	}

	i, err := strconv.ParseInt(value, h.base, 64)
	if err != nil {
		return err
	}
	if neg {
		i = -i
	}

	target.SetInt(i)
	return nil
}
