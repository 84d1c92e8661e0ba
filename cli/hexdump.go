package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

const hexdumpWidth = 16

/* hexdump prints 16 bytes per row, bytes with mark set are shown in red */
func hexdump(offset int, data []byte, mark []bool) string {
	var sb strings.Builder
	red := color.New(color.FgRed)

	for row := 0; row < len(data); row += hexdumpWidth {
		end := row + hexdumpWidth
		if end > len(data) {
			end = len(data)
		}

		var ascii strings.Builder
		fmt.Fprintf(&sb, "%08x  ", offset+row)

		for i := row; i < row+hexdumpWidth; i++ {
			if i == row+hexdumpWidth/2 {
				sb.WriteByte(' ')
			}
			if i >= end {
				sb.WriteString("   ")
				ascii.WriteByte(' ')
				continue
			}

			m := data[i]
			c := m
			if c < 32 || c > 126 {
				c = '.'
			}

			if mark != nil && mark[i] {
				sb.WriteString(red.Sprintf("%02x ", m))
				ascii.WriteString(red.Sprintf("%c", c))
			} else {
				fmt.Fprintf(&sb, "%02x ", m)
				ascii.WriteByte(c)
			}
		}

		fmt.Fprintf(&sb, " |%s|\n", ascii.String())
	}

	return sb.String()
}
