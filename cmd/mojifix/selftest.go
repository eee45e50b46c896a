package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reoring/mojifix"
)

type vector struct {
	name string
	in   string
	want string
}

// selftestVectors covers both corruption classes plus the clean passthrough.
func selftestVectors() []vector {
	heart := []byte{0xE2, 0x9D, 0xA4, 0xEF, 0xB8, 0x8F}
	seal := []byte{0xF0, 0x9F, 0xA6, 0xAD}
	joy := []byte{0xF0, 0x9F, 0x98, 0x82}
	return []vector{
		{"clean text", "Hello world", "Hello world"},
		{"escaped heart", escapes(heart...), string(heart)},
		{"escaped hearts x3", strings.Repeat(escapes(heart...), 3), strings.Repeat(string(heart), 3)},
		{"escaped seal", "Hey " + escapes(seal...), "Hey " + string(seal)},
		{"mojibake joy", "lol " + latin1(joy...), "lol " + string(joy)},
		{"mojibake seal", latin1(seal...) + " ok", string(seal) + " ok"},
		{"surrogate pair", escapes16(0xD83E, 0xDDAD), string(seal)},
	}
}

func newSelftestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "selftest",
		Short: "Run the built-in repair vectors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			vs := selftestVectors()
			passed := 0
			for _, v := range vs {
				got := mojifix.Repair(v.in)
				mark := "✗"
				if got == v.want {
					mark = "✓"
					passed++
				}
				fmt.Fprintf(out, "%s %s\n", mark, v.name)
				if got != v.want {
					fmt.Fprintf(out, "    got  %q\n    want %q\n", got, v.want)
				}
			}
			fmt.Fprintf(out, "\nPassed: %d/%d\n", passed, len(vs))
			if passed != len(vs) {
				return fmt.Errorf("selftest: %d vectors failed", len(vs)-passed)
			}
			return nil
		},
	}
}

func latin1(bs ...byte) string {
	rs := make([]rune, len(bs))
	for i, b := range bs {
		rs[i] = rune(b)
	}
	return string(rs)
}

func escapes(bs ...byte) string {
	units := make([]uint16, len(bs))
	for i, b := range bs {
		units[i] = uint16(b)
	}
	return escapes16(units...)
}

func escapes16(units ...uint16) string {
	b := &strings.Builder{}
	for _, u := range units {
		fmt.Fprintf(b, "%cu%04x", '\\', u)
	}
	return b.String()
}
