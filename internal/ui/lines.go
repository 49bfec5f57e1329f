package ui

import (
	"fmt"
	"strings"

	"github.com/fandiandrian/Cellular-Automata/internal/core"
)

// Lines formats a parameter snapshot as "Label  value unit" rows, one group
// title followed by its parameters.
func Lines(snap core.ParameterSnapshot) []string {
	width := 0
	for _, g := range snap.Groups {
		for _, p := range g.Params {
			if len(p.Label) > width {
				width = len(p.Label)
			}
		}
	}
	var out []string
	for _, g := range snap.Groups {
		if g.Name != "" {
			out = append(out, strings.ToUpper(g.Name))
		}
		for _, p := range g.Params {
			line := fmt.Sprintf("%-*s  %s", width, p.Label, p.Value)
			if p.Unit != "" {
				line += " " + p.Unit
			}
			out = append(out, line)
		}
	}
	return out
}
