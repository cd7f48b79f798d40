package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nburlacu/exprcalc/pkg/exprcalc"
)

// newEngine builds an Engine from the root command's persistent flags.
func newEngine() *exprcalc.Engine {
	var opts []exprcalc.Option
	if hexChar != "" {
		opts = append(opts, exprcalc.WithHexChar(hexChar[0]))
	}
	if argSep != "" {
		opts = append(opts, exprcalc.WithArgSeparator(argSep[0]))
	}
	if cStyle {
		opts = append(opts, exprcalc.WithCStyle())
	}
	return exprcalc.New(opts...)
}

// parseVarAssignment splits a "name=value" flag argument used by --var.
func parseVarAssignment(s string) (name string, value float64, err error) {
	parts := strings.SplitN(s, "=", 2)
	if len(parts) != 2 {
		return "", 0, fmt.Errorf("invalid --var %q: expected name=value", s)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return "", 0, fmt.Errorf("invalid --var %q: %w", s, err)
	}
	return strings.TrimSpace(parts[0]), v, nil
}

// formatResult renders a compiled expression's result, honoring its
// boolean tag.
func formatResult(e *exprcalc.Engine, idx int) (string, error) {
	return e.AsString(idx)
}
