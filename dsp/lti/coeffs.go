package lti

import (
	"fmt"
	"math"
	"strings"

	"github.com/attilaasghari/signals-systems-simulator/internal/expr"
)

// parseCoefficients reads a textual coefficient list: elements separated
// by commas and/or whitespace, with optional surrounding square brackets.
// Each element is a constant expression ("1", "0.5", "-1/3", "2*pi");
// expressions referencing the time variable are rejected.
func parseCoefficients(src string) ([]float64, error) {
	s := strings.TrimSpace(src)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")

	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})

	if len(fields) == 0 {
		return nil, fmt.Errorf("empty coefficient list %q", src)
	}

	out := make([]float64, len(fields))
	for i, field := range fields {
		parsed, err := expr.Parse(field)
		if err != nil {
			return nil, fmt.Errorf("coefficient %d: %w", i, err)
		}

		if parsed.UsesVar() {
			return nil, fmt.Errorf("coefficient %d: %q is not constant", i, field)
		}

		v := parsed.Eval(0)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("coefficient %d: %q is non-finite", i, field)
		}

		out[i] = v
	}

	return out, nil
}
