// SPDX-License-Identifier: MIT

package gates

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// piExprRegex matches expressions like: pi, 2pi, 2*pi, pi/2, 3pi/4, 3*pi/4, -pi, -pi/2, -3*pi/4
var piExprRegex = regexp.MustCompile(`^(-?)(\d*\.?\d*)\s*\*?\s*pi(?:\s*/\s*(\d+\.?\d*))?$`)

// callRegex matches a gate invocation "name" or "name(p1, p2, ...)".
var callRegex = regexp.MustCompile(`^\s*([a-z][a-z0-9_]*)\s*(?:\(([^)]*)\))?\s*$`)

// ParseParam parses a single parameter expression, supporting plain numbers
// and pi expressions.
//
// Supported formats:
//   - Plain numbers: "1.5707", "3.14", "-0.5", "1e-3"
//   - Pi constant: "pi"
//   - Pi fractions: "pi/2", "pi/4", "pi/3"
//   - Coefficients: "2pi", "2*pi", "3pi/4", "3*pi/4"
//   - Negative: "-pi", "-pi/2", "-3*pi/4"
func ParseParam(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty expression: %w", ErrBadParam)
	}
	if val, err := strconv.ParseFloat(s, 64); err == nil {
		return val, nil
	}

	m := piExprRegex.FindStringSubmatch(strings.ToLower(s))
	if m == nil {
		return 0, fmt.Errorf("%q: %w", s, ErrBadParam)
	}
	coeff := 1.0
	if m[2] != "" {
		c, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			return 0, fmt.Errorf("%q: %w", s, ErrBadParam)
		}
		coeff = c
	}
	result := coeff * math.Pi
	if m[3] != "" {
		denom, err := strconv.ParseFloat(m[3], 64)
		if err != nil || denom == 0 {
			return 0, fmt.Errorf("%q: %w", s, ErrBadParam)
		}
		result /= denom
	}
	if m[1] == "-" {
		result = -result
	}

	return result, nil
}

// FormatParam formats a parameter, using pi notation for common fractions
// (within 1e-10) and the shortest round-tripping decimal otherwise.
func FormatParam(val float64) string {
	type piForm struct {
		value   float64
		display string
	}
	piForms := []piForm{
		{2 * math.Pi, "2*pi"},
		{math.Pi, "pi"},
		{math.Pi / 2, "pi/2"},
		{math.Pi / 3, "pi/3"},
		{math.Pi / 4, "pi/4"},
		{math.Pi / 6, "pi/6"},
		{math.Pi / 8, "pi/8"},
		{3 * math.Pi / 4, "3*pi/4"},
		{3 * math.Pi / 2, "3*pi/2"},
		{2 * math.Pi / 3, "2*pi/3"},
	}
	for _, pf := range piForms {
		if math.Abs(val-pf.value) < 1e-10 {
			return pf.display
		}
		if math.Abs(val+pf.value) < 1e-10 {
			return "-" + pf.display
		}
	}

	return strconv.FormatFloat(val, 'g', -1, 64)
}

// FormatParamList formats params as "[a, b, ...]" with FormatParam.
func FormatParamList(params []float64) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = FormatParam(p)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// ParseCall parses "name" or "name(expr, ...)" into a standard gate and its
// parameters, checking the parameter count.
func ParseCall(s string) (StandardGate, []float64, error) {
	m := callRegex.FindStringSubmatch(strings.ToLower(s))
	if m == nil {
		return 0, nil, fmt.Errorf("%q: %w", s, ErrUnknownGate)
	}
	g, err := ByName(m[1])
	if err != nil {
		return 0, nil, err
	}
	var params []float64
	if strings.TrimSpace(m[2]) != "" {
		for _, part := range strings.Split(m[2], ",") {
			v, err := ParseParam(part)
			if err != nil {
				return 0, nil, err
			}
			params = append(params, v)
		}
	}
	if len(params) != g.NumParams() {
		return 0, nil, paramCountError(g.Name(), len(params), g.NumParams())
	}

	return g, params, nil
}
