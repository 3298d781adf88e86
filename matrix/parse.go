// SPDX-License-Identifier: MIT

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseComplex parses a single complex literal. Both Go ("1-2i") and
// engineering ("1-2j") imaginary suffixes are accepted. Non-finite values
// are rejected with ErrNaNInf.
func ParseComplex(s string) (complex128, error) {
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "j") {
		s = strings.TrimSuffix(s, "j") + "i"
	}
	v, err := strconv.ParseComplex(s, 128)
	if err != nil {
		return 0, matrixErrorf(opParseEntry, err)
	}
	if !isFinite(v) {
		return 0, matrixErrorf(opParseEntry, ErrNaNInf)
	}
	return v, nil
}

// ReadDense reads a whitespace- or comma-separated matrix, one row per line.
// Blank lines and lines starting with '#' are skipped.
func ReadDense(r io.Reader) (*Dense, error) {
	var rows [][]complex128
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		row := make([]complex128, 0, len(fields))
		for _, f := range fields {
			v, err := ParseComplex(f)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return NewDenseFromRows(rows)
}
