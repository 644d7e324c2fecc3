// SPDX-License-Identifier: MIT

// Package matrix - token strings.
//
// Format:
//   - Matrices print as "{ { a b }{ c d } }", vectors as "{ a b  }".
//   - Values use the shortest representation that round-trips (strconv 'g', -1),
//     so String followed by a parse reproduces every element bit for bit.
//   - On input, any run of the characters " ,()[]{}" separates tokens; the
//     count of tokens must equal the element count of the target.

package matrix

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// tokenDelims lists every character that separates numeric tokens.
const tokenDelims = " ,()[]{}"

const (
	fmtOpen  = "{ "
	fmtClose = "}"
	fmtSpace = " "
)

func isDelim(r rune) bool { return strings.ContainsRune(tokenDelims, r) }

// parseTokens splits s into exactly want float64 values.
// Implementation:
//   - Stage 1: split on tokenDelims (runs collapse; empty tokens vanish).
//   - Stage 2: count check, then strconv.ParseFloat per token.
//
// Behavior highlights:
//   - Out-of-range literals ("1e400") parse to ±Inf, like any other overflow.
//   - With validate=true non-finite values are rejected.
//
// Errors:
//   - ErrTokenCount, ErrParse, ErrNaNInf.
func parseTokens(s string, want int, validate bool) ([]float64, error) {
	toks := strings.FieldsFunc(s, isDelim)
	if len(toks) != want {
		return nil, fmt.Errorf("%d tokens, want %d: %w", len(toks), want, ErrTokenCount)
	}

	return parseFields(toks, validate)
}

// ParseTokens returns every numeric token of s, in order, with no count
// check. Types with a relaxed token format (a phase vector accepts its six
// coordinates with or without the homogeneous one) count the result
// themselves.
//
// Errors:
//   - ErrParse.
func ParseTokens(s string) ([]float64, error) {
	return parseFields(strings.FieldsFunc(s, isDelim), false)
}

func parseFields(toks []string, validate bool) ([]float64, error) {
	vals := make([]float64, len(toks))
	for k, tok := range toks {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, fmt.Errorf("token %d %q: %w", k, tok, ErrParse)
		}
		if validate && !isFinite(v) {
			return nil, fmt.Errorf("token %d %q: %w", k, tok, ErrNaNInf)
		}
		vals[k] = v
	}

	return vals, nil
}

func formatValue(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// formatMatrix renders "{ { a b }{ c d } }".
func formatMatrix(d *Dense) string {
	var b strings.Builder
	b.WriteString(fmtOpen)
	for i := 0; i < d.r; i++ {
		b.WriteString(fmtOpen)
		for j := 0; j < d.c; j++ {
			b.WriteString(formatValue(d.data[i*d.c+j]))
			b.WriteString(fmtSpace)
		}
		b.WriteString(fmtClose)
	}
	b.WriteString(fmtSpace + fmtClose)

	return b.String()
}

// formatVector renders "{ a b  }" (one space after every value, then " }").
func formatVector(d *Dense) string {
	var b strings.Builder
	b.WriteString(fmtOpen)
	for _, v := range d.data {
		b.WriteString(formatValue(v))
		b.WriteString(fmtSpace)
	}
	b.WriteString(fmtSpace + fmtClose)

	return b.String()
}

// formatTable renders one row per line in scientific notation with prec
// fractional digits, columns right-aligned.
func formatTable(d *Dense, prec int) string {
	if prec < 0 {
		prec = 0
	}
	cells := make([]string, len(d.data))
	width := 0
	for k, v := range d.data {
		cells[k] = strconv.FormatFloat(v, 'e', prec, 64)
		if len(cells[k]) > width {
			width = len(cells[k])
		}
	}

	var b strings.Builder
	for i := 0; i < d.r; i++ {
		for j := 0; j < d.c; j++ {
			if j > 0 {
				b.WriteString(fmtSpace)
			}
			fmt.Fprintf(&b, "%*s", width, cells[i*d.c+j])
		}
		b.WriteByte('\n')
	}

	return b.String()
}
