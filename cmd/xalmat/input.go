// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/xalmath/archive"
	"github.com/katalvlaran/xalmath/matrix"
)

const (
	flagRows = "rows"
	flagCols = "cols"
	flagFile = "file"
	flagNode = "node"

	keyRows = "rows"
	keyCols = "cols"

	nodeSep = "/"
)

var (
	errNoInput    = errors.New("xalmat: no matrix given; pass a token string or --file")
	errShape      = errors.New("xalmat: cannot infer matrix shape")
	errNoValues   = errors.New("xalmat: node has no values")
	errNotSquare  = errors.New("xalmat: matrix is not square")
	errTwoSources = errors.New("xalmat: pass either a token string or --file, not both")
)

// matrixInput reads one matrix from a token string argument or from a node
// of an archive file.
type matrixInput struct {
	rows, cols int
	file, node string
}

func (in *matrixInput) addFlags(fs *pflag.FlagSet) {
	fs.IntVar(&in.rows, flagRows, 0, "row count; inferred when omitted")
	fs.IntVar(&in.cols, flagCols, 0, "column count; inferred when omitted")
	fs.StringVar(&in.file, flagFile, "", "YAML archive holding the matrix")
	fs.StringVar(&in.node, flagNode, "", "slash-separated node path inside --file")
}

// source returns the token string and the dimensions declared for it.
func (in *matrixInput) source(args []string) (s string, rows, cols int, err error) {
	rows, cols = in.rows, in.cols
	switch {
	case in.file != "" && len(args) > 0:
		return "", 0, 0, errTwoSources
	case in.file == "":
		if len(args) != 1 {
			return "", 0, 0, errNoInput
		}
		return args[0], rows, cols, nil
	}

	root, err := archive.ReadFile(in.file)
	if err != nil {
		return "", 0, 0, err
	}
	n, err := walk(root, in.node)
	if err != nil {
		return "", 0, 0, err
	}
	s, ok := n.GetValue(matrix.AttrValues)
	if !ok {
		return "", 0, 0, fmt.Errorf("%s %q: %w", in.file, in.node, errNoValues)
	}
	if rows == 0 {
		if rows, err = intValue(n, keyRows); err != nil {
			return "", 0, 0, err
		}
	}
	if cols == 0 {
		if cols, err = intValue(n, keyCols); err != nil {
			return "", 0, 0, err
		}
	}

	return s, rows, cols, nil
}

// readMatrix parses the input into a general matrix.
func (in *matrixInput) readMatrix(args []string) (*matrix.RealMatrix, error) {
	s, rows, cols, err := in.source(args)
	if err != nil {
		return nil, err
	}
	if rows, cols, err = inferShape(s, rows, cols); err != nil {
		return nil, err
	}

	return matrix.ParseRealMatrix(rows, cols, s)
}

// readSquare parses the input into a square matrix.
func (in *matrixInput) readSquare(args []string) (*matrix.RealSquareMatrix, error) {
	s, rows, cols, err := in.source(args)
	if err != nil {
		return nil, err
	}
	if rows, cols, err = inferShape(s, rows, cols); err != nil {
		return nil, err
	}
	if rows != cols {
		return nil, fmt.Errorf("%d×%d: %w", rows, cols, errNotSquare)
	}

	return matrix.ParseRealSquareMatrix(rows, s)
}

// inferShape fills zero dimensions from the token count. With neither given
// the matrix is taken to be square.
func inferShape(s string, rows, cols int) (int, int, error) {
	vals, err := matrix.ParseTokens(s)
	if err != nil {
		return 0, 0, err
	}
	n := len(vals)
	switch {
	case n == 0:
		return 0, 0, fmt.Errorf("empty token string: %w", errShape)
	case rows == 0 && cols == 0:
		k := int(math.Round(math.Sqrt(float64(n))))
		if k*k != n {
			return 0, 0, fmt.Errorf("%d values are not a square; pass --rows or --cols: %w", n, errShape)
		}
		return k, k, nil
	case rows == 0:
		rows = n / cols
	case cols == 0:
		cols = n / rows
	}
	if rows*cols != n {
		return 0, 0, fmt.Errorf("%d values for %d×%d: %w", n, rows, cols, matrix.ErrTokenCount)
	}

	return rows, cols, nil
}

// walk follows a slash-separated path of child names from root.
func walk(root *archive.Node, path string) (*archive.Node, error) {
	n := root
	for _, name := range strings.Split(path, nodeSep) {
		if name == "" {
			continue
		}
		c, err := n.Require(name)
		if err != nil {
			return nil, err
		}
		n = c
	}

	return n, nil
}

// intValue reads an optional integer entry; absence yields 0.
func intValue(n *archive.Node, key string) (int, error) {
	v, ok := n.GetValue(key)
	if !ok {
		return 0, nil
	}
	i, err := cast.ToIntE(v)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", key, v, err)
	}
	if i < 0 {
		return 0, fmt.Errorf("%s %d: %w", key, i, errShape)
	}

	return i, nil
}
