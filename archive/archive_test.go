// SPDX-License-Identifier: MIT
package archive_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/xalmath/archive"
	"github.com/katalvlaran/xalmath/matrix"
)

// Both adaptors satisfy the persistence surface of the matrix package.
var (
	_ matrix.DataAdaptor = archive.Map{}
	_ matrix.DataAdaptor = (*archive.Node)(nil)
)

const lattice = `
title: test line
covariance:
  values: "{ {1 0}{0 1} }"
element:
  - name: D1
    values: "{ {1 1}{0 1} }"
  - name: Q1
    values: "{ {1 0}{-0.5 1} }"
`

func TestMap(t *testing.T) {
	m := archive.Map{}
	_, ok := m.GetValue("a")
	require.False(t, ok)
	m.SetValue("b", "2")
	m.SetValue("a", "1")
	v, ok := m.GetValue("a")
	require.True(t, ok)
	require.Equal(t, "1", v)
	require.Equal(t, []string{"a", "b"}, m.Keys())
}

func TestParseLattice(t *testing.T) {
	root, err := archive.Parse([]byte(lattice))
	require.NoError(t, err)

	title, ok := root.GetValue("title")
	require.True(t, ok)
	require.Equal(t, "test line", title)

	cov, err := root.Require("covariance")
	require.NoError(t, err)
	vals, ok := cov.GetValue(matrix.AttrValues)
	require.True(t, ok)
	require.Equal(t, "{ {1 0}{0 1} }", vals)

	elems := root.Children("element")
	require.Len(t, elems, 2)
	name, _ := elems[1].GetValue("name")
	require.Equal(t, "Q1", name)
	require.Equal(t, "element", elems[1].Name())

	_, err = root.Require("missing")
	require.ErrorIs(t, err, archive.ErrMissingChild)
}

func TestMatrixRoundTripThroughYAML(t *testing.T) {
	A, err := matrix.NewRealSquareMatrixFrom([][]float64{{0.1, -2}, {3e-12, 4}})
	require.NoError(t, err)

	root := archive.NewNode("")
	A.Save(root.AddChild("transfer"))
	data, err := archive.Marshal(root)
	require.NoError(t, err)

	back, err := archive.Parse(data)
	require.NoError(t, err)
	node, ok := back.Child("transfer")
	require.True(t, ok)

	B, err := matrix.NewRealSquareMatrix(2)
	require.NoError(t, err)
	require.NoError(t, B.Load(node))
	require.True(t, A.IsApproxEqualULPs(B, 0))
}

func TestMarshalStableOrder(t *testing.T) {
	root, err := archive.Parse([]byte(lattice))
	require.NoError(t, err)
	once, err := archive.Marshal(root)
	require.NoError(t, err)
	again, err := archive.Parse(once)
	require.NoError(t, err)
	twice, err := archive.Marshal(again)
	require.NoError(t, err)
	require.Equal(t, string(once), string(twice))
	require.Equal(t, []string{"title"}, again.Keys())
}

func TestParseErrors(t *testing.T) {
	_, err := archive.Parse([]byte("- a\n- b\n"))
	require.ErrorIs(t, err, archive.ErrFormat)

	_, err = archive.Parse([]byte("element:\n  - plain\n"))
	require.ErrorIs(t, err, archive.ErrFormat)

	_, err = archive.Parse([]byte("a: [unterminated"))
	require.Error(t, err)

	empty, err := archive.Parse(nil)
	require.NoError(t, err)
	require.Empty(t, empty.Keys())
}

func TestNodeAsYAMLValue(t *testing.T) {
	var doc struct {
		Beam *archive.Node `yaml:"beam"`
	}
	doc.Beam = archive.NewNode("beam")
	require.NoError(t, yaml.Unmarshal([]byte("beam:\n  energy: \"2.5e9\"\n"), &doc))
	v, ok := doc.Beam.GetValue("energy")
	require.True(t, ok)
	require.Equal(t, "2.5e9", v)
	require.Equal(t, "beam", doc.Beam.Name())
}

func TestReadWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.yaml")
	root := archive.NewNode("")
	root.AddChild("probe").SetValue("species", "H-")
	require.NoError(t, archive.WriteFile(path, root))

	back, err := archive.ReadFile(path)
	require.NoError(t, err)
	probe, ok := back.Child("probe")
	require.True(t, ok)
	s, _ := probe.GetValue("species")
	require.Equal(t, "H-", s)

	_, err = archive.ReadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
