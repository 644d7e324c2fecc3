// Package archive provides DataAdaptor implementations for persisting
// matrices, vectors and beam states.
//
// The archive package provides:
//
//   - Map, a flat in-memory key/value adaptor.
//   - Node, a named hierarchical adaptor serialized as YAML (gopkg.in/yaml.v3).
//     Scalar entries of a YAML mapping are the node's values; nested mappings
//     are child nodes; a sequence of mappings is a list of children sharing a
//     name.
//
// A lattice file read by the xalmat CLI is a Node document:
//
//	covariance:
//	  values: "{ { 1 0 ... }{ ... } }"
//	element:
//	  - name: D1
//	    values: "{ ... }"
//	  - name: Q1
//	    values: "{ ... }"
//
// Token strings contain braces, so they must be quoted in YAML.
package archive
