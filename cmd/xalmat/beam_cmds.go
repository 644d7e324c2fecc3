// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/xalmath/archive"
	"github.com/katalvlaran/xalmath/beam"
	"github.com/katalvlaran/xalmath/matrix"
)

const (
	nodeCovariance = "covariance"
	nodeElement    = "element"
	keyName        = "name"
)

// readCovariance loads the σ matrix stored under n, which must carry values.
func readCovariance(n *archive.Node) (*beam.CovarianceMatrix, error) {
	if _, ok := n.GetValue(matrix.AttrValues); !ok {
		return nil, fmt.Errorf("%q: %w", n.Name(), errNoValues)
	}

	return beam.LoadCovariance(n)
}

// readLattice reads the initial σ and the beamline of a lattice document.
func readLattice(root *archive.Node) (*beam.CovarianceMatrix, []beam.Element, error) {
	cn, err := root.Require(nodeCovariance)
	if err != nil {
		return nil, nil, err
	}
	sigma, err := readCovariance(cn)
	if err != nil {
		return nil, nil, err
	}

	nodes := root.Children(nodeElement)
	line := make([]beam.Element, 0, len(nodes))
	for k, en := range nodes {
		name, ok := en.GetValue(keyName)
		if !ok {
			name = fmt.Sprintf("%s%d", nodeElement, k)
		}
		if _, ok = en.GetValue(matrix.AttrValues); !ok {
			return nil, nil, fmt.Errorf("element %q: %w", name, errNoValues)
		}
		phi, err := beam.LoadPhaseMatrix(en)
		if err != nil {
			return nil, nil, fmt.Errorf("element %q: %w", name, err)
		}
		line = append(line, beam.Element{Name: name, Phi: phi})
	}

	return sigma, line, nil
}

func newTwissCommand(s *settings) *cobra.Command {
	var file, node string
	cmd := &cobra.Command{
		Use:   "twiss",
		Short: "Print the Twiss parameters and rms emittance of each plane",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := archive.ReadFile(file)
			if err != nil {
				return err
			}
			n, err := walk(root, node)
			if err != nil {
				return err
			}
			sigma, err := readCovariance(n)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "plane\talpha\tbeta\tgamma\temittance")
			tw := sigma.Twiss()
			for _, p := range beam.Planes() {
				t := tw[p]
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", p,
					s.formatFloat(t.Alpha()), s.formatFloat(t.Beta()),
					s.formatFloat(t.Gamma()), s.formatFloat(t.Emittance()))
			}

			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&file, flagFile, "", "YAML archive holding the covariance matrix")
	cmd.Flags().StringVar(&node, flagNode, nodeCovariance, "slash-separated node path inside --file")
	_ = cmd.MarkFlagRequired(flagFile)

	return cmd
}

// newTransportCommand tracks σ through a lattice file and prints the rms
// beam size after every element.
func newTransportCommand(s *settings) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "transport",
		Short: "Propagate a covariance matrix through a lattice",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := archive.ReadFile(file)
			if err != nil {
				return err
			}
			sigma0, line, err := readLattice(root)
			if err != nil {
				return err
			}
			s.log.WithFields(logrus.Fields{"file": file, "elements": len(line)}).Info("transport started")

			states, err := beam.Transport(sigma0, line, func(st beam.State) {
				emit := st.Sigma.RmsEmittances()
				s.log.WithFields(logrus.Fields{
					"index":   st.Index,
					"element": st.Element,
					"sigma_x": st.Sigma.SigmaX(),
					"sigma_y": st.Sigma.SigmaY(),
					"sigma_z": st.Sigma.SigmaZ(),
					"emit_x":  emit[beam.PlaneX],
				}).Debug("element passed")
			})
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "index\telement\tsigma_x\tsigma_y\tsigma_z")
			for _, st := range states {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", st.Index, st.Element,
					s.formatFloat(st.Sigma.SigmaX()), s.formatFloat(st.Sigma.SigmaY()),
					s.formatFloat(st.Sigma.SigmaZ()))
			}

			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&file, flagFile, "", "YAML lattice file")
	_ = cmd.MarkFlagRequired(flagFile)

	return cmd
}
