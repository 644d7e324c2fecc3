// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/xalmath/matrix"
)

func newDetCommand(s *settings) *cobra.Command {
	in := &matrixInput{}
	cmd := &cobra.Command{
		Use:   "det [values]",
		Short: "Print the determinant of a square matrix",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := in.readSquare(args)
			if err != nil {
				return err
			}
			s.log.WithField("size", m.Size()).Debug("determinant")
			fmt.Fprintln(cmd.OutOrStdout(), s.formatFloat(m.Det()))

			return nil
		},
	}
	in.addFlags(cmd.Flags())

	return cmd
}

func newInverseCommand(s *settings) *cobra.Command {
	in := &matrixInput{}
	cmd := &cobra.Command{
		Use:   "inverse [values]",
		Short: "Print the inverse of a square matrix",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := in.readSquare(args)
			if err != nil {
				return err
			}
			inv, err := m.Inverse()
			if err != nil {
				return err
			}
			if c, err := m.ConditionNumber(); err == nil {
				s.log.WithFields(logrus.Fields{"size": m.Size(), "cond": c}).Debug("inverted")
			}
			fmt.Fprint(cmd.OutOrStdout(), inv.StringMatrix(s.precision()))

			return nil
		},
	}
	in.addFlags(cmd.Flags())

	return cmd
}

func newCondCommand(s *settings) *cobra.Command {
	in := &matrixInput{}
	cmd := &cobra.Command{
		Use:   "cond [values]",
		Short: "Print the 2-norm condition number",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := in.readMatrix(args)
			if err != nil {
				return err
			}
			c, err := m.ConditionNumber()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s.formatFloat(c))

			return nil
		},
	}
	in.addFlags(cmd.Flags())

	return cmd
}

// newNormsCommand prints every matrix norm, and for square input whether the
// matrix is symmetric within --ulps.
func newNormsCommand(s *settings) *cobra.Command {
	in := &matrixInput{}
	cmd := &cobra.Command{
		Use:   "norms [values]",
		Short: "Print the 1, 2, infinity and Frobenius norms and the max element",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := in.readMatrix(args)
			if err != nil {
				return err
			}
			n2, err := m.Norm2()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "norm1\t%s\n", s.formatFloat(m.Norm1()))
			fmt.Fprintf(w, "norm2\t%s\n", s.formatFloat(n2))
			fmt.Fprintf(w, "normInf\t%s\n", s.formatFloat(m.NormInf()))
			fmt.Fprintf(w, "normF\t%s\n", s.formatFloat(m.NormF()))
			fmt.Fprintf(w, "max\t%s\n", s.formatFloat(m.Max()))
			if m.Rows() == m.Cols() {
				sq, err := matrix.NewRealSquareMatrixFrom(m.Array())
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "symmetric\t%t\n", sq.IsSymmetricULPs(s.ulps()))
			}

			return w.Flush()
		},
	}
	in.addFlags(cmd.Flags())

	return cmd
}
