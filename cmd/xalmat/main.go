// SPDX-License-Identifier: MIT

// Command xalmat evaluates matrices and beam moments from the command line.
//
//	xalmat det --rows 2 --cols 2 "1 2 3 4"
//	xalmat inverse --file lattice.yaml --node element --precision 4
//	xalmat twiss --file beam.yaml
//	xalmat transport --file lattice.yaml --log-format json
//
// Settings come from flags, then XALMAT_* environment variables, then the
// YAML file named by --config, then defaults.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	root := newRootCommand(os.Stdout, log)
	if err := root.Execute(); err != nil {
		log.WithError(err).Error("xalmat failed")
		os.Exit(1)
	}
}
