// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/xalmath/elementary"
)

const (
	envPrefix = "XALMAT"

	keyConfig    = "config"
	keyLogLevel  = "log-level"
	keyLogFormat = "log-format"
	keyULPs      = "ulps"
	keyPrecision = "precision"

	defaultLogLevel  = "info"
	defaultLogFormat = "text"
	defaultPrecision = 6

	formatText = "text"
	formatJSON = "json"
)

var errUsage = errors.New("xalmat: invalid setting")

// settings is the resolved configuration shared by every subcommand.
type settings struct {
	v   *viper.Viper
	log *logrus.Logger
	out io.Writer
}

func (s *settings) ulps() int      { return s.v.GetInt(keyULPs) }
func (s *settings) precision() int { return s.v.GetInt(keyPrecision) }

// formatFloat renders x in scientific notation with the configured number
// of fractional digits, the same layout StringMatrix uses.
func (s *settings) formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'e', s.precision(), 64)
}

// newRootCommand builds the command tree writing results to out and
// diagnostics to log.
func newRootCommand(out io.Writer, log *logrus.Logger) *cobra.Command {
	s := &settings{v: viper.New(), log: log, out: out}

	cmd := &cobra.Command{
		Use:           "xalmat",
		Short:         "Dense linear algebra and beam-moment tools",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return s.load(cmd)
		},
	}
	cmd.SetOut(out)

	pf := cmd.PersistentFlags()
	pf.String(keyConfig, "", "YAML config file with log-level, log-format, ulps and precision")
	pf.String(keyLogLevel, defaultLogLevel, "log level (trace, debug, info, warn, error)")
	pf.String(keyLogFormat, defaultLogFormat, "log format (text or json)")
	pf.Int(keyULPs, elementary.DefaultULPs, "ULP tolerance of approximate comparisons")
	pf.Int(keyPrecision, defaultPrecision, "fractional digits of printed values")

	cmd.AddCommand(
		newDetCommand(s),
		newInverseCommand(s),
		newCondCommand(s),
		newNormsCommand(s),
		newTwissCommand(s),
		newTransportCommand(s),
	)

	return cmd
}

// load layers flags over XALMAT_* variables over the config file, then
// configures the logger.
func (s *settings) load(cmd *cobra.Command) error {
	v := s.v
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString(keyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("config %s: %w", path, err)
		}
	}

	level, err := logrus.ParseLevel(v.GetString(keyLogLevel))
	if err != nil {
		return fmt.Errorf("%s: %w: %w", keyLogLevel, errUsage, err)
	}
	s.log.SetLevel(level)
	s.log.SetOutput(cmd.ErrOrStderr())

	switch f := v.GetString(keyLogFormat); f {
	case formatText:
		s.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	case formatJSON:
		s.log.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("%s %q: %w", keyLogFormat, f, errUsage)
	}

	if s.precision() < 0 {
		return fmt.Errorf("%s %d: %w", keyPrecision, s.precision(), errUsage)
	}
	if s.ulps() < 0 {
		return fmt.Errorf("%s %d: %w", keyULPs, s.ulps(), errUsage)
	}
	s.log.WithFields(logrus.Fields{
		keyLogLevel:  level.String(),
		keyULPs:      s.ulps(),
		keyPrecision: s.precision(),
		keyConfig:    v.ConfigFileUsed(),
	}).Debug("settings loaded")

	return nil
}
