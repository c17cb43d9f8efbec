// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/pointgroup/clebsch"
	"github.com/katalvlaran/pointgroup/group"
	"github.com/katalvlaran/pointgroup/pointgroups"
)

// Configuration keys; flag names and config file keys are identical.
const (
	keyGroup     = "group"
	keyGroupFile = "group-file"
	keyTolerance = "tolerance"
	keySolver    = "solver"
	keyCanonical = "canonical"
	keyOutput    = "output"
	keyLogLevel  = "log-level"
	keyConfig    = "config"

	envPrefix = "CGCALC"
)

// checkEps is the tolerance of the structural checks run by verify.
const checkEps = 1e-9

var errBadOutput = errors.New("output must be text or yaml")

// outputFormat is a pflag.Value restricted to the supported encodings.
type outputFormat string

const (
	outputText outputFormat = "text"
	outputYAML outputFormat = "yaml"
)

var _ pflag.Value = (*outputFormat)(nil)

func (f *outputFormat) String() string { return string(*f) }

func (f *outputFormat) Set(s string) error {
	switch v := outputFormat(strings.ToLower(s)); v {
	case outputText, outputYAML:
		*f = v
		return nil
	}

	return fmt.Errorf("%q: %w", s, errBadOutput)
}

func (f *outputFormat) Type() string { return "text|yaml" }

// app is the state shared by the commands of one invocation.
type app struct {
	v      *viper.Viper
	log    logr.Logger
	flush  func()
	rep    *group.Representation
	engine *clebsch.Engine
	format outputFormat
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: logr.Discard(), flush: func() {}}
	format := outputText

	root := &cobra.Command{
		Use:           "cgcalc",
		Short:         "Clebsch-Gordan coefficients for finite point groups",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) { a.flush() },
	}

	pf := root.PersistentFlags()
	pf.String(keyGroup, "D4", fmt.Sprintf("built-in group (%s)", strings.Join(pointgroups.Names(), ", ")))
	pf.String(keyGroupFile, "", "YAML group description; overrides --group")
	pf.Float64(keyTolerance, clebsch.DefaultTolerance, "eigenvalue filter |λ−1| < tolerance")
	pf.String(keySolver, "jacobi", fmt.Sprintf("eigen solver (%s)", strings.Join(clebsch.SolverNames(), ", ")))
	pf.Bool(keyCanonical, false, "return the canonical orthonormal basis")
	pf.Var(&format, keyOutput, "output format")
	pf.String(keyLogLevel, "info", "log level (debug, info, warn, error)")
	pf.String(keyConfig, "", "config file (YAML)")

	root.AddCommand(
		newCGCmd(a),
		newDecomposeCmd(a),
		newCharsCmd(a),
		newIrrepsCmd(a),
		newVerifyCmd(a),
		newGroupsCmd(a),
	)

	return root
}

// setup resolves configuration, builds the logger and loads the group.
func (a *app) setup(cmd *cobra.Command) error {
	v := a.v
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

	if err := a.format.Set(v.GetString(keyOutput)); err != nil {
		return err
	}

	log, flush, err := newLogger(v.GetString(keyLogLevel), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.log, a.flush = log, flush

	if cmd.Name() == "groups" {
		return nil
	}

	if path := v.GetString(keyGroupFile); path != "" {
		a.rep, err = group.LoadFile(path)
	} else {
		a.rep, err = pointgroups.Lookup(v.GetString(keyGroup))
	}
	if err != nil {
		return err
	}

	solver, err := clebsch.SolverByName(v.GetString(keySolver))
	if err != nil {
		return err
	}
	tol := v.GetFloat64(keyTolerance)
	if tol <= 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		return fmt.Errorf("tolerance must be positive, got %g", tol)
	}
	opts := []clebsch.Option{
		clebsch.WithTolerance(tol),
		clebsch.WithSolver(solver),
		clebsch.WithLogger(a.log.WithName("clebsch")),
	}
	if v.GetBool(keyCanonical) {
		opts = append(opts, clebsch.WithCanonicalBasis())
	}
	a.engine, err = clebsch.New(a.rep, opts...)
	if err != nil {
		return err
	}
	a.log.V(1).Info("group loaded", "group", a.rep.Name(), "order", a.rep.Order(), "solver", solver.Name())

	return nil
}

// newLogger builds a console zap logger at level and adapts it to logr.
// logr V(1) maps to zap debug.
func newLogger(level string, w io.Writer) (logr.Logger, func(), error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return logr.Discard(), func() {}, fmt.Errorf("log level %q: %w", level, err)
	}
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), zap.NewAtomicLevelAt(lvl))
	zl := zap.New(core)

	return zapr.NewLogger(zl), func() { _ = zl.Sync() }, nil
}
