//go:build !wasip1

package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wasmiot-abc/internal/config"
	"wasmiot-abc/internal/describe"
	"wasmiot-abc/internal/exitcodes"
	"wasmiot-abc/internal/fsops"
	"wasmiot-abc/internal/logging"
	"wasmiot-abc/internal/metrics"
	"wasmiot-abc/internal/mount"
)

// exitError carries the process exit code for a failed command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func withCode(code int, err error) error {
	return &exitError{code: code, err: err}
}

func exitCode(err error) int {
	if err == nil {
		return exitcodes.Success
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitcodes.RuntimeError
}

// cli holds the state shared by the subcommands of one invocation.
type cli struct {
	dir         string
	configPath  string
	metricsFile string
	verbose     bool

	cfg      *config.Config
	logger   *zap.Logger
	recorder *metrics.Recorder
	fixture  *mount.Fixture
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "abc",
		Short: "Mount-file I/O fixture for the wasm-iot orchestrator",
		Long: `abc runs the fixture functions natively against a local mount directory.

The same functions are exported as a, b and c when built with
GOOS=wasip1 GOARCH=wasm -buildmode=c-shared.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return c.teardown()
		},
	}

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return withCode(exitcodes.InvalidArgs, err)
	})

	root.PersistentFlags().StringVar(&c.dir, "dir", ".", "directory holding the mount files")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to YAML configuration file")
	root.PersistentFlags().StringVar(&c.metricsFile, "metrics-file", "", "write Prometheus textfile metrics to this path")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		&cobra.Command{
			Use:   "a <p0> <p1>",
			Short: "Read deploy and exec mounts and return a non-positive i32",
			Args:  exactArgs(2),
			RunE:  c.runA,
		},
		&cobra.Command{
			Use:   "b",
			Short: "Return the constant f32 4.2",
			Args:  exactArgs(0),
			RunE: func(cmd *cobra.Command, args []string) error {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), formatF32(c.fixture.B()))
				return err
			},
		},
		&cobra.Command{
			Use:   "c",
			Short: "Write the payload to the out mount and return a u32",
			Args:  exactArgs(0),
			RunE: func(cmd *cobra.Command, args []string) error {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), c.fixture.C())
				return err
			},
		},
		newDescribeCmd(c),
	)

	return root
}

func newDescribeCmd(c *cli) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Print the module description uploaded to the orchestrator",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := describe.Render(describe.Build(c.cfg), format)
			if err != nil {
				return withCode(exitcodes.InvalidArgs, err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().StringVar(&format, "format", "json", "output format: json or yaml")
	return cmd
}

func (c *cli) setup(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if c.configPath != "" {
		loaded, err := config.Load(c.configPath)
		if err != nil {
			return withCode(exitcodes.InvalidConfig, err)
		}
		cfg = loaded
	}
	if c.verbose {
		cfg.Logging.Level = "debug"
	}
	if c.metricsFile != "" {
		cfg.Metrics.TextfilePath = c.metricsFile
	}

	logger, err := logging.New(cfg)
	if err != nil {
		return withCode(exitcodes.InvalidConfig, err)
	}

	c.cfg = cfg
	c.logger = logger
	c.recorder = metrics.NewRecorder()
	c.fixture = mount.New(
		fsops.OSFS{Root: c.dir},
		cfg,
		mount.WithLogger(logger),
		mount.WithObserver(c.recorder),
	)

	logger.Debug("fixture ready",
		zap.String("dir", c.dir),
		zap.String("deploy", cfg.Mounts.Deploy),
		zap.String("exec", cfg.Mounts.Exec),
		zap.String("out", cfg.Mounts.Out),
	)
	return nil
}

func (c *cli) teardown() error {
	defer func() { _ = c.logger.Sync() }()

	if path := c.cfg.Metrics.TextfilePath; path != "" {
		if err := c.recorder.WriteTextfile(path); err != nil {
			return withCode(exitcodes.RuntimeError, err)
		}
		c.logger.Debug("metrics written", zap.String("path", path))
	}
	return nil
}

func (c *cli) runA(cmd *cobra.Command, args []string) error {
	p0, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return withCode(exitcodes.InvalidArgs, fmt.Errorf("p0: %w", err))
	}
	p1, err := strconv.ParseFloat(args[1], 32)
	if err != nil {
		return withCode(exitcodes.InvalidArgs, fmt.Errorf("p1: %w", err))
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), c.fixture.A(uint32(p0), float32(p1)))
	return err
}

func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return withCode(exitcodes.InvalidArgs, err)
		}
		return nil
	}
}

func formatF32(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "abc: %v\n", err)
		os.Exit(exitCode(err))
	}
}
