package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/siyuan-infoblox/swift-imports-group/pkg/config"
	"github.com/siyuan-infoblox/swift-imports-group/pkg/errors"
	"github.com/siyuan-infoblox/swift-imports-group/pkg/formatter"
	"github.com/siyuan-infoblox/swift-imports-group/pkg/frameworks"
	"github.com/siyuan-infoblox/swift-imports-group/pkg/logging"
	"github.com/siyuan-infoblox/swift-imports-group/pkg/sorter"
	"github.com/siyuan-infoblox/swift-imports-group/pkg/version"
)

const (
	UseDescription   = "sig [flags] PATH"
	ShortDescription = "Swift imports grouper - A tool to group and sort Swift imports"
	LongDescription  = `sig is a command-line tool that groups and sorts the import block of a Swift file.

It organizes imports into groups:
1. System frameworks (configurable, UIKit, Foundation, ... by default)
2. Other modules
3. Interface modules (names ending with the interface suffix)

Each group is sorted alphabetically and separated by a blank line.

PATH is a single source file, or "-" to read from standard input and write
to standard output, which lets editors use sig as a filter.`
)

type options struct {
	configPath  string
	inPlace     bool
	list        bool
	diff        bool
	color       bool
	verbose     bool
	printConfig bool
	showVersion bool
}

// NewRootCommand creates the sig command using fs for file access
func NewRootCommand(fs afero.Fs, in io.Reader, out, errOut io.Writer) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:          UseDescription,
		Short:        ShortDescription,
		Long:         LongDescription,
		Args:         validateArgs(opts),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts, fs, in)
		},
	}
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Path to a YAML config file (default .sig.yaml in the current or home directory)")
	flags.StringSlice("frameworks", frameworks.Defaults, "Comma-separated list of system framework names grouped first")
	flags.String("interface-suffix", sorter.DefaultInterfaceSuffix, "Module name suffix of interface imports grouped last")
	flags.Bool("collapse-blank-lines", false, "Only place one blank line between non-empty groups")
	flags.StringSlice("extensions", []string{config.DefaultExtension}, "Comma-separated list of accepted source file extensions")
	flags.String("log-level", config.DefaultLogLevel, "Log level: debug, info, warn or error")
	flags.String("log-format", config.DefaultLogFormat, "Log format: text or json")
	flags.BoolVar(&opts.inPlace, "in-place", false, "Modify the file in place instead of printing to stdout")
	flags.BoolVarP(&opts.list, "list", "l", false, "List the file if its imports are not sorted")
	flags.BoolVarP(&opts.diff, "diff", "d", false, "Print a diff instead of the rewritten source")
	flags.BoolVar(&opts.color, "color", false, "Colorize the diff output")
	flags.BoolVar(&opts.verbose, "verbose", false, "Enable debug logging")
	flags.BoolVar(&opts.printConfig, "print-config", false, "Print the effective configuration as YAML and exit")
	flags.BoolVarP(&opts.showVersion, "version", "v", false, "Show version information")

	return rootCmd
}

func validateArgs(opts *options) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		// Version and config output don't need a path
		if opts.showVersion || opts.printConfig {
			return nil
		}
		return cobra.ExactArgs(1)(cmd, args)
	}
}

func run(cmd *cobra.Command, args []string, opts *options, fs afero.Fs, in io.Reader) error {
	out := cmd.OutOrStdout()

	if opts.showVersion {
		_, err := fmt.Fprintln(out, version.Get().String())
		return err
	}

	cfg, err := config.LoadConfig(fs, opts.configPath, cmd.Flags())
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToLoadConfig, err)
	}

	if opts.printConfig {
		rendered, err := cfg.YAML()
		if err != nil {
			return fmt.Errorf("%s: %w", errors.ErrMsgFailedToRenderConfig, err)
		}
		_, err = out.Write(rendered)
		return err
	}

	level := cfg.Logging.Level
	if opts.verbose {
		level = "debug"
	}
	logger, err := logging.New(cmd.ErrOrStderr(), level, cfg.Logging.Format)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToLoadConfig, err)
	}

	f := formatter.New(formatter.FormatterConfig{
		Extensions: cfg.Extensions,
		InPlace:    opts.inPlace,
		List:       opts.list,
		Diff:       opts.diff,
		Color:      opts.color,
		Sorter:     cfg.Sorter(),
		Fs:         fs,
		In:         in,
		Out:        out,
		Logger:     logger,
	})
	return f.ProcessPath(args[0])
}

// Execute runs the sig command against the OS filesystem and standard streams
func Execute(buildVersion string) error {
	version.SetFromBuild(buildVersion)
	return NewRootCommand(afero.NewOsFs(), os.Stdin, os.Stdout, os.Stderr).Execute()
}
