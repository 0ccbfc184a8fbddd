package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"strconv"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/idelchi/fss/internal/config"
	"github.com/idelchi/fss/internal/filter"
	"github.com/idelchi/fss/internal/groups"
	"github.com/idelchi/fss/internal/walk"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// Options holds the parsed command line.
type Options struct {
	// Paths are the roots to analyze.
	Paths []string
	// GroupBy selects the grouping key.
	GroupBy groups.GroupBy
	// Filters restrict which groups are displayed.
	Filters filter.List
	// SizeFormat selects how sizes are rendered.
	SizeFormat FormatOption
	// ApparentSize selects apparent size instead of disk usage.
	ApparentSize bool
	// Threads is the number of concurrent walkers.
	Threads int
	// Verbose prints every filesystem error.
	Verbose bool
	// Output is the output format: table, json or yaml.
	Output string
	// Engine selects the traversal implementation.
	Engine walk.Engine
	// Top limits the number of groups displayed (0 = all).
	Top int
	// Progress shows a status line on stderr while scanning.
	Progress bool
	// Debug enables debug logging on stderr.
	Debug bool
	// Config is an explicit config file path.
	Config string
}

//nolint:gochecknoglobals // Config constant
var allowedOutputs = []string{"table", "json", "yaml"}

// Execute runs the CLI with the process arguments. An interrupt cancels the walk.
func (c CLI) Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return c.Command().ExecuteContext(ctx)
}

// Command builds the root command.
func (c CLI) Command() *cobra.Command {
	options := Options{
		GroupBy:    groups.Extension,
		SizeFormat: Decimal,
		Engine:     walk.Native,
	}

	cmd := &cobra.Command{
		Use:   "fss [flags] [path...]",
		Short: "Computes disk usage for the given paths and groups it by extension or file type",
		Long: heredoc.Doc(`
			fss computes the disk usage of the given paths and groups it by extension,
			file type, file name or parent directory.

			Hard-linked files are counted once. Filesystem errors never stop the scan;
			they are summarized in a warning, or listed one by one with --verbose.

			Positional Arguments:
			  path                   Paths to analyze. Defaults to the current directory.

			Grouping (-g), any prefix is accepted:
			  extension              lowercase file extension (default)
			  type                   file type, e.g. Image, Video, Document
			  filename               file name
			  directory              parent directory name

			Size filters (-S) use the format <+-><NUM><UNIT>:
			  '+'                    group size must be greater than or equal to this
			  '-'                    group size must be less than or equal to this
			                         without a sign the size must match exactly
			  UNIT                   b, k, m, g, t (base 10) or ki, mi, gi, ti (base 2)
			Repeated filters must all match. They never change the total.

			Defaults may be set in a YAML file at $FSS_CONFIG or <user config dir>/fss/config.yaml.
		`),
		Example: heredoc.Doc(`
			fss -g type ~/Downloads
			fss -S +100mi -S -1g /var
			fss -o json -b .
		`),
		Version:       c.version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := applyConfig(cmd.Flags(), options.Config); err != nil {
				return err
			}

			if !slices.Contains(allowedOutputs, options.Output) {
				return fmt.Errorf("invalid output format %q: must be one of %v", options.Output, allowedOutputs)
			}

			if options.Threads <= 0 {
				return errors.New("threads must be positive")
			}

			if options.Top < 0 {
				return errors.New("top cannot be negative")
			}

			options.Paths = args
			if len(options.Paths) == 0 {
				options.Paths = []string{"."}
			}

			return logic(cmd.Context(), options, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := cmd.Flags()
	flags.SortFlags = false

	flags.VarP(&options.GroupBy, "group-by", "g", "Group by: extension, type, filename or directory")
	flags.VarP(&options.Filters, "size", "S", "Limit results based on the size of groups, e.g. +500k (repeatable)")
	flags.VarP(&options.SizeFormat, "size-format", "s", "Size format: decimal, binary, bytes or auto")
	flags.BoolVarP(&options.ApparentSize, "apparent-size", "b", false, "Compute apparent size instead of disk usage")
	flags.IntVarP(&options.Threads, "threads", "j", walk.DefaultThreads(), "Number of threads to use")
	flags.BoolVarP(&options.Verbose, "verbose", "v", false, "Do not hide filesystem errors")
	flags.StringVarP(&options.Output, "output", "o", "table", "Output format: table, json or yaml")
	flags.VarP(&options.Engine, "engine", "E", "Traversal engine: native or fastwalk")
	flags.IntVarP(&options.Top, "top", "t", 0, "Number of largest groups to display (0=all)")
	flags.BoolVar(&options.Progress, "progress", false, "Show a progress line on stderr when it is a terminal")
	flags.BoolVar(&options.Debug, "debug", false, "Enable debug output")
	flags.StringVar(&options.Config, "config", "", "Path to a YAML config file")

	return cmd
}

// applyConfig copies config file values onto every flag not set on the command line.
func applyConfig(flags *pflag.FlagSet, path string) error {
	mustExist := path != ""

	if !mustExist {
		var err error

		path, err = config.DefaultPath()
		if err != nil {
			return nil //nolint:nilerr // No config directory means no config file
		}

		_, mustExist = os.LookupEnv(config.EnvPath)
	}

	cfg, err := config.Load(path, mustExist)
	if err != nil {
		return err
	}

	values := map[string][]string{
		"group-by":      {cfg.GroupBy},
		"size-format":   {cfg.SizeFormat},
		"apparent-size": {strconv.FormatBool(cfg.ApparentSize)},
		"threads":       {strconv.Itoa(cfg.Threads)},
		"verbose":       {strconv.FormatBool(cfg.Verbose)},
		"output":        {cfg.Output},
		"engine":        {cfg.Engine},
		"top":           {strconv.Itoa(cfg.Top)},
		"size":          cfg.Sizes,
	}

	for name, vals := range values {
		if flags.Changed(name) {
			continue
		}

		for _, v := range vals {
			if err := flags.Set(name, v); err != nil {
				return fmt.Errorf("config %q: %s: %w", path, name, err)
			}
		}
	}

	return nil
}
