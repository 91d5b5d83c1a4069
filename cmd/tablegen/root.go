package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gavr-vlad-s/table-gen-for-expr/category"
	"github.com/gavr-vlad-s/table-gen-for-expr/emit"
	"github.com/gavr-vlad-s/table-gen-for-expr/rangetree"
)

type flags struct {
	config     string
	output     string
	pkg        string
	table      string
	fn         string
	columns    int
	logLevel   string
	dumpConfig bool
}

func newRootCommand() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "tablegen",
		Short: "Generate the character category table of the expression lexer",
		Long: `tablegen classifies characters into lexer categories, compacts them into
ranges and writes a pointerless binary search table plus its lookup function as
Go source.

Character sets come from the built-in defaults unless --config names a YAML
file; --dump-config prints the defaults in that format.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// usage is for flag errors only
			cmd.SilenceUsage = true
			return run(cmd, f)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&f.config, "config", "", "YAML file with the character sets (default: built-in sets)")
	fs.StringVarP(&f.output, "output", "o", "-", "output file, - for stdout")
	fs.StringVar(&f.pkg, "package", "lexer", "package name of the generated file")
	fs.StringVar(&f.table, "table", "categoryTable", "name of the generated table variable")
	fs.StringVar(&f.fn, "func", "categoriesOf", "name of the generated lookup function")
	fs.IntVar(&f.columns, "columns", emit.DefaultColumns, "table entries per line")
	fs.StringVar(&f.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	fs.BoolVar(&f.dumpConfig, "dump-config", false, "print the effective character sets as YAML and exit")

	return cmd
}

func run(cmd *cobra.Command, f flags) error {
	logger, err := newLogger(cmd.ErrOrStderr(), f.logLevel)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(f.config)
	if err != nil {
		return err
	}

	if f.dumpConfig {
		data, err := cfg.Marshal()
		if err != nil {
			return fmt.Errorf("marshal config: %w", err)
		}
		return writeOutput(cmd.OutOrStdout(), f.output, data)
	}

	table, err := category.Build(cfg, rangetree.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("build table: %w", err)
	}

	src, err := emit.Render(table, emit.Options{
		Package: f.pkg,
		Table:   f.table,
		Func:    f.fn,
		Columns: f.columns,
	})
	if err != nil {
		return err
	}

	if err := writeOutput(cmd.OutOrStdout(), f.output, src); err != nil {
		return err
	}

	logger.Info("table generated",
		"ranges", table.Len(),
		"depth", table.Depth(),
		"output", f.output,
	)

	return nil
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level

	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return nil, fmt.Errorf("unknown log level %q", level)
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

func loadConfig(path string) (category.Config, error) {
	if path == "" {
		return category.DefaultConfig(), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return category.Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	cfg, err := category.LoadConfig(file)
	if err != nil {
		return category.Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func writeOutput(stdout io.Writer, path string, data []byte) error {
	if path == "-" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
