package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/slatedb/slice-go/slice"
)

// Options Configuration for a single slicer invocation.
type Options struct {
	// Axis lengths the expression is resolved against, in order.
	Dims []int64
	// Whether to print every index visited on each axis.
	Indices bool
	Verbose bool
}

func DefaultOptions() Options {
	return Options{
		Dims:    []int64{10},
		Indices: false,
		Verbose: false,
	}
}

func newRootCmd() *cobra.Command {
	opts := DefaultOptions()
	cmd := &cobra.Command{
		Use:   "slicer [flags] [--] EXPR",
		Short: "Resolve a slice expression against axis lengths.",
		Long: "Resolve a start:stop:step slice expression against one or more axis lengths\n" +
			"and print the resulting start, stop, step and length for each axis.\n" +
			"Expressions starting with '-' must follow '--'.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if opts.Verbose {
				level = slog.LevelDebug
			}
			log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			if err := run(cmd, log, args[0], opts); err != nil {
				log.Error("unable to resolve slice", "expr", args[0], "error", err)
				return err
			}
			return nil
		},
	}
	cmd.Flags().Int64SliceVar(&opts.Dims, "dim", opts.Dims, "axis length to resolve against (repeatable)")
	cmd.Flags().BoolVar(&opts.Indices, "indices", opts.Indices, "print the indices visited on each axis")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", opts.Verbose, "increase logging verbosity")
	return cmd
}

func run(cmd *cobra.Command, log *slog.Logger, expr string, opts Options) error {
	s, err := slice.Parse(expr)
	if err != nil {
		return err
	}
	log.Debug("parsed slice", "slice", s)

	out := cmd.OutOrStdout()
	for _, dim := range opts.Dims {
		if dim < 0 {
			return fmt.Errorf("axis length must not be negative, got %d", dim)
		}
		r := s.Resolve(dim)
		log.Debug("resolved slice", "dim", dim, "range", r)

		fmt.Fprintf(out, "dim=%d start=%d stop=%d step=%d len=%d\n", dim, r.Start, r.Stop, r.Step, r.Len)
		if opts.Indices {
			fmt.Fprintf(out, "indices=%v\n", r.Indices())
		}
	}
	return nil
}
