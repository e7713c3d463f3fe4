// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/plugsmith/plugsmith/internal/deliver"
	"github.com/plugsmith/plugsmith/internal/issue"
	"github.com/plugsmith/plugsmith/internal/state"
	"github.com/plugsmith/plugsmith/internal/watch"
	"github.com/plugsmith/plugsmith/pkg/plugin"
	"github.com/plugsmith/plugsmith/pkg/render"
)

type exportFlagValues struct {
	out    string
	stdout bool
	only   []string
	watch  bool
}

func newExportCommand(app *App, flags *rootFlagValues) *cobra.Command {
	ef := &exportFlagValues{}

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Render the descriptor, specification and scaffold",
		Long: `Render the descriptor (.uplugin), specification (.json) and source
scaffold (.h) for the saved model.

Files are written to --out, falling back to output_dir from the
configuration. With --watch, artifacts are rendered again every time the
saved model changes, for example from another terminal.`,
		Args: cobra.NoArgs,
		RunE: app.runE(flags, func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd.Context(), app, flags, ef)
		}),
	}

	exportCmd.Flags().StringVarP(&ef.out, "out", "o", "", "output directory (default: output_dir from config)")
	exportCmd.Flags().BoolVar(&ef.stdout, "stdout", false, "print artifacts instead of writing files")
	exportCmd.Flags().StringSliceVar(&ef.only, "only", nil, "render only these kinds (descriptor, specification, scaffold)")
	exportCmd.Flags().BoolVarP(&ef.watch, "watch", "w", false, "re-render whenever the saved model changes")

	return exportCmd
}

func runExport(ctx context.Context, app *App, flags *rootFlagValues, ef *exportFlagValues) error {
	kinds, err := parseKinds(ef.only)
	if err != nil {
		return usageError("export artifacts", err)
	}

	sess, err := app.open(ctx, flags)
	if err != nil {
		return err
	}

	var sink deliver.Sink
	if ef.stdout {
		sink = deliver.WriterSink{W: app.stdout}
	} else {
		dir := ef.out
		if dir == "" {
			dir = sess.cfg.OutputDir.String()
		}
		sink = deliver.DirSink{Dir: dir}
	}
	opts := sess.cfg.ScaffoldOptions()

	exportModel := func(ctx context.Context, m plugin.Model) error {
		artifacts, err := renderKinds(m, kinds, opts)
		if err != nil {
			return err
		}
		if err := deliver.DeliverAll(ctx, sink, artifacts); err != nil {
			return exportError(err)
		}
		if !ef.stdout {
			for _, a := range artifacts {
				fmt.Fprintf(app.stderr, "%s %s\n", SuccessStyle.Render("wrote"), a.Filename)
			}
		}
		return nil
	}

	if err := exportModel(ctx, sess.store.Snapshot()); err != nil {
		return err
	}
	if !ef.watch {
		return nil
	}

	if err := os.MkdirAll(sess.stateDir, 0o755); err != nil {
		return watchError(err)
	}
	w, err := watch.New(watch.Config{
		Dir:      sess.stateDir,
		Patterns: []string{state.Filename},
		Logger:   sess.logger.WithPrefix("watch"),
		OnChange: func(ctx context.Context, _ []string) error {
			m, status := state.Restore(ctx, sess.storage, app.IDs, sess.logger.WithPrefix("state"))
			if status != state.RestoredSaved {
				sess.logger.Warn("skipping re-render", "state", status)
				return nil
			}
			if err := exportModel(ctx, m); err != nil {
				fmt.Fprintln(app.stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, sess.verbose))
			}
			return nil
		},
	})
	if err != nil {
		return watchError(err)
	}
	fmt.Fprintf(app.stderr, "%s watching %s (Ctrl+C to stop)\n", CmdStyle.Render("→"), sess.stateDir)
	if err := w.Run(ctx); err != nil {
		return watchError(err)
	}
	return nil
}

// parseKinds validates --only values. An empty list selects every kind.
func parseKinds(values []string) ([]render.Kind, error) {
	if len(values) == 0 {
		return render.Kinds(), nil
	}
	kinds := make([]render.Kind, 0, len(values))
	for _, v := range values {
		k := render.Kind(v)
		if valid, errs := k.IsValid(); !valid {
			return nil, errs[0]
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

func renderKinds(m plugin.Model, kinds []render.Kind, opts render.ScaffoldOptions) ([]render.Artifact, error) {
	artifacts := make([]render.Artifact, 0, len(kinds))
	for _, k := range kinds {
		a, err := render.Render(m, k, opts)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, a)
	}
	return artifacts, nil
}

func exportError(err error) error {
	id := issue.ExportFailedId
	if errors.Is(err, fs.ErrPermission) {
		id = issue.PermissionDeniedId
	}
	return issue.NewErrorContext().
		WithOperation("export artifacts").
		WithIssue(id).
		WithSuggestion("Check that the output directory is writable").
		WithSuggestion("Use --stdout to print the artifacts instead").
		Wrap(err).
		BuildError()
}

func watchError(err error) error {
	return issue.NewErrorContext().
		WithOperation("watch saved state").
		WithIssue(issue.WatchFailedId).
		WithSuggestion("Check that the state directory exists and is readable").
		Wrap(err).
		BuildError()
}
