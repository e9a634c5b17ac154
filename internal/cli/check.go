package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/stwalsh4118/tagit/internal/debug"
	"github.com/stwalsh4118/tagit/internal/tui"
)

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check NAME",
		Short: "Show how a name would be sanitized and validated",
		Long: `check applies the same sanitizing and validation as the dialog to NAME
and reports the result against the repository's existing tags. It exits
non-zero when the name could not be submitted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts, args[0])
		},
	}
}

func runCheck(cmd *cobra.Command, opts *options, name string) error {
	cfg, closeLog, err := setup(cmd, opts)
	if err != nil {
		return err
	}
	defer closeLog()

	backend, repo, err := openRepository(cmd.Context(), cfg, opts)
	if err != nil {
		return err
	}

	tags, err := backend.GetAllTags(cmd.Context(), repo)
	if err != nil {
		return fmt.Errorf("load tags: %w", err)
	}

	d := tui.NewTagDialog(tui.TagDialogOptions{Repository: repo, Labels: cfg.Labels}).
		WithKnownTags(tags).
		SetName(name)

	debug.Debug("checked tag name", "proposed", name, "sanitized", d.SanitizedName(), "verdict", d.ValidationError())
	return writeCheck(cmd.OutOrStdout(), d)
}

// writeCheck prints the evaluation of d and returns ErrCannotSubmit when the
// dialog would keep its create button disabled.
func writeCheck(w io.Writer, d tui.TagDialog) error {
	fmt.Fprintf(w, "proposed:  %s\n", d.ProposedName())
	fmt.Fprintf(w, "sanitized: %s\n", d.SanitizedName())
	fmt.Fprintf(w, "verdict:   %s\n", d.ValidationError())
	if msg := d.ErrorMessage(); msg != "" {
		fmt.Fprintf(w, "error:     %s\n", msg)
	}
	if kind, text := d.Warning(); kind != tui.WarningNone {
		fmt.Fprintf(w, "warning:   %s\n", text)
	}

	if !d.SubmitEnabled() {
		return ErrCannotSubmit
	}
	fmt.Fprintln(w, "ok")
	return nil
}
