// Package cli wires configuration, logging, git backends and the TUI into
// the tagit command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/stwalsh4118/tagit/internal/config"
	"github.com/stwalsh4118/tagit/internal/debug"
	"github.com/stwalsh4118/tagit/internal/git"
	"github.com/stwalsh4118/tagit/internal/metrics"
	"github.com/stwalsh4118/tagit/internal/tui"
)

// Errors reported through the exit status.
var (
	ErrTagNotCreated = errors.New("tag was not created")
	ErrInterrupted   = errors.New("interrupted while creating tag")
	ErrCannotSubmit  = errors.New("name cannot be used as a tag")
)

// options holds flag values shared by every command.
type options struct {
	configPath string
	repoDir    string
	name       string
	message    string
	backend    string
	logLevel   string
	debug      bool
	metrics    string
}

// NewRootCmd builds the tagit command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "tagit [commit]",
		Short: "Create a git tag from an interactive dialog",
		Long: `tagit opens a small dialog for naming a new tag on a commit (HEAD by default).
The name is sanitized into a valid ref name as you type and checked against
the repository's existing tags before it is created.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			rev := "HEAD"
			if len(args) == 1 {
				rev = args[0]
			}
			return runDialog(cmd, opts, rev)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", config.DefaultPath, "path to config file")
	flags.StringVarP(&opts.repoDir, "repo", "C", ".", "repository directory")
	flags.StringVar(&opts.backend, "backend", "", "git backend (cli|go-git)")
	flags.StringVar(&opts.logLevel, "log-level", "", "debug log level (debug|info|warn|error)")
	flags.BoolVar(&opts.debug, "debug", false, "write a debug log to "+debug.DefaultLogPath)

	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "initial tag name")
	cmd.Flags().StringVarP(&opts.message, "message", "m", "", "create an annotated tag with this message")
	cmd.Flags().StringVar(&opts.metrics, "metrics-textfile", "", "write operation timings to this Prometheus textfile")

	cmd.AddCommand(newCheckCmd(opts))
	return cmd
}

// Execute runs tagit and returns the process exit code.
func Execute() int {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// setup loads configuration, applies flag overrides and starts logging.
// The returned func closes the log.
func setup(cmd *cobra.Command, opts *options) (config.Config, func(), error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, nil, err
	}

	cfg.Merge(config.Config{
		Backend:         opts.backend,
		LogLevel:        opts.logLevel,
		Debug:           opts.debug,
		MetricsTextfile: opts.metrics,
	})
	if err := cfg.Validate(); err != nil {
		return config.Config{}, nil, err
	}

	logCfg := debug.Config{
		Enabled: cfg.Debug || debug.EnabledFromEnv(),
		Level:   cfg.LogLevel,
	}
	if err := debug.Init(logCfg); err != nil {
		// Logging is optional; keep going without it.
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
	}

	return cfg, func() { _ = debug.Close() }, nil
}

// openRepository resolves the repository and the backend serving it.
func openRepository(ctx context.Context, cfg config.Config, opts *options) (git.Backend, git.Repository, error) {
	backend, err := git.New(cfg.Backend, git.Options{
		Message:     opts.message,
		TaggerName:  cfg.TaggerName,
		TaggerEmail: cfg.TaggerEmail,
	})
	if err != nil {
		return nil, git.Repository{}, err
	}

	repo, err := git.NewRepository(opts.repoDir)
	if err != nil {
		return nil, git.Repository{}, err
	}
	if !backend.IsRepo(ctx, repo) {
		return nil, git.Repository{}, fmt.Errorf("%s: %w", repo, git.ErrNotRepository)
	}
	return backend, repo, nil
}

func runDialog(cmd *cobra.Command, opts *options, rev string) error {
	cfg, closeLog, err := setup(cmd, opts)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx := cmd.Context()
	backend, repo, err := openRepository(ctx, cfg, opts)
	if err != nil {
		return err
	}

	recorder := metrics.NewRecorder()

	sw := recorder.Start(metrics.OpResolveCommit)
	commit, err := backend.ResolveCommit(ctx, repo, rev)
	sw.Stop(err)
	if err != nil {
		return err
	}
	debug.Info("opening tag dialog", "repo", repo.Path, "rev", rev, "commit", commit, "backend", cfg.Backend)

	model := tui.NewModel(tui.TagDialogOptions{
		Repository:   repo,
		TargetCommit: commit,
		InitialName:  opts.name,
		Dispatcher:   backend,
		Recorder:     recorder,
		Labels:       cfg.Labels,
	})

	p := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run dialog: %w", err)
	}

	if err := recorder.WriteTextfile(cfg.MetricsTextfile); err != nil {
		debug.Warn("metrics not written", "err", err)
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
	}

	m, ok := final.(tui.Model)
	if !ok {
		return fmt.Errorf("run dialog: unexpected model %T", final)
	}
	return report(cmd.ErrOrStderr(), m.Result())
}

// report turns the dialog result into an error for the exit status.
func report(w io.Writer, res tui.Result) error {
	switch res.Outcome {
	case tui.OutcomeCreated:
		return nil
	case tui.OutcomeFailed:
		return fmt.Errorf("%w: %v", ErrTagNotCreated, res.Err)
	case tui.OutcomeInterrupted:
		return fmt.Errorf("%w %s; check the repository", ErrInterrupted, res.TagName)
	default:
		fmt.Fprintln(w, "Cancelled, no tag created.")
		return nil
	}
}
