package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/waxier358/project-9-Meeting-Rooms-Schedule-App/internal/app"
	"github.com/waxier358/project-9-Meeting-Rooms-Schedule-App/internal/config"
	"github.com/waxier358/project-9-Meeting-Rooms-Schedule-App/internal/ctxkeys"
	"github.com/waxier358/project-9-Meeting-Rooms-Schedule-App/internal/logger"
	"github.com/waxier358/project-9-Meeting-Rooms-Schedule-App/internal/service"
	"github.com/waxier358/project-9-Meeting-Rooms-Schedule-App/internal/ui"
)

// annotationDatabaseOnly marks commands that need the database but not the app.
const annotationDatabaseOnly = "database-only"

// Env is what a command runs against. It is filled in by the root command
// before any subcommand runs.
type Env struct {
	Cfg    *config.Config
	App    *app.App
	prompt *Prompter
	flush  func()
}

// commandError marks an error returned by the core while a command ran,
// as opposed to a usage or startup error.
type commandError struct {
	err    error
	notice *ui.Notice
}

func (e *commandError) Error() string { return e.err.Error() }
func (e *commandError) Unwrap() error { return e.err }

// action adapts a command body so its errors are shown as notices.
func action(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := fn(cmd, args)
		var ce *commandError
		if err == nil || errors.As(err, &ce) {
			return err
		}
		return &commandError{err: err}
	}
}

// failWith shows n instead of the default notice for err.
func failWith(err error, n ui.Notice) error {
	return &commandError{err: err, notice: &n}
}

func NewRootCmd(env *Env) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "mrs",
		Short:         "Meeting Rooms Scheduler: accounts, password reset and room booking",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return env.open(cmd)
		},
	}

	rootCmd.AddCommand(RegisterCmd(env))
	rootCmd.AddCommand(LoginCmd(env))
	rootCmd.AddCommand(LogoutCmd(env))
	rootCmd.AddCommand(WhoamiCmd(env))
	rootCmd.AddCommand(ForgotPasswordCmd(env))
	rootCmd.AddCommand(RoomsCmd(env))
	rootCmd.AddCommand(ScheduleCmd(env))
	rootCmd.AddCommand(BookCmd(env))
	rootCmd.AddCommand(MigrateCmd(env))
	return rootCmd
}

// Run executes one command line and returns the process exit code.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	env := &Env{}
	rootCmd := NewRootCmd(env)
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)

	closeErr := env.close()
	if closeErr != nil {
		slog.Warn("failed to close app", "error", closeErr)
	}

	if err == nil {
		return 0
	}

	var ce *commandError
	if errors.As(err, &ce) {
		slog.Debug("command failed", "error", ce.err)
		n := ui.FromError(ce.err)
		if ce.notice != nil {
			n = *ce.notice
		}
		NewPrompter(stdin, stderr).Show(n)
		return 1
	}

	fmt.Fprintln(stderr, "Error:", err)
	return 1
}

func (e *Env) open(cmd *cobra.Command) error {
	e.prompt = NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
	e.Cfg = config.Load()
	e.flush = logger.Init(e.Cfg.IsDevelopment(), e.Cfg.SentryDSN, cmd.ErrOrStderr())
	slog.Debug("config loaded", "config", e.Cfg.Sanitized())
	cmd.SetContext(ctxkeys.WithConfig(cmd.Context(), e.Cfg))

	if cmd.Annotations[annotationDatabaseOnly] == "true" {
		return nil
	}

	a, err := app.New(e.Cfg)
	if err != nil {
		return err
	}
	e.App = a

	return a.RestoreSession(cmd.Context())
}

func (e *Env) close() error {
	var err error
	if e.App != nil {
		err = e.App.Close()
		e.App = nil
	}
	if e.flush != nil {
		e.flush()
		e.flush = nil
	}
	return err
}

// requireUser fails when nobody is signed in.
func (e *Env) requireUser() error {
	if e.App.State.User == nil {
		return service.ErrNotSignedIn
	}
	return nil
}
