package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idilsaglam/packing/internal/config"
	"github.com/idilsaglam/packing/internal/logging"
	"github.com/idilsaglam/packing/internal/packlist"
	"github.com/idilsaglam/packing/internal/store"
	"github.com/idilsaglam/packing/internal/tui"
	"github.com/idilsaglam/packing/internal/ui"
)

// App carries the resolved settings shared by every subcommand.
type App struct {
	cfg    *config.Config
	memory bool

	stdout, stderr io.Writer

	theme   ui.Theme
	log     *zap.Logger
	sorter  *packlist.Sorter
	sortKey packlist.SortKey
}

func newApp(stdout, stderr io.Writer) *App {
	return &App{cfg: config.Load(), stdout: stdout, stderr: stderr}
}

func NewRootCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "packing",
		Short:         "Packing list for your next trip (TUI + CLI)",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          usageArgs(cobra.NoArgs),
		Example: strings.TrimSpace(`
  # Start the interactive list
  packing

  # Try things out without touching the data file
  packing --memory

  # Scriptable commands
  packing add --qty 2 Passport
  packing ls --sort packed
  packing pack 1
  packing rm 3
`),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runTUI(cmd.Context())
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usage(err)
	})

	cfg := app.cfg
	cmd.PersistentFlags().StringVar(&cfg.File, "file", cfg.File, "Data file (.json, .db or .sqlite) [$"+config.EnvFile+"]")
	cmd.PersistentFlags().StringVar(&cfg.Theme, "theme", cfg.Theme, "Theme: classic, neon or mono [$"+config.EnvTheme+"]")
	cmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error [$"+config.EnvLogLevel+"]")
	cmd.PersistentFlags().StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Append JSON logs to this file [$"+config.EnvLogFile+"]")
	cmd.PersistentFlags().StringVar(&cfg.Locale, "locale", cfg.Locale, "Language used to sort descriptions [$"+config.EnvLocale+"]")
	cmd.PersistentFlags().StringVar(&cfg.Sort, "sort", cfg.Sort, "Sort order: input, description or packed [$"+config.EnvSort+"]")
	cmd.Flags().BoolVar(&app.memory, "memory", false, "Keep the list in memory only; nothing is loaded or saved")

	cmd.AddCommand(newAddCmd(app))
	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newPackCmd(app))
	cmd.AddCommand(newRemoveCmd(app))
	cmd.AddCommand(newClearCmd(app))
	cmd.AddCommand(newStatsCmd(app))

	return cmd
}

func (a *App) setup() error {
	if err := a.cfg.Validate(); err != nil {
		return usage(err)
	}
	a.theme = ui.NewTheme(a.cfg.Theme, a.stdout)

	l, err := logging.New(a.cfg.LogLevel, a.cfg.LogFile)
	if err != nil {
		return err
	}
	a.log = l

	a.sorter = packlist.NewSorter(a.cfg.Locale)
	a.sortKey, _ = packlist.ParseSortKey(a.cfg.Sort) // validated above
	return nil
}

func (a *App) runTUI(ctx context.Context) error {
	opt := tui.Options{
		Theme:   a.theme,
		Sorter:  a.sorter,
		SortKey: a.sortKey,
		Logger:  a.log,
	}
	if a.memory {
		a.log.Info("starting in-memory session")
		return tui.Run(ctx, packlist.NewStore(packlist.WithLogger(a.log)), opt)
	}
	return a.withList(ctx, func(st *packlist.Store) error {
		return tui.Run(ctx, st, opt)
	})
}

// withList loads the data file into a Store, runs fn, and saves when fn
// changed the list.
func (a *App) withList(ctx context.Context, fn func(st *packlist.Store) error) error {
	b, err := store.Open(ctx, a.cfg.File)
	if err != nil {
		return err
	}
	defer b.Close()

	items, err := b.Load(ctx)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	st := packlist.NewStore(packlist.WithItems(items), packlist.WithLogger(a.log))
	runErr := fn(st)
	if st.Version() == 0 {
		return runErr
	}
	// Changes made before a signal still reach the file.
	if err := b.Save(context.WithoutCancel(ctx), st.Items()); err != nil {
		return errors.Join(runErr, fmt.Errorf("save: %w", err))
	}
	a.log.Info("list saved", zap.String("file", a.cfg.File), zap.Int("items", st.Len()))
	return runErr
}
