package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/language"

	"github.com/zapponejosh/bahire-hasab/internal/almanac"
	"github.com/zapponejosh/bahire-hasab/internal/database"
	"github.com/zapponejosh/bahire-hasab/internal/holiday"
	"github.com/zapponejosh/bahire-hasab/internal/i18n"
	"github.com/zapponejosh/bahire-hasab/internal/logger"
)

const (
	outputText = "text"
	outputJSON = "json"
)

// settings is the resolved CLI configuration: flags override KENAT_*
// environment variables, which override the config file.
type settings struct {
	Lang     string `mapstructure:"lang"`
	Output   string `mapstructure:"output"`
	Database string `mapstructure:"database"`
	Debug    bool   `mapstructure:"debug"`
}

// app holds what every subcommand needs once the root command has run.
type app struct {
	v        *viper.Viper
	cfgFile  string
	settings settings

	lang    language.Tag
	log     *slog.Logger
	almanac *almanac.Almanac
	closeDB func()

	now func() time.Time
}

// newRootCmd builds a fresh command tree. Tests create their own instance
// so no state leaks between runs.
func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), now: time.Now, closeDB: func() {}}

	cmd := &cobra.Command{
		Use:   "kenat",
		Short: "Ethiopian calendar conversions, Bahire Hasab and holidays",
		Long: `kenat converts between the Ethiopian, Gregorian and Hijri calendars,
computes the Bahire Hasab (movable feasts) for a year, lists public,
Christian and Muslim holidays and exports them as iCalendar.

Dates are written yyyy-mm-dd or yyyy/mm/dd, or as three numbers.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.closeDB()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.kenat.yaml or ./.kenat.yaml)")
	flags.String("lang", "am", `output language ("am", "en")`)
	flags.StringP("output", "o", outputText, `output format ("text", "json")`)
	flags.String("database", "", "SQLite holiday catalog (default is the embedded catalog)")
	flags.Bool("debug", false, "enable debug logging")

	cmd.AddCommand(
		a.toGregorianCmd(),
		a.toEthiopianCmd(),
		a.todayCmd(),
		a.hijriCmd(),
		a.bahireHasabCmd(),
		a.holidaysCmd(),
		a.addCmd(),
		a.diffCmd(),
		a.icsCmd(),
	)

	return cmd
}

// setup loads settings and builds the almanac for the running command.
func (a *app) setup(cmd *cobra.Command) error {
	if err := a.loadSettings(cmd); err != nil {
		return err
	}

	level := "warn"
	if a.settings.Debug {
		level = "debug"
	}
	a.log = logger.New(cmd.ErrOrStderr(), level, "text")

	lang, err := i18n.ParseLanguage(a.settings.Lang)
	if err != nil {
		return err
	}
	a.lang = lang

	switch a.settings.Output {
	case outputText, outputJSON:
	default:
		return fmt.Errorf("unsupported output format %q (want %q or %q)", a.settings.Output, outputText, outputJSON)
	}

	catalog, err := a.openCatalog(cmd.Context())
	if err != nil {
		return err
	}
	a.almanac = almanac.New(catalog, i18n.Default())

	a.log.Debug("settings loaded",
		slog.String("lang", a.settings.Lang),
		slog.String("output", a.settings.Output),
		slog.String("database", a.settings.Database),
		slog.String("config", a.v.ConfigFileUsed()),
	)
	return nil
}

func (a *app) loadSettings(cmd *cobra.Command) error {
	v := a.v

	v.SetDefault("lang", "am")
	v.SetDefault("output", outputText)
	v.SetDefault("database", "")
	v.SetDefault("debug", false)

	if a.cfgFile != "" {
		v.SetConfigFile(a.cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigName(".kenat")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("KENAT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || a.cfgFile != "" {
			return fmt.Errorf("read config: %w", err)
		}
	}

	if err := v.BindPFlags(cmd.Root().PersistentFlags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}

	return v.Unmarshal(&a.settings)
}

// openCatalog returns the embedded catalog, or the one stored in the
// configured SQLite database.
func (a *app) openCatalog(ctx context.Context) (holiday.Catalog, error) {
	if a.settings.Database == "" {
		return holiday.Default(), nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	db, err := database.Open(database.DefaultConfig(a.settings.Database), a.log)
	if err != nil {
		return nil, err
	}

	catalog, err := loadCatalog(ctx, db)
	if err != nil {
		db.Close()
		if database.IsNotFound(err) {
			return nil, fmt.Errorf("holiday catalog in %s is empty, run the import command first", a.settings.Database)
		}
		return nil, err
	}
	a.closeDB = func() {
		if err := db.Close(); err != nil {
			a.log.Warn("failed to close database", slog.Any("error", err))
		}
	}

	a.log.Debug("holiday catalog loaded", slog.String("path", a.settings.Database), slog.Int("holidays", catalog.Len()))
	return catalog, nil
}

func loadCatalog(ctx context.Context, db *database.DB) (*holiday.MemoryCatalog, error) {
	if _, err := db.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db.LoadCatalog(ctx)
}

func (a *app) json() bool {
	return a.settings.Output == outputJSON
}

// out returns the writer for command results.
func out(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}
