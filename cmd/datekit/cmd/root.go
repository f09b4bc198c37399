package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/datekit/pkg/config"
	"github.com/dmitrymomot/datekit/pkg/datetime"
	"github.com/dmitrymomot/datekit/pkg/environment"
	"github.com/dmitrymomot/datekit/pkg/locale"
	"github.com/dmitrymomot/datekit/pkg/logger"
)

// Version is set at build time with -ldflags "-X .../cmd.Version=...".
var Version = "dev"

// app holds the state shared by all subcommands of one invocation.
type app struct {
	envFile   string
	localeTag string
	localeDir string
	logLevel  string
	logFormat string

	settings config.Settings
	log      *slog.Logger
	registry *locale.Registry
}

// NewRootCmd builds the datekit command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "datekit",
		Short: "Format, parse and humanize dates",
		Long: `datekit formats, parses and humanizes date/time values using
locale data for English and any locale loaded from YAML, JSON or TOML files.

Settings are read from DATEKIT_* environment variables (and an optional .env
file); flags take precedence over the environment.

Examples:
  datekit format "3/15/24 2pm" --mask "dddd, d MMMM yyyy h:mm tt"
  datekit parse "15.03.24" --locale de
  datekit humanize "2024-03-15T14:00:00Z" --style full
  datekit range --from "3/4/24 9:00" --to "3/4/24 11:30"`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.envFile, "env-file", "", "load DATEKIT_* variables from this .env file")
	pf.StringVarP(&a.localeTag, "locale", "l", "", "locale tag (DATEKIT_LOCALE)")
	pf.StringVar(&a.localeDir, "locale-dir", "", "directory with extra locale files (DATEKIT_LOCALE_DIR)")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (DATEKIT_LOG_LEVEL)")
	pf.StringVar(&a.logFormat, "log-format", "", "log format: text or json (DATEKIT_LOG_FORMAT)")

	root.AddCommand(
		newFormatCmd(a),
		newParseCmd(a),
		newHumanizeCmd(a),
		newRangeCmd(a),
		newFloorCmd(a),
		newCompareCmd(a),
		newConvertCmd(a),
		newOffsetCmd(),
		newLocalesCmd(a),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().ExecuteContext(context.Background())
}

// setup resolves settings, builds the logger and the locale registry, and
// stores the environment and the selected locale in the command context.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.envFile != "" {
		if err := config.LoadEnv(a.envFile); err != nil {
			return err
		}
	}

	s, err := config.LoadSettings()
	if err != nil {
		return err
	}
	override(cmd, "locale", &s.Locale, a.localeTag)
	override(cmd, "locale-dir", &s.LocaleDir, a.localeDir)
	override(cmd, "log-level", &s.LogLevel, a.logLevel)
	override(cmd, "log-format", &s.LogFormat, a.logFormat)
	if err := s.Validate(); err != nil {
		return err
	}
	a.settings = s

	level, _ := logger.ParseLevel(s.LogLevel)
	format, _ := logger.ParseFormat(s.LogFormat)
	a.log = logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithAttr(slog.String("service", "datekit")),
		logger.WithContextExtractors(environment.LoggerExtractor()),
	)

	ctx := environment.WithContext(cmd.Context(), s.Environment())

	opts := []locale.Option{
		locale.WithAdapter(locale.Builtin()),
		locale.WithLogger(a.log),
	}
	if s.LocaleDir != "" {
		opts = append(opts, locale.WithAdapter(locale.NewDirectoryAdapter(nil, s.LocaleDir)))
	}
	reg, err := locale.NewRegistry(ctx, opts...)
	if err != nil {
		return err
	}
	a.registry = reg

	cmd.SetContext(locale.WithLocale(ctx, reg.Get(s.Locale)))
	return nil
}

// parseInput reads a value typed on the command line. "now" is the current
// local time; other input is tried with the locale's date/time reader, whose
// result is taken as local wall-clock time, and then with the generic parser
// (ISO 8601, /Date(ms)/, common layouts).
func (a *app) parseInput(ctx context.Context, s string) (*datetime.DateTime, error) {
	if strings.EqualFold(strings.TrimSpace(s), "now") {
		return datetime.Now(), nil
	}

	loc := locale.FromContext(ctx)
	d, err := datetime.ParseDateTime(s, &loc.Config)
	if err == nil {
		return d.SetKind(datetime.KindLocal), nil
	}
	if d, gerr := datetime.Parse(s); gerr == nil {
		return d, nil
	}

	a.log.DebugContext(ctx, "unparseable input", logger.Input(s), logger.Locale(loc.Name), logger.Error(err))
	return nil, fmt.Errorf("%w: cannot read %q", datetime.ErrParseFailed, s)
}

// parseOptional is parseInput for flags that may be left empty.
func (a *app) parseOptional(ctx context.Context, s string) (*datetime.DateTime, error) {
	if s == "" {
		return nil, nil
	}
	return a.parseInput(ctx, s)
}

// override replaces a setting with the flag value when the flag was given.
func override(cmd *cobra.Command, name string, dst *string, value string) {
	if f := cmd.Flag(name); f != nil && f.Changed {
		*dst = value
	}
}
