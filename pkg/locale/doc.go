// Package locale loads culture data for package datetime from YAML, JSON or TOML files
// and selects it by BCP 47 language tag.
//
// A locale file names the locale and overrides any subset of the English defaults:
//
//	name: de
//	config:
//	  date_comps_order: dmy
//	  short_date_pattern: dd.MM.yyyy
//	humanize:
//	  short:
//	    date_yesterday: gestern
//
// Fields left out keep the value from datetime.DefaultLocale, and unknown keys are
// rejected so typos surface at load time. The result is validated before use.
//
// # Architecture
//
// Parsers (YAMLParser, JSONParser, TOMLParser) decode one file into a File and turn it
// into a *datetime.Locale. Adapters feed parsers from a source: MapAdapter for
// in-memory data, FileAdapter for one file, DirectoryAdapter for a directory on disk
// and EmbedAdapter for an fs.FS. Builtin returns an EmbedAdapter over the locales
// shipped with this package (de, fr).
//
// Registry collects the output of its adapters keyed by canonical tag. English is
// always present. Lookup tries the exact tag and then its base language; Get and
// Negotiate fall back to the default locale instead of failing.
//
// # Usage
//
//	reg, err := locale.NewRegistry(ctx,
//		locale.WithAdapter(locale.Builtin()),
//		locale.WithAdapter(locale.NewDirectoryAdapter(nil, "./locales")),
//		locale.WithDefault("en"),
//		locale.WithLogger(log),
//	)
//	if err != nil {
//		return err
//	}
//
//	de := reg.Get("de-AT") // resolved to "de"
//	ctx = locale.WithLocale(ctx, de)
//
//	loc := locale.FromContext(ctx)
//	s := d.Format(loc.Config.ShortDatePattern, &loc.Config)
//
// # Error Handling
//
// Loading errors wrap sentinels such as ErrFailedToParseFile, ErrInvalidLocale and
// ErrFailedToReadDirectory; context cancellation is reported through the *Cancelled
// errors joined with ctx.Err(). Lookup returns ErrLocaleNotFound or ErrInvalidTag.
//
//	if errors.Is(err, locale.ErrLocaleNotFound) {
//		// fall back
//	}
package locale
