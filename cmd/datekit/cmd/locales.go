package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/datekit/pkg/locale"
)

func newLocalesCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "locales",
		Short: "List and inspect the loaded locales",
		Long: `Lists the loaded locales: the built-in en, de and fr plus every file found
in --locale-dir.

Examples:
  datekit locales
  datekit locales show de --output toml > de.toml
  datekit locales negotiate "de-CH,de;q=0.9,en;q=0.8"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			current := locale.FromContext(cmd.Context()).Name
			for _, name := range a.registry.Names() {
				marker := " "
				if name == current {
					marker = "*"
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, name); err != nil {
					return err
				}
			}
			return nil
		},
	}
	c.AddCommand(newLocalesShowCmd(a), newLocalesNegotiateCmd(a))
	return c
}

func newLocalesShowCmd(a *app) *cobra.Command {
	var output string

	c := &cobra.Command{
		Use:   "show [tag]",
		Short: "Print a locale as a locale file",
		Long: `Prints a locale in the file format the locale loaders read, so the output
can be edited and dropped into --locale-dir. Without a tag the current locale
is shown.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc := locale.FromContext(cmd.Context())
			if len(args) == 1 {
				l, err := a.registry.Lookup(args[0])
				if err != nil {
					return err
				}
				loc = l
			}
			return writeLocaleFile(cmd.OutOrStdout(), locale.NewFile(loc), output)
		},
	}
	c.Flags().StringVarP(&output, "output", "o", "yaml", "output format: yaml, json or toml")
	return c
}

func newLocalesNegotiateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "negotiate <accept-language>",
		Short: "Pick the best locale for an Accept-Language list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), a.registry.Negotiate(args[0]).Name)
			return err
		},
	}
}

func writeLocaleFile(w io.Writer, f locale.File, format string) error {
	switch format {
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(f); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(f)
	case "toml":
		return toml.NewEncoder(w).Encode(f)
	}
	return fmt.Errorf("%w: %q", locale.ErrUnsupportedFormat, format)
}
