package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/datekit/pkg/datetime"
	"github.com/dmitrymomot/datekit/pkg/locale"
	"github.com/dmitrymomot/datekit/pkg/logger"
)

const isoMask = "yyyy-MM-dd'T'HH:mm:ss.l"

func newParseCmd(a *app) *cobra.Command {
	var (
		as     string
		asJSON bool
	)

	c := &cobra.Command{
		Use:   "parse <text>",
		Short: "Parse free text into a date",
		Long: `Parses loosely typed text the way a date input field would, using the
component order and two-digit year window of the selected locale.

  --as date      "3/15/24", "15.3" (missing year is the current year)
  --as time      "2pm", "14:30", "2:30:15 PM"
  --as datetime  a date, a time or both separated by a space (default)
  --as any       ISO 8601, /Date(ms)/ and common layouts

Examples:
  datekit parse "3/15/24 2pm"
  datekit parse "15.03.24" --as date --locale de
  datekit parse "2021W10" --as any --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			loc := locale.FromContext(ctx)

			var (
				d   *datetime.DateTime
				err error
			)
			switch as {
			case "date":
				d, err = datetime.ParseDate(args[0], &loc.Config)
			case "time":
				d, err = datetime.ParseTime(args[0])
			case "datetime", "":
				d, err = datetime.ParseDateTime(args[0], &loc.Config)
			case "any":
				d, err = datetime.Parse(args[0])
			default:
				return fmt.Errorf("%w: unknown --as value %q", datetime.ErrInvalidArgument, as)
			}
			if err != nil {
				a.log.DebugContext(ctx, "parse failed", logger.Command("parse"), logger.Input(args[0]), logger.Locale(loc.Name), logger.Error(err))
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				b, err := d.MarshalJSON()
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, string(b))
				return err
			}
			_, err = fmt.Fprintf(out, "%s (%s)\n", d.Format(isoMask, nil), d.Kind())
			return err
		},
	}
	c.Flags().StringVar(&as, "as", "datetime", "what to read: date, time, datetime or any")
	c.Flags().BoolVar(&asJSON, "json", false, `print the JSON form "/Date(ms)/"`)
	return c
}
