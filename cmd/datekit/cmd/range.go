package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/datekit/pkg/datetime"
	"github.com/dmitrymomot/datekit/pkg/locale"
)

func newRangeCmd(a *app) *cobra.Command {
	var from, to, mode, ref string

	c := &cobra.Command{
		Use:   "range",
		Short: "Describe a date range in short form",
		Long: `Renders a compact description of a range such as
"from 3/4 9:00 AM to 11:30 AM" or "to 3/7". Either end may be left out.
The year is shown only when it differs from the reference (now by default).

Examples:
  datekit range --from "3/4/24 9:00" --to "3/4/24 11:30"
  datekit range --from 3/4/24 --to 3/7/24 --mode date
  datekit range --to "3/6/24" --locale de`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if from == "" && to == "" {
				return errors.New("at least one of --from and --to is required")
			}
			m, err := datetime.ParseMode(mode)
			if err != nil {
				return err
			}
			fromDT, err := a.parseOptional(ctx, from)
			if err != nil {
				return err
			}
			toDT, err := a.parseOptional(ctx, to)
			if err != nil {
				return err
			}
			refDT, err := a.parseOptional(ctx, ref)
			if err != nil {
				return err
			}

			loc := locale.FromContext(ctx)
			text, err := datetime.ShortenedRangeText(fromDT, toDT, m, &loc.Config, &loc.Range, datetime.WithRangeReference(refDT))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
			return err
		},
	}

	f := c.Flags()
	f.StringVar(&from, "from", "", "range start")
	f.StringVar(&to, "to", "", "range end")
	f.StringVar(&mode, "mode", "datetime", "what to show: datetime, date or time")
	f.StringVar(&ref, "ref", "", "reference instant deciding whether years are shown")
	return c
}
