package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/datekit/pkg/locale"
	"github.com/dmitrymomot/datekit/pkg/logger"
)

func newFormatCmd(a *app) *cobra.Command {
	var mask string

	c := &cobra.Command{
		Use:   "format <value>",
		Short: "Format a date with a mask",
		Long: `Formats a value with a .NET style mask. Without --mask the locale's
short date and time patterns are used.

Mask tokens: yyyy yy y MMMM MMM MM M dddd ddd dd d HH H hh h mm m ss s l L tt t,
text in single quotes is copied as is.

Examples:
  datekit format now --mask "yyyy-MM-dd HH:mm"
  datekit format "2024-03-05T14:07:09Z" --mask "ddd, d MMM yyyy" --locale fr`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			d, err := a.parseInput(ctx, args[0])
			if err != nil {
				return err
			}

			loc := locale.FromContext(ctx)
			m := mask
			if m == "" {
				m = loc.Config.ShortDatePattern + " " + loc.Config.ShortTimePattern
			}
			a.log.DebugContext(ctx, "formatting", logger.Command("format"), logger.Mask(m), logger.Locale(loc.Name))

			_, err = fmt.Fprintln(cmd.OutOrStdout(), d.Format(m, &loc.Config))
			return err
		},
	}
	c.Flags().StringVarP(&mask, "mask", "m", "", "format mask")
	return c
}
