package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/datekit/pkg/config"
	"github.com/dmitrymomot/datekit/pkg/datetime"
	"github.com/dmitrymomot/datekit/pkg/locale"
	"github.com/dmitrymomot/datekit/pkg/logger"
)

func newHumanizeCmd(a *app) *cobra.Command {
	var (
		style      string
		ref        string
		noDate     bool
		noTime     bool
		dateOnly   bool
		multiLine  bool
		separator  string
		display    bool
	)

	c := &cobra.Command{
		Use:   "humanize <value>",
		Short: "Describe a date relative to now",
		Long: `Renders a value the way a UI would show it next to "now":
"4h ago", "in 3m", "yesterday, 3:15 PM" or "12 Mar 2019, 9:00 AM".

Examples:
  datekit humanize "2024-03-15T14:00:00Z"
  datekit humanize "3/14/24 9:00" --ref "3/15/24 12:00" --style full
  datekit humanize now --multiline
  datekit humanize "2024-03-05T14:07:00Z" --display`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			d, err := a.parseInput(ctx, args[0])
			if err != nil {
				return err
			}
			reference, err := a.parseOptional(ctx, ref)
			if err != nil {
				return err
			}

			if style == "" {
				style = a.settings.HumanizeStyle
			}
			loc := locale.FromContext(ctx)
			formats := &loc.Humanize.Short
			switch style {
			case config.HumanizeShort:
			case config.HumanizeFull:
				formats = &loc.Humanize.Full
			default:
				return fmt.Errorf("%w: unknown --style %q", datetime.ErrInvalidArgument, style)
			}

			opts := []datetime.HumanizeOption{
				datetime.WithDate(!noDate),
				datetime.WithTime(!noTime),
				datetime.WithAlwaysTime(!dateOnly),
				datetime.WithSingleLine(!multiLine),
				datetime.WithReference(reference),
			}
			if separator != "" {
				opts = append(opts, datetime.WithSeparator(separator))
			}

			humanize := d.Humanize
			if display {
				humanize = d.ToDisplayString
			}
			h, err := humanize(&loc.Config, formats, opts...)
			if err != nil {
				return err
			}
			a.log.DebugContext(ctx, "humanized", logger.Command("humanize"), logger.Input(args[0]), logger.Locale(loc.Name))

			for _, line := range h.Lines {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
					return err
				}
			}
			return nil
		},
	}

	f := c.Flags()
	f.StringVar(&style, "style", "", "phrase style: short or full (DATEKIT_HUMANIZE_STYLE)")
	f.StringVar(&ref, "ref", "", "reference instant instead of now")
	f.BoolVar(&noDate, "no-date", false, "leave out the date part")
	f.BoolVar(&noTime, "no-time", false, "leave out the time part")
	f.BoolVar(&dateOnly, "date-only", false, "no clock time for values too far away for a relative phrase")
	f.BoolVar(&multiLine, "multiline", false, "print the text and its qualifier on separate lines")
	f.StringVar(&separator, "separator", "", `marker splitting phrase templates into text and qualifier (default "|")`)
	f.BoolVar(&display, "display", false, "absolute display text (no relative phrases)")
	return c
}
