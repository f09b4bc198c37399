package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/datekit/pkg/datetime"
)

func newFloorCmd(a *app) *cobra.Command {
	var unit string

	c := &cobra.Command{
		Use:   "floor <value>",
		Short: "Truncate a date to a unit",
		Long: `Zeroes every field below the unit: year, month, day, hour, minute,
second or none.

Example:
  datekit floor "2024-03-15T14:07:09Z" --unit day`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := datetime.ParseUnit(unit)
			if err != nil {
				return err
			}
			d, err := a.parseInput(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if _, err := d.Floor(u); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), d.Format(isoMask, nil))
			return err
		},
	}
	c.Flags().StringVarP(&unit, "unit", "u", string(datetime.UnitDay), "unit to truncate to")
	return c
}

func newCompareCmd(a *app) *cobra.Command {
	var unit string

	c := &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Compare two dates",
		Long: `Prints -1, 0 or 1 as a is before, equal to or after b after both are
truncated to --unit. When the kinds differ, b is converted to the kind of a.

Example:
  datekit compare "3/15/24 9:00" "3/15/24 17:00" --unit day`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := datetime.ParseUnit(unit)
			if err != nil {
				return err
			}
			x, err := a.parseInput(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			y, err := a.parseInput(cmd.Context(), args[1])
			if err != nil {
				return err
			}
			diff, err := x.CompareFloor(y, u)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), sign(diff))
			return err
		},
	}
	c.Flags().StringVarP(&unit, "unit", "u", string(datetime.UnitNone), "unit to truncate both values to")
	return c
}

func sign(v int64) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

func newConvertCmd(a *app) *cobra.Command {
	var to string

	c := &cobra.Command{
		Use:   "convert <value>",
		Short: "Convert a date between local time and UTC",
		Long: `Shifts a value by the host offset and retags it. Unspecified values are
treated as the opposite of the target kind.

Example:
  datekit convert "2024-03-15T14:00:00Z" --to local`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.parseInput(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			switch to {
			case "utc":
				d = d.ToUniversalTime()
			case "local":
				d = d.ToLocalTime()
			default:
				return fmt.Errorf("%w: unknown --to %q", datetime.ErrInvalidArgument, to)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", d.Format(isoMask, nil), d.Kind())
			return err
		},
	}
	c.Flags().StringVar(&to, "to", "utc", "target kind: utc or local")
	return c
}
