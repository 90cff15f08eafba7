package cli

import (
	"arena-scheduler-service/internal/app/services/core/slot"
	"arena-scheduler-service/internal/pkg/constvars"
	"arena-scheduler-service/internal/pkg/dto/responses"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

type weekOptions struct {
	week int
	year int
	date string
}

func newWeekCommand(root *rootOptions) *cobra.Command {
	opts := &weekOptions{}

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Print the Monday..Sunday range of an ISO week",
		Long:  "Either --week and --year, or --date to look up the ISO week containing that day.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWeek(cmd, root, opts)
		},
	}
	cmd.Flags().IntVar(&opts.week, "week", 0, "ISO week number, 1..53")
	cmd.Flags().IntVar(&opts.year, "year", 0, "ISO year")
	cmd.Flags().StringVar(&opts.date, "date", "", "YYYY-MM-DD")
	return cmd
}

func runWeek(cmd *cobra.Command, root *rootOptions, opts *weekOptions) error {
	week, year := opts.week, opts.year
	if opts.date != "" {
		date, err := time.Parse(constvars.DateLayout, opts.date)
		if err != nil {
			return fmt.Errorf("invalid --date %q: %w", opts.date, err)
		}
		year, week = slot.WeekOf(date)
	} else if week == 0 || year == 0 {
		return errors.New("either --date or both --week and --year are required")
	}

	monday, sunday, err := slot.WeekRange(week, year)
	if err != nil {
		return err
	}

	response := responses.WeekRange{
		Week:      week,
		Year:      year,
		WeekStart: monday.Format(constvars.DateLayout),
		WeekEnd:   sunday.Format(constvars.DateLayout),
	}
	if root.asJSON {
		return printJSON(cmd, response)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d-W%02d\t%s\t%s\n", response.Year, response.Week, response.WeekStart, response.WeekEnd)
	return nil
}
