package cli

import (
	"arena-scheduler-service/internal/app/services/core/slot"
	"arena-scheduler-service/internal/pkg/constvars"
	"arena-scheduler-service/internal/pkg/dto/responses"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

type slotsOptions struct {
	start    string
	end      string
	interval int
	date     string
}

func newSlotsCommand(root *rootOptions) *cobra.Command {
	opts := &slotsOptions{}

	cmd := &cobra.Command{
		Use:   "slots",
		Short: "List the slots of a day window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSlots(cmd, root, opts)
		},
	}
	cmd.Flags().StringVar(&opts.start, "start", constvars.ArenaDefaultStartTime, "window start, HH:MM")
	cmd.Flags().StringVar(&opts.end, "end", constvars.ArenaDefaultEndTime, "window end, HH:MM")
	cmd.Flags().IntVar(&opts.interval, "interval", constvars.ArenaDefaultIntervalMinutes, "slot length in minutes: 15, 30 or 60")
	cmd.Flags().StringVar(&opts.date, "date", "", "YYYY-MM-DD; when set, slot ids are printed too")
	return cmd
}

func runSlots(cmd *cobra.Command, root *rootOptions, opts *slotsOptions) error {
	var date time.Time
	if opts.date != "" {
		parsed, err := time.Parse(constvars.DateLayout, opts.date)
		if err != nil {
			return fmt.Errorf("invalid --date %q: %w", opts.date, err)
		}
		date = parsed
	}

	slots, err := slot.GenerateFromStrings(opts.start, opts.end, opts.interval)
	if err != nil {
		return err
	}

	out := make([]responses.Slot, len(slots))
	for i, s := range slots {
		out[i] = responses.Slot{
			StartTime: s.Start.String(),
			EndTime:   s.End.String(),
			Display:   s.Display(),
		}
		if !date.IsZero() {
			out[i].SlotID = slot.EncodeSlot(date, s).String()
		}
	}

	if root.asJSON {
		return printJSON(cmd, out)
	}
	for _, s := range out {
		if s.SlotID != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", s.Display, s.SlotID)
			continue
		}
		fmt.Fprintln(cmd.OutOrStdout(), s.Display)
	}
	return nil
}
