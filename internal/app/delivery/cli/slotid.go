package cli

import (
	"arena-scheduler-service/internal/app/services/core/slot"
	"arena-scheduler-service/internal/pkg/constvars"
	"arena-scheduler-service/internal/pkg/dto/responses"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newSlotIDCommand(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slotid",
		Short: "Encode or decode 16-digit slot ids",
	}
	cmd.AddCommand(newSlotIDEncodeCommand(root))
	cmd.AddCommand(newSlotIDDecodeCommand(root))
	return cmd
}

func newSlotIDEncodeCommand(root *rootOptions) *cobra.Command {
	var date, start, end string

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Build the slot id of a date and clock range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := time.Parse(constvars.DateLayout, date)
			if err != nil {
				return fmt.Errorf("invalid --date %q: %w", date, err)
			}
			id, err := slot.EncodeID(parsed, start, end)
			if err != nil {
				return err
			}
			return printSlotID(cmd, root, id)
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "YYYY-MM-DD")
	cmd.Flags().StringVar(&start, "start", "", "HH:MM")
	cmd.Flags().StringVar(&end, "end", "", "HH:MM")
	cmd.MarkFlagRequired("date")
	cmd.MarkFlagRequired("start")
	cmd.MarkFlagRequired("end")
	return cmd
}

func newSlotIDDecodeCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <slot-id>",
		Short: "Split a slot id into its date and clocks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := slot.ID(args[0])
			if !id.Valid() {
				return fmt.Errorf("slot id %q must be %d digits", args[0], slot.IDLength)
			}
			return printSlotID(cmd, root, id)
		},
	}
}

func printSlotID(cmd *cobra.Command, root *rootOptions, id slot.ID) error {
	decoded := slot.DecodeID(id)
	date, err := decoded.Date()
	if err != nil {
		return err
	}

	response := responses.DecodedSlotID{
		SlotID:    id.String(),
		Date:      date.Format(constvars.DateLayout),
		StartTime: decoded.Start,
		EndTime:   decoded.End,
		Display:   decoded.Display,
	}
	if root.asJSON {
		return printJSON(cmd, response)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", response.SlotID, response.Date, response.Display)
	return nil
}
