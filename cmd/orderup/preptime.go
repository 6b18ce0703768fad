package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/liwesley02/order-up/internal/cli"
	"github.com/liwesley02/order-up/internal/preptime"
)

func preptimeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preptime",
		Short: "Show prep-time statistics",
		RunE:  runPreptime,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "prune",
		Short: "Delete records older than the retention window",
		RunE:  runPreptimePrune,
	})

	return cmd
}

func runPreptime(cmd *cobra.Command, _ []string) error {
	store, err := initStorage(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	tracker := preptime.New(preptime.WithStorage(store))
	if err := tracker.Load(cmd.Context()); err != nil {
		return err
	}

	lastHour := tracker.LastHourAverage()
	today := tracker.TodayAverage()

	fmt.Println(cli.TitleStyle.Render("Prep Times"))
	fmt.Printf("Records (7 days): %d\n", tracker.RecordCount())
	fmt.Printf("Last hour: %s\n", averageLine(lastHour.AverageMinutes, lastHour.OrderCount))
	fmt.Printf("Today:     %s\n", averageLine(today.AverageMinutes, today.OrderCount))
	return nil
}

func averageLine(minutes float64, count int) string {
	if count == 0 {
		return cli.SubtleStyle.Render("no data")
	}
	return fmt.Sprintf("%.1f min over %d orders", minutes, count)
}

func runPreptimePrune(cmd *cobra.Command, _ []string) error {
	store, err := initStorage(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	cutoff := time.Now().Add(-7 * 24 * time.Hour)
	deleted, err := store.PrunePrepTimes(cmd.Context(), cutoff)
	if err != nil {
		return err
	}
	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Pruned %d records older than %s", deleted, cutoff.Format(time.RFC3339))))
	return nil
}
