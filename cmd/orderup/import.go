package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/liwesley02/order-up/internal/cli"
	"github.com/liwesley02/order-up/internal/model"
	"github.com/liwesley02/order-up/internal/preptime"
)

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import completed orders to seed prep-time history",
		Long: `Replay a JSON export of completed orders into the prep-time store.
Seeding history lets urgency scoring use a real average instead of the
fixed thresholds on a fresh install.`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}
}

func runImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	var orders []model.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		var envelope struct {
			Orders []model.Order `json:"orders"`
		}
		if err := json.Unmarshal(data, &envelope); err != nil {
			return fmt.Errorf("failed to parse %s: %w", args[0], err)
		}
		orders = envelope.Orders
	}

	store, err := initStorage(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	tracker := preptime.New(preptime.WithStorage(store))
	if err := tracker.Load(cmd.Context()); err != nil {
		return fmt.Errorf("failed to load prep times: %w", err)
	}
	before := tracker.RecordCount()

	bar := progressbar.NewOptions(len(orders),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Importing completed orders..."),
	)

	skipped := 0
	for i := range orders {
		order := &orders[i]
		if order.CompletedAt == nil || order.OrderedAt.IsZero() {
			skipped++
		} else {
			tracker.TrackOrderCompletion(order.ID, order.OrderedAt, *order.CompletedAt)
		}
		_ = bar.Add(1)
	}
	_ = bar.Finish()
	fmt.Fprintln(os.Stderr)

	imported := tracker.RecordCount() - before
	fmt.Println(cli.FormatSuccess(fmt.Sprintf(
		"Imported %d of %d orders (%d skipped, %d outside retention or duplicates)",
		imported, len(orders), skipped, len(orders)-skipped-imported)))
	return nil
}
