package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/liwesley02/order-up/internal/cli"
)

func batchesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batches",
		Short: "Show live batches and their urgency",
		RunE:  runBatches,
	}

	cmd.Flags().Int("by-size", 0, "show one batch grouped by size (1-based position)")
	cmd.Flags().Int("by-category", 0, "show one batch grouped by category (1-based position)")

	cmd.AddCommand(&cobra.Command{
		Use:   "complete <number>",
		Short: "Mark a batch as done",
		Args:  cobra.ExactArgs(1),
		RunE:  runCompleteBatch,
	})

	return cmd
}

func runBatches(cmd *cobra.Command, _ []string) error {
	bySize, _ := cmd.Flags().GetInt("by-size")
	byCategory, _ := cmd.Flags().GetInt("by-category")

	e, store, err := initEngine(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := e.Process(cmd.Context()); err != nil {
		return err
	}
	now := time.Now()

	switch {
	case bySize > 0:
		groups, err := e.BatchBySize(bySize-1, now)
		if err != nil {
			return err
		}
		fmt.Println(cli.RenderSizeGroups(groups))
	case byCategory > 0:
		groups, err := e.BatchByCategory(byCategory-1, now)
		if err != nil {
			return err
		}
		fmt.Println(cli.RenderCategoryGroups(groups))
	default:
		fmt.Println(cli.RenderBatches(e.Batches(now)))
		fmt.Println(cli.RenderStats(e.Stats(now), e.LastHourAverage(), e.TodayAverage()))
	}
	return nil
}

func runCompleteBatch(cmd *cobra.Command, args []string) error {
	number, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid batch number %q: %w", args[0], err)
	}

	e, store, err := initEngine(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := e.Process(cmd.Context()); err != nil {
		return err
	}

	if !e.CompleteBatch(number) {
		return fmt.Errorf("no batch numbered %d", number)
	}
	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Batch %d completed", number)))
	return nil
}
