package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/liwesley02/order-up/internal/cli"
)

func itemsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "items",
		Short: "Show aggregated items across all live orders",
		Long: `Fetch the current order snapshot and print every item the kitchen
has to make, with identical items from different orders merged into a
single line.`,
		RunE: runItems,
	}

	cmd.Flags().String("group", "none", "grouping mode (none, category, size)")

	return cmd
}

func runItems(cmd *cobra.Command, _ []string) error {
	group, _ := cmd.Flags().GetString("group")

	e, store, err := initEngine(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := e.Process(cmd.Context()); err != nil {
		return err
	}

	switch group {
	case "none":
		fmt.Println(cli.RenderBatchedItems(e.BatchedItems()))
	case "category":
		fmt.Println(cli.RenderCategoryGroups(e.ItemsByCategory()))
	case "size":
		fmt.Println(cli.RenderSizeGroups(e.ItemsBySize()))
	default:
		return fmt.Errorf("unknown grouping %q (use none, category, or size)", group)
	}
	return nil
}
