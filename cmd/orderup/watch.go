package main

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/liwesley02/order-up/internal/tui"
)

func watchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Live kitchen dashboard",
		Long: `Run the interactive dashboard: batches with urgency coloring,
aggregated items, and prep-time estimates, refreshed continuously from
the order feed.`,
		RunE: runWatch,
	}

	cmd.Flags().Duration("refresh", 5*time.Second, "feed refresh interval")
	_ = viper.BindPFlag("watch.refresh", cmd.Flags().Lookup("refresh"))

	return cmd
}

func runWatch(cmd *cobra.Command, _ []string) error {
	e, store, err := initEngine(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	cfg := tui.DefaultConfig()
	if refresh := viper.GetDuration("watch.refresh"); refresh > 0 {
		cfg.RefreshInterval = refresh
	}

	return tui.Run(cmd.Context(), e, cfg)
}
