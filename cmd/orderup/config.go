package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/liwesley02/order-up/internal/cli"
	"github.com/liwesley02/order-up/internal/common"
	"github.com/liwesley02/order-up/internal/service"
)

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and change persisted settings",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get <setting>",
		Short: "Show a persisted setting",
		Args:  cobra.ExactArgs(1),
		RunE:  runConfigGet,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "set <setting> <value>",
		Short: "Change a persisted setting",
		Args:  cobra.ExactArgs(2),
		RunE:  runConfigSet,
	})

	return cmd
}

func settingKey(name string) (string, error) {
	if name == "capacity" {
		return service.SettingMaxBatchCapacity, nil
	}
	return "", fmt.Errorf("unknown setting %q (known: capacity)", name)
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key, err := settingKey(args[0])
	if err != nil {
		return err
	}

	store, err := initStorage(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	value, err := store.GetSetting(cmd.Context(), key)
	if errors.Is(err, common.ErrNotFound) {
		fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("%s is not set (default 5)", args[0])))
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Printf("%s = %s\n", args[0], value)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, err := settingKey(args[0])
	if err != nil {
		return err
	}

	capacity, err := strconv.Atoi(args[1])
	if err != nil || capacity < 1 {
		return fmt.Errorf("%w: %s must be a positive integer", common.ErrInvalidConfig, args[0])
	}

	store, err := initStorage(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := store.SetSetting(cmd.Context(), key, strconv.Itoa(capacity)); err != nil {
		return err
	}
	fmt.Println(cli.FormatSuccess(fmt.Sprintf("%s set to %d (applies to batches created from now on)", args[0], capacity)))
	return nil
}
