package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var configFile string

func execute(ctx context.Context) error {
	rootCmd := &cobra.Command{
		Use:     "exchange-history",
		Short:   "PrivatBank currency exchange history",
		Version: "v1.0.0",
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "./config.yml", "Path to config file")
	rootCmd.AddCommand(historyCommand(ctx))

	return rootCmd.Execute()
}

func historyCommand(ctx context.Context) *cobra.Command {
	var currencies string
	var standalone bool
	var after time.Duration

	historyCmd := &cobra.Command{
		Use:   "history <days>",
		Short: "Fetch exchange rates for the last <days> days (1 to 10)",
		Args:  cobra.ExactArgs(1),
	}

	historyCmd.RunE = func(cmd *cobra.Command, args []string) error {
		offset, err := strconv.Atoi(args[0])

		if err != nil {
			return fmt.Errorf("days offset must be an integer: %w", err)
		}

		config, err := loadConfig(configFile)

		if err != nil {
			return err
		}

		additional := append(config.Currencies, splitCurrencies(currencies)...)
		service := createHistoryService(config)

		handle := func() error {
			history, err := service.History(ctx, offset, additional)

			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(history, "", "  ")

			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(out))

			return nil
		}

		if err := handle(); err != nil {
			return err
		}

		if !standalone {
			return nil
		}

		errLogger := log.New(cmd.ErrOrStderr(), "history-error ", 0)

		for {
			select {
			case <-time.After(after):
				if err := handle(); err != nil {
					errLogger.Printf("ERROR: %v", err)
				}
			case <-ctx.Done():
				return nil
			}
		}
	}

	historyCmd.Flags().StringVar(&currencies, "currency", "", `Additional currency codes separated with a comma, e.g. "GBP,CHF"`)
	historyCmd.Flags().BoolVar(&standalone, "standalone", false, "Keep running and refetch the whole range periodically")
	historyCmd.Flags().DurationVar(&after, "after", time.Duration(1)*time.Hour, "Refetch interval for the standalone mode")

	return historyCmd
}

func splitCurrencies(list string) []string {
	if strings.TrimSpace(list) == "" {
		return nil
	}

	parts := strings.Split(list, ",")
	currencies := make([]string, 0, len(parts))

	for _, part := range parts {
		if code := strings.TrimSpace(part); code != "" {
			currencies = append(currencies, code)
		}
	}

	return currencies
}
