package main

import (
	"context"
	"log"

	"nestegg/cmd"
	"nestegg/internal"
	"nestegg/internal/db/models/postgres/public/model"
	"nestegg/internal/logger"
	"nestegg/internal/repository"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "nestegg",
		Short: "operational scripts for the portfolio tracker",
	}
	rootCmd.AddCommand(snapshotCmd())
	rootCmd.AddCommand(refreshQuotesCmd())
	rootCmd.AddCommand(refreshRatesCmd())
	rootCmd.AddCommand(seedSymbolsCmd())
	rootCmd.AddCommand(syncTrading212Cmd())

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func newContext() context.Context {
	return context.WithValue(context.Background(), logger.ContextKey, logger.New())
}

func snapshotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot <householdID>",
		Short: "capture a portfolio snapshot for a household",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			householdID, err := uuid.Parse(args[0])
			if err != nil {
				return err
			}
			handler, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(handler)

			snapshot, err := handler.SnapshotService.CaptureSnapshot(newContext(), householdID)
			if err != nil {
				return err
			}
			internal.Pprint(snapshot)
			return nil
		},
	}
}

func refreshQuotesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh-quotes <householdID>",
		Short: "refresh live prices for a household's exchange-traded positions",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			householdID, err := uuid.Parse(args[0])
			if err != nil {
				return err
			}
			handler, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(handler)

			updated, err := handler.QuoteRefreshService.RefreshPrices(newContext(), householdID)
			if err != nil {
				return err
			}
			log.Printf("updated prices for %d investment(s)", updated)
			return nil
		},
	}
}

func refreshRatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh-rates",
		Short: "force a fetch of the latest exchange rates",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			handler, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(handler)

			table := handler.ExchangeRateService.GetRates(newContext())
			internal.Pprint(table.Rates)
			return nil
		},
	}
}

// seedSymbolsCmd fills the symbol directory from the broker's instrument
// metadata, so normalization can resolve names and currencies for tickers
// that were entered manually.
func seedSymbolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed-symbols",
		Short: "populate the stock symbol directory from trading212 instruments",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			handler, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(handler)

			secrets, err := internal.LoadSecrets()
			if err != nil {
				return err
			}
			trading212Repository := repository.NewTrading212Repository(secrets.Trading212.ApiKey, secrets.Trading212.BaseURL)

			ctx := newContext()
			instruments, err := trading212Repository.GetInstruments(ctx)
			if err != nil {
				return err
			}

			seeded := 0
			for _, instrument := range instruments {
				shortName := instrument.ShortName
				isin := instrument.Isin
				instrumentType := instrument.Type
				_, err := handler.StockSymbolRepository.Upsert(nil, model.StockSymbol{
					Ticker:       instrument.Ticker,
					Name:         instrument.Name,
					ShortName:    &shortName,
					Isin:         &isin,
					Type:         &instrumentType,
					CurrencyCode: instrument.CurrencyCode,
				})
				if err != nil {
					logger.FromContext(ctx).Warnf("failed to seed symbol %s: %v", instrument.Ticker, err)
					continue
				}
				seeded++
			}
			log.Printf("seeded %d symbol(s)", seeded)
			return nil
		},
	}
}

func syncTrading212Cmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync-trading212 <householdID> <memberID>",
		Short: "rebuild a member's broker positions from trading212",
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			householdID, err := uuid.Parse(args[0])
			if err != nil {
				return err
			}
			memberID, err := uuid.Parse(args[1])
			if err != nil {
				return err
			}
			handler, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(handler)

			result, err := handler.Trading212SyncService.Sync(newContext(), householdID, memberID)
			if err != nil {
				return err
			}
			log.Printf("synced %d position(s), stored %d order(s)", result.PositionsSynced, result.OrdersStored)
			return nil
		},
	}
}
