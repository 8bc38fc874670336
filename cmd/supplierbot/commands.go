package main

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/urfave/cli/v2"
	"github.com/yourusername/supplier-research-bot/internal/delivery/console"
	"github.com/yourusername/supplier-research-bot/internal/delivery/telegram"
	"github.com/yourusername/supplier-research-bot/internal/usecase"
)

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the Telegram bot (long polling) until interrupted",
		Action: func(c *cli.Context) error {
			a, err := bootstrap(c)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			if err := a.cfg.ValidateTelegram(); err != nil {
				return err
			}

			bot, err := tgbotapi.NewBotAPI(a.cfg.Telegram.Token)
			if err != nil {
				return fmt.Errorf("failed to create bot: %w", err)
			}

			messenger := telegram.NewMessenger(bot, a.log)
			search, err := a.searchUseCase(c.Context, messenger)
			if err != nil {
				return err
			}

			handler := telegram.NewBotHandler(bot, messenger, a.catalog, search, a.cfg.Search.MaxProductsPerRequest, a.log)
			if err := handler.Start(c.Context); err != nil && !errors.Is(err, c.Context.Err()) {
				return err
			}
			a.log.Info("👋 Bot stopped")
			return nil
		},
	}
}

func searchCommand() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Run one search offline and print the results",
		ArgsUsage: "\"product one, product two\"",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "Directory to keep the generated Excel report",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return cli.Exit("product names are required", 2)
			}

			a, err := bootstrap(c)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			messenger := console.NewMessenger(os.Stdout, c.String("out"), a.log)
			search, err := a.searchUseCase(c.Context, messenger)
			if err != nil {
				return err
			}

			query := c.Args().First()
			for _, arg := range c.Args().Tail() {
				query += " " + arg
			}

			_, err = search.Search(c.Context, 0, query)
			switch {
			case errors.Is(err, usecase.ErrQueryTooShort),
				errors.Is(err, usecase.ErrNoValidNames),
				errors.Is(err, usecase.ErrNoProductsFound):
				return cli.Exit(err.Error(), 1)
			}
			return err
		},
	}
}

func catalogCommand() *cli.Command {
	return &cli.Command{
		Name:  "catalog",
		Usage: "Print the loaded product and supplier catalog",
		Action: func(c *cli.Context) error {
			a, err := bootstrap(c)
			if err != nil {
				return err
			}
			defer a.Close()

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "PRODUCT\tNAME\tCATEGORY\tBASE PRICE (USD)")
			for _, p := range a.catalog.ListProducts(c.Context) {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.ID, p.Name, p.Category, p.BasePriceUSD.StringFixed(2))
			}
			fmt.Fprintln(w)
			fmt.Fprintln(w, "SUPPLIER\tNAME\tCOUNTRY\tRATING\tLEAD TIME\tMOQ (USD)")
			for _, s := range a.catalog.ListSuppliers(c.Context) {
				fmt.Fprintf(w, "%s\t%s\t%s\t%.1f\t%s\t%s\n", s.ID, s.Name, s.Country, s.Rating, s.DeliveryTime, s.MinOrderValue.String())
			}
			return w.Flush()
		},
	}
}
