// supplierbot - mahsulotlar bo'yicha yetkazib beruvchilar tahlili boti
//
// Usage:
//
//	supplierbot serve
//	supplierbot search "wireless earbuds, smart watch" --out ./reports
//	supplierbot catalog
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"
)

var version = "dev"

func main() {
	app := &cli.App{
		Name:    "supplierbot",
		Usage:   "Supplier market research bot - pricing, Excel reports and AI recommendations",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to YAML config file",
				EnvVars: []string{"SUPPLIERBOT_CONFIG"},
			},
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "Path to .env file (default: ./.env if present)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (debug, info, warn, error), overrides LOG_LEVEL",
			},
		},
		Commands: []*cli.Command{
			serveCommand(),
			searchCommand(),
			catalogCommand(),
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.RunContext(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
