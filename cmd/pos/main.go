// Command pos is the headless entry point for the terminal core. With no
// arguments it logs a snapshot of the store catalog and tax configuration;
// `pos reprint <orderID>` regenerates the printable receipt for a persisted
// order on stdout.
package main

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/express-pos/terminal/internal/catalog"
	"github.com/express-pos/terminal/internal/config"
	"github.com/express-pos/terminal/internal/obs"
	"github.com/express-pos/terminal/internal/order"
	"github.com/express-pos/terminal/internal/receipt"
	"github.com/express-pos/terminal/internal/upstream"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger := obs.NewLogger(cfg.LogFormat, cfg.LogLevel).With().
		Str("env", cfg.AppEnv).
		Str("terminal_id", cfg.TerminalID).
		Logger()

	ctx := context.Background()
	if cfg.TracingOn {
		shutdown, err := obs.InitTracer(ctx, obs.TracingConfig{
			ServiceName:   "pos-terminal",
			Endpoint:      cfg.OTLPEndpoint,
			SamplingRatio: cfg.SamplingRatio,
			Environment:   cfg.AppEnv,
		})
		if err != nil {
			logger.Error().Err(err).Msg("initialise tracing")
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					logger.Error().Err(err).Msg("shutdown tracer")
				}
			}()
		}
	}

	client := upstream.New(upstream.Config{
		BaseURL: cfg.APIBaseURL,
		Token:   cfg.APIToken,
		Timeout: cfg.HTTPTimeout,
		Log:     logger,
	})

	args := os.Args[1:]
	if len(args) >= 2 && args[0] == "reprint" {
		if err := reprint(ctx, client, args[1], cfg.StoreName, os.Stdout); err != nil {
			logger.Fatal().Err(err).Str("order_id", args[1]).Msg("reprint")
		}
		return
	}
	if err := snapshot(ctx, client, logger); err != nil {
		logger.Fatal().Err(err).Msg("store_snapshot")
	}
}

func reprint(ctx context.Context, client *upstream.Client, orderID, storeName string, w io.Writer) error {
	ord, err := client.GetOrder(ctx, orderID)
	if err != nil {
		return err
	}
	products, err := client.ListProducts(ctx)
	if err != nil {
		return err
	}
	data, err := order.Reprint(ord, order.IndexLookup(catalog.NameIndex(products)))
	if err != nil {
		return err
	}
	if data.StoreName == "" {
		data.StoreName = storeName
	}
	return receipt.Print(w, data)
}

func snapshot(ctx context.Context, client *upstream.Client, logger zerolog.Logger) error {
	products, err := client.ListProducts(ctx)
	if err != nil {
		return err
	}
	categories, err := client.ListCategories(ctx)
	if err != nil {
		return err
	}
	tax, err := client.GetTaxConfig(ctx)
	if err != nil {
		return err
	}
	logger.Info().
		Int("products", len(products)).
		Int("categories", len(categories)).
		Str("tax_rate", tax.Rate.String()).
		Bool("tax_enabled", tax.Enabled).
		Msg("store_snapshot")
	return nil
}
