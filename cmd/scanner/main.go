// Command scanner aggregates token listings across every category and
// interval axis, filters them by market cap and prints the ranked report.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"token-radar/internal/aggregate"
	"token-radar/internal/report"
	"token-radar/internal/sources"
)

func main() {
	minCap := flag.Float64("min-mcap", -1, "Minimum market cap (prompted when unset)")
	maxCap := flag.Float64("max-mcap", -1, "Maximum market cap (prompted when unset)")
	chain := flag.String("chain", "solana", "Chain used for payment-status lookups")
	listingsURL := flag.String("listings-url", sources.DefaultListingsBaseURL, "Listings API base URL")
	paymentsURL := flag.String("payments-url", sources.DefaultPaymentBaseURL, "Payment-status API base URL")
	verbose := flag.Bool("v", false, "Enable debug logging")
	flag.Parse()

	setupLogging(*verbose)

	reader := bufio.NewReader(os.Stdin)
	minVal, err := capBound(reader, *minCap, "Enter minimum market cap : ")
	if err != nil {
		log.Fatal().Err(err).Msg("invalid minimum market cap")
	}
	maxVal, err := capBound(reader, *maxCap, "Enter maximum market cap : ")
	if err != nil {
		log.Fatal().Err(err).Msg("invalid maximum market cap")
	}

	ctx := context.Background()

	agg := aggregate.New(aggregate.Options{
		Lister:     sources.NewListingsClient(sources.WithBaseURL(*listingsURL)),
		Categories: sources.Categories,
		Intervals:  sources.Intervals,
		Logger:     log.Logger,
	})
	tokens := agg.Collect(ctx)
	log.Info().Int("tokens", len(tokens)).Msg("unique tokens aggregated")

	rep := report.Build(ctx, tokens, report.Options{
		Payments: sources.NewPaymentClient(sources.WithBaseURL(*paymentsURL)),
		Chain:    *chain,
		MinCap:   minVal,
		MaxCap:   maxVal,
		Now:      time.Now().UTC(),
	})
	fmt.Print(report.RenderText(rep))
}

func setupLogging(verbose bool) {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

// capBound returns the flag value when set, otherwise prompts the operator
// for an integer bound. A bound that does not parse is fatal.
func capBound(r *bufio.Reader, flagVal float64, prompt string) (float64, error) {
	if flagVal >= 0 {
		return flagVal, nil
	}
	fmt.Print(prompt)
	line, err := r.ReadString('\n')
	if err != nil {
		return 0, fmt.Errorf("read market cap bound: %w", err)
	}
	n, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("market cap bound must be an integer: %w", err)
	}
	return float64(n), nil
}
