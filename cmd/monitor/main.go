// Command monitor polls live prices for a watchlist of tokens and raises a
// repeating alarm when a target price is reached. After the operator
// acknowledges an alert, one new target may be appended without restarting.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"token-radar/internal/alert"
	"token-radar/internal/domain"
	"token-radar/internal/monitor"
	"token-radar/internal/observability"
	"token-radar/internal/sources"
	"token-radar/internal/watchlist"
)

func main() {
	network := flag.String("network", "", "Chain network, e.g. solana, ethereum (prompted when empty)")
	interval := flag.Duration("interval", monitor.DefaultPollInterval, "Delay between poll cycles")
	alertMode := flag.String("alert", "beep", "Alarm mode: beep, bell or none")
	priceURL := flag.String("price-url", sources.DefaultPriceBaseURL, "Price API base URL")
	metricsAddr := flag.String("metrics-addr", "", "Optional listen address for a debug /metrics endpoint")
	verbose := flag.Bool("v", false, "Enable debug logging")
	flag.Parse()

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	reader := bufio.NewReader(os.Stdin)
	net := strings.ToLower(strings.TrimSpace(*network))
	if net == "" {
		fmt.Print("Enter chain (e.g., solana, ethereum): ")
		line, err := reader.ReadString('\n')
		if err != nil {
			log.Fatal().Err(err).Msg("read network")
		}
		net = strings.ToLower(strings.TrimSpace(line))
	}

	list := watchlist.NewList()
	readInitialTargets(reader, list, net)

	metrics := observability.NewMetrics("")
	if *metricsAddr != "" {
		go serveMetrics(*metricsAddr, metrics)
	}

	adds := make(chan domain.AlertTarget, 16)
	op := &consoleOperator{reader: reader, adds: adds, network: net}

	runner := monitor.NewRunner(monitor.Options{
		Fetcher:  sources.NewPriceClient(sources.WithBaseURL(*priceURL)),
		List:     list,
		Signaler: newSignaler(*alertMode),
		Acks:     op,
		Adds:     adds,
		Network:  net,
		Interval: *interval,
		Logger:   log.Logger,
		Metrics:  metrics,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runner.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("monitor stopped")
		os.Exit(1)
	}
	log.Info().Msg("monitor stopped")
}

// readInitialTargets collects "<contract_address>, <target_price>" lines
// until a blank line. Malformed lines are reported and re-prompted; they
// never touch the list.
func readInitialTargets(reader *bufio.Reader, list *watchlist.List, network string) {
	fmt.Println("\nEnter token contract addresses and target prices (one per line):")
	fmt.Println("Format: <contract_address>, <target_price>")
	fmt.Println("Press Enter on an empty line to start tracking...")
	for {
		fmt.Print("Token and price: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return
		}
		target, err := watchlist.ParseEntry(line)
		if err != nil {
			fmt.Println(err)
			continue
		}
		warnOddAddress(network, target.Address)
		list.Append(target)
	}
}

func warnOddAddress(network, address string) {
	if network == "solana" && !domain.ValidSolanaAddress(address) {
		log.Warn().Str("address", address).Msg("address does not decode as a Solana address")
	}
}

func newSignaler(mode string) alert.Signaler {
	switch mode {
	case "none":
		return alert.Noop{}
	case "bell":
		return alert.NewRepeater(alert.Bell(os.Stdout), alert.DefaultCadence)
	default:
		return alert.NewRepeater(alert.SystemBeep(), alert.DefaultCadence)
	}
}

func serveMetrics(addr string, metrics *observability.Metrics) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	log.Info().Str("addr", addr).Msg("serving debug metrics")
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Error().Err(err).Msg("metrics listener failed")
	}
}

// consoleOperator implements monitor.Acknowledger over stdin.
type consoleOperator struct {
	reader  *bufio.Reader
	adds    chan<- domain.AlertTarget
	network string
}

// AwaitAck blocks until the operator types "ok" (case-insensitive), then
// offers one optional watchlist addition. The addition is queued on the adds
// channel before AwaitAck returns, so the runner applies it before polling
// resumes.
func (c *consoleOperator) AwaitAck(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Print("Type 'ok' to stop the alarm and continue: ")
		line, err := c.reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("read acknowledgment: %w", err)
		}
		if strings.EqualFold(strings.TrimSpace(line), "ok") {
			break
		}
	}
	c.promptAdd()
	return nil
}

// promptAdd offers one optional watchlist addition; a blank line skips,
// malformed lines are re-prompted.
func (c *consoleOperator) promptAdd() {
	for {
		fmt.Print("\nEnter new token and target (or leave blank to skip): ")
		line, err := c.reader.ReadString('\n')
		if err != nil {
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return
		}
		target, err := watchlist.ParseEntry(line)
		if err != nil {
			fmt.Println(err)
			continue
		}
		warnOddAddress(c.network, target.Address)
		c.adds <- target
		return
	}
}
