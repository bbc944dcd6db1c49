// Package monitor runs the watchlist polling loop and the alert-and-resume
// protocol.
package monitor

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"token-radar/internal/alert"
	"token-radar/internal/domain"
	"token-radar/internal/observability"
	"token-radar/internal/watchlist"
)

// DefaultPollInterval is the delay between poll cycles.
const DefaultPollInterval = 10 * time.Second

// PriceFetcher fetches the current USD price of a token. A nil price with a
// nil error means the upstream knows the token but reports no price.
type PriceFetcher interface {
	TokenPriceUSD(ctx context.Context, network, address string) (*float64, error)
}

// Acknowledger blocks until the operator acknowledges an active alert.
type Acknowledger interface {
	AwaitAck(ctx context.Context) error
}

// AckFunc adapts a function to the Acknowledger interface.
type AckFunc func(ctx context.Context) error

// AwaitAck calls f.
func (f AckFunc) AwaitAck(ctx context.Context) error { return f(ctx) }

// Runner polls every armed watchlist target on a fixed cadence. When a
// target's price crosses its threshold the runner raises the alarm, blocks
// for operator acknowledgment, then resumes polling. New targets arrive
// over the Adds channel; the runner is the only goroutine mutating the list.
type Runner struct {
	fetcher  PriceFetcher
	list     *watchlist.List
	signaler alert.Signaler
	acks     Acknowledger
	adds     <-chan domain.AlertTarget
	network  string
	interval time.Duration
	logger   zerolog.Logger
	metrics  *observability.Metrics
}

// Options configures a Runner.
type Options struct {
	Fetcher  PriceFetcher
	List     *watchlist.List
	Signaler alert.Signaler // default: no-op
	Acks     Acknowledger   // default: immediate acknowledgment
	Adds     <-chan domain.AlertTarget
	Network  string
	Interval time.Duration // default: DefaultPollInterval
	Logger   zerolog.Logger
	Metrics  *observability.Metrics
}

// NewRunner creates a Runner.
func NewRunner(opts Options) *Runner {
	interval := opts.Interval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	signaler := opts.Signaler
	if signaler == nil {
		signaler = alert.Noop{}
	}
	acks := opts.Acks
	if acks == nil {
		acks = AckFunc(func(context.Context) error { return nil })
	}
	metrics := opts.Metrics
	if metrics == nil {
		metrics = observability.NewMetrics("")
	}
	return &Runner{
		fetcher:  opts.Fetcher,
		list:     opts.List,
		signaler: signaler,
		acks:     acks,
		adds:     opts.Adds,
		network:  opts.Network,
		interval: interval,
		logger:   opts.Logger,
		metrics:  metrics,
	}
}

// Run polls until ctx is cancelled. There is no other termination
// condition.
func (r *Runner) Run(ctx context.Context) error {
	r.logger.Info().
		Int("targets", r.list.Len()).
		Str("network", r.network).
		Dur("interval", r.interval).
		Msg("tracking watchlist")

	for {
		r.drainAdds()
		r.pollOnce(ctx)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(r.interval):
		}
	}
}

// pollOnce visits every armed target in list order. A failed fetch is
// logged and skipped; the target stays armed.
func (r *Runner) pollOnce(ctx context.Context) {
	for _, armed := range r.list.Armed() {
		if ctx.Err() != nil {
			return
		}
		target := armed.Target

		r.metrics.PricePolls.Inc()
		price, err := r.fetcher.TokenPriceUSD(ctx, r.network, target.Address)
		if err != nil || price == nil {
			r.metrics.PricePollFailures.Inc()
			r.logger.Warn().
				Err(err).
				Str("address", shortAddr(target.Address)).
				Msg("failed to retrieve price")
			continue
		}

		r.logger.Info().
			Str("address", shortAddr(target.Address)).
			Float64("price", *price).
			Float64("target", target.TargetPrice).
			Msg("price")

		if *price >= target.TargetPrice {
			r.list.Trigger(armed.Index)
			r.updateGauges()
			r.raiseAlert(ctx, target, *price)
		}
	}
	r.updateGauges()
}

// raiseAlert runs the alert-and-resume protocol: start the alarm, block for
// the operator's acknowledgment, stop and join the alarm, then apply any
// watchlist additions the operator queued before polling resumes.
func (r *Runner) raiseAlert(ctx context.Context, target domain.AlertTarget, price float64) {
	r.logger.Warn().
		Str("address", shortAddr(target.Address)).
		Float64("price", price).
		Float64("target", target.TargetPrice).
		Msg("ALERT: price target reached")
	r.metrics.AlertsFired.Inc()

	r.signaler.Start()
	err := r.acks.AwaitAck(ctx)
	r.signaler.Stop()
	if err != nil {
		return
	}
	r.metrics.AcksReceived.Inc()
	r.drainAdds()
}

// drainAdds applies queued watchlist additions without blocking.
func (r *Runner) drainAdds() {
	if r.adds == nil {
		return
	}
	for {
		select {
		case target := <-r.adds:
			r.list.Append(target)
			r.logger.Info().
				Str("address", shortAddr(target.Address)).
				Float64("target", target.TargetPrice).
				Msg("watchlist target added")
		default:
			r.updateGauges()
			return
		}
	}
}

func (r *Runner) updateGauges() {
	armed, triggered := r.list.Counts()
	r.metrics.ArmedTargets.Set(float64(armed))
	r.metrics.TriggeredTargets.Set(float64(triggered))
}

func shortAddr(addr string) string {
	if len(addr) <= 6 {
		return addr
	}
	return addr[:6] + "..."
}
