package domain

// AlertTarget is one watchlist entry for the price-alert monitor.
// Lifecycle: ARMED (Triggered=false) -> TRIGGERED (Triggered=true), terminal.
// Targets are never removed and never re-armed.
type AlertTarget struct {
	Address     string
	TargetPrice float64
	Triggered   bool
}
