// Package watchlist holds the monitor's mutable list of alert targets.
package watchlist

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"token-radar/internal/domain"
)

// ErrBadEntry is returned when an operator-supplied watchlist line does not
// parse into an address and a target price.
var ErrBadEntry = errors.New("invalid entry, use: <contract_address>, <target_price>")

// List is a thread-safe, append-only collection of alert targets. Targets
// are never removed; a triggered target stays triggered.
type List struct {
	mu      sync.Mutex
	targets []domain.AlertTarget
}

// Armed is one armed target with its stable position in the list.
type Armed struct {
	Index  int
	Target domain.AlertTarget
}

// NewList creates an empty watchlist.
func NewList() *List {
	return &List{}
}

// Append adds a target to the end of the list.
func (l *List) Append(t domain.AlertTarget) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.targets = append(l.targets, t)
}

// Armed returns a snapshot of the targets that have not triggered yet, in
// list order.
func (l *List) Armed() []Armed {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []Armed
	for i, t := range l.targets {
		if !t.Triggered {
			out = append(out, Armed{Index: i, Target: t})
		}
	}
	return out
}

// Trigger marks the target at index as triggered. The transition is
// one-way; triggering an already-triggered target is a no-op.
func (l *List) Trigger(index int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if index >= 0 && index < len(l.targets) {
		l.targets[index].Triggered = true
	}
}

// Counts returns how many targets are armed and how many have triggered.
func (l *List) Counts() (armed, triggered int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, t := range l.targets {
		if t.Triggered {
			triggered++
		} else {
			armed++
		}
	}
	return armed, triggered
}

// Len returns the total number of targets.
func (l *List) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.targets)
}

// ParseEntry parses an operator line of the form
// "<contract_address>, <target_price>" into an armed target.
func ParseEntry(line string) (domain.AlertTarget, error) {
	addr, priceStr, ok := strings.Cut(line, ",")
	if !ok {
		return domain.AlertTarget{}, ErrBadEntry
	}
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return domain.AlertTarget{}, ErrBadEntry
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(priceStr), 64)
	if err != nil {
		return domain.AlertTarget{}, fmt.Errorf("%w: %s", ErrBadEntry, strings.TrimSpace(priceStr))
	}
	return domain.AlertTarget{Address: addr, TargetPrice: price}, nil
}
