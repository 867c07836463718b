// Package directory maintains the option listing registry built from
// the feed's own directory messages.
package directory

import (
	"fmt"
	"sync"

	"github.com/rickgao/itto-feed/internal/itto"
)

// Listing is the current view of one listed option.
type Listing struct {
	OptionID    uint32
	Symbol      string
	Underlying  string
	ExpYear     uint8
	ExpMonth    uint8
	ExpDay      uint8
	StrikePrice uint32
	OptionType  byte

	TradingState byte // last trading action, 0 until seen
	Open         bool
}

// Expiration renders the listing's expiration as YYYY-MM-DD.
func (l Listing) Expiration() string {
	return fmt.Sprintf("20%02d-%02d-%02d", l.ExpYear, l.ExpMonth, l.ExpDay)
}

// Stats holds registry counters.
type Stats struct {
	Listings int
	Updates  int64 // directory messages applied
	Actions  int64 // trading actions and open/close updates applied
	Orphans  int64 // state updates for options never listed
}

// Registry is the in-memory option directory. It implements
// itto.Handler so it can sit directly behind a framer; kinds that do
// not affect the directory are ignored.
type Registry struct {
	mu       sync.RWMutex
	listings map[uint32]*Listing

	updates int64
	actions int64
	orphans int64
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		listings: make(map[uint32]*Listing),
	}
}

// Get returns the listing for an option id.
func (r *Registry) Get(optionID uint32) (Listing, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.listings[optionID]
	if !ok {
		return Listing{}, false
	}
	return *l, true
}

// Count returns the number of known listings.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.listings)
}

// Symbols returns the distinct underlying symbols seen so far.
func (r *Registry) Symbols() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{})
	var out []string
	for _, l := range r.listings {
		if _, ok := seen[l.Underlying]; ok {
			continue
		}
		seen[l.Underlying] = struct{}{}
		out = append(out, l.Underlying)
	}
	return out
}

// Stats returns registry counters.
func (r *Registry) Stats() Stats {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Stats{
		Listings: len(r.listings),
		Updates:  r.updates,
		Actions:  r.actions,
		Orphans:  r.orphans,
	}
}

func (r *Registry) OnOptionDirectory(m itto.OptionDirectory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.listings[m.OptionID]
	if !ok {
		l = &Listing{OptionID: m.OptionID}
		r.listings[m.OptionID] = l
	}
	l.Symbol = m.Symbol
	l.Underlying = m.Underlying
	l.ExpYear = m.ExpYear
	l.ExpMonth = m.ExpMonth
	l.ExpDay = m.ExpDay
	l.StrikePrice = m.StrikePrice
	l.OptionType = m.OptionType
	r.updates++
}

func (r *Registry) OnTradingAction(m itto.TradingAction) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.listings[m.OptionID]
	if !ok {
		r.orphans++
		return
	}
	l.TradingState = m.State
	r.actions++
}

func (r *Registry) OnOptionOpen(m itto.OptionOpen) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.listings[m.OptionID]
	if !ok {
		r.orphans++
		return
	}
	l.Open = m.OpenState == 'Y'
	r.actions++
}

// The remaining kinds do not touch the directory.

func (r *Registry) OnSystemEvent(itto.SystemEvent)               {}
func (r *Registry) OnAddOrderShort(itto.AddOrderShort)           {}
func (r *Registry) OnAddOrderLong(itto.AddOrderLong)             {}
func (r *Registry) OnAddQuoteShort(itto.AddQuoteShort)           {}
func (r *Registry) OnAddQuoteLong(itto.AddQuoteLong)             {}
func (r *Registry) OnOrderExecuted(itto.OrderExecuted)           {}
func (r *Registry) OnOrderExecutedPrice(itto.OrderExecutedPrice) {}
func (r *Registry) OnOrderCancel(itto.OrderCancel)               {}
func (r *Registry) OnReplaceShort(itto.ReplaceShort)             {}
func (r *Registry) OnReplaceLong(itto.ReplaceLong)               {}
func (r *Registry) OnSingleSideDelete(itto.SingleSideDelete)     {}
func (r *Registry) OnSingleSideUpdate(itto.SingleSideUpdate)     {}
func (r *Registry) OnQuoteReplaceShort(itto.QuoteReplaceShort)   {}
func (r *Registry) OnQuoteReplaceLong(itto.QuoteReplaceLong)     {}
func (r *Registry) OnQuoteDelete(itto.QuoteDelete)               {}
func (r *Registry) OnCrossTrade(itto.CrossTrade)                 {}
func (r *Registry) OnNOII(itto.NOII)                             {}
