// Package rate holds the in-memory exchange rate table. All rates are
// expressed relative to a single base currency; the table is seeded once and
// never resized, fetched rates only overwrite entries that already exist.
package rate

import (
	"github.com/robotomize/keisan/label"
)

// Entry is a single currency row of the table. A rate of 0 means the rate
// has not been fetched yet; the base entry is always 1.
type Entry struct {
	Name   string
	Symbol label.Symbol
	Rate   float64
}

// Table is the ordered, base-relative rate table. It is not goroutine safe,
// the owner serializes access.
type Table struct {
	base    label.Symbol
	entries []Entry
	index   map[label.Symbol]int
}

// NewTable seeds a table for the given base and symbol list. The base rate is
// 1, every other rate starts at 0. Symbols without a label.Currencies entry
// and duplicates are skipped.
func NewTable(base label.Symbol, symbols []label.Symbol) *Table {
	t := &Table{
		base:    base,
		entries: make([]Entry, 0, len(symbols)),
		index:   make(map[label.Symbol]int, len(symbols)),
	}

	for _, symbol := range symbols {
		ccy, ok := label.Currencies[symbol]
		if !ok {
			continue
		}

		if _, ok := t.index[symbol]; ok {
			continue
		}

		var r float64
		if symbol == base {
			r = 1
		}

		t.index[symbol] = len(t.entries)
		t.entries = append(t.entries, Entry{Name: ccy.Name, Symbol: symbol, Rate: r})
	}

	return t
}

// Base returns the symbol all rates are relative to
func (t *Table) Base() label.Symbol {
	return t.base
}

// Lookup returns the rate for a symbol and whether the symbol is in the table
func (t *Table) Lookup(symbol label.Symbol) (float64, bool) {
	idx, ok := t.index[symbol]
	if !ok {
		return 0, false
	}

	return t.entries[idx].Rate, true
}

// Apply overwrites the rate of every entry whose symbol is present in the
// mapping. Symbols missing from the mapping keep their rate, symbols in the
// mapping that are not in the table are dropped silently: the table never
// grows after seeding.
func (t *Table) Apply(rates map[label.Symbol]float64) {
	for symbol, r := range rates {
		if idx, ok := t.index[symbol]; ok {
			t.entries[idx].Rate = r
		}
	}
}

// Entries returns a copy of the table rows in seeding order
func (t *Table) Entries() []Entry {
	list := make([]Entry, len(t.entries))
	copy(list, t.entries)

	return list
}

// Convert converts an amount between two table currencies. Unknown symbols
// and a zero source rate degrade to 0 instead of failing. Rates share the
// same base, so the cross-multiplication is a base-normalized conversion.
func (t *Table) Convert(amount float64, from, to label.Symbol) float64 {
	fromRate, ok := t.Lookup(from)
	if !ok || fromRate == 0 {
		return 0
	}

	toRate, ok := t.Lookup(to)
	if !ok {
		return 0
	}

	return amount * (toRate / fromRate)
}
