package bot

import (
	"errors"
	"strings"
	"time"

	"github.com/robotomize/keisan/internal/strutil"
	"github.com/robotomize/keisan/label"
)

var (
	errDecodeToken     = errors.New("decoding of the markup failed")
	errNodeNotValid    = errors.New("node is not valid")
	errColumnNotValid  = errors.New("column is not valid")
	errMissingIterFunc = errors.New("missing iter function")
)

// decodeFunc for parsing one of the board-rate representations
type decodeFunc func([]byte, func(rates twdLatestRates) error) error

// twdLatestRates holds board quotes as published: TWD per one foreign unit
type twdLatestRates struct {
	time  time.Time
	rates []twdExchangeRate
}

type twdExchangeRate struct {
	symbol label.Symbol
	rate   float64
}

// symbolFor resolves a board currency cell: a bare code ("USD"), a name with
// a bracketed code ("US Dollar (USD)"), or a bare display name resolved via
// the label.Names table.
func symbolFor(cell string) (label.Symbol, bool) {
	if _, ok := label.Currencies[label.Symbol(cell)]; ok {
		return label.Symbol(cell), true
	}

	if open := strings.LastIndex(cell, "("); open != -1 {
		if end := strings.Index(cell[open:], ")"); end != -1 {
			symbol := label.Symbol(strings.TrimSpace(cell[open+1 : open+end]))
			if _, ok := label.Currencies[symbol]; ok {
				return symbol, true
			}
		}
	}

	name := strutil.RemoveExtraSpaces(strutil.RemoveContentIntoBrackets(cell))
	symbol, ok := label.Names[name]

	return symbol, ok
}
