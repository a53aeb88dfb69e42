package provider

import (
	"context"
	"time"

	"github.com/robotomize/keisan/label"
)

// Source is an interface for getting exchange rate data from external
// sources. A source takes care of transport and decoding and gives back
// rates quoted against its own base currency.
//
//go:generate mockgen -source source.go -destination mock_source.go -package provider
type Source interface {
	// FetchLatest returns the latest rates relative to the source base
	FetchLatest(ctx context.Context) ([]ExchangeRate, error)

	// GetExchangeable declares to give a list of currencies the source quotes
	GetExchangeable() []label.Symbol

	// Base is the currency all rates of this source are expressed against
	Base() label.Symbol
}

// ExchangeRate is a single base-relative quote: Rate() units of Symbol()
// per one unit of the source base
type ExchangeRate interface {
	// Time - date on which the rate was issued
	Time() time.Time
	Symbol() label.Symbol
	Rate() float64
}
