package bot

import (
	"time"

	"github.com/robotomize/keisan/label"
	"github.com/robotomize/keisan/provider"
)

var _ provider.ExchangeRate = (*ExchangeRate)(nil)

type ExchangeRate struct {
	time   time.Time
	symbol label.Symbol
	rate   float64
}

func (e ExchangeRate) Time() time.Time {
	return e.time
}

func (e ExchangeRate) Symbol() label.Symbol {
	return e.symbol
}

func (e ExchangeRate) Rate() float64 {
	return e.rate
}
