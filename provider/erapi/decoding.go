package erapi

import (
	"errors"
	"time"

	"github.com/robotomize/keisan/label"
)

var (
	errDecodeBody      = errors.New("decoding of the payload failed")
	errFieldNotValid   = errors.New("field is not valid")
	errMissingIterFunc = errors.New("missing iter function")
)

// decodeFunc for parsing one of the endpoint payload formats
type decodeFunc func([]byte, func(rates baseLatestRates) error) error

type baseLatestRates struct {
	time  time.Time
	rates []baseExchangeRate
}

type baseExchangeRate struct {
	symbol label.Symbol
	rate   float64
}
