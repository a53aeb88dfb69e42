package erapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/robotomize/keisan/label"
)

// decodeV4 returns the decoding function for the exchangerate-api v4 payload:
// {"base": "TWD", "date": "2021-06-18", "rates": {"USD": 0.0357, ...}}
// All fields other than base, date and rates are ignored
func decodeV4() decodeFunc {
	return func(b []byte, iterFunc func(rates baseLatestRates) error) error {
		if iterFunc == nil {
			return errMissingIterFunc
		}

		var body struct {
			Base  string             `json:"base"`
			Date  jsonDate           `json:"date"`
			Rates map[string]float64 `json:"rates"`
		}

		if err := json.Unmarshal(b, &body); err != nil {
			var syntaxErr *json.SyntaxError
			if errors.As(err, &syntaxErr) {
				return fmt.Errorf("%w: %v", errDecodeBody, syntaxErr.Error())
			}

			return fmt.Errorf("unmarshal body: %w", err)
		}

		if body.Base == "" || len(body.Rates) == 0 {
			return errFieldNotValid
		}

		daily := baseLatestRates{
			time:  time.Time(body.Date),
			rates: ratesList(body.Rates),
		}

		if err := iterFunc(daily); err != nil {
			return fmt.Errorf("handle func: %w", err)
		}

		return nil
	}
}

type jsonDate time.Time

func (d *jsonDate) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("%w: %v", errFieldNotValid, err)
	}

	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return fmt.Errorf("%w: %v", errFieldNotValid, err)
	}

	*d = jsonDate(t)

	return nil
}

// ratesList filters the payload mapping: non-positive rates are dropped
func ratesList(m map[string]float64) []baseExchangeRate {
	list := make([]baseExchangeRate, 0, len(m))
	for symbol, r := range m {
		if r <= 0 {
			continue
		}

		list = append(list, baseExchangeRate{symbol: label.Symbol(symbol), rate: r})
	}

	return list
}
