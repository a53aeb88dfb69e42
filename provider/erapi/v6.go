package erapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// decodeV6 returns the decoding function for the open.er-api.com v6 payload:
// {"result": "success", "base_code": "TWD", "time_last_update_unix": 1624233602,
// "rates": {"USD": 0.0357, ...}}
func decodeV6() decodeFunc {
	return func(b []byte, iterFunc func(rates baseLatestRates) error) error {
		if iterFunc == nil {
			return errMissingIterFunc
		}

		var body struct {
			Result  string             `json:"result"`
			Base    string             `json:"base_code"`
			Updated jsonUnixTime       `json:"time_last_update_unix"`
			Rates   map[string]float64 `json:"rates"`
		}

		if err := json.Unmarshal(b, &body); err != nil {
			var syntaxErr *json.SyntaxError
			if errors.As(err, &syntaxErr) {
				return fmt.Errorf("%w: %v", errDecodeBody, syntaxErr.Error())
			}

			return fmt.Errorf("unmarshal body: %w", err)
		}

		if body.Result != "success" || body.Base == "" || len(body.Rates) == 0 {
			return errFieldNotValid
		}

		daily := baseLatestRates{
			time:  time.Time(body.Updated),
			rates: ratesList(body.Rates),
		}

		if err := iterFunc(daily); err != nil {
			return fmt.Errorf("handle func: %w", err)
		}

		return nil
	}
}

type jsonUnixTime time.Time

func (d *jsonUnixTime) UnmarshalJSON(b []byte) error {
	var sec int64
	if err := json.Unmarshal(b, &sec); err != nil {
		return fmt.Errorf("%w: %v", errFieldNotValid, err)
	}

	if sec < 0 {
		return errFieldNotValid
	}

	*d = jsonUnixTime(time.Unix(sec, 0).UTC())

	return nil
}
