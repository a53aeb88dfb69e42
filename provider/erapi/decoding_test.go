package erapi

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/robotomize/keisan/label"
)

func TestDecodeV4(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		body     string
		err      error
		expected map[label.Symbol]float64
		datetime string
	}{
		{
			name:     "test_decode_ok",
			body:     `{"base": "TWD", "date": "2021-06-18", "rates": {"USD": 0.0357, "JPY": 3.95}}`,
			datetime: "2021-06-18",
			expected: map[label.Symbol]float64{label.USD: 0.0357, label.JPY: 3.95},
		},
		{
			name: "test_decode_negative_rate_dropped",
			body: `{"base": "TWD", "date": "2021-06-18", "rates": {"USD": -1, "JPY": 3.95}}`,
			expected: map[label.Symbol]float64{
				label.JPY: 3.95,
			},
		},
		{
			name: "test_decode_missing_base",
			body: `{"date": "2021-06-18", "rates": {"USD": 0.0357}}`,
			err:  errFieldNotValid,
		},
		{
			name: "test_decode_missing_rates",
			body: `{"base": "TWD", "date": "2021-06-18"}`,
			err:  errFieldNotValid,
		},
		{
			name: "test_decode_bad_date",
			body: `{"base": "TWD", "date": "18 June 2021", "rates": {"USD": 0.0357}}`,
			err:  errFieldNotValid,
		},
		{
			name: "test_decode_truncated_body",
			body: `{"base": "TWD"`,
			err:  errDecodeBody,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var got map[label.Symbol]float64
			var dt time.Time

			err := decodeV4()([]byte(tc.body), func(rates baseLatestRates) error {
				got = make(map[label.Symbol]float64, len(rates.rates))
				for _, r := range rates.rates {
					got[r.symbol] = r.rate
				}
				dt = rates.time

				return nil
			})
			if tc.err != nil {
				if !errors.Is(err, tc.err) {
					t.Fatalf("expected error %v, got %v", tc.err, err)
				}

				return
			}

			if err != nil {
				t.Fatalf("decode: %v", err)
			}

			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("mismatch (-want, +got):\n%s", diff)
			}

			if tc.datetime != "" {
				expectedTime, err := time.Parse("2006-01-02", tc.datetime)
				if err != nil {
					t.Fatalf("time parse: %v", err)
				}

				if !dt.Equal(expectedTime) {
					t.Errorf("expected time %v, got %v", expectedTime, dt)
				}
			}
		})
	}
}

func TestDecodeV6(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		body     string
		err      error
		expected map[label.Symbol]float64
	}{
		{
			name:     "test_decode_ok",
			body:     `{"result": "success", "base_code": "TWD", "time_last_update_unix": 1624233602, "rates": {"USD": 0.0357}}`,
			expected: map[label.Symbol]float64{label.USD: 0.0357},
		},
		{
			name: "test_decode_error_result",
			body: `{"result": "error", "error-type": "unsupported-code"}`,
			err:  errFieldNotValid,
		},
		{
			name: "test_decode_negative_timestamp",
			body: `{"result": "success", "base_code": "TWD", "time_last_update_unix": -5, "rates": {"USD": 0.0357}}`,
			err:  errFieldNotValid,
		},
		{
			name: "test_decode_truncated_body",
			body: `{"result": "succ`,
			err:  errDecodeBody,
		},
		{
			name: "test_decode_missing_iter_func",
			body: `{"result": "success", "base_code": "TWD", "time_last_update_unix": 1624233602, "rates": {"USD": 0.0357}}`,
			err:  errMissingIterFunc,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			iter := func(rates baseLatestRates) error { return nil }
			var got map[label.Symbol]float64
			if tc.expected != nil {
				iter = func(rates baseLatestRates) error {
					got = make(map[label.Symbol]float64, len(rates.rates))
					for _, r := range rates.rates {
						got[r.symbol] = r.rate
					}

					return nil
				}
			}

			if errors.Is(tc.err, errMissingIterFunc) {
				iter = nil
			}

			err := decodeV6()([]byte(tc.body), iter)
			if tc.err != nil {
				if !errors.Is(err, tc.err) {
					t.Fatalf("expected error %v, got %v", tc.err, err)
				}

				return
			}

			if err != nil {
				t.Fatalf("decode: %v", err)
			}

			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("mismatch (-want, +got):\n%s", diff)
			}
		})
	}
}
