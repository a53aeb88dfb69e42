package bot

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/robotomize/keisan/label"
)

const testBoardHTML = `<!DOCTYPE html>
<html lang="en">
<body>
<div class="pull-left trailer">
	<span class="time">2021/06/18 16:00</span>
</div>
<table title="Exchange Rate" class="table table-striped table-bordered">
	<thead>
	<tr><th>Currency</th><th>Cash Buying</th><th>Cash Selling</th><th>Spot Buying</th><th>Spot Selling</th></tr>
	</thead>
	<tbody>
	<tr>
		<td data-table="Currency" class="currency">US Dollar (USD)</td>
		<td data-table="Cash Buying">27.455</td>
		<td data-table="Cash Selling">28.125</td>
		<td data-table="Spot Buying">27.805</td>
		<td data-table="Spot Selling">27.905</td>
	</tr>
	<tr>
		<td data-table="Currency" class="currency">Japanese Yen (JPY)</td>
		<td data-table="Cash Buying">0.2442</td>
		<td data-table="Cash Selling">0.2566</td>
		<td data-table="Spot Buying">0.2511</td>
		<td data-table="Spot Selling">0.2551</td>
	</tr>
	<tr>
		<td data-table="Currency" class="currency">Vietnamese Dong (VND)</td>
		<td data-table="Cash Buying">0.00096</td>
		<td data-table="Cash Selling">0.00135</td>
		<td data-table="Spot Buying">-</td>
		<td data-table="Spot Selling">-</td>
	</tr>
	<tr>
		<td data-table="Currency" class="currency">Quibblish Quid (QQQ)</td>
		<td data-table="Cash Buying">1.0</td>
		<td data-table="Cash Selling">1.1</td>
		<td data-table="Spot Buying">1.0</td>
		<td data-table="Spot Selling">1.05</td>
	</tr>
	</tbody>
</table>
</body>
</html>`

func TestDecodeHTML(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		html     string
		err      error
		datetime string
		expected map[label.Symbol]float64
	}{
		{
			name:     "test_board_page",
			html:     testBoardHTML,
			datetime: "2021/06/18 16:00",
			expected: map[label.Symbol]float64{
				// unquoted VND and the unknown QQQ row are skipped
				label.USD: 27.905,
				label.JPY: 0.2551,
			},
		},
		{
			name: "test_missing_time_node",
			html: `<html><body><table title="Exchange Rate"><tbody><tr><td data-table="Currency">US Dollar (USD)</td><td data-table="Spot Selling">27.905</td></tr></tbody></table></body></html>`,
			err:  errNodeNotValid,
		},
		{
			name: "test_bad_time_format",
			html: `<html><body><span class="time">18 June 2021</span><table title="Exchange Rate"><tbody><tr><td data-table="Currency">US Dollar (USD)</td><td data-table="Spot Selling">27.905</td></tr></tbody></table></body></html>`,
			err:  errNodeNotValid,
		},
		{
			name: "test_missing_rate_table",
			html: `<html><body><span class="time">2021/06/18 16:00</span></body></html>`,
			err:  errNodeNotValid,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var got map[label.Symbol]float64
			var datetime string

			err := decodeHTML()([]byte(tc.html), func(rates twdLatestRates) error {
				got = make(map[label.Symbol]float64, len(rates.rates))
				for _, r := range rates.rates {
					got[r.symbol] = r.rate
				}
				datetime = rates.time.Format(htmlTimeLayout)

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

			if diff := cmp.Diff(tc.datetime, datetime); diff != "" {
				t.Errorf("bad datetime (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestSymbolFor(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		cell     string
		expected label.Symbol
		ok       bool
	}{
		{
			name:     "test_bare_code",
			cell:     "USD",
			expected: label.USD,
			ok:       true,
		},
		{
			name:     "test_bracketed_code",
			cell:     "American Dollar (USD)",
			expected: label.USD,
			ok:       true,
		},
		{
			name:     "test_display_name_fallback",
			cell:     "Japanese  Yen",
			expected: label.JPY,
			ok:       true,
		},
		{
			name: "test_unknown_cell",
			cell: "Quibblish Quid (QQQ)",
			ok:   false,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			symbol, ok := symbolFor(tc.cell)
			if ok != tc.ok {
				t.Fatalf("expected ok %v, got %v", tc.ok, ok)
			}

			if tc.ok {
				if diff := cmp.Diff(tc.expected, symbol); diff != "" {
					t.Errorf("mismatch (-want, +got):\n%s", diff)
				}
			}
		})
	}
}
