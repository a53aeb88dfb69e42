package bot

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/robotomize/keisan/internal/strutil"
	"golang.org/x/net/html"
)

const htmlTimeLayout = "2006/01/02 15:04"

// decodeHTML returns the decoding function for the English board-rate page.
// Rows whose spot-selling cell does not hold a number (the board prints "-"
// for unquoted currencies) are skipped.
func decodeHTML() decodeFunc {
	return func(b []byte, iterFunc func(rates twdLatestRates) error) error {
		if iterFunc == nil {
			return errMissingIterFunc
		}

		root, err := html.Parse(bytes.NewReader(b))
		if err != nil {
			return fmt.Errorf("%w: html parse: %v", errDecodeToken, err)
		}

		doc := goquery.NewDocumentFromNode(root)

		quoted := strutil.RemoveExtraSpaces(doc.Find("span.time").First().Text())
		if quoted == "" {
			return errNodeNotValid
		}

		dt, err := time.Parse(htmlTimeLayout, quoted)
		if err != nil {
			return fmt.Errorf("%w: %v", errNodeNotValid, err)
		}

		daily := twdLatestRates{time: dt}

		rows := doc.Find("table[title='Exchange Rate'] tbody tr")
		if rows.Length() == 0 {
			return errNodeNotValid
		}

		rows.EachWithBreak(func(i int, row *goquery.Selection) bool {
			cell := strutil.RemoveExtraSpaces(row.Find("td[data-table='Currency']").First().Text())
			if cell == "" {
				err = errNodeNotValid
				return false
			}

			symbol, ok := symbolFor(cell)
			if !ok {
				return true
			}

			rateCell := strutil.RemoveExtraSpaces(row.Find("td[data-table='Spot Selling']").First().Text())

			rate, parseErr := strconv.ParseFloat(rateCell, 64)
			if parseErr != nil || rate <= 0 {
				return true
			}

			daily.rates = append(daily.rates, twdExchangeRate{symbol: symbol, rate: rate})

			return true
		})
		if err != nil {
			return err
		}

		if err := iterFunc(daily); err != nil {
			return fmt.Errorf("handle func: %w", err)
		}

		return nil
	}
}
