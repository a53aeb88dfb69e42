package bot

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/encoding/traditionalchinese"
)

const csvTimeLayout = "2006/01/02"

const (
	csvColumnDate        = "Date"
	csvColumnCurrency    = "Currency"
	csvColumnSpotSelling = "Spot Selling"
)

// decodeCSV returns the decoding function for the day-rate CSV download.
// Legacy downloads are served in Big5, so bytes that are not valid UTF-8 are
// transcoded before parsing.
func decodeCSV() decodeFunc {
	return func(b []byte, iterFunc func(rates twdLatestRates) error) error {
		if iterFunc == nil {
			return errMissingIterFunc
		}

		if !utf8.Valid(b) {
			decoded, err := traditionalchinese.Big5.NewDecoder().Bytes(b)
			if err != nil {
				return fmt.Errorf("%w: big5 decode: %v", errDecodeToken, err)
			}

			b = decoded
		}

		decoder := csv.NewReader(bytes.NewReader(b))
		decoder.TrimLeadingSpace = true

		var header []string
		daily := twdLatestRates{}

	TokenLoop:
		for idx := 0; ; idx++ {
			line, err := decoder.Read()
			if err != nil {
				if errors.Is(err, io.EOF) {
					break TokenLoop
				}

				var parseError *csv.ParseError
				if errors.As(err, &parseError) {
					return fmt.Errorf("%w: %v", errDecodeToken, parseError.Error())
				}

				return fmt.Errorf("csv decoder read: %w", err)
			}

			if idx == 0 {
				for _, column := range line {
					header = append(header, strings.Trim(column, " \t"))
				}
				continue TokenLoop
			}

			var dateCell, symbolCell, rateCell string
			for n, column := range line {
				if n >= len(header) {
					break
				}

				token := strings.Trim(column, " \t")
				switch header[n] {
				case csvColumnDate:
					dateCell = token
				case csvColumnCurrency:
					symbolCell = token
				case csvColumnSpotSelling:
					rateCell = token
				}
			}

			if symbolCell == "" || rateCell == "" {
				return errColumnNotValid
			}

			if dateCell != "" && daily.time.IsZero() {
				t, err := time.Parse(csvTimeLayout, dateCell)
				if err != nil {
					return fmt.Errorf("%w: %v", errColumnNotValid, err)
				}

				daily.time = t
			}

			symbol, ok := symbolFor(symbolCell)
			if !ok {
				continue TokenLoop
			}

			// the board prints "-" for currencies without a spot quote
			rate, err := strconv.ParseFloat(rateCell, 64)
			if err != nil || rate <= 0 {
				continue TokenLoop
			}

			daily.rates = append(daily.rates, twdExchangeRate{symbol: symbol, rate: rate})
		}

		if len(header) == 0 {
			return errColumnNotValid
		}

		if err := iterFunc(daily); err != nil {
			return fmt.Errorf("handle func: %w", err)
		}

		return nil
	}
}
