// Package bot implements a rate source scraped from the Bank of Taiwan
// board-rate publications: the English board page and the day CSV download
// are fetched concurrently, the first successful response wins. Board quotes
// are TWD per foreign unit and get inverted into base-relative rates.
package bot

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/robotomize/keisan/label"
	"github.com/robotomize/keisan/provider"
	"github.com/robotomize/keisan/provider/httputil"
)

const hostname = "rate.bot.com.tw"

const (
	latestHTMLRawPath = "/xrt"
	latestCSVRawPath  = "/xrt/flcsv/0/day"
)

var (
	defaultLatestResourceHTML = url.URL{Scheme: "https", Host: hostname, Path: latestHTMLRawPath, RawQuery: "Lang=en-US"}
	defaultLatestResourceCSV  = url.URL{Scheme: "https", Host: hostname, Path: latestCSVRawPath}
)

var exchangeableSymbols = []label.Symbol{
	label.TWD, label.USD, label.JPY, label.EUR, label.GBP, label.CNY, label.HKD, label.KRW,
	label.SGD, label.AUD, label.CAD, label.CHF, label.THB, label.MYR, label.IDR, label.PHP,
	label.VND, label.INR, label.NZD, label.SEK, label.DKK, label.ZAR, label.MXN,
}

var _ provider.Source = (*source)(nil)

type fetcher struct {
	latestURL url.URL
	decodeFunc
	httputil.SourceHTTPClient
}

func NewSource(client *http.Client) *source {
	httpClient := httputil.NewHTTPClient(client)

	return &source{
		fetchers: []fetcher{{
			latestURL:        defaultLatestResourceCSV,
			decodeFunc:       decodeCSV(),
			SourceHTTPClient: httpClient,
		}, {
			latestURL:        defaultLatestResourceHTML,
			decodeFunc:       decodeHTML(),
			SourceHTTPClient: httpClient,
		}},
	}
}

type source struct {
	fetchers []fetcher
}

func (s *source) Base() label.Symbol {
	return label.TWD
}

func (s *source) GetExchangeable() []label.Symbol {
	return exchangeableSymbols
}

func (s *source) FetchLatest(ctx context.Context) ([]provider.ExchangeRate, error) {
	list, err := s.fetchingPlan(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching plan: %w", err)
	}

	return list, nil
}

func (s *source) fetchingPlan(ctx context.Context) ([]provider.ExchangeRate, error) {
	type fetchingDat struct {
		err error
		b   []byte
		d   decodeFunc
	}

	var dat fetchingDat
	var ferr *multierror.Error

	wg := sync.WaitGroup{}
	wg.Add(1)

	ch := make(chan fetchingDat)
	stopCh := make(chan struct{})

	for _, fet := range s.fetchers {
		fet := fet
		go func() {
			select {
			case <-stopCh:
				return
			default:
			}

			b, err := fet.Get(ctx, fet.latestURL)

			select {
			case <-stopCh:
				return
			case ch <- fetchingDat{b: b, d: fet.decodeFunc, err: err}:
			}
		}()
	}

	go func() {
		defer wg.Done()
		defer close(stopCh)
		n := len(s.fetchers)
		for {
			select {
			case <-ctx.Done():
				ferr = multierror.Append(ferr, fmt.Errorf("ctx cancelled: %w", ctx.Err()))
				return
			case dat = <-ch:
				n--
				if dat.err == nil {
					return
				}
				ferr = multierror.Append(ferr, dat.err)
				if n == 0 {
					return
				}
			}
		}
	}()

	wg.Wait()

	if dat.b == nil || dat.d == nil || dat.err != nil {
		return nil, ferr.ErrorOrNil()
	}

	list, err := s.decode(dat.b, dat.d)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	return list, nil
}

func (s *source) decode(b []byte, decodeFunc decodeFunc) ([]provider.ExchangeRate, error) {
	var list []provider.ExchangeRate

	if err := decodeFunc(b, func(r twdLatestRates) error {
		list = append(list, ExchangeRate{time: r.time, symbol: label.TWD, rate: 1})

		for _, quote := range r.rates {
			if quote.symbol == label.TWD || quote.rate <= 0 {
				continue
			}

			// board quote is TWD per foreign unit, the table wants the inverse
			list = append(list, ExchangeRate{
				time:   r.time,
				symbol: quote.symbol,
				rate:   1 / quote.rate,
			})
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("%T decode func: %w", decodeFunc, err)
	}

	return list, nil
}
