// Package erapi implements a rate source backed by the public
// exchangerate-api JSON endpoints. Two payload formats of the same dataset
// are fetched concurrently, the first successful response wins.
package erapi

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

const (
	hostnameV4 = "api.exchangerate-api.com"
	hostnameV6 = "open.er-api.com"
)

var exchangeableSymbols = label.DefaultSymbols

var _ provider.Source = (*source)(nil)

type fetcher struct {
	latestURL url.URL
	decodeFunc
	httputil.SourceHTTPClient
}

// NewSource returns an exchangerate-api source quoting against base
func NewSource(client *http.Client, base label.Symbol) *source {
	httpClient := httputil.NewHTTPClient(client)

	return &source{
		base: base,
		fetchers: []fetcher{{
			latestURL: url.URL{
				Scheme: "https",
				Host:   hostnameV4,
				Path:   "/v4/latest/" + base.String(),
			},
			decodeFunc:       decodeV4(),
			SourceHTTPClient: httpClient,
		}, {
			latestURL: url.URL{
				Scheme: "https",
				Host:   hostnameV6,
				Path:   "/v6/latest/" + base.String(),
			},
			decodeFunc:       decodeV6(),
			SourceHTTPClient: httpClient,
		}},
	}
}

type source struct {
	base     label.Symbol
	fetchers []fetcher
}

func (s *source) Base() label.Symbol {
	return s.base
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

// fetchingPlan races the endpoint formats, keeps the first successful body
// and collects every failure into a multierror
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

	if err := decodeFunc(b, func(r baseLatestRates) error {
		list = append(list, ExchangeRate{time: r.time, symbol: s.base, rate: 1})

		for _, pair := range r.rates {
			if pair.symbol == s.base {
				continue
			}

			if _, ok := label.Currencies[pair.symbol]; !ok {
				continue
			}

			list = append(list, ExchangeRate{time: r.time, symbol: pair.symbol, rate: pair.rate})
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("%T decode func: %w", decodeFunc, err)
	}

	return list, nil
}
