// Package keisan implements a currency-converter calculator. A keypad state
// machine drives the arithmetic, conversion uses exchange rates refreshed
// periodically from public sources into an in-memory base-relative table.
package keisan

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/robotomize/keisan/internal/logging"
	"github.com/robotomize/keisan/keypad"
	"github.com/robotomize/keisan/label"
	"github.com/robotomize/keisan/provider"
	"github.com/robotomize/keisan/provider/bot"
	"github.com/robotomize/keisan/provider/erapi"
	"github.com/robotomize/keisan/rate"
	"github.com/sethvargo/go-retry"
)

var (
	ErrCurrencyNotFound = errors.New("currency symbol is not supported")
	ErrNoFreshRates     = errors.New("no source delivered fresh rates")
)

const (
	DefaultBase            = label.TWD
	DefaultRefreshInterval = time.Hour
	DefaultRequestTimeout  = 10 * time.Second
	DefaultRetryNum        = 0
	DefaultRetryDuration   = 5 * time.Second
)

type Option func(*Calc)

type Options struct {
	Base            label.Symbol
	Symbols         []label.Symbol
	RefreshInterval time.Duration
	RequestTimeout  time.Duration
	RetryNum        uint64
	RetryDuration   time.Duration
}

// WithBase set the currency all table rates are expressed against
func WithBase(symbol label.Symbol) Option {
	return func(c *Calc) {
		c.opts.Base = symbol
	}
}

// WithSymbols set the seeded currency list, replacing label.DefaultSymbols
func WithSymbols(symbols ...label.Symbol) Option {
	return func(c *Calc) {
		c.opts.Symbols = symbols
	}
}

// WithRefreshInterval set the period of the rate refresh ticker
func WithRefreshInterval(t time.Duration) Option {
	return func(c *Calc) {
		c.opts.RefreshInterval = t
	}
}

// WithRequestTimeout set a timeout for source requests
func WithRequestTimeout(t time.Duration) Option {
	return func(c *Calc) {
		c.opts.RequestTimeout = t
	}
}

// WithRetryNum set number of repeated requests per source within one refresh.
// The default of 0 keeps a failed refresh silent until the next tick.
func WithRetryNum(n uint64) Option {
	return func(c *Calc) {
		c.opts.RetryNum = n
	}
}

// WithRetryDuration max retry backoff
func WithRetryDuration(t time.Duration) Option {
	return func(c *Calc) {
		c.opts.RetryDuration = t
	}
}

// WithSources replace the default rate sources. Sources are tried in order,
// the first successful one wins a refresh.
func WithSources(sources ...provider.Source) Option {
	return func(c *Calc) {
		c.sources = sources
	}
}

// New return calculator with the default sources: the exchangerate-api JSON
// endpoints first, the Bank of Taiwan board as fallback
func New(client *http.Client, opts ...Option) *Calc {
	c := &Calc{
		opts: Options{
			Base:            DefaultBase,
			Symbols:         label.DefaultSymbols,
			RefreshInterval: DefaultRefreshInterval,
			RequestTimeout:  DefaultRequestTimeout,
			RetryNum:        DefaultRetryNum,
			RetryDuration:   DefaultRetryDuration,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.sources == nil {
		c.sources = []provider.Source{
			erapi.NewSource(client, c.opts.Base),
			bot.NewSource(client),
		}
	}

	c.table = rate.NewTable(c.opts.Base, c.opts.Symbols)

	c.from = c.opts.Base
	c.to = c.opts.Base
	for _, e := range c.table.Entries() {
		if e.Symbol != c.opts.Base {
			c.to = e.Symbol
			break
		}
	}

	return c
}

// Calc owns the keypad engine, the rate table and the conversion selection.
// All presentation-facing methods are safe for concurrent use; the refresh
// goroutine takes the write lock only to apply fetched rates, so display
// reads always see either the previous or the fresh table.
type Calc struct {
	opts Options

	mtx     sync.RWMutex
	engine  keypad.Engine
	table   *rate.Table
	sources []provider.Source
	from    label.Symbol
	to      label.Symbol
	loading bool
}

// Press forwards a single keypad key to the engine
func (c *Calc) Press(k keypad.Key) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	c.engine.Press(k)
}

// DisplayEntry returns the entry string for the first display row
func (c *Calc) DisplayEntry() string {
	c.mtx.RLock()
	defer c.mtx.RUnlock()

	return c.engine.Display()
}

// ConvertedDisplay returns the entry converted between the selected
// currencies, formatted to 2 decimals. Missing rates degrade to "0.00".
func (c *Calc) ConvertedDisplay() string {
	c.mtx.RLock()
	defer c.mtx.RUnlock()

	converted := c.table.Convert(c.engine.Value(), c.from, c.to)

	return strconv.FormatFloat(converted, 'f', 2, 64)
}

// AvailableCurrencies returns the table rows in seeding order
func (c *Calc) AvailableCurrencies() []rate.Entry {
	c.mtx.RLock()
	defer c.mtx.RUnlock()

	return c.table.Entries()
}

// Selection returns the currently selected conversion pair
func (c *Calc) Selection() (from, to label.Symbol) {
	c.mtx.RLock()
	defer c.mtx.RUnlock()

	return c.from, c.to
}

// SelectFrom set the conversion source currency
func (c *Calc) SelectFrom(symbol label.Symbol) error {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	if _, ok := c.table.Lookup(symbol); !ok {
		return fmt.Errorf("%w: %s", ErrCurrencyNotFound, symbol)
	}

	c.from = symbol

	return nil
}

// SelectTo set the conversion target currency
func (c *Calc) SelectTo(symbol label.Symbol) error {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	if _, ok := c.table.Lookup(symbol); !ok {
		return fmt.Errorf("%w: %s", ErrCurrencyNotFound, symbol)
	}

	c.to = symbol

	return nil
}

// Swap exchanges the selected conversion pair
func (c *Calc) Swap() {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	c.from, c.to = c.to, c.from
}

// IsLoading reports whether a refresh is outstanding
func (c *Calc) IsLoading() bool {
	c.mtx.RLock()
	defer c.mtx.RUnlock()

	return c.loading
}

// Refresh performs one rate refresh: sources are tried in order and the
// first one that delivers applicable rates wins, last-write-wins on the
// table. At most one refresh runs at a time; a call that finds another
// refresh in flight returns immediately.
func (c *Calc) Refresh(ctx context.Context) error {
	c.mtx.Lock()
	if c.loading {
		c.mtx.Unlock()
		return nil
	}
	c.loading = true
	c.mtx.Unlock()

	defer func() {
		c.mtx.Lock()
		c.loading = false
		c.mtx.Unlock()
	}()

	var ferr *multierror.Error

	for _, source := range c.sources {
		b, _ := retry.NewConstant(c.opts.RetryDuration)
		b = retry.WithMaxRetries(c.opts.RetryNum, b)

		if err := retry.Do(ctx, b, func(ctx context.Context) error {
			fetchCtx, cancel := context.WithTimeout(ctx, c.opts.RequestTimeout)
			defer cancel()

			rates, err := source.FetchLatest(fetchCtx)
			if err != nil {
				return retry.RetryableError(fmt.Errorf("fetch latest: %w", err))
			}

			mapping := c.normalize(source, rates)
			if len(mapping) == 0 {
				return fmt.Errorf("%w: %T", ErrNoFreshRates, source)
			}

			c.mtx.Lock()
			c.table.Apply(mapping)
			c.mtx.Unlock()

			return nil
		}); err != nil {
			ferr = multierror.Append(ferr, err)
			continue
		}

		return nil
	}

	if err := ferr.ErrorOrNil(); err != nil {
		return fmt.Errorf("refresh: %w", err)
	}

	return fmt.Errorf("refresh: %w", ErrNoFreshRates)
}

// Start refreshes immediately and then on every tick of the refresh interval
// until ctx is done. Failures are logged and dropped: the table stays stale
// until the next tick. Run it on its own goroutine.
func (c *Calc) Start(ctx context.Context) {
	logger := logging.FromContext(ctx)

	if err := c.Refresh(ctx); err != nil {
		logger.Printf("rates refresh: %v", err)
	}

	ticker := time.NewTicker(c.opts.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := c.Refresh(ctx); err != nil {
				logger.Printf("rates refresh: %v", err)
			}
		}
	}
}

// normalize turns source rates into a mapping relative to the table base.
// A source quoting against another base is rebased through the table base
// rate it delivered; without that pivot the result is unusable and nil is
// returned.
func (c *Calc) normalize(source provider.Source, rates []provider.ExchangeRate) map[label.Symbol]float64 {
	mapping := make(map[label.Symbol]float64, len(rates))
	for _, r := range rates {
		if r.Rate() > 0 {
			mapping[r.Symbol()] = r.Rate()
		}
	}

	if source.Base() == c.opts.Base {
		return mapping
	}

	pivot, ok := mapping[c.opts.Base]
	if !ok || pivot <= 0 {
		return nil
	}

	rebased := make(map[label.Symbol]float64, len(mapping)+1)
	for symbol, r := range mapping {
		rebased[symbol] = r / pivot
	}
	rebased[source.Base()] = 1 / pivot
	rebased[c.opts.Base] = 1

	return rebased
}
