// Package fx caches exchange rates from an external provider. Rates feed
// display conversion only; a stale or fallback rate is always preferred over
// blocking a caller on the network.
package fx

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultTTL matches the provider's free-tier refresh cadence.
const DefaultTTL = time.Hour

// DefaultBaseURL serves GET {base}/latest/{currency}.
const DefaultBaseURL = "https://api.exchangerate-api.com/v4/latest"

// SupportedCurrencies is the set loans may be denominated in.
var SupportedCurrencies = []string{
	"USD", "EUR", "GBP", "JPY", "AUD", "CAD", "CHF", "CNY", "INR", "MXN",
}

// IsSupported reports whether code is a currency loans may use.
func IsSupported(code string) bool {
	for _, c := range SupportedCurrencies {
		if c == code {
			return true
		}
	}
	return false
}

// fallbackRates is used when the provider is unreachable or non-2xx.
// USD-based snapshot; cross rates derive through USD.
var fallbackRates = map[string]float64{
	"USD": 1.0,
	"EUR": 0.92,
	"GBP": 0.79,
	"JPY": 149.5,
	"AUD": 1.52,
	"CAD": 1.36,
	"CHF": 0.88,
	"CNY": 7.24,
	"INR": 83.12,
	"MXN": 17.24,
}

var ErrUnsupportedCurrency = fmt.Errorf("unsupported currency")

type cached struct {
	rates     map[string]float64
	fetchedAt time.Time
}

type Service struct {
	client  *http.Client
	baseURL string
	ttl     time.Duration
	now     func() time.Time
	log     *slog.Logger

	mu    sync.Mutex
	cache map[string]cached // keyed by base currency
}

type Option func(*Service)

func WithBaseURL(u string) Option           { return func(s *Service) { s.baseURL = u } }
func WithTTL(d time.Duration) Option        { return func(s *Service) { s.ttl = d } }
func WithClock(now func() time.Time) Option { return func(s *Service) { s.now = now } }
func WithHTTPClient(c *http.Client) Option  { return func(s *Service) { s.client = c } }

func NewService(log *slog.Logger, opts ...Option) *Service {
	s := &Service{
		client:  &http.Client{Timeout: 5 * time.Second},
		baseURL: DefaultBaseURL,
		ttl:     DefaultTTL,
		now:     time.Now,
		log:     log,
		cache:   map[string]cached{},
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Rates returns rates keyed by currency code for the given base. Fresh cache
// wins; otherwise one fetch is attempted, and on any failure the stale cache
// or the static fallback table is returned. Never returns an error to the
// caller for provider trouble.
func (s *Service) Rates(ctx context.Context, base string) map[string]float64 {
	s.mu.Lock()
	entry, ok := s.cache[base]
	s.mu.Unlock()

	if ok && s.now().Sub(entry.fetchedAt) < s.ttl {
		return entry.rates
	}

	fresh, err := s.fetch(ctx, base)
	if err != nil {
		s.log.Warn("rate provider unavailable, using fallback", "base", base, "err", err)
		if ok {
			return entry.rates
		}
		return fallbackFor(base)
	}

	s.mu.Lock()
	s.cache[base] = cached{rates: fresh, fetchedAt: s.now()}
	s.mu.Unlock()
	return fresh
}

// Convert converts amount between two supported currencies using the cached
// base rates. Same-currency conversion is the identity.
func (s *Service) Convert(ctx context.Context, amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	if !IsSupported(from) || !IsSupported(to) {
		return decimal.Zero, fmt.Errorf("%w: %s/%s", ErrUnsupportedCurrency, from, to)
	}
	if from == to {
		return amount, nil
	}
	rates := s.Rates(ctx, from)
	rate, ok := rates[to]
	if !ok || rate <= 0 {
		return decimal.Zero, fmt.Errorf("%w: no rate for %s", ErrUnsupportedCurrency, to)
	}
	return amount.Mul(decimal.NewFromFloat(rate)), nil
}

// StartRefresher keeps the cache for base warm until ctx is done. Failures
// are logged in Rates; callers are never blocked by this loop.
func (s *Service) StartRefresher(ctx context.Context, base string, every time.Duration) {
	go func() {
		t := time.NewTicker(every)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				s.Rates(ctx, base)
			}
		}
	}()
}

type providerResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

func (s *Service) fetch(ctx context.Context, base string) (map[string]float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/"+base, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("provider returned %d", resp.StatusCode)
	}
	var body providerResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	if len(body.Rates) == 0 {
		return nil, fmt.Errorf("provider returned no rates")
	}
	return body.Rates, nil
}

// fallbackFor rebases the static USD table onto the requested base.
func fallbackFor(base string) map[string]float64 {
	baseRate, ok := fallbackRates[base]
	if !ok || baseRate == 0 {
		return fallbackRates
	}
	out := make(map[string]float64, len(fallbackRates))
	for code, usdRate := range fallbackRates {
		out[code] = usdRate / baseRate
	}
	return out
}
