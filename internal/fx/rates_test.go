package fx

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(testWriter{}, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

type testWriter struct{}

func (testWriter) Write(p []byte) (int, error) { return len(p), nil }

func TestRates_CachesWithinTTL(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`{"base":"USD","rates":{"USD":1.0,"EUR":0.9}}`))
	}))
	defer srv.Close()

	now := time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	s := NewService(discardLogger(), WithBaseURL(srv.URL), WithTTL(time.Hour), WithClock(clock))

	for i := 0; i < 3; i++ {
		rates := s.Rates(context.Background(), "USD")
		if rates["EUR"] != 0.9 {
			t.Fatalf("EUR rate = %v", rates["EUR"])
		}
	}
	if hits.Load() != 1 {
		t.Fatalf("provider hit %d times inside TTL, want 1", hits.Load())
	}

	now = now.Add(61 * time.Minute)
	s.Rates(context.Background(), "USD")
	if hits.Load() != 2 {
		t.Fatalf("stale cache should refetch, hits = %d", hits.Load())
	}
}

func TestRates_FallsBackWhenProviderDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	s := NewService(discardLogger(), WithBaseURL(srv.URL))
	rates := s.Rates(context.Background(), "USD")
	if rates["EUR"] != 0.92 {
		t.Fatalf("want fallback EUR rate 0.92, got %v", rates["EUR"])
	}
}

func TestRates_PrefersStaleCacheOverFallback(t *testing.T) {
	var fail atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"base":"USD","rates":{"USD":1.0,"EUR":0.85}}`))
	}))
	defer srv.Close()

	now := time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)
	s := NewService(discardLogger(), WithBaseURL(srv.URL), WithTTL(time.Hour), WithClock(func() time.Time { return now }))

	s.Rates(context.Background(), "USD")
	fail.Store(true)
	now = now.Add(2 * time.Hour)

	rates := s.Rates(context.Background(), "USD")
	if rates["EUR"] != 0.85 {
		t.Fatalf("want the stale cached rate 0.85, got %v", rates["EUR"])
	}
}

func TestConvert(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"base":"EUR","rates":{"EUR":1.0,"USD":1.1}}`))
	}))
	defer srv.Close()
	s := NewService(discardLogger(), WithBaseURL(srv.URL))

	out, err := s.Convert(context.Background(), decimal.NewFromInt(100), "EUR", "USD")
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if !out.Equal(decimal.NewFromFloat(110)) {
		t.Fatalf("converted = %s, want 110", out)
	}

	same, err := s.Convert(context.Background(), decimal.NewFromInt(42), "USD", "USD")
	if err != nil || !same.Equal(decimal.NewFromInt(42)) {
		t.Fatalf("identity conversion = %s, %v", same, err)
	}

	if _, err := s.Convert(context.Background(), decimal.NewFromInt(1), "USD", "ZZZ"); err == nil {
		t.Fatal("want error for unsupported currency")
	}
}

func TestIsSupported(t *testing.T) {
	for _, code := range SupportedCurrencies {
		if !IsSupported(code) {
			t.Fatalf("%s should be supported", code)
		}
	}
	if IsSupported("BTC") {
		t.Fatal("BTC is not in the supported set")
	}
}
