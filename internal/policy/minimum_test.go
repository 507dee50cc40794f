package policy

import (
	"testing"

	"github.com/shopspring/decimal"
)

func d(v string) decimal.Decimal {
	out, err := decimal.NewFromString(v)
	if err != nil {
		panic(err)
	}
	return out
}

func TestTiered_MinimumFor(t *testing.T) {
	p := Tiered{}
	tests := []struct {
		amount string
		want   string
	}{
		{"100", "100"},      // whole loan up to 1k
		{"1000", "1000"},    // bracket edge inclusive
		{"1000.01", "50.0005"},
		{"5000", "250"},     // 5%
		{"10000", "500"},    // bracket edge inclusive
		{"50000", "5000"},   // 10%
		{"100000", "10000"}, // bracket edge inclusive
		{"250000", "50000"}, // 20%
	}
	for _, tt := range tests {
		got := p.MinimumFor(d(tt.amount))
		if !got.Equal(d(tt.want)) {
			t.Errorf("MinimumFor(%s) = %s, want %s", tt.amount, got, tt.want)
		}
	}
}

func TestTiered_NeverExceedsLoanAmount(t *testing.T) {
	p := Tiered{}
	for _, amount := range []string{"100", "999.99", "1000", "1500", "9999", "10001", "99999", "100001", "1000000"} {
		a := d(amount)
		if min := p.MinimumFor(a); min.GreaterThan(a) {
			t.Errorf("MinimumFor(%s) = %s exceeds the loan amount", a, min)
		}
	}
}

func TestFlat_MinimumFor(t *testing.T) {
	p := Flat{Floor: DefaultFlatFloor}
	for _, amount := range []string{"100", "50000", "1000000"} {
		if got := p.MinimumFor(d(amount)); !got.Equal(d("100")) {
			t.Errorf("MinimumFor(%s) = %s, want 100", amount, got)
		}
	}
}

func TestFromName(t *testing.T) {
	if _, err := FromName("tiered"); err != nil {
		t.Fatalf("tiered: %v", err)
	}
	if p, err := FromName(""); err != nil {
		t.Fatalf("default: %v", err)
	} else if _, ok := p.(Flat); !ok {
		t.Fatalf("default should be flat, got %T", p)
	}
	if _, err := FromName("percentage"); err == nil {
		t.Fatal("want error for unknown policy name")
	}
}
