package trust

import (
	"testing"

	"github.com/shopspring/decimal"
)

func intp(v int) *int { return &v }

func TestScore(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		cfg  Config
		want float64
	}{
		{
			name: "no credit score no history",
			in:   Input{},
			cfg:  DefaultConfig(),
			want: 3.0,
		},
		{
			name: "top tier perfect record clamps at ceiling",
			in:   Input{CreditScore: intp(760), SuccessfulLoansCount: 4, DefaultsCount: 0},
			cfg:  DefaultConfig(),
			want: 5.0,
		},
		{
			name: "mid tier",
			in:   Input{CreditScore: intp(700)},
			cfg:  DefaultConfig(),
			want: 4.5,
		},
		{
			name: "650 tier",
			in:   Input{CreditScore: intp(660)},
			cfg:  DefaultConfig(),
			want: 4.0,
		},
		{
			name: "600 tier",
			in:   Input{CreditScore: intp(610)},
			cfg:  DefaultConfig(),
			want: 3.5,
		},
		{
			name: "sub 600 falls to base",
			in:   Input{CreditScore: intp(550)},
			cfg:  DefaultConfig(),
			want: 3.0,
		},
		{
			name: "perfect record below three loans gets the smaller bump",
			in:   Input{CreditScore: intp(660), SuccessfulLoansCount: 2, DefaultsCount: 0},
			cfg:  DefaultConfig(),
			// successRate 1.0 but < 3 loans: the >=0.9 branch applies, +0.25 then quantized up
			want: 4.5,
		},
		{
			name: "ninety percent success rate",
			in:   Input{CreditScore: intp(700), SuccessfulLoansCount: 9, DefaultsCount: 1},
			cfg:  DefaultConfig(),
			want: 5.0,
		},
		{
			name: "poor record severe penalty",
			in:   Input{CreditScore: intp(700), SuccessfulLoansCount: 1, DefaultsCount: 2},
			cfg:  DefaultConfig(),
			want: 3.5,
		},
		{
			name: "poor record mild penalty",
			in:   Input{CreditScore: intp(700), SuccessfulLoansCount: 1, DefaultsCount: 2},
			cfg:  Config{LowSuccessPenalty: PenaltyMild},
			want: 4.0,
		},
		{
			name: "severe penalty on low base",
			in:   Input{CreditScore: intp(550), SuccessfulLoansCount: 0, DefaultsCount: 5},
			cfg:  DefaultConfig(),
			want: 2.0,
		},
		{
			name: "investment activity bonus",
			in:   Input{CreditScore: intp(700), TotalInvested: decimal.NewFromInt(10_001)},
			cfg:  DefaultConfig(),
			// 4.5 + 0.25 quantizes to 5.0 (round half up)
			want: 5.0,
		},
		{
			name: "activity at exactly threshold gets no bonus",
			in:   Input{CreditScore: intp(700), TotalInvested: decimal.NewFromInt(10_000)},
			cfg:  DefaultConfig(),
			want: 4.5,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.in, tt.cfg)
			if got != tt.want {
				t.Fatalf("Score(%+v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestScore_AlwaysInRange(t *testing.T) {
	scores := []*int{nil, intp(300), intp(599), intp(600), intp(649), intp(750), intp(850)}
	for _, cs := range scores {
		for succ := 0; succ <= 5; succ++ {
			for def := 0; def <= 5; def++ {
				got := Score(Input{CreditScore: cs, SuccessfulLoansCount: succ, DefaultsCount: def}, DefaultConfig())
				if got < MinRating || got > MaxRating {
					t.Fatalf("score %v out of range for cs=%v succ=%d def=%d", got, cs, succ, def)
				}
				if q := got * 2; q != float64(int(q)) {
					t.Fatalf("score %v not quantized to 0.5", got)
				}
			}
		}
	}
}
