package pricing

import (
	"errors"
	"math"
	"testing"
)

// Canonical scenario: S=100, K=105, T=3 months, r=5%, sigma=20%.
const (
	testS     = 100.0
	testK     = 105.0
	testT     = 0.25
	testR     = 0.05
	testSigma = 0.20
)

func TestCallPriceKnownScenario(t *testing.T) {
	call, err := Price(testS, testK, testT, testR, testSigma, Call)
	if err != nil {
		t.Fatalf("Price returned error: %v", err)
	}
	if math.Abs(call-2.47785) > 1e-3 {
		t.Fatalf("call price = %f, want 2.47785", call)
	}

	put, err := Price(testS, testK, testT, testR, testSigma, Put)
	if err != nil {
		t.Fatalf("Price returned error: %v", err)
	}
	if math.Abs(put-6.17352) > 1e-3 {
		t.Fatalf("put price = %f, want 6.17352", put)
	}
}

func TestPutCallParity(t *testing.T) {
	cases := []struct {
		S, K, T, r, sigma float64
	}{
		{100, 100, 0.5, 0.03, 0.25},
		{100, 105, 0.25, 0.05, 0.20},
		{50, 45, 1.0, 0.10, 0.40},
		{120, 80, 2.0, -0.01, 0.15},
		{10, 200, 0.1, 0.00, 0.90},
	}

	for _, c := range cases {
		call, err := Price(c.S, c.K, c.T, c.r, c.sigma, Call)
		if err != nil {
			t.Fatalf("call price error: %v", err)
		}
		put, err := Price(c.S, c.K, c.T, c.r, c.sigma, Put)
		if err != nil {
			t.Fatalf("put price error: %v", err)
		}

		lhs := call - put
		rhs := c.S - c.K*math.Exp(-c.r*c.T)
		if math.Abs(lhs-rhs) > 1e-9 {
			t.Errorf("parity violated for %+v: call-put=%f, S-K*e^(-rT)=%f", c, lhs, rhs)
		}
	}
}

func TestExpiredOptionIsIntrinsic(t *testing.T) {
	for _, T := range []float64{0, -0.1} {
		call, err := Price(110, 100, T, 0.05, 0.2, Call)
		if err != nil {
			t.Fatalf("Price returned error: %v", err)
		}
		if call != 10 {
			t.Errorf("expired ITM call = %f, want 10", call)
		}

		put, err := Price(110, 100, T, 0.05, 0.2, Put)
		if err != nil {
			t.Fatalf("Price returned error: %v", err)
		}
		if put != 0 {
			t.Errorf("expired OTM put = %f, want 0", put)
		}
	}
}

func TestZeroVolIsDiscountedIntrinsic(t *testing.T) {
	call, err := Price(110, 100, 1, 0.05, 0, Call)
	if err != nil {
		t.Fatalf("Price returned error: %v", err)
	}
	want := 110 - 100*math.Exp(-0.05)
	if math.Abs(call-want) > 1e-12 {
		t.Errorf("zero-vol call = %f, want %f", call, want)
	}

	put, err := Price(90, 100, 1, 0.05, 0, Put)
	if err != nil {
		t.Fatalf("Price returned error: %v", err)
	}
	want = 100*math.Exp(-0.05) - 90
	if math.Abs(put-want) > 1e-12 {
		t.Errorf("zero-vol put = %f, want %f", put, want)
	}

	// Deep discounting can push the zero-vol put value negative before the
	// clamp: the result must stay at zero, never below.
	put, err = Price(200, 100, 1, 0.05, 0, Put)
	if err != nil {
		t.Fatalf("Price returned error: %v", err)
	}
	if put != 0 {
		t.Errorf("deep OTM zero-vol put = %f, want 0", put)
	}
}

func TestExpiryConvergence(t *testing.T) {
	intrinsicValue := 5.0
	prev := math.Inf(1)
	for _, T := range []float64{0.1, 0.01, 0.001, 0.0001} {
		call, err := Price(105, 100, T, 0.05, 0.2, Call)
		if err != nil {
			t.Fatalf("Price returned error: %v", err)
		}
		if math.Abs(call-intrinsicValue) > math.Abs(prev-intrinsicValue)+1e-12 {
			t.Errorf("price at T=%v moved away from intrinsic: %f (prev %f)", T, call, prev)
		}
		prev = call
	}
}

func TestPriceNonNegative(t *testing.T) {
	for _, S := range []float64{1, 50, 100, 500} {
		for _, K := range []float64{1, 50, 100, 500} {
			for _, T := range []float64{0, 0.25, 2} {
				for _, sigma := range []float64{0, 0.05, 0.8} {
					for _, typ := range []OptionType{Call, Put} {
						p, err := Price(S, K, T, 0.03, sigma, typ)
						if err != nil {
							t.Fatalf("Price(%v,%v,%v,%v,%v) error: %v", S, K, T, sigma, typ, err)
						}
						if p < 0 || math.IsNaN(p) || math.IsInf(p, 0) {
							t.Errorf("Price(%v,%v,%v,%v,%v) = %f", S, K, T, sigma, typ, p)
						}
					}
				}
			}
		}
	}
}

func TestPriceBatchPreservesOrder(t *testing.T) {
	strikes := []float64{90, 95, 100, 105, 110}
	n := len(strikes)
	S := repeat(100, n)
	T := repeat(0.25, n)
	sigma := repeat(0.2, n)

	prices, err := PriceBatch(S, strikes, T, sigma, 0.05, Call)
	if err != nil {
		t.Fatalf("PriceBatch returned error: %v", err)
	}
	if len(prices) != n {
		t.Fatalf("got %d prices, want %d", len(prices), n)
	}

	for i := range prices {
		scalar, err := Price(S[i], strikes[i], T[i], 0.05, sigma[i], Call)
		if err != nil {
			t.Fatalf("scalar price error: %v", err)
		}
		if prices[i] != scalar {
			t.Errorf("batch[%d] = %f, scalar = %f", i, prices[i], scalar)
		}
	}

	for i := 1; i < n; i++ {
		if prices[i] > prices[i-1] {
			t.Errorf("call prices not non-increasing in strike: %v", prices)
		}
	}
}

func TestPriceBatchMixedRegimes(t *testing.T) {
	// One expired, one zero-vol, one normal; each must route through its own
	// branch independently.
	S := []float64{110, 110, 100}
	K := []float64{100, 100, 105}
	T := []float64{0, 1, 0.25}
	sigma := []float64{0.2, 0, 0.2}

	prices, err := PriceBatch(S, K, T, sigma, 0.05, Call)
	if err != nil {
		t.Fatalf("PriceBatch returned error: %v", err)
	}

	if prices[0] != 10 {
		t.Errorf("expired element = %f, want 10", prices[0])
	}
	want := 110 - 100*math.Exp(-0.05)
	if math.Abs(prices[1]-want) > 1e-12 {
		t.Errorf("zero-vol element = %f, want %f", prices[1], want)
	}
	if math.Abs(prices[2]-2.47785) > 1e-3 {
		t.Errorf("normal element = %f, want 2.47785", prices[2])
	}
}

func TestPriceBatchLengthMismatch(t *testing.T) {
	_, err := PriceBatch([]float64{100, 100}, []float64{105}, []float64{0.25, 0.25}, []float64{0.2, 0.2}, 0.05, Call)
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("got error %v, want ErrLengthMismatch", err)
	}
}

func TestPriceInvalidArguments(t *testing.T) {
	if _, err := Price(0, 100, 0.25, 0.05, 0.2, Call); !errors.Is(err, ErrNonPositiveMarket) {
		t.Errorf("S=0: got %v, want ErrNonPositiveMarket", err)
	}
	if _, err := Price(100, -5, 0.25, 0.05, 0.2, Put); !errors.Is(err, ErrNonPositiveMarket) {
		t.Errorf("K<0: got %v, want ErrNonPositiveMarket", err)
	}
	if _, err := Price(100, 100, 0.25, 0.05, 0.2, OptionType(9)); !errors.Is(err, ErrInvalidOptionType) {
		t.Errorf("bad type: got %v, want ErrInvalidOptionType", err)
	}
}

func TestD1D2(t *testing.T) {
	d1, d2 := D1D2(testS, testK, testT, testR, testSigma)
	if math.Abs(d1-(-0.3129016)) > 1e-6 {
		t.Errorf("d1 = %f, want -0.3129016", d1)
	}
	if math.Abs(d2-(d1-testSigma*math.Sqrt(testT))) > 1e-12 {
		t.Errorf("d2 = %f, want d1 - sigma*sqrt(T) = %f", d2, d1-testSigma*math.Sqrt(testT))
	}

	for _, c := range [][2]float64{{0, 0.2}, {-1, 0.2}, {0.25, 0}, {0.25, -0.5}} {
		d1, d2 := D1D2(testS, testK, c[0], testR, c[1])
		if d1 != 0 || d2 != 0 {
			t.Errorf("D1D2(T=%v, sigma=%v) = (%f, %f), want (0, 0)", c[0], c[1], d1, d2)
		}
	}
}

func TestParseOptionType(t *testing.T) {
	for s, want := range map[string]OptionType{"call": Call, "CALL": Call, "put": Put, "Put": Put} {
		got, err := ParseOptionType(s)
		if err != nil || got != want {
			t.Errorf("ParseOptionType(%q) = (%v, %v), want %v", s, got, err, want)
		}
	}

	if _, err := ParseOptionType("straddle"); !errors.Is(err, ErrInvalidOptionType) {
		t.Errorf("ParseOptionType(straddle): got %v, want ErrInvalidOptionType", err)
	}
}

func repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}
