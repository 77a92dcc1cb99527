package scan

import (
	"math"
	"testing"

	"github.com/quanted/europ/pricing"
)

func TestRunPreservesOrderAndMatchesAnalytical(t *testing.T) {
	strikes := []float64{90, 95, 100, 105, 110}
	options := make([]Option, len(strikes))
	for i, k := range strikes {
		options[i] = Option{S: 100, K: k, T: 0.25, Sigma: 0.2, Type: pricing.Call}
	}

	scanner := &Scanner{
		Rate:        0.05,
		Simulations: 20000,
		Steps:       1,
		Seed:        42,
	}

	results, err := scanner.Run(options)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(results) != len(options) {
		t.Fatalf("got %d results, want %d", len(results), len(options))
	}

	for i, res := range results {
		if res.Option.K != strikes[i] {
			t.Errorf("result %d has strike %v, want %v", i, res.Option.K, strikes[i])
		}

		want, perr := pricing.Price(100, strikes[i], 0.25, 0.05, 0.2, pricing.Call)
		if perr != nil {
			t.Fatalf("analytical price error: %v", perr)
		}
		if res.Analytical != want {
			t.Errorf("result %d analytical = %f, want %f", i, res.Analytical, want)
		}

		if res.Simulated.StdError <= 0 {
			t.Errorf("result %d has no sampling error: %+v", i, res.Simulated)
		}
		if res.Gap > 6 {
			t.Errorf("result %d gap = %.1f standard errors", i, res.Gap)
		}
	}
}

func TestRunIsReproducible(t *testing.T) {
	options := []Option{
		{S: 100, K: 100, T: 0.5, Sigma: 0.3, Type: pricing.Put},
		{S: 100, K: 120, T: 0.5, Sigma: 0.3, Type: pricing.Put},
	}
	scanner := &Scanner{Rate: 0.02, Simulations: 10000, Steps: 1, Seed: 7}

	first, err := scanner.Run(options)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	second, err := scanner.Run(options)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	for i := range first {
		if first[i].Simulated != second[i].Simulated {
			t.Errorf("result %d not reproducible: %+v vs %+v", i, first[i].Simulated, second[i].Simulated)
		}
	}
}

func TestRunDegenerateChain(t *testing.T) {
	options := []Option{
		{S: 110, K: 100, T: 0, Sigma: 0.2, Type: pricing.Call},
		{S: 110, K: 100, T: 1, Sigma: 0, Type: pricing.Call},
	}
	scanner := &Scanner{Rate: 0.05, Simulations: 1000, Steps: 1, Seed: 1}

	results, err := scanner.Run(options)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if results[0].Simulated.Price != 10 || results[0].Simulated.StdError != 0 {
		t.Errorf("expired option = %+v", results[0].Simulated)
	}
	want := 110 - 100*math.Exp(-0.05)
	if math.Abs(results[1].Simulated.Price-want) > 1e-12 || results[1].Simulated.StdError != 0 {
		t.Errorf("zero-vol option = %+v, want price %f", results[1].Simulated, want)
	}
	for i, res := range results {
		if res.Gap != 0 {
			t.Errorf("degenerate result %d gap = %f, want 0", i, res.Gap)
		}
	}
}

func TestRunRejectsInvalidOption(t *testing.T) {
	options := []Option{{S: -1, K: 100, T: 0.25, Sigma: 0.2, Type: pricing.Call}}
	scanner := &Scanner{Rate: 0.05, Simulations: 100, Steps: 1}

	if _, err := scanner.Run(options); err == nil {
		t.Fatal("expected error for non-positive spot")
	}
}

func TestRunEmptyChain(t *testing.T) {
	scanner := &Scanner{Rate: 0.05, Simulations: 100, Steps: 1}
	results, err := scanner.Run(nil)
	if err != nil || results != nil {
		t.Fatalf("empty chain: got (%v, %v), want (nil, nil)", results, err)
	}
}
