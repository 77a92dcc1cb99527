package pricing

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// stdNormal provides the standard normal CDF, density and quantile used
// throughout the model.
var stdNormal = distuv.Normal{Mu: 0, Sigma: 1}

// Regime classifies a parameter set into one of the three valuation branches
// shared by the analytical, Greeks and simulation engines. Degenerate inputs
// must never reach the normal-case formulas, which divide by sigma*sqrt(T).
type Regime uint8

const (
	// Expired: T <= 0, only intrinsic value remains.
	Expired = Regime(iota)
	// ZeroVol: sigma <= 0 with time remaining, the forward is deterministic.
	ZeroVol
	// Normal: the Black-Scholes formulas apply.
	Normal
)

// Classify returns the valuation regime for a time-to-expiry and volatility.
func Classify(T, sigma float64) Regime {
	if T <= 0 {
		return Expired
	}
	if sigma <= 0 {
		return ZeroVol
	}
	return Normal
}

// D1D2 computes the d1 and d2 quantities of the Black-Scholes formula.
// Degenerate regimes return (0, 0) so callers never see NaN or Inf from the
// log/sqrt singularities.
func D1D2(S, K, T, r, sigma float64) (float64, float64) {
	if Classify(T, sigma) != Normal {
		return 0, 0
	}
	d1 := (math.Log(S/K) + (r+0.5*sigma*sigma)*T) / (sigma * math.Sqrt(T))
	d2 := d1 - sigma*math.Sqrt(T)
	return d1, d2
}

// NormQuantile exposes the standard normal quantile function, used by the
// simulation package for confidence intervals.
func NormQuantile(p float64) float64 {
	return stdNormal.Quantile(p)
}

// intrinsic is the exercise value of an already-expired option.
func intrinsic(S, K float64, typ OptionType) float64 {
	if typ == Call {
		return math.Max(S-K, 0)
	}
	return math.Max(K-S, 0)
}

// discountedIntrinsic is the deterministic value under zero volatility: the
// strike is discounted over the remaining time, nothing else moves.
func discountedIntrinsic(S, K, T, r float64, typ OptionType) float64 {
	if typ == Call {
		return math.Max(S-K*math.Exp(-r*T), 0)
	}
	return math.Max(K*math.Exp(-r*T)-S, 0)
}
