package pricing

import "math"

// Price computes the Black-Scholes-Merton price of a European option.
//
// Expired options (T <= 0) are worth their intrinsic value; zero-volatility
// options are worth their discounted intrinsic value. In the normal regime
// the closed form applies:
//
//	call = S*Φ(d1) - K*e^(-rT)*Φ(d2)
//	put  = K*e^(-rT)*Φ(-d2) - S*Φ(-d1)
//
// The result is clamped at zero so rounding near the boundary never produces
// a negative price.
func Price(S, K, T, r, sigma float64, typ OptionType) (float64, error) {
	if err := checkMarket(S, K, typ); err != nil {
		return 0, err
	}

	switch Classify(T, sigma) {
	case Expired:
		return intrinsic(S, K, typ), nil
	case ZeroVol:
		return discountedIntrinsic(S, K, T, r, typ), nil
	}

	d1, d2 := D1D2(S, K, T, r, sigma)

	var price float64
	if typ == Call {
		price = S*stdNormal.CDF(d1) - K*math.Exp(-r*T)*stdNormal.CDF(d2)
	} else {
		price = K*math.Exp(-r*T)*stdNormal.CDF(-d2) - S*stdNormal.CDF(-d1)
	}

	return math.Max(price, 0), nil
}

// PriceBatch prices one option per element of the input slices, sharing the
// risk-free rate and option type. Each element goes through the same
// three-way regime branch as Price; the output preserves input order. The
// slices must all have the same length.
func PriceBatch(S, K, T, sigma []float64, r float64, typ OptionType) ([]float64, error) {
	if len(K) != len(S) || len(T) != len(S) || len(sigma) != len(S) {
		return nil, ErrLengthMismatch
	}

	prices := make([]float64, len(S))
	for i := range S {
		p, err := Price(S[i], K[i], T[i], r, sigma[i], typ)
		if err != nil {
			return nil, err
		}
		prices[i] = p
	}
	return prices, nil
}
