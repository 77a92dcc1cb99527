package pricing

import "math"

// Greeks holds the five first-order sensitivities of an option price.
// Theta is quoted per calendar day; Vega and Rho are per unit of volatility
// and rate respectively (not rescaled to 1%).
type Greeks struct {
	Delta float64 `json:"delta"`
	Gamma float64 `json:"gamma"`
	Vega  float64 `json:"vega"`
	Theta float64 `json:"theta"`
	Rho   float64 `json:"rho"`
}

// Delta is the sensitivity of the option price to the spot price.
// At expiry it collapses to the exercise indicator: 1 (call) or -1 (put)
// when the option finishes in the money, 0 otherwise.
func Delta(S, K, T, r, sigma float64, typ OptionType) (float64, error) {
	if err := checkMarket(S, K, typ); err != nil {
		return 0, err
	}

	switch Classify(T, sigma) {
	case Expired:
		if typ == Call {
			if S > K {
				return 1, nil
			}
			return 0, nil
		}
		if S < K {
			return -1, nil
		}
		return 0, nil
	case ZeroVol:
		return 0, nil
	}

	d1, _ := D1D2(S, K, T, r, sigma)
	if typ == Call {
		return stdNormal.CDF(d1), nil
	}
	return -stdNormal.CDF(-d1), nil
}

// Gamma is the sensitivity of Delta to the spot price. It is identical for
// calls and puts and zero in both degenerate regimes.
func Gamma(S, K, T, r, sigma float64) (float64, error) {
	if err := checkMarket(S, K, Call); err != nil {
		return 0, err
	}
	if Classify(T, sigma) != Normal {
		return 0, nil
	}

	d1, _ := D1D2(S, K, T, r, sigma)
	return stdNormal.Prob(d1) / (S * sigma * math.Sqrt(T)), nil
}

// Vega is the sensitivity of the option price to volatility, per unit of
// volatility. Identical for calls and puts.
func Vega(S, K, T, r, sigma float64) (float64, error) {
	if err := checkMarket(S, K, Call); err != nil {
		return 0, err
	}
	if Classify(T, sigma) != Normal {
		return 0, nil
	}

	d1, _ := D1D2(S, K, T, r, sigma)
	return S * stdNormal.Prob(d1) * math.Sqrt(T), nil
}

// Theta is the time decay of the option price, quoted per calendar day
// (the annualized derivative divided by 365).
func Theta(S, K, T, r, sigma float64, typ OptionType) (float64, error) {
	if err := checkMarket(S, K, typ); err != nil {
		return 0, err
	}
	if Classify(T, sigma) != Normal {
		return 0, nil
	}

	d1, d2 := D1D2(S, K, T, r, sigma)
	term1 := -(S * stdNormal.Prob(d1) * sigma) / (2 * math.Sqrt(T))

	var term2 float64
	if typ == Call {
		term2 = -r * K * math.Exp(-r*T) * stdNormal.CDF(d2)
	} else {
		term2 = r * K * math.Exp(-r*T) * stdNormal.CDF(-d2)
	}

	return (term1 + term2) / 365.0, nil
}

// Rho is the sensitivity of the option price to the risk-free rate, per unit
// of rate.
func Rho(S, K, T, r, sigma float64, typ OptionType) (float64, error) {
	if err := checkMarket(S, K, typ); err != nil {
		return 0, err
	}
	if Classify(T, sigma) != Normal {
		return 0, nil
	}

	_, d2 := D1D2(S, K, T, r, sigma)
	if typ == Call {
		return K * T * math.Exp(-r*T) * stdNormal.CDF(d2), nil
	}
	return -K * T * math.Exp(-r*T) * stdNormal.CDF(-d2), nil
}

// All computes the five Greeks with a single shared d1/d2 evaluation.
func All(S, K, T, r, sigma float64, typ OptionType) (Greeks, error) {
	if err := checkMarket(S, K, typ); err != nil {
		return Greeks{}, err
	}

	switch Classify(T, sigma) {
	case Expired:
		g := Greeks{}
		if typ == Call && S > K {
			g.Delta = 1
		} else if typ == Put && S < K {
			g.Delta = -1
		}
		return g, nil
	case ZeroVol:
		return Greeks{}, nil
	}

	d1, d2 := D1D2(S, K, T, r, sigma)
	pdfD1 := stdNormal.Prob(d1)
	sqrtT := math.Sqrt(T)
	discK := K * math.Exp(-r*T)

	g := Greeks{
		Gamma: pdfD1 / (S * sigma * sqrtT),
		Vega:  S * pdfD1 * sqrtT,
	}

	term1 := -(S * pdfD1 * sigma) / (2 * sqrtT)
	if typ == Call {
		g.Delta = stdNormal.CDF(d1)
		g.Theta = (term1 - r*discK*stdNormal.CDF(d2)) / 365.0
		g.Rho = discK * T * stdNormal.CDF(d2)
	} else {
		g.Delta = -stdNormal.CDF(-d1)
		g.Theta = (term1 + r*discK*stdNormal.CDF(-d2)) / 365.0
		g.Rho = -discK * T * stdNormal.CDF(-d2)
	}

	return g, nil
}
