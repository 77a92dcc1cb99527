// Package simulation estimates European option prices by Monte Carlo
// simulation of terminal asset prices under geometric Brownian motion.
package simulation

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"sync"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"

	"github.com/quanted/europ/pricing"
)

var (
	// ErrInvalidSimCount is returned when n_simulations is not positive.
	ErrInvalidSimCount = errors.New("number of simulations must be positive")

	// ErrInvalidStepCount is returned when n_steps is not positive.
	ErrInvalidStepCount = errors.New("number of steps must be positive")

	// ErrInvalidConfidence is returned when the confidence level is outside (0, 1).
	ErrInvalidConfidence = errors.New("confidence level must be in (0, 1)")
)

// seedGamma spaces the derived per-option seeds of a batch run so that each
// option draws from an independent stream (Weyl sequence increment).
const seedGamma = 0x9e3779b97f4a7c15

// rngPool hands out generators for unseeded runs so concurrent pricers do
// not contend on a single source.
var rngPool = sync.Pool{
	New: func() interface{} {
		return rand.New(rand.NewSource(uint64(rand.Int63())))
	},
}

// Pricer estimates option prices by simulating terminal prices under
// geometric Brownian motion. A seeded Pricer owns its reproducibility: every
// call derives a fresh generator from the seed, so identical calls produce
// bit-identical results and concurrent calls never share a generator.
type Pricer struct {
	seed   uint64
	seeded bool
}

// New returns a Pricer whose draws come from a pooled, non-deterministic
// random source.
func New() *Pricer {
	return &Pricer{}
}

// NewSeeded returns a Pricer whose every call is reproducible from seed.
func NewSeeded(seed uint64) *Pricer {
	return &Pricer{seed: seed, seeded: true}
}

// rng returns the generator for one call and a release function to be called
// when sampling is done.
func (p *Pricer) rng() (*rand.Rand, func()) {
	if p.seeded {
		return rand.New(rand.NewSource(p.seed)), func() {}
	}
	rng := rngPool.Get().(*rand.Rand)
	return rng, func() { rngPool.Put(rng) }
}

// Price estimates the option price from nSims simulated terminal prices.
//
// With nSteps == 1 each terminal price is drawn directly:
//
//	S_T = S * exp((r - sigma^2/2)*T + sigma*sqrt(T)*Z)
//
// With nSteps > 1 the log-price accumulates drift and shock per step of
// dt = T/nSteps, which keeps the discretization usable for path-dependent
// payoffs even though only the terminal value is consumed here.
//
// Expired and zero-volatility options short-circuit to the closed-form value
// with zero standard error; the sampler is never invoked when the answer is
// deterministic.
func (p *Pricer) Price(S, K, T, r, sigma float64, typ pricing.OptionType, nSims, nSteps int) (Result, error) {
	if err := pricing.ValidateMarket(S, K, typ); err != nil {
		return Result{}, err
	}
	if nSims <= 0 {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidSimCount, nSims)
	}
	if nSteps <= 0 {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidStepCount, nSteps)
	}

	if pricing.Classify(T, sigma) != pricing.Normal {
		price, err := pricing.Price(S, K, T, r, sigma, typ)
		if err != nil {
			return Result{}, err
		}
		return Result{Price: price}, nil
	}

	rng, release := p.rng()
	defer release()

	discount := math.Exp(-r * T)
	discounted := make([]float64, nSims)

	if nSteps == 1 {
		drift := (r - 0.5*sigma*sigma) * T
		shock := sigma * math.Sqrt(T)
		for i := range discounted {
			sT := S * math.Exp(drift+shock*rng.NormFloat64())
			discounted[i] = discount * payoff(sT, K, typ)
		}
	} else {
		dt := T / float64(nSteps)
		drift := (r - 0.5*sigma*sigma) * dt
		shock := sigma * math.Sqrt(dt)
		for i := range discounted {
			logST := math.Log(S)
			for step := 0; step < nSteps; step++ {
				logST += drift + shock*rng.NormFloat64()
			}
			discounted[i] = discount * payoff(math.Exp(logST), K, typ)
		}
	}

	res := Result{Price: stat.Mean(discounted, nil)}
	if nSims > 1 {
		res.StdError = stat.StdDev(discounted, nil) / math.Sqrt(float64(nSims))
	}
	return res, nil
}

// PriceWithConfidence estimates the price and wraps it in a normal-
// approximation confidence interval at the given level, e.g. 0.95.
func (p *Pricer) PriceWithConfidence(S, K, T, r, sigma float64, typ pricing.OptionType, nSims, nSteps int, level float64) (ConfidenceResult, error) {
	if level <= 0 || level >= 1 {
		return ConfidenceResult{}, fmt.Errorf("%w: %v", ErrInvalidConfidence, level)
	}

	res, err := p.Price(S, K, T, r, sigma, typ, nSims, nSteps)
	if err != nil {
		return ConfidenceResult{}, err
	}

	margin := pricing.NormQuantile((1+level)/2) * res.StdError
	return ConfidenceResult{
		Result: res,
		Interval: Interval{
			Lower: res.Price - margin,
			Upper: res.Price + margin,
		},
	}, nil
}

// PriceBatch estimates one option per element of the input slices, sharing
// the rate, option type and simulation sizes. Options are simulated
// independently and in parallel; a seeded Pricer derives a distinct seed per
// option so batch results stay reproducible regardless of scheduling. Both
// output slices preserve input order.
func (p *Pricer) PriceBatch(S, K, T, sigma []float64, r float64, typ pricing.OptionType, nSims, nSteps int) ([]float64, []float64, error) {
	if len(K) != len(S) || len(T) != len(S) || len(sigma) != len(S) {
		return nil, nil, pricing.ErrLengthMismatch
	}

	prices := make([]float64, len(S))
	stdErrors := make([]float64, len(S))
	errs := make([]error, len(S))

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, runtime.GOMAXPROCS(0))

	for i := range S {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			res, err := p.forElement(i).Price(S[i], K[i], T[i], r, sigma[i], typ, nSims, nSteps)
			if err != nil {
				errs[i] = err
				return
			}
			prices[i] = res.Price
			stdErrors[i] = res.StdError
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, nil, err
		}
	}
	return prices, stdErrors, nil
}

// forElement returns the pricer owning element i of a batch: an
// independently seeded stream for seeded pricers, the shared pool otherwise.
func (p *Pricer) forElement(i int) *Pricer {
	if !p.seeded {
		return p
	}
	return NewSeeded(p.seed + seedGamma*uint64(i+1))
}

func payoff(sT, K float64, typ pricing.OptionType) float64 {
	if typ == pricing.Call {
		return math.Max(sT-K, 0)
	}
	return math.Max(K-sT, 0)
}
