package simulation

// Result is the outcome of one Monte Carlo pricing run: the sample mean of
// the discounted payoffs and the standard error of that mean. Degenerate
// inputs (expired or zero-volatility options) produce the deterministic
// closed-form value with a zero standard error.
type Result struct {
	Price    float64 `json:"price"`
	StdError float64 `json:"standard_error"`
}

// Interval is a two-sided confidence interval around the estimated price.
type Interval struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// ConfidenceResult extends Result with a normal-approximation confidence
// interval, valid asymptotically by the central limit theorem.
type ConfidenceResult struct {
	Result
	Interval Interval `json:"confidence_interval"`
}
