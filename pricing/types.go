// Package pricing implements closed-form Black-Scholes-Merton valuation and
// analytical Greeks for European call and put options.
package pricing

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidOptionType is returned when the option type discriminant is
	// neither Call nor Put.
	ErrInvalidOptionType = errors.New("invalid option type")

	// ErrNonPositiveMarket is returned when spot or strike is not strictly
	// positive, which puts ln(S/K) outside its domain.
	ErrNonPositiveMarket = errors.New("spot and strike must be positive")

	// ErrLengthMismatch is returned by batch operations when the input slices
	// do not all have the same length.
	ErrLengthMismatch = errors.New("batch inputs must have equal length")
)

// OptionType selects between the call and put branches of the model.
type OptionType uint8

const (
	Call = OptionType(1)
	Put  = OptionType(2)
)

// ParseOptionType maps the strings "call" and "put" (case-insensitive) to
// their OptionType. Anything else is an invalid argument.
func ParseOptionType(s string) (OptionType, error) {
	switch strings.ToLower(s) {
	case "call":
		return Call, nil
	case "put":
		return Put, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidOptionType, s)
}

func (t OptionType) String() string {
	switch t {
	case Call:
		return "call"
	case Put:
		return "put"
	}
	return fmt.Sprintf("OptionType(%d)", uint8(t))
}

func (t OptionType) valid() bool {
	return t == Call || t == Put
}

// ValidateMarket checks the preconditions shared by every engine: a known
// option type and strictly positive spot and strike. The simulation engine
// applies the same preconditions before sampling.
func ValidateMarket(S, K float64, typ OptionType) error {
	return checkMarket(S, K, typ)
}

// checkMarket validates the preconditions shared by every engine: a known
// option type and strictly positive spot and strike.
func checkMarket(S, K float64, typ OptionType) error {
	if !typ.valid() {
		return fmt.Errorf("%w: %d", ErrInvalidOptionType, uint8(typ))
	}
	if S <= 0 || K <= 0 {
		return fmt.Errorf("%w: S=%v K=%v", ErrNonPositiveMarket, S, K)
	}
	return nil
}
