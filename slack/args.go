package europslack

import (
	"fmt"
	"strconv"

	"github.com/quanted/europ/pricing"
)

// marketArgs is the parameter set shared by every pricing command:
// <spot> <strike> <expiry_years> <rate> <volatility> <call|put>.
type marketArgs struct {
	S, K, T, R, Sigma float64
	Type              pricing.OptionType
}

func parseMarketArgs(args []string) (marketArgs, error) {
	if len(args) < 6 {
		return marketArgs{}, fmt.Errorf("expected at least 6 arguments, got %d", len(args))
	}

	var (
		m      marketArgs
		err    error
		fields = []struct {
			name string
			dst  *float64
		}{
			{"spot", &m.S},
			{"strike", &m.K},
			{"expiry", &m.T},
			{"rate", &m.R},
			{"volatility", &m.Sigma},
		}
	)

	for i, f := range fields {
		*f.dst, err = strconv.ParseFloat(args[i], 64)
		if err != nil {
			return marketArgs{}, fmt.Errorf("invalid %s %q", f.name, args[i])
		}
	}

	m.Type, err = pricing.ParseOptionType(args[5])
	if err != nil {
		return marketArgs{}, err
	}

	return m, nil
}
