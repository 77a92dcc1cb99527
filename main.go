package main

import (
	"fmt"
	"log"
	"math"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/xhhuango/json"

	"github.com/quanted/europ/pricing"
	"github.com/quanted/europ/scan"
	"github.com/quanted/europ/simulation"
	europslack "github.com/quanted/europ/slack"
)

const demoSeed = 42

type demoReport struct {
	Spot       float64                     `json:"spot"`
	Strike     float64                     `json:"strike"`
	Expiry     float64                     `json:"expiry_years"`
	Rate       float64                     `json:"rate"`
	Volatility float64                     `json:"volatility"`
	Call       float64                     `json:"call_price"`
	Put        float64                     `json:"put_price"`
	Parity     float64                     `json:"put_call_parity_residual"`
	Greeks     pricing.Greeks              `json:"call_greeks"`
	MonteCarlo simulation.ConfidenceResult `json:"monte_carlo_call"`
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	rfr := 0.05
	if v := os.Getenv("RISK_FREE_RATE"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			log.Fatalf("invalid RISK_FREE_RATE %q: %v", v, err)
		}
		rfr = parsed
	}

	S, K, T, sigma := 100.0, 105.0, 0.25, 0.20

	report, err := buildReport(S, K, T, rfr, sigma)
	if err != nil {
		log.Fatalf("demo pricing failed: %v", err)
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Fatalf("encoding report: %v", err)
	}
	fmt.Println(string(out))

	if err := runChainScan(S, T, rfr, sigma); err != nil {
		log.Fatalf("chain scan failed: %v", err)
	}

	appToken := os.Getenv("SLACK_APP_TOKEN")
	botToken := os.Getenv("SLACK_BOT_TOKEN")
	if appToken != "" && botToken != "" {
		log.Println("Starting Slack bot")
		bot := europslack.NewSlackBot(appToken, botToken)
		if err := bot.Start(); err != nil {
			log.Fatalf("slack bot stopped: %v", err)
		}
	}
}

func buildReport(S, K, T, r, sigma float64) (*demoReport, error) {
	call, err := pricing.Price(S, K, T, r, sigma, pricing.Call)
	if err != nil {
		return nil, err
	}
	put, err := pricing.Price(S, K, T, r, sigma, pricing.Put)
	if err != nil {
		return nil, err
	}
	greeks, err := pricing.All(S, K, T, r, sigma, pricing.Call)
	if err != nil {
		return nil, err
	}

	mc, err := simulation.NewSeeded(demoSeed).
		PriceWithConfidence(S, K, T, r, sigma, pricing.Call, 100000, 1, 0.95)
	if err != nil {
		return nil, err
	}

	// call - put - S + K*e^(-rT), ~0 when the closed form is consistent.
	parity := call - put - S + K*math.Exp(-r*T)

	return &demoReport{
		Spot:       S,
		Strike:     K,
		Expiry:     T,
		Rate:       r,
		Volatility: sigma,
		Call:       call,
		Put:        put,
		Parity:     parity,
		Greeks:     greeks,
		MonteCarlo: mc,
	}, nil
}

func runChainScan(S, T, r, sigma float64) error {
	strikes := []float64{90, 95, 100, 105, 110}
	options := make([]scan.Option, len(strikes))
	for i, k := range strikes {
		options[i] = scan.Option{S: S, K: k, T: T, Sigma: sigma, Type: pricing.Call}
	}

	scanner := &scan.Scanner{
		Rate:        r,
		Simulations: 100000,
		Steps:       1,
		Seed:        demoSeed,
		Progress:    true,
	}

	results, err := scanner.Run(options)
	if err != nil {
		return err
	}

	fmt.Println("\nStrike chain (call):")
	for _, res := range results {
		fmt.Printf("  K=%.0f analytical=%.4f simulated=%.4f +/- %.4f (gap %.2f SE)\n",
			res.Option.K, res.Analytical, res.Simulated.Price, res.Simulated.StdError, res.Gap)
	}
	return nil
}
