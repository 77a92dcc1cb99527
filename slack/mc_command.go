package europslack

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/slack-go/slack"
	"github.com/slack-go/slack/socketmode"

	"github.com/quanted/europ/simulation"
)

const mcUsage = "Usage: /mc <spot> <strike> <expiry_years> <rate> <volatility> <call|put> <n_simulations> <n_steps> [seed]"

type MCHandler struct{}

func NewMCHandler() *MCHandler {
	return &MCHandler{}
}

func (h *MCHandler) HandleCommand(evt *socketmode.Event, client *socketmode.Client) error {
	data := evt.Data.(slack.SlashCommand)
	args := strings.Fields(data.Text)

	reply := func(text string) error {
		_, _, err := client.PostMessage(data.ChannelID, slack.MsgOptionText(text, false))
		return err
	}

	if len(args) < 8 || len(args) > 9 {
		return reply(mcUsage)
	}

	m, err := parseMarketArgs(args[:6])
	if err != nil {
		return reply(fmt.Sprintf("%v\n%s", err, mcUsage))
	}

	nSims, err := strconv.Atoi(args[6])
	if err != nil {
		return reply(fmt.Sprintf("invalid n_simulations %q\n%s", args[6], mcUsage))
	}
	nSteps, err := strconv.Atoi(args[7])
	if err != nil {
		return reply(fmt.Sprintf("invalid n_steps %q\n%s", args[7], mcUsage))
	}

	pricer := simulation.New()
	if len(args) == 9 {
		seed, err := strconv.ParseUint(args[8], 10, 64)
		if err != nil {
			return reply(fmt.Sprintf("invalid seed %q\n%s", args[8], mcUsage))
		}
		pricer = simulation.NewSeeded(seed)
	}

	res, err := pricer.PriceWithConfidence(m.S, m.K, m.T, m.R, m.Sigma, m.Type, nSims, nSteps, 0.95)
	if err != nil {
		return reply(fmt.Sprintf("Simulation failed: %v", err))
	}

	return reply(fmt.Sprintf(
		"Monte Carlo %s price: %.4f +/- %.4f (95%% CI [%.4f, %.4f], %d sims, %d steps)",
		m.Type, res.Price, res.StdError, res.Interval.Lower, res.Interval.Upper, nSims, nSteps))
}
