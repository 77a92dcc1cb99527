package europslack

import (
	"fmt"
	"strings"

	"github.com/slack-go/slack"
	"github.com/slack-go/slack/socketmode"

	"github.com/quanted/europ/pricing"
)

const greeksUsage = "Usage: /greeks <spot> <strike> <expiry_years> <rate> <volatility> <call|put>"

type GreeksHandler struct{}

func NewGreeksHandler() *GreeksHandler {
	return &GreeksHandler{}
}

func (h *GreeksHandler) HandleCommand(evt *socketmode.Event, client *socketmode.Client) error {
	data := evt.Data.(slack.SlashCommand)
	args := strings.Fields(data.Text)

	m, err := parseMarketArgs(args)
	if err != nil {
		_, _, postErr := client.PostMessage(data.ChannelID,
			slack.MsgOptionText(fmt.Sprintf("%v\n%s", err, greeksUsage), false))
		return postErr
	}

	greeks, err := pricing.All(m.S, m.K, m.T, m.R, m.Sigma, m.Type)
	if err != nil {
		_, _, postErr := client.PostMessage(data.ChannelID,
			slack.MsgOptionText(fmt.Sprintf("Greeks failed: %v", err), false))
		return postErr
	}

	msg := fmt.Sprintf(
		"Greeks for %s (S=%.2f K=%.2f T=%.4f r=%.4f sigma=%.4f):\n"+
			"Delta: %.4f\nGamma: %.4f\nVega: %.4f\nTheta: %.4f/day\nRho: %.4f",
		m.Type, m.S, m.K, m.T, m.R, m.Sigma,
		greeks.Delta, greeks.Gamma, greeks.Vega, greeks.Theta, greeks.Rho)
	_, _, err = client.PostMessage(data.ChannelID, slack.MsgOptionText(msg, false))
	return err
}
