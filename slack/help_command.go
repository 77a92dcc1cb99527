package europslack

import (
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/socketmode"
)

type HelpHandler struct{}

func NewHelpHandler() *HelpHandler {
	return &HelpHandler{}
}

func (h *HelpHandler) HandleCommand(evt *socketmode.Event, client *socketmode.Client) error {
	data := evt.Data.(slack.SlashCommand)
	helpText := "Available commands:\n" +
		"/help - Show this help message\n" +
		"/price <spot> <strike> <expiry_years> <rate> <volatility> <call|put> - Black-Scholes price\n" +
		"/greeks <spot> <strike> <expiry_years> <rate> <volatility> <call|put> - Delta, Gamma, Vega, Theta, Rho\n" +
		"/mc <spot> <strike> <expiry_years> <rate> <volatility> <call|put> <n_simulations> <n_steps> [seed] - Monte Carlo estimate"

	_, _, err := client.PostMessage(data.ChannelID,
		slack.MsgOptionText(helpText, false))
	return err
}
