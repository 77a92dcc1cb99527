package europslack

import (
	"fmt"
	"strings"

	"github.com/slack-go/slack"
	"github.com/slack-go/slack/socketmode"

	"github.com/quanted/europ/pricing"
)

const priceUsage = "Usage: /price <spot> <strike> <expiry_years> <rate> <volatility> <call|put>"

type PriceHandler struct{}

func NewPriceHandler() *PriceHandler {
	return &PriceHandler{}
}

func (h *PriceHandler) HandleCommand(evt *socketmode.Event, client *socketmode.Client) error {
	data := evt.Data.(slack.SlashCommand)
	args := strings.Fields(data.Text)

	m, err := parseMarketArgs(args)
	if err != nil {
		_, _, postErr := client.PostMessage(data.ChannelID,
			slack.MsgOptionText(fmt.Sprintf("%v\n%s", err, priceUsage), false))
		return postErr
	}

	price, err := pricing.Price(m.S, m.K, m.T, m.R, m.Sigma, m.Type)
	if err != nil {
		_, _, postErr := client.PostMessage(data.ChannelID,
			slack.MsgOptionText(fmt.Sprintf("Pricing failed: %v", err), false))
		return postErr
	}

	msg := fmt.Sprintf("Black-Scholes %s price: %.4f (S=%.2f K=%.2f T=%.4f r=%.4f sigma=%.4f)",
		m.Type, price, m.S, m.K, m.T, m.R, m.Sigma)
	_, _, err = client.PostMessage(data.ChannelID, slack.MsgOptionText(msg, false))
	return err
}
