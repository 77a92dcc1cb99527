package europslack

import (
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/socketmode"
)

type Handler struct {
	helpHandler   *HelpHandler
	priceHandler  *PriceHandler
	greeksHandler *GreeksHandler
	mcHandler     *MCHandler
}

func NewHandler() *Handler {
	return &Handler{
		helpHandler:   NewHelpHandler(),
		priceHandler:  NewPriceHandler(),
		greeksHandler: NewGreeksHandler(),
		mcHandler:     NewMCHandler(),
	}
}

func (h *Handler) Handle(evt *socketmode.Event, client *socketmode.Client) error {
	data := evt.Data.(slack.SlashCommand)
	var err error
	switch data.Command {
	case "/help":
		err = h.helpHandler.HandleCommand(evt, client)
	case "/price":
		err = h.priceHandler.HandleCommand(evt, client)
	case "/greeks":
		err = h.greeksHandler.HandleCommand(evt, client)
	case "/mc":
		err = h.mcHandler.HandleCommand(evt, client)
	}
	if err != nil {
		return err
	}

	client.Ack(*evt.Request)
	return nil
}
