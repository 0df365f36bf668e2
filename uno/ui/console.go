package ui

import (
	"github.com/ratel-online/unoflip/uno/event"
	"github.com/ratel-online/unoflip/uno/game"
)

// Console prints game notifications for the people at the keyboard.
type Console struct {
	started   bool
	lastPhase string
}

func NewConsole() *Console {
	return &Console{}
}

func (c *Console) OnNotification(notification event.Notification) {
	if !c.started {
		c.started = true
		Message.FirstCardPlayed(notification.TopCard)
	}
	turnStarted := notification.Phase == game.PhaseAwaitingPlay.String() && c.lastPhase != notification.Phase
	c.lastPhase = notification.Phase

	switch notification.Status {
	case event.StatusWinner:
		Println(notification.Text)
	case event.StatusStandard:
		if turnStarted {
			Message.PlayerTurnStarted(notification.PlayerName, notification.TopCard)
		}
	default:
		Message.StatusChanged(notification.PlayerName, notification.Text)
	}
}
