package game

import (
	"github.com/ratel-online/unoflip/uno/card/color"
)

// Agent takes the decisions of one seat: a bot or a human behind a UI.
type Agent interface {
	Name() string
	// Play returns a hand index, or consts.DrawCardIndex to draw.
	Play(view View) int
	PickColor(view View) color.Color
	Challenge(view View) bool
}
