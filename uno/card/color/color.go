package color

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Color is the suit of a card. None is only carried by wild cards until a
// colour has been chosen for them.
type Color int

const (
	None Color = iota
	Red
	Yellow
	Green
	Blue
)

// All lists the four playable colours in deck order.
var All = []Color{Red, Yellow, Green, Blue}

var Stdout io.Writer = color.Output

var names = map[Color]string{
	None:   "none",
	Red:    "red",
	Yellow: "yellow",
	Green:  "green",
	Blue:   "blue",
}

var painters = map[Color]func(string, ...interface{}) string{
	Red:    color.New(color.FgHiRed).SprintfFunc(),
	Yellow: color.New(color.FgHiYellow).SprintfFunc(),
	Green:  color.New(color.FgHiGreen).SprintfFunc(),
	Blue:   color.New(color.FgHiCyan).SprintfFunc(),
}

func (c Color) Name() string {
	if name, ok := names[c]; ok {
		return name
	}
	return fmt.Sprintf("color(%d)", int(c))
}

func (c Color) Paint(text string) string {
	return c.Paintf("%s", text)
}

func (c Color) Paintf(format string, args ...interface{}) string {
	painter, ok := painters[c]
	if !ok {
		return fmt.Sprintf(format, args...)
	}
	return painter(format, args...)
}

func (c Color) String() string {
	return c.Paint(strings.ToUpper(c.Name()))
}

func ByName(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, c := range All {
		if names[c] == name || names[c][:1] == name {
			return c, nil
		}
	}
	return None, fmt.Errorf("invalid color '%s'", name)
}
