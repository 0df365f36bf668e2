package ui_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ratel-online/unoflip/consts"
	"github.com/ratel-online/unoflip/uno/card"
	"github.com/ratel-online/unoflip/uno/card/color"
	"github.com/ratel-online/unoflip/uno/event"
	"github.com/ratel-online/unoflip/uno/ui"
	"github.com/stretchr/testify/assert"
)

func useConsole(input string) *bytes.Buffer {
	output := &bytes.Buffer{}
	ui.Output = output
	ui.Input = strings.NewReader(input)
	ui.Delay = 0
	return output
}

func TestPromptCardSelection(t *testing.T) {
	hand := []card.Card{card.NewNumberCard(color.Red, 1), card.NewSkipCard(color.Blue)}
	scenarios := []struct {
		description string
		input       string
		expected    int
	}{
		{"first_label", "A\n", 0},
		{"lower_case_label", "b\n", 1},
		{"draw_label", "0\n", consts.DrawCardIndex},
		{"unknown_label_then_valid", "Z\nB\n", 1},
		{"end_of_input_draws", "", consts.DrawCardIndex},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			output := useConsole(scenario.input)
			assert.Equal(t, scenario.expected, ui.PromptCardSelection(hand))
			assert.Contains(t, output.String(), "Select a card to play:")
		})
	}

	output := useConsole("Z\nA\n")
	ui.PromptCardSelection(hand)
	assert.Contains(t, output.String(), "No card assigned to 'Z'")
}

func TestPromptColor(t *testing.T) {
	useConsole("purple\ng\n")
	assert.Equal(t, color.Green, ui.PromptColor())

	useConsole("")
	assert.Equal(t, color.None, ui.PromptColor())
}

func TestPromptYesNo(t *testing.T) {
	useConsole("maybe\nyes\n")
	assert.True(t, ui.PromptYesNo("Challenge?"))

	useConsole("n\n")
	assert.False(t, ui.PromptYesNo("Challenge?"))
}

func TestPromptIntegerInRange(t *testing.T) {
	output := useConsole("9\n3\n")
	assert.Equal(t, 3, ui.PromptIntegerInRange(2, 4, "How many players?"))
	assert.Contains(t, output.String(), "Input out of range (minimum: 2, maximum: 4)")

	useConsole("")
	assert.Equal(t, 2, ui.PromptIntegerInRange(2, 4, "How many players?"))
}

func TestConsole(t *testing.T) {
	output := useConsole("")
	console := ui.NewConsole()

	console.OnNotification(event.Notification{PlayerName: "alice", TopCard: "[5]", Status: event.StatusStandard, Phase: "awaiting_play"})
	console.OnNotification(event.Notification{PlayerName: "alice", Status: event.StatusInvalidCard, Text: event.StatusInvalidCard.String(), Phase: "awaiting_play"})
	console.OnNotification(event.Notification{PlayerName: "alice", Status: event.StatusWinner, Text: event.WinnerText("alice"), Phase: "round_over"})

	printed := output.String()
	assert.Contains(t, printed, "First card is [5]")
	assert.Contains(t, printed, "alice is up, top card [5]")
	assert.Contains(t, printed, "alice: "+event.StatusInvalidCard.String())
	assert.Contains(t, printed, "WINNER: alice HAS WON!")
	assert.Equal(t, 1, strings.Count(printed, "is up"))
}
