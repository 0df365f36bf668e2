package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ratel-online/unoflip/consts"
	"github.com/ratel-online/unoflip/uno/card"
	"github.com/ratel-online/unoflip/uno/card/color"
)

const drawLabel = "0"

var Input io.Reader = os.Stdin

func PromptString(message string) string {
	for {
		Println(message)
		var input string
		_, err := fmt.Fscanln(Input, &input)
		if err == io.EOF {
			return ""
		}
		if err != nil {
			Println("Invalid text input")
			continue
		}
		return input
	}
}

func promptInteger(message string) (int, error) {
	for {
		Println(message)
		var input int
		_, err := fmt.Fscanln(Input, &input)
		if err == io.EOF {
			return 0, err
		}
		if err != nil {
			Println("Invalid number input")
			continue
		}
		return input, nil
	}
}

func promptLowercaseString(message string) string {
	input := PromptString(message)
	return strings.ToLower(input)
}

func promptUppercaseString(message string) string {
	input := PromptString(message)
	return strings.ToUpper(input)
}

// PromptCardSelection returns the index of the chosen card, or
// consts.DrawCardIndex when the player asks to draw.
func PromptCardSelection(cards []card.Card) int {
	labels := labelSequence{}
	cardOptions := make(map[string]int)
	cardSelectionLines := []string{"Select a card to play:"}
	for index, card := range cards {
		label := labels.next()
		cardOptions[label] = index
		cardSelectionLines = append(cardSelectionLines, fmt.Sprintf("%s (enter %s)", card, label))
	}
	cardSelectionLines = append(cardSelectionLines, fmt.Sprintf("draw a card (enter %s)", drawLabel))
	cardSelectionMessage := strings.Join(cardSelectionLines, "\n")

	for {
		selectedLabel := promptUppercaseString(cardSelectionMessage)
		if selectedLabel == drawLabel || selectedLabel == "" {
			return consts.DrawCardIndex
		}
		selectedIndex, found := cardOptions[selectedLabel]
		if !found {
			Printfln("No card assigned to '%s'", selectedLabel)
			continue
		}
		return selectedIndex
	}
}

func PromptColor() color.Color {
	colorMessage := fmt.Sprintf(
		"Select a color: '%s', '%s', '%s' or '%s'?",
		color.Red,
		color.Yellow,
		color.Green,
		color.Blue,
	)
	for {
		colorName := promptLowercaseString(colorMessage)
		if colorName == "" {
			return color.None
		}
		chosenColor, err := color.ByName(colorName)
		if err != nil {
			Printfln("Unknown color '%s'", colorName)
			continue
		}
		return chosenColor
	}
}

func PromptYesNo(message string) bool {
	for {
		switch promptLowercaseString(message + " (y/n)") {
		case "y", "yes":
			return true
		case "n", "no", "":
			return false
		default:
			Println("Please answer 'y' or 'n'")
		}
	}
}

func PromptIntegerInRange(minimum int, maximum int, message string) int {
	for {
		input, err := promptInteger(message)
		if err != nil {
			return minimum
		}
		if input < minimum || input > maximum {
			Printfln("Input out of range (minimum: %d, maximum: %d)", minimum, maximum)
			continue
		}
		return input
	}
}
