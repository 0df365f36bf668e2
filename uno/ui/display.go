package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ratel-online/unoflip/consts"
	"github.com/ratel-online/unoflip/uno/card/color"
)

var (
	Output io.Writer = color.Stdout
	// Delay paces the console so bot moves stay readable.
	Delay = consts.ConsoleDelay
)

func Printfln(format string, args ...interface{}) {
	Println(fmt.Sprintf(format, args...))
}

func Printlns(lines []string) {
	Println(strings.Join(lines, "\n"))
}

func Println(args ...interface{}) {
	fmt.Fprintln(Output, args...)
	if Delay > 0 {
		time.Sleep(Delay)
	}
}
