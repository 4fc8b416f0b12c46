package color

import (
	"fmt"
	"os"
	"strings"
)

const (
	Reset = "\033[0m"
	Bold  = "\033[1m"

	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
	Gray   = "\033[90m"

	BrightRed = "\033[91m"
)

var colorEnabled = true

func init() {
	if os.Getenv("NO_COLOR") != "" || !isTerminal() {
		colorEnabled = false
	}
}

func isTerminal() bool {
	term := os.Getenv("TERM")
	return term != "" && term != "dumb"
}

func EnableColor(enable bool) {
	colorEnabled = enable
}

func IsColorEnabled() bool {
	return colorEnabled
}

func Colorize(color, text string) string {
	if !colorEnabled {
		return text
	}
	return color + text + Reset
}

func RedText(text string) string {
	return Colorize(Red, text)
}

func BrightRedText(text string) string {
	return Colorize(BrightRed, text)
}

func GreenText(text string) string {
	return Colorize(Green, text)
}

func YellowText(text string) string {
	return Colorize(Yellow, text)
}

func CyanText(text string) string {
	return Colorize(Cyan, text)
}

func GrayText(text string) string {
	return Colorize(Gray, text)
}

func BoldText(text string) string {
	return Colorize(Bold, text)
}

// Diagnostic renders a failed line and its message in the layout the front end uses:
//
//	Anweisung: <line>
//	Fehlermeldung: <message>
func Diagnostic(action, message string) string {
	if !colorEnabled {
		return fmt.Sprintf("Anweisung: %s\nFehlermeldung: %s", action, message)
	}

	return fmt.Sprintf("%s %s\n%s %s",
		BoldText("Anweisung:"),
		YellowText(action),
		BrightRedText(BoldText("Fehlermeldung:")),
		message)
}

// Interrupted is shown when a program was stopped from outside
func Interrupted() string {
	return YellowText("Execution interrupted")
}

// Success is shown for a program that ran to the end
func Success(message string) string {
	return GreenText("OK: ") + message
}

// Variables renders "name = value" lines with the names highlighted
func Variables(lines string) string {
	if !colorEnabled || lines == "" {
		return lines
	}

	var sb strings.Builder
	for _, line := range strings.SplitAfter(lines, "\n") {
		name, rest, ok := strings.Cut(line, " = ")
		if !ok {
			sb.WriteString(line)
			continue
		}
		sb.WriteString(CyanText(name) + GrayText(" = ") + rest)
	}
	return sb.String()
}
