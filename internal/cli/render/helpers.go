package render

import (
	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	labelStyle   = color.New(color.Faint)
	addressStyle = color.New(color.FgCyan)
	valueStyle   = color.New(color.FgWhite)
	linkStyle    = color.New(color.FgBlue, color.Underline)
	headerStyle  = color.New(color.Bold, color.FgHiWhite)
)

var numbers = message.NewPrinter(language.English)

// FormatSuccess formats a success message with the success icon
func FormatSuccess(message string) string {
	return color.New(color.FgGreen).Sprintf("✅ %s", message)
}

// FormatCount formats n with thousands separators
func FormatCount[N ~int | ~uint64](n N) string {
	return numbers.Sprintf("%d", n)
}
