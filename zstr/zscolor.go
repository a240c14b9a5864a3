package zstr

import "strings"

const (
	EscBlack   = "\x1B[30m"
	EscRed     = "\x1B[31m"
	EscGreen   = "\x1B[32m"
	EscYellow  = "\x1B[33m"
	EscBlue    = "\x1B[34m"
	EscMagenta = "\x1B[35m"
	EscCyan    = "\x1B[36m"
	EscWhite   = "\x1B[37m"
	EscNoColor = "\x1b[0m"
)

var ColorRemover = strings.NewReplacer(
	EscBlack, "",
	EscRed, "",
	EscGreen, "",
	EscYellow, "",
	EscBlue, "",
	EscMagenta, "",
	EscCyan, "",
	EscWhite, "",
	EscNoColor, "",
)

var colorSetter = strings.NewReplacer(
	"🟥", EscRed,
	"🟩", EscGreen,
	"🟨", EscYellow,
	"🟦", EscBlue,
	"🟪", EscMagenta,
	"🔵", EscCyan,
)

// EscapeColorSymbols replaces color square emojis with terminal escape codes.
func EscapeColorSymbols(str string) (string, bool) {
	out := colorSetter.Replace(str)
	return out, out != str
}
