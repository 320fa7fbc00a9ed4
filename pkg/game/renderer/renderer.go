// Package renderer formats the command line's user-facing output: colour
// styles and a small markup for translated and highlighted words.
package renderer

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
)

var (
	ColorAction      color.Style
	ColorActionShort color.Style
	ColorDenied      color.Style
	ColorItem        color.Style
	ColorSubtle      color.Style

	regexpStringFunctions = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:-]+)}`)
)

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since we intentionally look up translation keys dynamically from markup.
var dynamicGet = gotext.Get

func init() {
	InitColors()
}

// InitColors initializes the color styles
func InitColors() {
	ColorAction = color.Style{color.FgMagenta}
	ColorActionShort = color.Style{color.FgMagenta, color.OpBold}
	ColorDenied = color.Style{color.FgRed, color.OpBold}
	ColorItem = color.Style{color.FgGreen, color.OpBold}
	ColorSubtle = color.Style{color.FgGray, color.OpBold}
}

// FormatString formats a string, then expands markup of the form FN{operand}:
// GT translates a key, ITEM and DENIED highlight, SUBTLE dims and ACTION
// bolds the first letter.
func FormatString(msg string, a ...any) string {
	ret := fmt.Sprintf(msg, a...)

	matches := regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		var val string

		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "ITEM":
			val = ColorItem.Sprint(operand)
		case "DENIED":
			val = ColorDenied.Sprint(operand)
		case "SUBTLE":
			val = ColorSubtle.Sprint(operand)
		case "ACTION":
			val = ColorActionShort.Sprint(operand[0:1]) + ColorAction.Sprint(operand[1:])
		default:
			return fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// FprintString writes a formatted string to w
func FprintString(w io.Writer, msg string, a ...any) {
	fmt.Fprint(w, FormatString(msg, a...))
}

// PrintString prints a formatted string
func PrintString(msg string, a ...any) {
	FprintString(os.Stdout, msg, a...)
}

// FprintBullet writes a bulleted item to w
func FprintBullet(w io.Writer, txt string) {
	fmt.Fprint(w, "- "+FormatString("%s", txt)+"\n")
}

// PrintBullet prints a bulleted item
func PrintBullet(txt string) {
	FprintBullet(os.Stdout, txt)
}
