// Package format holds the display helpers commands share: state colorizing,
// humanized times, and the validation report renderers.
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// UnixMilli returns a humanized version of time given in unix millisecond. The zeroMsg is the string returned when
// the time is 0 and assumed to be not set.
func UnixMilli(unix int64, zeroMsg string, detail bool) string {
	if unix == 0 {
		return zeroMsg
	}

	if !detail {
		return humanize.Time(time.UnixMilli(unix))
	}

	relativeTime := humanize.Time(time.UnixMilli(unix))
	realTime := time.UnixMilli(unix).Format(time.RFC850)
	return fmt.Sprintf("%s (%s)", realTime, relativeTime)
}

// NormalizeEnumValue takes a state-like enum string and turns it into a human readable,
// title cased word. Enum values that mention unknown collapse to the given fallback.
func NormalizeEnumValue(value, unknownString string) string {
	// Because of how colorizing a string works we need to
	// do the manipulations on case first or else it will not work.
	toTitle := cases.Title(language.AmericanEnglish)
	toLower := cases.Lower(language.AmericanEnglish)
	state := toTitle.String(toLower.String(value))

	if strings.Contains(strings.ToLower(state), "unknown") {
		return unknownString
	}

	return state
}

// ColorizeValidity colors a validation state string for terminal display.
func ColorizeValidity(state string) string {
	switch strings.ToUpper(state) {
	case "VALID":
		return color.GreenString(state)
	case "INVALID":
		return color.RedString(state)
	default:
		return state
	}
}

func SliceJoin(slice []string, msg string) string {
	if len(slice) == 0 {
		return msg
	}

	return strings.Join(slice, ", ")
}
