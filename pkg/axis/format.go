package axis

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/matzehuels/axisticks/pkg/scale"
)

// DefaultMaxLabelLength is the display width budget of a tick label.
const DefaultMaxLabelLength = 16

// truncationMarker is appended to labels cut by TrimLabel.
const truncationMarker = "..."

// Formatter turns a domain value into label text.
type Formatter func(any) string

// resolveFormatter picks the caller's formatter, then the scale's default
// bound to args, then the value's default textual form.
func resolveFormatter(custom Formatter, s scale.Scale, args []any) Formatter {
	if custom != nil {
		return custom
	}
	if tf, ok := s.(scale.TickFormatter); ok {
		if f := tf.TickFormat(args...); f != nil {
			return f
		}
	}
	return identity
}

func identity(v any) string {
	return fmt.Sprint(v)
}

// TrimLabel trims surrounding whitespace and cuts labels wider than budget
// display cells, appending "...". The budget bounds the kept text, not the
// marker, so a trimmed label is budget+3 cells wide. Wide runes (CJK)
// count as two cells. A budget of zero or less uses DefaultMaxLabelLength.
func TrimLabel(s string, budget int) string {
	if budget <= 0 {
		budget = DefaultMaxLabelLength
	}
	s = strings.TrimSpace(s)
	if runewidth.StringWidth(s) <= budget {
		return s
	}
	return runewidth.Truncate(s, budget, "") + truncationMarker
}
