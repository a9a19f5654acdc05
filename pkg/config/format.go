package config

import (
	"fmt"
	"strings"

	"github.com/matzehuels/axisticks/pkg/axis"
	"github.com/matzehuels/axisticks/pkg/errors"
	"github.com/matzehuels/axisticks/pkg/scale"
)

// Formatter builds a label formatter from a printf format holding exactly
// one verb, such as "%.1f%%" or "$%d". Numeric values are converted to
// the type the verb expects, so "%d" works with float ticks and "%.2f"
// with integer ones.
func Formatter(format string) (axis.Formatter, error) {
	verb, err := singleVerb(format)
	if err != nil {
		return nil, err
	}
	f := func(v any) string {
		if n, ok := scale.ToFloat(v); ok {
			switch verb {
			case 'd', 'x', 'X', 'o', 'b':
				v = int64(n)
			case 'e', 'E', 'f', 'F', 'g', 'G':
				v = n
			}
		}
		return fmt.Sprintf(format, v)
	}
	var sample any = 1.0
	if verb == 's' || verb == 'q' {
		sample = "x"
	}
	if probe := f(sample); strings.Contains(probe, "%!") {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "format %q cannot render tick values (%s)", format, probe)
	}
	return f, nil
}

// singleVerb returns the only verb of format, skipping literal "%%".
func singleVerb(format string) (rune, error) {
	var verb rune
	count := 0
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			continue
		}
		j := i + 1
		for j < len(format) && strings.IndexByte("+-# 0123456789.", format[j]) >= 0 {
			j++
		}
		if j == len(format) {
			return 0, errors.New(errors.ErrCodeInvalidFormat, "format %q ends inside a verb", format)
		}
		if format[j] != '%' {
			verb = rune(format[j])
			count++
		}
		i = j
	}
	if count != 1 {
		return 0, errors.New(errors.ErrCodeInvalidFormat, "format %q must contain exactly one verb (found %d)", format, count)
	}
	return verb, nil
}
