package tokenizer

import (
	"errors"
	"regexp"

	"github.com/spyysalo/tweak-conll/types"
)

var ErrRoundTrip = errors.New("line does not survive split and rejoin")

// ASCII whitespace with \v, the information separators, NEL and the Unicode
// separator categories.
var whitespace = regexp.MustCompile(`[\t\n\v\f\r \x{1c}-\x{1f}\x{85}\p{Z}]+`)

// SplitLine splits line into fields and the whitespace runs between them.
// Leading or trailing whitespace produces an empty first or last field, so
// there is always one run fewer than fields.
func SplitLine(line string) (types.Line, error) {
	runs := whitespace.FindAllStringIndex(line, -1)

	fields := make([]string, 0, len(runs)+1)
	spaces := make([]string, 0, len(runs))

	last := 0
	for _, run := range runs {
		fields = append(fields, line[last:run[0]])
		spaces = append(spaces, line[run[0]:run[1]])
		last = run[1]
	}
	fields = append(fields, line[last:])

	result := types.Line{Fields: fields, Spaces: spaces}
	if result.String() != line {
		return types.Line{}, ErrRoundTrip
	}

	return result, nil
}

func IsBlank(line string) bool {
	return whitespace.ReplaceAllString(line, "") == ""
}
