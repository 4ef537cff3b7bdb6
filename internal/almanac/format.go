package almanac

import (
	"strconv"
	"strings"
)

// Format renders a in the text form accepted by Parse.
func Format(a *Almanac) []byte {
	var b strings.Builder

	label := a.SeedLabel
	if label == "" {
		label = DefaultSeedLabel + ":"
	}

	b.WriteString(label)

	for _, s := range a.Seeds {
		b.WriteByte(' ')
		b.WriteString(strconv.FormatUint(s, 10))
	}

	b.WriteByte('\n')

	for _, stage := range a.Pipeline.Stages() {
		b.WriteString("\n" + stage.Title + ":\n")

		for _, m := range stage.Mappings {
			b.WriteString(m.String())
			b.WriteByte('\n')
		}
	}

	return []byte(b.String())
}
