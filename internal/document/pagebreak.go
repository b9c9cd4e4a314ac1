package document

import (
	"regexp"
	"strings"
)

var (
	blankLine = regexp.MustCompile(`^\s*$`)
	nonBlank  = regexp.MustCompile(`\S`)
)

// EndsWithPagebreak reports whether the last non-blank line of doc contains
// the pagebreak sentinel.
func EndsWithPagebreak(doc string) bool {
	lines := strings.Split(doc, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if nonBlank.MatchString(lines[i]) {
			return strings.Contains(lines[i], Pagebreak)
		}
	}
	return false
}

// AddPageBreaks inserts the pagebreak sentinel before every top-level heading
// line, separated by exactly one blank line on each side. It runs once over
// the final combined body; a second run over already-normalized text is a
// no-op.
func AddPageBreaks(doc string) string {
	lines := strings.Split(doc, "\n")
	out := make([]string, 0, len(lines)+8)
	out = append(out, lines[0])
	prevBlank := blankLine.MatchString(lines[0])
	lastNonBlank := ""
	if !prevBlank {
		lastNonBlank = lines[0]
	}
	for _, line := range lines[1:] {
		if strings.HasPrefix(line, "# ") && !strings.Contains(lastNonBlank, Pagebreak) {
			if !prevBlank {
				out = append(out, "")
			}
			out = append(out, Pagebreak, "")
			lastNonBlank = Pagebreak
		}
		out = append(out, line)
		if prevBlank = blankLine.MatchString(line); !prevBlank {
			lastNonBlank = line
		}
	}
	return strings.Join(out, "\n")
}
