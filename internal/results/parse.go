package results

import (
	"bufio"
	"regexp"
	"strings"
)

// testLineRe matches one test-case result line in a driver's stdout,
// the wire contract spec.md §4.3/§6 fixes across every MAIN template:
// `TEST-<id>...<token>`. The id capture is non-greedy so an id
// containing "..." itself still splits at the first occurrence,
// matching ^TEST-(.+?)\.\.\.(.+)$.
var testLineRe = regexp.MustCompile(`^TEST-(.+?)\.\.\.(.+)$`)

// ParseTestLines scans stdout line by line, returning a map of
// test-case id to the raw token text that followed it. A driver may
// print other output around the TEST- lines; non-matching lines are
// ignored, matching spec.md §4.7 step 1.
func ParseTestLines(stdout string) map[string]string {
	tokens := make(map[string]string)
	scanner := bufio.NewScanner(strings.NewReader(stdout))
	for scanner.Scan() {
		m := testLineRe.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		tokens[m[1]] = m[2]
	}
	return tokens
}
