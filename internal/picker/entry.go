package picker

import (
	"regexp"
	"strings"
)

var whitespaceRuns = regexp.MustCompile(`\s+`)

// EntryID derives the element-id fragment for a family: whitespace runs
// collapse to a single hyphen and the result is lowercased. Distinct
// families can collide in id space ("My Font" vs "my  font"); the catalog's
// duplicate-family check does not guard against that, so such a collision
// remains a latent defect rather than a handled condition.
func EntryID(family string) string {
	return strings.ToLower(whitespaceRuns.ReplaceAllString(family, "-"))
}
