package menu

import (
	"github.com/agnivade/levenshtein"
	"github.com/gosimple/slug"
)

// suggest returns the candidate closest to name, comparing slugs so case,
// accents and punctuation do not count as typos. Nothing is suggested when
// the best match needs more than two edits or a third of the name, whichever
// is larger.
func suggest(name string, candidates []string) (string, bool) {
	want := slug.Make(name)
	if want == "" {
		return "", false
	}

	best, bestDist := "", -1
	for _, c := range candidates {
		if c == name {
			continue
		}
		have := slug.Make(c)
		if have == "" {
			continue
		}
		d := levenshtein.ComputeDistance(want, have)
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	if bestDist < 0 || bestDist > max(2, len(want)/3) {
		return "", false
	}
	return best, true
}
