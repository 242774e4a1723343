package urlutil

import "strings"

// trailingPunctuation is what chat clients and prose tend to glue onto the
// end of a pasted link. '?' and '/' are kept: they belong to the tracking
// marker.
const trailingPunctuation = `.,;:!)]}'"`

// TrimTrailingPunctuation removes sentence punctuation stuck to the end of
// a link extracted from free text.
func TrimTrailingPunctuation(raw string) string {
	return strings.TrimRight(strings.TrimSpace(raw), trailingPunctuation)
}
