package block

import "github.com/coregx/strcount/finder"

// CountInterleaved counts the occurrences of f's pattern in span, including
// overlapping ones. After every hit the search resumes one byte after the
// hit position rather than after the whole match, so "aba" is found twice in
// "ababa".
func CountInterleaved(span []byte, f finder.Finder) int {
	n := 0
	for len(span) >= f.Len() {
		hit := f.Index(span)
		if hit < 0 {
			break
		}
		n++
		span = span[hit+1:]
	}
	return n
}
