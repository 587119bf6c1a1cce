// Package highlight splits text around case-insensitive occurrences of a
// search query so a renderer can mark the matches.
package highlight

import (
	"unicode"
)

// Segment is a run of text that either matched the query or did not.
type Segment struct {
	Text  string
	Match bool
}

// Split returns the segments of text, in order, with every case-insensitive
// occurrence of query marked. The query is literal. Case is compared with
// unicode.ToLower rune by rune, the same rule strings.ToLower applies in the
// search filter, so every card the filter keeps has its match marked.
// Original casing is preserved. An empty query gives one plain segment
// holding the whole text.
func Split(text, query string) []Segment {
	if query == "" {
		return []Segment{{Text: text}}
	}

	needle := lowerRunes(query)
	var hay []rune
	var offsets []int // byte offset in text of each rune in hay
	for i, r := range text {
		hay = append(hay, unicode.ToLower(r))
		offsets = append(offsets, i)
	}
	offsets = append(offsets, len(text))

	var segments []Segment
	last := 0
	for i := 0; i+len(needle) <= len(hay); {
		if !hasPrefix(hay[i:], needle) {
			i++
			continue
		}
		from, to := offsets[i], offsets[i+len(needle)]
		if from > last {
			segments = append(segments, Segment{Text: text[last:from]})
		}
		segments = append(segments, Segment{Text: text[from:to], Match: true})
		last = to
		i += len(needle)
	}
	if segments == nil {
		return []Segment{{Text: text}}
	}
	if last < len(text) {
		segments = append(segments, Segment{Text: text[last:]})
	}
	return segments
}

func lowerRunes(s string) []rune {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		out = append(out, unicode.ToLower(r))
	}
	return out
}

func hasPrefix(s, prefix []rune) bool {
	for i, r := range prefix {
		if s[i] != r {
			return false
		}
	}
	return true
}

// Join concatenates segment text, wrapping matched runs with mark.
func Join(segments []Segment, mark func(string) string) string {
	var out []byte
	for _, s := range segments {
		if s.Match && mark != nil {
			out = append(out, mark(s.Text)...)
			continue
		}
		out = append(out, s.Text...)
	}
	return string(out)
}
