// Package moderation gates submissions on a blocklist-based matcher.
// A positive match blocks the submit action outright; there is no
// clean-and-resubmit flow.
package moderation

import (
	"bufio"
	_ "embed"
	"strings"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

//go:embed blocklist.txt
var defaultBlocklist string

const defaultCensorChar = '*'

type Moderator struct {
	matcher    *goahocorasick.Machine
	censorChar rune
}

type textMapping struct {
	normalized []rune
	origIdx    []int
}

// NewModerator builds the Aho-Corasick automaton over a normalized
// copy of the blocked word list.
func NewModerator(blockedWords []string, censorChar rune) (*Moderator, error) {
	patterns := make([][]rune, 0, len(blockedWords))
	for _, word := range blockedWords {
		if norm := normalizeRunes([]rune(word)); len(norm) > 0 {
			patterns = append(patterns, norm)
		}
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return &Moderator{matcher: m, censorChar: censorChar}, nil
}

// NewDefault builds a moderator over the embedded blocklist plus any
// deployment-specific extra words.
func NewDefault(extraWords []string) (*Moderator, error) {
	words := DefaultBlocklist()
	words = append(words, extraWords...)
	return NewModerator(words, defaultCensorChar)
}

// DefaultBlocklist returns the embedded word list.
func DefaultBlocklist() []string {
	var words []string
	scanner := bufio.NewScanner(strings.NewReader(defaultBlocklist))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	return words
}

// IsProfane reports whether text contains any blocked term as a whole
// word.
func (m *Moderator) IsProfane(text string) bool {
	mapping := normalize(text)
	if len(mapping.normalized) == 0 {
		return false
	}

	origRunes := []rune(text)
	for _, span := range m.matcher.MultiPatternSearch(mapping.normalized, false) {
		if start, end, ok := originalSpan(mapping, span.Pos, len(span.Word)); ok && wholeWord(origRunes, start, end) {
			return true
		}
	}
	return false
}

// Clean replaces every character of each matched term with the censor
// character, preserving the original spacing and punctuation.
func (m *Moderator) Clean(text string) string {
	mapping := normalize(text)
	if len(mapping.normalized) == 0 {
		return text
	}

	spans := m.matcher.MultiPatternSearch(mapping.normalized, false)
	if len(spans) == 0 {
		return text
	}

	origRunes := []rune(text)
	for _, span := range spans {
		origStart, origEnd, ok := originalSpan(mapping, span.Pos, len(span.Word))
		if !ok || !wholeWord(origRunes, origStart, origEnd) {
			continue
		}

		for i := origStart; i < origEnd; i++ {
			origRunes[i] = m.censorChar
		}
	}

	return string(origRunes)
}

// originalSpan maps a match in the normalized stream back to the
// half-open rune span it covers in the original text.
func originalSpan(mapping textMapping, normStart, normLen int) (int, int, bool) {
	normEnd := normStart + normLen
	if normStart < 0 || normEnd > len(mapping.origIdx) {
		return 0, 0, false
	}
	return mapping.origIdx[normStart], mapping.origIdx[normEnd-1] + 1, true
}

// wholeWord reports whether the span is bounded by noise or the text
// edges, so a blocked term never matches inside a longer innocent word.
func wholeWord(origRunes []rune, start, end int) bool {
	if start > 0 && !isNoise(origRunes[start-1]) {
		return false
	}
	if end < len(origRunes) && !isNoise(origRunes[end]) {
		return false
	}
	return true
}

// normalize lowercases the input, folds leet-speak substitutions and
// drops punctuation, keeping a position map back into the original.
func normalize(input string) textMapping {
	origRunes := []rune(input)
	norm := make([]rune, 0, len(origRunes))
	origIdx := make([]int, 0, len(origRunes))

	for i, r := range origRunes {
		clean := simplifyRune(r)
		if isNoise(clean) {
			continue
		}
		norm = append(norm, unicode.ToLower(clean))
		origIdx = append(origIdx, i)
	}
	return textMapping{normalized: norm, origIdx: origIdx}
}

func normalizeRunes(input []rune) []rune {
	out := make([]rune, 0, len(input))
	for _, r := range input {
		clean := simplifyRune(r)
		if isNoise(clean) {
			continue
		}
		out = append(out, unicode.ToLower(clean))
	}
	return out
}

func simplifyRune(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3', '€':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	default:
		return r
	}
}

func isNoise(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r)
}
