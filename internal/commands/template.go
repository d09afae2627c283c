package commands

import (
	"fmt"
	"strings"
)

type tokenKind int

const (
	tokenLiteral tokenKind = iota
	tokenPlaceholder
)

// token is one element of a compiled pattern. Literal text is stored
// lowercased; placeholder text is the lowercased capture name.
type token struct {
	kind tokenKind
	text string
}

// Template is a compiled command pattern: a sequence of literal tokens and
// typed placeholders written in CAPS, e.g. "use ITEM on TARGET". Matching
// is case-insensitive and whitespace-tokenized.
type Template struct {
	pattern string
	tokens  []token
}

// CompileTemplate parses a pattern string. Placeholders must be separated
// by at least one literal connector, and capture names must be unique
// within a pattern.
func CompileTemplate(pattern string) (*Template, error) {
	fields := strings.Fields(pattern)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty command pattern")
	}

	t := &Template{pattern: pattern}
	seen := map[string]bool{}
	prevPlaceholder := false
	for _, f := range fields {
		if isPlaceholder(f) {
			name := strings.ToLower(f)
			if prevPlaceholder {
				return nil, fmt.Errorf("pattern %q: adjacent placeholders need a literal connector", pattern)
			}
			if seen[name] {
				return nil, fmt.Errorf("pattern %q: duplicate placeholder %s", pattern, f)
			}
			seen[name] = true
			t.tokens = append(t.tokens, token{kind: tokenPlaceholder, text: name})
			prevPlaceholder = true
		} else {
			t.tokens = append(t.tokens, token{kind: tokenLiteral, text: strings.ToLower(f)})
			prevPlaceholder = false
		}
	}

	return t, nil
}

// isPlaceholder reports whether a pattern field is a placeholder: one or
// more uppercase letters, nothing else.
func isPlaceholder(f string) bool {
	for _, r := range f {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return len(f) > 0
}

// Pattern returns the source pattern the template was compiled from.
func (t *Template) Pattern() string {
	return t.pattern
}

// Match binds an input line against the template. A placeholder captures
// one or more words: all remaining words when it ends the pattern,
// otherwise up to the leftmost occurrence of the literal that follows it
// (the connector split for "use ITEM on TARGET" forms). Empty captures
// fail the match, as does any unconsumed input.
func (t *Template) Match(line string) (map[string]string, bool) {
	words := strings.Fields(strings.ToLower(line))
	if len(words) == 0 {
		return nil, false
	}

	captures := map[string]string{}
	wi := 0
	for ti, tok := range t.tokens {
		switch tok.kind {
		case tokenLiteral:
			if wi >= len(words) || words[wi] != tok.text {
				return nil, false
			}
			wi++

		case tokenPlaceholder:
			if wi >= len(words) {
				return nil, false
			}
			if ti == len(t.tokens)-1 {
				captures[tok.text] = strings.Join(words[wi:], " ")
				wi = len(words)
				continue
			}

			// Compilation guarantees the next token is a literal. Capture
			// at least one word, up to its leftmost occurrence.
			next := t.tokens[ti+1].text
			end := -1
			for j := wi + 1; j < len(words); j++ {
				if words[j] == next {
					end = j
					break
				}
			}
			if end == -1 {
				return nil, false
			}
			captures[tok.text] = strings.Join(words[wi:end], " ")
			wi = end
		}
	}

	if wi != len(words) {
		return nil, false
	}
	return captures, true
}
