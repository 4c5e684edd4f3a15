package service

import (
	"slices"
	"strings"

	goahocorasick "github.com/anknown/ahocorasick"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// Classifier decides whether a message text is an approval notice. A text is
// approved when it contains any configured keyword, compared case-insensitively
// as a plain substring. There is no word-boundary or negation handling, so
// "Not Approved" still matches "Approved".
type Classifier struct {
	keywords []string
	matcher  *goahocorasick.Machine
}

// NewClassifier builds an Aho-Corasick automaton over the lowercased keywords.
// Blank keywords are ignored; with no usable keyword nothing is ever approved.
func NewClassifier(keywords []string) (*Classifier, error) {
	normalized := lo.Uniq(lo.FilterMap(keywords, func(keyword string, _ int) (string, bool) {
		keyword = strings.ToLower(strings.TrimSpace(keyword))
		return keyword, keyword != ""
	}))
	slices.Sort(normalized)

	c := &Classifier{keywords: normalized}
	if len(normalized) == 0 {
		return c, nil
	}

	patterns := lo.Map(normalized, func(keyword string, _ int) []rune {
		return []rune(keyword)
	})

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, oops.With("keywords", normalized, "context", "failed to build keyword matcher").Wrap(err)
	}
	c.matcher = m

	return c, nil
}

// IsApproved reports whether text contains at least one keyword. Empty text
// is never approved.
func (c *Classifier) IsApproved(text string) bool {
	_, ok := c.Match(text)
	return ok
}

// Match returns the first keyword found in text. The search stops at the
// first hit.
func (c *Classifier) Match(text string) (string, bool) {
	if text == "" || c.matcher == nil {
		return "", false
	}
	terms := c.matcher.MultiPatternSearch([]rune(strings.ToLower(text)), true)
	if len(terms) == 0 {
		return "", false
	}
	return string(terms[0].Word), true
}

// Keywords returns the normalized keyword list.
func (c *Classifier) Keywords() []string {
	return slices.Clone(c.keywords)
}
