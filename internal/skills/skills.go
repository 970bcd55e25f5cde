// Package skills finds skills mentioned in free text and classifies them.
package skills

import (
	"sort"
	"strings"

	"github.com/spigell/resume-analyzer/internal/taxonomy"
)

// softKeywords are interpersonal skills that are not listed in the soft skill
// table but must not be treated as technical.
var softKeywords = map[string]struct{}{
	"communication":          {},
	"leadership":             {},
	"teamwork":               {},
	"collaboration":          {},
	"problem solving":        {},
	"project management":     {},
	"time management":        {},
	"critical thinking":      {},
	"negotiation":            {},
	"presentation":           {},
	"mentoring":              {},
	"adaptability":           {},
	"creativity":             {},
	"emotional intelligence": {},
}

// Extractor matches text against a skill vocabulary.
type Extractor struct {
	tables *taxonomy.Tables
}

// NewExtractor returns an extractor backed by the given tables.
func NewExtractor(tables *taxonomy.Tables) *Extractor {
	return &Extractor{tables: tables}
}

// Tables returns the reference tables the extractor uses.
func (e *Extractor) Tables() *taxonomy.Tables {
	return e.tables
}

// Extract returns the candidate skills mentioned in text, either directly or
// through one of their aliases. A nil candidate list means the technical and
// soft skill vocabulary. The result is deduplicated, in display casing and
// sorted.
func (e *Extractor) Extract(text string, candidates []string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}
	if candidates == nil {
		candidates = e.tables.DefaultVocabulary()
	}

	lower := strings.ToLower(text)
	found := make(map[string]string)
	for _, candidate := range candidates {
		key := taxonomy.Normalize(candidate)
		if key == "" {
			continue
		}
		if _, ok := found[key]; ok {
			continue
		}
		if e.Mentions(lower, key) {
			found[key] = e.display(candidate)
		}
	}

	out := make([]string, 0, len(found))
	for _, name := range found {
		out = append(out, name)
	}
	Sort(out)
	return out
}

// Mentions reports whether lower-cased text mentions the skill or any alias.
func (e *Extractor) Mentions(lower, skill string) bool {
	for _, form := range e.tables.ExpandAliases(skill) {
		if ContainsToken(lower, form) {
			return true
		}
	}
	return false
}

// Occurrences counts mentions of the skill and its aliases in lower-cased text.
func (e *Extractor) Occurrences(lower, skill string) int {
	count := 0
	for _, form := range e.tables.ExpandAliases(skill) {
		count += CountTokens(lower, form)
	}
	return count
}

func (e *Extractor) display(candidate string) string {
	if _, ok := e.tables.Technical(candidate); ok {
		return e.tables.Display(candidate)
	}
	if _, ok := e.tables.Soft(candidate); ok {
		return e.tables.Display(candidate)
	}
	if _, ok := e.tables.Creative(candidate); ok {
		return e.tables.Display(candidate)
	}
	return strings.TrimSpace(candidate)
}

// Union merges skill lists, keeping the first spelling of every skill, and
// returns them sorted.
func Union(lists ...[]string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, list := range lists {
		for _, s := range list {
			key := taxonomy.Normalize(s)
			if key == "" {
				continue
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, strings.TrimSpace(s))
		}
	}
	Sort(out)
	return out
}

// Sort orders skills alphabetically ignoring case.
func Sort(skills []string) {
	sort.SliceStable(skills, func(i, j int) bool {
		a, b := strings.ToLower(skills[i]), strings.ToLower(skills[j])
		if a == b {
			return skills[i] < skills[j]
		}
		return a < b
	})
}

// Categories is a breakdown of skills by taxonomy table.
type Categories struct {
	Technical []string `json:"technical"`
	Soft      []string `json:"soft"`
	Creative  []string `json:"creative"`
	Tools     []string `json:"tools"`
	Total     int      `json:"total"`
}

// Categorize splits skills into technical, soft and creative skills known to
// the taxonomy. Anything else is reported as a tool.
func (e *Extractor) Categorize(skills []string) Categories {
	c := Categories{Total: len(skills)}
	var technical, soft, creative, tools []string

	for _, s := range skills {
		switch {
		case e.isKnownTechnical(s):
			technical = append(technical, e.tables.Display(s))
		case e.isKnownSoft(s):
			soft = append(soft, e.tables.Display(s))
		case e.isKnownCreative(s):
			creative = append(creative, e.tables.Display(s))
		default:
			tools = append(tools, s)
		}
	}

	c.Technical = Union(technical)
	c.Soft = Union(soft)
	c.Creative = Union(creative)
	c.Tools = Union(tools)
	return c
}

// IsTechnical reports whether a skill counts as technical. Skills unknown to
// the taxonomy are technical unless they look like an interpersonal skill.
func (e *Extractor) IsTechnical(skill string) bool {
	if e.isKnownTechnical(skill) {
		return true
	}
	if e.isKnownSoft(skill) {
		return false
	}
	_, soft := softKeywords[taxonomy.Normalize(skill)]
	return !soft
}

// FilterTechnical keeps the technical skills, preserving order.
func (e *Extractor) FilterTechnical(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		if e.IsTechnical(s) {
			out = append(out, s)
		}
	}
	return out
}

// CountKnownTechnical counts skills present in the technical table.
func (e *Extractor) CountKnownTechnical(skills []string) int {
	n := 0
	for _, s := range skills {
		if e.isKnownTechnical(s) {
			n++
		}
	}
	return n
}

func (e *Extractor) isKnownTechnical(s string) bool {
	_, ok := e.tables.Technical(s)
	return ok
}

func (e *Extractor) isKnownSoft(s string) bool {
	_, ok := e.tables.Soft(s)
	return ok
}

func (e *Extractor) isKnownCreative(s string) bool {
	_, ok := e.tables.Creative(s)
	return ok
}
