package roles

import (
	"strings"
	"unicode/utf8"

	"github.com/spigell/resume-analyzer/internal/skills"
)

const minDescriptionLen = 10

// RequirementConfig holds the windows and thresholds of requirement
// extraction. Zero fields take the defaults.
type RequirementConfig struct {
	// SectionWindow is how many characters after a section header are scanned.
	SectionWindow int `mapstructure:"section-window"`
	// IndicatorWindow is how many characters after an indicator phrase are scanned.
	IndicatorWindow int `mapstructure:"indicator-window"`
	// SparseThreshold triggers the indicator phrase scan below this many skills.
	SparseThreshold int `mapstructure:"sparse-threshold"`
	// EnrichThreshold adds role defaults below this many skills.
	EnrichThreshold int `mapstructure:"enrich-threshold"`
}

// DefaultRequirementConfig returns the stock windows and thresholds.
func DefaultRequirementConfig() RequirementConfig {
	return RequirementConfig{
		SectionWindow:   500,
		IndicatorWindow: 150,
		SparseThreshold: 5,
		EnrichThreshold: 6,
	}
}

func (c RequirementConfig) withDefaults() RequirementConfig {
	d := DefaultRequirementConfig()
	if c.SectionWindow <= 0 {
		c.SectionWindow = d.SectionWindow
	}
	if c.IndicatorWindow <= 0 {
		c.IndicatorWindow = d.IndicatorWindow
	}
	if c.SparseThreshold <= 0 {
		c.SparseThreshold = d.SparseThreshold
	}
	if c.EnrichThreshold <= 0 {
		c.EnrichThreshold = d.EnrichThreshold
	}
	return c
}

var sectionHeaders = []string{
	"required skills:", "must have:", "should have:", "preferred skills:", "looking for:",
	"we need:", "seeking:", "responsibilities:", "qualifications:", "required:",
	"preferred:", "must:", "skills needed:", "technical skills:", "you should have:",
	"you will need:", "requirement", "key skills:", "tools:",
}

var indicatorPhrases = []string{
	"experience with", "knowledge of", "fluent in", "skilled in", "proficiency",
	"familiar with", "expertise in", "work with", "proficient in",
}

// RequirementExtractor finds the skills a job description asks for.
type RequirementExtractor struct {
	skills   *skills.Extractor
	detector *Detector
	cfg      RequirementConfig
}

// NewRequirementExtractor wires an extractor. A nil detector means NewDetector().
func NewRequirementExtractor(extractor *skills.Extractor, detector *Detector, cfg RequirementConfig) *RequirementExtractor {
	if detector == nil {
		detector = NewDetector()
	}
	return &RequirementExtractor{
		skills:   extractor,
		detector: detector,
		cfg:      cfg.withDefaults(),
	}
}

// Config returns the effective configuration.
func (r *RequirementExtractor) Config() RequirementConfig {
	return r.cfg
}

// Detector returns the role detector used by the extractor.
func (r *RequirementExtractor) Detector() *Detector {
	return r.detector
}

// Extract returns the sorted skills required by a job description.
func (r *RequirementExtractor) Extract(text string) []string {
	found, _ := r.extract(text)
	return found
}

func (r *RequirementExtractor) extract(text string) ([]string, Role) {
	if utf8.RuneCountInString(strings.TrimSpace(text)) < minDescriptionLen {
		return []string{}, Other
	}

	vocabulary := r.skills.Tables().FullVocabulary()
	lower := strings.ToLower(text)

	var found []string
	for _, header := range sectionHeaders {
		i := strings.Index(lower, header)
		if i < 0 {
			continue
		}
		section := window(lower[i+len(header):], r.cfg.SectionWindow)
		found = skills.Union(found, r.skills.Extract(section, vocabulary))
	}

	// Headers without known skills in their windows fall back to the
	// whole description.
	if len(found) == 0 {
		found = r.skills.Extract(lower, vocabulary)
	}

	if len(found) < r.cfg.SparseThreshold {
		for _, phrase := range indicatorPhrases {
			rest := lower
			for {
				i := strings.Index(rest, phrase)
				if i < 0 {
					break
				}
				rest = rest[i+len(phrase):]
				found = skills.Union(found, r.skills.Extract(window(rest, r.cfg.IndicatorWindow), vocabulary))
			}
		}
	}

	role := r.detector.Detect(text)
	switch {
	case role.IsTechnical():
		if len(found) < r.cfg.EnrichThreshold {
			found = skills.Union(found, DefaultSkills(role))
		}
	case len(found) == 0 && !role.IsFallback():
		// The role name stands in for a skill so the description is not
		// treated as empty.
		found = []string{role.Name}
	}

	return skills.Union(found), role
}

// JobAnalysis is the role and skill breakdown of a job description.
type JobAnalysis struct {
	Role       Role              `json:"role"`
	Skills     []string          `json:"skills"`
	Categories skills.Categories `json:"categories"`
}

// Analyze detects the role and the required skills of a job description.
func (r *RequirementExtractor) Analyze(text string) JobAnalysis {
	found, role := r.extract(text)
	if len(found) == 0 {
		role = r.detector.Detect(text)
	}
	return JobAnalysis{
		Role:       role,
		Skills:     found,
		Categories: r.skills.Categorize(found),
	}
}

func window(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
