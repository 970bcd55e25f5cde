package insights

import (
	"slices"

	"github.com/spigell/resume-analyzer/internal/scoring"
	"github.com/spigell/resume-analyzer/internal/taxonomy"
)

// Priorities of a skill gap.
const (
	PriorityCritical = "Critical"
	PriorityHigh     = "High"
)

const (
	maxSkillGaps    = 8
	defaultTimeline = "6-12 weeks"
)

var defaultResources = []string{"Udemy", "Coursera", "Official documentation", "Hands-on projects"}

// SkillGap is a required skill missing from the resume with a learning plan.
type SkillGap struct {
	Skill     string          `json:"skill"`
	Priority  string          `json:"priority"`
	Timeline  string          `json:"timeline"`
	Resources []string        `json:"resources"`
	Demand    taxonomy.Demand `json:"demand"`
	Growth    float64         `json:"growth"`
}

// SkillGaps lists the required skills the resume lacks, alphabetically, at
// most eight. Skills with a salary premium are Critical, the rest High.
func (g *Generator) SkillGaps(resumeSkills, required []string) []SkillGap {
	missing := scoring.Match(resumeSkills, required).Missing

	gaps := make([]SkillGap, 0, min(len(missing), maxSkillGaps))
	for _, name := range head(missing, maxSkillGaps) {
		gap := SkillGap{
			Skill:     g.tables.Display(name),
			Priority:  PriorityHigh,
			Timeline:  defaultTimeline,
			Resources: slices.Clone(defaultResources),
			Demand:    taxonomy.DemandMedium,
		}
		if g.tables.Premium(name) > 0 {
			gap.Priority = PriorityCritical
		}
		if path, ok := g.tables.LearningPath(name); ok {
			gap.Timeline = path.Timeline
			if len(path.Entry) > 0 {
				gap.Resources = slices.Clone(path.Entry)
			}
		}
		if s, ok := g.lookupSkill(name); ok {
			gap.Demand = s.Demand
			gap.Growth = s.Growth
		}
		gaps = append(gaps, gap)
	}
	return gaps
}

func (g *Generator) lookupSkill(name string) (taxonomy.Skill, bool) {
	if s, ok := g.tables.Technical(name); ok {
		return s, true
	}
	return g.tables.Creative(name)
}
