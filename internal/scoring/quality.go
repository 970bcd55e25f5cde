package scoring

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/spigell/resume-analyzer/internal/resume"
	"github.com/spigell/resume-analyzer/internal/skills"
)

// Subscore is the result of one rubric category.
type Subscore struct {
	Category string  `json:"category"`
	Points   float64 `json:"points"`
	Max      float64 `json:"max"`
	Detail   string  `json:"detail"`
}

// QualityReport is the graded resume.
type QualityReport struct {
	Score     float64    `json:"score"`
	Issues    []string   `json:"issues"`
	Subscores []Subscore `json:"subscores"`
}

const maxQuality = 100

// Points of the lower tiers of every rubric category. The top tier is worth
// the category points from the rubric.
const (
	goodLengthPoints       = 12
	acceptableLengthPoints = 8

	goodSkillsPoints       = 12
	acceptableSkillsPoints = 8

	goodExperiencePoints       = 15
	acceptableExperiencePoints = 10

	goodEducationPoints       = 12
	acceptableEducationPoints = 8

	goodContactPoints    = 8
	partialContactPoints = 5

	partialSectionsPoints = 7
	minimalSectionsPoints = 3

	goodVerbsPoints     = 7
	someVerbsPoints     = 4
	excellentVerbsCount = 8
	goodVerbsCount      = 5
	someVerbsCount      = 2

	goodMetricsPoints     = 3
	excellentMetricsCount = 5
	goodMetricsCount      = 2
)

// Quality grades a resume against the rubric. Every category below its top
// tier contributes an issue. The score is capped at 100.
func (s *Scorer) Quality(text string, resumeSkills []string, years int, education string) QualityReport {
	if strings.TrimSpace(text) == "" {
		return QualityReport{Issues: []string{"Resume text is empty"}, Subscores: []Subscore{}}
	}

	q := &quality{issues: []string{}}
	r := s.tables.Rubric()
	lower := strings.ToLower(text)

	chars := utf8.RuneCountInString(text)
	switch {
	case float64(chars) >= r.Length.Excellent:
		q.add("Length", r.Length.Points, r.Length.Points, fmt.Sprintf("Excellent (%d characters)", chars))
	case float64(chars) >= r.Length.Good:
		q.add("Length", goodLengthPoints, r.Length.Points, fmt.Sprintf("Good (%d characters)", chars))
		q.issue(fmt.Sprintf("Resume text is short (%d chars, %.0f+ recommended)", chars, r.Length.Excellent))
	case float64(chars) >= r.Length.Acceptable:
		q.add("Length", acceptableLengthPoints, r.Length.Points, fmt.Sprintf("Acceptable (%d characters)", chars))
		q.issue(fmt.Sprintf("Resume text is short (%d chars, %.0f+ recommended)", chars, r.Length.Excellent))
	default:
		q.add("Length", 0, r.Length.Points, fmt.Sprintf("Too short (%d characters)", chars))
		q.issue(fmt.Sprintf("Resume is too brief (%d chars, minimum %.0f required)", chars, r.Length.Acceptable))
	}

	count := len(resumeSkills)
	switch {
	case float64(count) >= r.Skills.Excellent:
		q.add("Skills", r.Skills.Points, r.Skills.Points, fmt.Sprintf("Excellent (%d skills)", count))
	case float64(count) >= r.Skills.Good:
		q.add("Skills", goodSkillsPoints, r.Skills.Points, fmt.Sprintf("Good (%d skills)", count))
		q.issue(fmt.Sprintf("List more relevant skills (%d, %.0f+ recommended)", count, r.Skills.Excellent))
	case float64(count) >= r.Skills.Acceptable:
		q.add("Skills", acceptableSkillsPoints, r.Skills.Points, fmt.Sprintf("Acceptable (%d skills)", count))
		q.issue(fmt.Sprintf("Too few skills (%d, %.0f+ recommended)", count, r.Skills.Good))
	default:
		q.add("Skills", 0, r.Skills.Points, fmt.Sprintf("Limited (%d skills)", count))
		q.issue(fmt.Sprintf("Too few skills (%d, %.0f+ recommended)", count, r.Skills.Good))
	}

	switch {
	case float64(years) >= r.Experience.Excellent:
		q.add("Experience", r.Experience.Points, r.Experience.Points, fmt.Sprintf("Excellent (%d+ years)", years))
	case float64(years) >= r.Experience.Good:
		q.add("Experience", goodExperiencePoints, r.Experience.Points, fmt.Sprintf("Good (%d years)", years))
		q.issue("Highlight the scope and impact of your professional experience")
	case float64(years) >= r.Experience.Acceptable:
		q.add("Experience", acceptableExperiencePoints, r.Experience.Points, fmt.Sprintf("Entry level (%d years)", years))
		q.issue("Highlight internships, projects and other hands-on experience")
	default:
		q.add("Experience", 0, r.Experience.Points, "No experience found")
		q.issue("Include years of professional experience")
	}

	switch {
	case slices.Contains(r.Education.Excellent, education):
		q.add("Education", r.Education.Points, r.Education.Points, fmt.Sprintf("Excellent (%s)", education))
	case slices.Contains(r.Education.Good, education):
		q.add("Education", goodEducationPoints, r.Education.Points, fmt.Sprintf("Good (%s)", education))
		q.issue("Add certifications or advanced coursework to strengthen education")
	case slices.Contains(r.Education.Acceptable, education):
		q.add("Education", acceptableEducationPoints, r.Education.Points, fmt.Sprintf("Basic (%s)", education))
		q.issue("Add degrees, certifications or relevant coursework to strengthen education")
	default:
		q.add("Education", 0, r.Education.Points, "Not mentioned")
		q.issue("Mention your educational background")
	}

	switch contacts := resume.ExtractContact(text).Count(); {
	case contacts >= 3:
		q.add("Contact", r.Contact.Points, r.Contact.Points, "Perfect (all info included)")
	case contacts == 2:
		q.add("Contact", goodContactPoints, r.Contact.Points, "Good (email + phone or LinkedIn)")
		q.issue("Add the missing contact detail (email, phone or LinkedIn)")
	case contacts == 1:
		q.add("Contact", partialContactPoints, r.Contact.Points, "Partial (at least one item)")
		q.issue("Add more contact information (email, phone, LinkedIn)")
	default:
		q.add("Contact", 0, r.Contact.Points, "Missing")
		q.issue("Add contact information: email, phone, LinkedIn")
	}

	var found, missing []string
	for _, section := range r.Sections.Required {
		if strings.Contains(lower, strings.ToLower(section)) {
			found = append(found, section)
		} else {
			missing = append(missing, section)
		}
	}
	switch {
	case len(missing) == 0:
		q.add("Sections", r.Sections.Points, r.Sections.Points, fmt.Sprintf("Perfect (%s)", strings.Join(found, ", ")))
	case len(missing) == 1:
		q.add("Sections", partialSectionsPoints, r.Sections.Points, fmt.Sprintf("Good (%s)", strings.Join(found, ", ")))
		q.issue(fmt.Sprintf("Add %s section", strings.ToLower(missing[0])))
	default:
		q.add("Sections", minimalSectionsPoints, r.Sections.Points, fmt.Sprintf("Incomplete (%s)", strings.Join(found, ", ")))
		q.issue("Include Experience, Education, and Skills sections")
	}

	verbs := 0
	for _, v := range r.ActionVerbs.Verbs {
		verbs += skills.CountTokens(lower, strings.ToLower(v))
	}
	switch {
	case verbs >= excellentVerbsCount:
		q.add("Action Verbs", r.ActionVerbs.Points, r.ActionVerbs.Points, fmt.Sprintf("Excellent (%d verbs)", verbs))
	case verbs >= goodVerbsCount:
		q.add("Action Verbs", goodVerbsPoints, r.ActionVerbs.Points, fmt.Sprintf("Good (%d verbs)", verbs))
		q.issue("Use more action verbs (led, developed, managed, created, etc.)")
	case verbs >= someVerbsCount:
		q.add("Action Verbs", someVerbsPoints, r.ActionVerbs.Points, fmt.Sprintf("Some (%d verbs)", verbs))
		q.issue("Use more action verbs (led, developed, managed, created, etc.)")
	default:
		q.add("Action Verbs", 0, r.ActionVerbs.Points, "Needs improvement")
		q.issue("Start bullet points with strong action verbs")
	}

	metrics := 0
	for _, k := range r.Quantification.Keywords {
		metrics += strings.Count(text, k)
	}
	switch {
	case metrics >= excellentMetricsCount:
		q.add("Metrics", r.Quantification.Points, r.Quantification.Points, fmt.Sprintf("Excellent (%d metrics)", metrics))
	case metrics >= goodMetricsCount:
		q.add("Metrics", goodMetricsPoints, r.Quantification.Points, fmt.Sprintf("Good (%d metrics)", metrics))
		q.issue("Add metrics/numbers to achievements (e.g., 20% improvement)")
	default:
		q.add("Metrics", 0, r.Quantification.Points, "Needs more quantification")
		q.issue("Add metrics/numbers to achievements (e.g., 20% improvement)")
	}

	return QualityReport{
		Score:     min(q.total, maxQuality),
		Issues:    q.issues,
		Subscores: q.subscores,
	}
}

type quality struct {
	total     float64
	issues    []string
	subscores []Subscore
}

func (q *quality) add(category string, points, maxPoints float64, detail string) {
	q.total += points
	q.subscores = append(q.subscores, Subscore{Category: category, Points: points, Max: maxPoints, Detail: detail})
}

func (q *quality) issue(text string) {
	q.issues = append(q.issues, text)
}
