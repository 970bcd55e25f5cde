package scoring

import (
	"fmt"

	"github.com/spigell/resume-analyzer/internal/resume"
)

// Readiness is an estimate of how prepared a candidate is for interviews.
type Readiness struct {
	Score     int      `json:"score"`
	Strengths []string `json:"strengths"`
	Concerns  []string `json:"concerns"`
	Level     string   `json:"level"`
}

const maxReadinessNotes = 3

// InterviewReadiness scores experience (30), skill match (40), education (15)
// and technical depth (15).
func (s *Scorer) InterviewReadiness(resumeSkills, required []string, years int, education string) Readiness {
	match := Match(resumeSkills, required)

	score := 0
	strengths := []string{}
	concerns := []string{}

	switch {
	case years >= 5:
		score += 30
		strengths = append(strengths, fmt.Sprintf("Strong experience (%d+ years)", years))
	case years >= 2:
		score += 20
		strengths = append(strengths, fmt.Sprintf("Relevant experience (%d years)", years))
	case years >= 1:
		score += 10
		concerns = append(concerns, "Limited experience - prepare examples")
	default:
		concerns = append(concerns, "Entry-level position - emphasize learning")
	}

	switch pct := match.Percentage; {
	case pct >= 90:
		score += 40
		strengths = append(strengths, fmt.Sprintf("Expert match (%.1f%% of required skills)", pct))
	case pct >= 70:
		score += 30
		strengths = append(strengths, fmt.Sprintf("Good match (%.1f%% of required skills)", pct))
	case pct >= 50:
		score += 20
		concerns = append(concerns, "Moderate skill gaps - prepare a learning plan.")
	default:
		score += 10
		concerns = append(concerns, "Highlight transferable skills to offset gaps.")
	}

	switch education {
	case resume.Master, resume.PhD:
		score += 15
		strengths = append(strengths, fmt.Sprintf("Advanced degree (%s)", education))
	case resume.Bachelor:
		score += 10
	}

	switch technical := s.skills.CountKnownTechnical(resumeSkills); {
	case technical >= 10:
		score += 15
		strengths = append(strengths, "Strong technical depth")
	case technical >= 5:
		score += 10
	}

	score = min(score, 100)
	return Readiness{
		Score:     score,
		Strengths: strengths[:min(len(strengths), maxReadinessNotes)],
		Concerns:  concerns[:min(len(concerns), maxReadinessNotes)],
		Level:     readinessLevel(score),
	}
}

func readinessLevel(score int) string {
	switch {
	case score >= 85:
		return "Excellent"
	case score >= 75:
		return "Very Good"
	case score >= 60:
		return "Good"
	default:
		return "Fair"
	}
}
