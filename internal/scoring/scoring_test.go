package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/resume-analyzer/internal/resume"
	"github.com/spigell/resume-analyzer/internal/skills"
	"github.com/spigell/resume-analyzer/internal/taxonomy"
)

func newScorer(t *testing.T, overlays ...string) *Scorer {
	t.Helper()

	if len(overlays) == 0 {
		return NewScorer(skills.NewExtractor(taxonomy.Default()))
	}

	var tables *taxonomy.Tables
	var err error
	for _, o := range overlays {
		tables, err = taxonomy.Load(strings.NewReader(o))
		require.NoError(t, err)
	}
	return NewScorer(skills.NewExtractor(tables))
}

var twelveSkills = []string{
	"Python", "Go", "SQL", "Docker", "Kubernetes", "AWS",
	"Terraform", "Git", "Linux", "Kafka", "Redis", "PostgreSQL",
}

func strongResume() string {
	var b strings.Builder
	b.WriteString("Jane Doe\njane@example.com | 555-123-4567 | linkedin.com/in/janedoe\n\n")
	b.WriteString("SKILLS\nPython, Go, SQL, Docker, Kubernetes, AWS\n\n")
	b.WriteString("EXPERIENCE\n")
	for range 10 {
		b.WriteString("Led a team and developed services. Improved latency by 40% and reduced cost by $2M.\n")
	}
	b.WriteString("\nEDUCATION\nMaster of Science in Computer Science\n")
	return b.String()
}

func TestMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		resume   []string
		required []string
		expect   MatchResult
	}{
		{
			name:     "no requirements",
			resume:   []string{"Python"},
			required: nil,
			expect:   MatchResult{Matched: []string{}, Missing: []string{}},
		},
		{
			name:     "partial overlap keeps casing",
			resume:   []string{"python", "Docker", "AWS"},
			required: []string{"Python", "Kubernetes", "docker"},
			expect: MatchResult{
				Percentage: 66.67,
				Matched:    []string{"python", "Docker"},
				Missing:    []string{"Kubernetes"},
			},
		},
		{
			name:     "duplicate requirements count once",
			resume:   []string{"Go"},
			required: []string{"go", "GO", "Rust"},
			expect:   MatchResult{Percentage: 50, Matched: []string{"Go"}, Missing: []string{"Rust"}},
		},
		{
			name:     "spellings that normalize alike are all kept",
			resume:   []string{"Go", "go", "Python"},
			required: []string{"Go", "go"},
			expect:   MatchResult{Percentage: 100, Matched: []string{"Go", "go"}, Missing: []string{}},
		},
		{
			name:     "nothing matched",
			resume:   nil,
			required: []string{"Terraform", "AWS"},
			expect:   MatchResult{Matched: []string{}, Missing: []string{"AWS", "Terraform"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expect, Match(tt.resume, tt.required))
		})
	}
}

func TestMatchSelf(t *testing.T) {
	t.Parallel()

	for _, set := range [][]string{{"Python"}, twelveSkills, {"Figma", "Leadership", "C#"}, {"Go", "go"}} {
		got := Match(set, set)
		assert.Equal(t, 100.0, got.Percentage)
		assert.Equal(t, set, got.Matched)
		assert.Empty(t, got.Missing)
	}
}

func TestWeightedMatch(t *testing.T) {
	t.Parallel()

	s := newScorer(t)

	assert.Equal(t, 51.92, s.WeightedMatch([]string{"Python"}, []string{"Python", "Flask"}))
	assert.Equal(t, 100.0, s.WeightedMatch([]string{"AWS", "Go"}, []string{"aws", "go"}))
	assert.Equal(t, 0.0, s.WeightedMatch([]string{"Python"}, nil))
	assert.Equal(t, 0.0, s.WeightedMatch(nil, []string{"Python"}))

	// Unknown skills weigh the base 10.
	assert.Equal(t, 50.0, s.WeightedMatch([]string{"Cobol"}, []string{"Cobol", "Fortran"}))

	// Every required entry carries its own weight.
	assert.Equal(t, 66.67, s.WeightedMatch([]string{"Cobol"}, []string{"cobol", "COBOL", "Fortran"}))
	assert.Equal(t, 0.0, s.WeightedMatch([]string{"Cobol"}, []string{" ", ""}))
}

func TestQualityStrongResume(t *testing.T) {
	t.Parallel()

	report := newScorer(t).Quality(strongResume(), twelveSkills, 6, resume.Master)

	assert.Equal(t, 100.0, report.Score)
	assert.Empty(t, report.Issues)
	require.Len(t, report.Subscores, 8)
	for _, sub := range report.Subscores {
		assert.Equal(t, sub.Max, sub.Points, sub.Category)
	}
}

func TestQualityEmpty(t *testing.T) {
	t.Parallel()

	report := newScorer(t).Quality("  ", twelveSkills, 10, resume.PhD)
	assert.Zero(t, report.Score)
	assert.Equal(t, []string{"Resume text is empty"}, report.Issues)
}

func TestQualityWeakResume(t *testing.T) {
	t.Parallel()

	report := newScorer(t).Quality("hello", nil, 0, resume.NotMentioned)

	// Only the minimal sections score is awarded.
	assert.Equal(t, 3.0, report.Score)
	assert.Equal(t, []string{
		"Resume is too brief (5 chars, minimum 400 required)",
		"Too few skills (0, 8+ recommended)",
		"Include years of professional experience",
		"Mention your educational background",
		"Add contact information: email, phone, LinkedIn",
		"Include Experience, Education, and Skills sections",
		"Start bullet points with strong action verbs",
		"Add metrics/numbers to achievements (e.g., 20% improvement)",
	}, report.Issues)
}

func TestQualityMiddleTiers(t *testing.T) {
	t.Parallel()

	text := "jane@example.com 555-123-4567\nExperience: led and developed the platform, reduced costs 10%.\nSkills: Go"
	report := newScorer(t).Quality(text, twelveSkills[:8], 3, resume.Bachelor)

	byCategory := map[string]Subscore{}
	for _, sub := range report.Subscores {
		byCategory[sub.Category] = sub
	}

	assert.Equal(t, 12.0, byCategory["Skills"].Points)
	assert.Equal(t, 15.0, byCategory["Experience"].Points)
	assert.Equal(t, 12.0, byCategory["Education"].Points)
	assert.Equal(t, 8.0, byCategory["Contact"].Points)
	assert.Equal(t, 7.0, byCategory["Sections"].Points)
	assert.Equal(t, 4.0, byCategory["Action Verbs"].Points)
	assert.Equal(t, 3.0, byCategory["Metrics"].Points)
	assert.Contains(t, report.Issues, "Add education section")
	assert.Contains(t, report.Issues, "List more relevant skills (8, 12+ recommended)")
}

func TestQualityScoreBounds(t *testing.T) {
	t.Parallel()

	s := newScorer(t)
	texts := []string{"x", strongResume(), strings.Repeat(strongResume(), 5), "Skills Education Experience"}
	years := []int{-5, 0, 2, 4, 100}
	educations := append(resume.EducationLevels(), "Unknown")
	skillSets := [][]string{nil, twelveSkills[:3], twelveSkills[:6], twelveSkills[:9], twelveSkills}

	for _, text := range texts {
		for _, y := range years {
			for _, edu := range educations {
				for _, set := range skillSets {
					report := s.Quality(text, set, y, edu)
					assert.GreaterOrEqual(t, report.Score, 0.0)
					assert.LessOrEqual(t, report.Score, 100.0)
					if report.Score < 100 {
						assert.NotEmpty(t, report.Issues)
					}
				}
			}
		}
	}
}

func TestATS(t *testing.T) {
	t.Parallel()

	s := newScorer(t)

	got := s.ATS(100, twelveSkills, 6)
	assert.Equal(t, ATSScore{Score: 93.75, Label: "Excellent", Quality: 100, SkillFactor: 100, ExperienceFactor: 75}, got)

	// Soft skills do not count towards the skill factor.
	low := s.ATS(40, []string{"Communication", "Python"}, 0)
	assert.Equal(t, 22.5, low.Score)
	assert.Equal(t, "Needs Work", low.Label)

	assert.Equal(t, 0.0, s.ATS(0, nil, -3).Score)
}

func TestATSLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Excellent", ATSLabel(80))
	assert.Equal(t, "Very Good", ATSLabel(79.99))
	assert.Equal(t, "Good", ATSLabel(60))
	assert.Equal(t, "Needs Work", ATSLabel(59.9))
}

func TestPredictSalary(t *testing.T) {
	t.Parallel()

	s := newScorer(t)

	got := s.PredictSalary(5, []string{"Python", "AWS"}, resume.Master, "Tech")
	assert.Equal(t, Salary{Min: 200, Avg: 257, Max: 343, Level: MidLevel, Currency: "USD", Period: "annual (2024-2026)"}, got)

	assert.Equal(t, got, s.PredictSalary(5, []string{"python", "AWS", "aws"}, resume.Master, ""))
	assert.Equal(t, StaffPlus, s.PredictSalary(1000, nil, "", "Tech").Level)
	assert.Equal(t, EntryLevel, s.PredictSalary(-7, nil, "", "Tech").Level)
}

func TestPredictSalaryFloors(t *testing.T) {
	t.Parallel()

	s := newScorer(t, `
salaries:
  - industry: Tech
    levels:
      - {level: Entry Level, min: 1, avg: 2, max: 3}
      - {level: Mid-Level, min: 1, avg: 2, max: 3}
`)

	for _, years := range []int{-100, -1, 0, 1, 7, 40, 1 << 30} {
		got := s.PredictSalary(years, nil, resume.NotMentioned, "Tech")
		assert.GreaterOrEqual(t, got.Min, 35.0)
		assert.GreaterOrEqual(t, got.Avg, 50.0)
		assert.GreaterOrEqual(t, got.Max, 70.0)
	}
}

func TestSeniorityLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, EntryLevel, SeniorityLevel(1))
	assert.Equal(t, Junior, SeniorityLevel(2))
	assert.Equal(t, MidLevel, SeniorityLevel(5))
	assert.Equal(t, Senior, SeniorityLevel(14))
	assert.Equal(t, StaffPlus, SeniorityLevel(15))
}

func TestInterviewReadiness(t *testing.T) {
	t.Parallel()

	s := newScorer(t)

	strong := s.InterviewReadiness(twelveSkills, twelveSkills[:6], 6, resume.Master)
	assert.Equal(t, 100, strong.Score)
	assert.Equal(t, "Excellent", strong.Level)
	assert.Equal(t, []string{
		"Strong experience (6+ years)",
		"Expert match (100.0% of required skills)",
		"Advanced degree (Master)",
	}, strong.Strengths)
	assert.Empty(t, strong.Concerns)

	weak := s.InterviewReadiness(nil, []string{"Go"}, 0, resume.NotMentioned)
	assert.Equal(t, 10, weak.Score)
	assert.Equal(t, "Fair", weak.Level)
	assert.Empty(t, weak.Strengths)
	assert.Equal(t, []string{
		"Entry-level position - emphasize learning",
		"Highlight transferable skills to offset gaps.",
	}, weak.Concerns)

	mid := s.InterviewReadiness(twelveSkills[:5], []string{"Python", "Go", "Rust", "Java"}, 3, resume.Bachelor)
	// 20 experience + 20 match + 10 education + 10 depth
	assert.Equal(t, 60, mid.Score)
	assert.Equal(t, "Good", mid.Level)
}

func TestProfileFits(t *testing.T) {
	t.Parallel()

	s := newScorer(t)
	resumeSkills := []string{"JavaScript", "React", "Node.js", "SQL", "Git", "REST API", "HTML", "CSS"}

	fits := s.ProfileFits(resumeSkills)
	require.Len(t, fits, 9)

	top := fits[0]
	assert.Equal(t, "Full Stack Developer", top.Role)
	assert.Equal(t, 72.73, top.MatchScore)
	assert.Equal(t, 6, top.CriticalMatched)
	assert.Equal(t, 0, top.CriticalMissing)
	assert.Equal(t, ExcellentMatch, top.Eligibility)
	assert.Equal(t, 130.0, top.AvgSalary)

	for _, fit := range fits {
		if fit.Role == "Frontend Developer" {
			assert.Equal(t, 66.67, fit.MatchScore)
			assert.Equal(t, GoodMatch, fit.Eligibility)
		}
	}

	for i := 1; i < len(fits); i++ {
		assert.GreaterOrEqual(t, fits[i-1].MatchScore, fits[i].MatchScore)
	}

	role, score := s.BestProfile(resumeSkills)
	assert.Equal(t, "Full Stack Developer", role)
	assert.Equal(t, 72.73, score)

	role, score = s.BestProfile(nil)
	assert.Equal(t, UnclassifiedProfile, role)
	assert.Zero(t, score)
}
