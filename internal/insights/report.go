package insights

import (
	"fmt"
	"strings"

	"github.com/spigell/resume-analyzer/internal/scoring"
	"github.com/spigell/resume-analyzer/internal/skills"
)

const (
	reportSkills     = 20
	reportSkillLists = 15
	reportGaps       = 5
)

// ReportInput holds the analysis results rendered into the text report.
type ReportInput struct {
	Role             string
	Match            float64
	Weighted         float64
	Quality          float64
	ATS              float64
	Years            int
	Education        string
	ResumeSkills     []string
	MatchedTechnical []string
	MissingTechnical []string
	QualityIssues    []string
	SkillGaps        []SkillGap
	Salary           scoring.Salary
	Readiness        scoring.Readiness
	Density          KeywordDensity
}

// Report renders the plain-text analysis report.
func (g *Generator) Report(in ReportInput) string {
	resumeSkills := sorted(in.ResumeSkills)
	more := ""
	if len(resumeSkills) > reportSkills {
		more = "..."
	}

	matched := "MATCHED: None"
	if len(in.MatchedTechnical) > 0 {
		matched = "MATCHED: " + strings.Join(head(sorted(in.MatchedTechnical), reportSkillLists), ", ")
	}
	missing := "MISSING: None"
	if len(in.MissingTechnical) > 0 {
		names := make([]string, 0, reportSkillLists)
		for _, s := range head(sorted(in.MissingTechnical), reportSkillLists) {
			names = append(names, g.tables.Display(s))
		}
		missing = "MISSING: " + strings.Join(names, ", ")
	}

	issues := "None"
	if len(in.QualityIssues) > 0 {
		issues = strings.Join(in.QualityIssues, "; ")
	}

	keywords := len(in.Density.Found) + len(in.Density.Missing)

	lines := []string{
		"RESUME ANALYSIS REPORT",
		"======================",
		"Job Role: " + in.Role,
		fmt.Sprintf("Match: %.1f%% | Weighted: %.0f%% | Quality: %.1f%% | ATS: %.1f%%", in.Match, in.Weighted, in.Quality, in.ATS),
		fmt.Sprintf("Experience: %d years | Education: %s", in.Years, in.Education),
		"",
		fmt.Sprintf("YOUR SKILLS (%d)", len(resumeSkills)),
		strings.Join(head(resumeSkills, reportSkills), ", ") + more,
		"",
		matched,
		missing,
		"",
		"QUALITY ISSUES: " + issues,
		"",
		fmt.Sprintf("SALARY RANGE: $%.0fK - $%.0fK (avg $%.0fK)", in.Salary.Min, in.Salary.Max, in.Salary.Avg),
		"",
		fmt.Sprintf("INTERVIEW READINESS: %d%% - %s", in.Readiness.Score, in.Readiness.Level),
		"",
		fmt.Sprintf("KEYWORD MATCH: %.1f%% (%d/%d in resume)", in.Density.ScorePct, len(in.Density.Found), max(1, keywords)),
	}

	if len(in.SkillGaps) > 0 {
		lines = append(lines, "", "SKILL GAPS TO LEARN:")
		for _, gap := range head(in.SkillGaps, reportGaps) {
			lines = append(lines, fmt.Sprintf("  - %s (%s, %s)", gap.Skill, gap.Timeline, gap.Priority))
		}
	}
	return strings.Join(lines, "\n")
}

func sorted(list []string) []string {
	out := append([]string(nil), list...)
	skills.Sort(out)
	return out
}
