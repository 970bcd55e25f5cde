package insights

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spigell/resume-analyzer/internal/roles"
	"github.com/spigell/resume-analyzer/internal/scoring"
	"github.com/spigell/resume-analyzer/internal/skills"
	"github.com/spigell/resume-analyzer/internal/taxonomy"
)

const (
	maxTailoredSkills    = 5
	maxTailoringPhrases  = 8
	maxQuestionSkills    = 3
	maxQuestions         = 8
	maxCoverLetterSkills = 3
	maxCoverLetter       = 5
	maxIssueSuggestions  = 3
	maxLearnSkills       = 3
	maxSuggestions       = 5
	maxSnapshotCritical  = 5
	maxSnapshotRequired  = 3
)

// TailoringPhrases suggests resume phrases that cover missing skills.
func (g *Generator) TailoringPhrases(missing []string, role roles.Role) []string {
	phrases := []string{}
	for _, s := range head(missing, maxTailoredSkills) {
		name := g.tables.Display(s)
		phrases = append(phrases,
			fmt.Sprintf("Experience with %s in production environments", name),
			fmt.Sprintf("Proficient in %s for building scalable solutions", name),
		)
	}
	phrases = append(phrases, fmt.Sprintf("Strong fit for %s role with hands-on technical delivery", role.Name))
	return head(phrases, maxTailoringPhrases)
}

// InterviewQuestions lists likely questions for the role and the skill gaps.
func (g *Generator) InterviewQuestions(role roles.Role, missing []string) []string {
	name := strings.ToLower(role.Name)
	has := func(words ...string) bool {
		for _, w := range words {
			if strings.Contains(name, w) {
				return true
			}
		}
		return false
	}

	questions := []string{}
	if has("data", "ml", "scientist", "machine learning") {
		questions = append(questions,
			"Walk me through a data or ML project from problem to deployment.",
			"How do you handle imbalanced datasets or missing data?",
		)
	}
	if has("engineer", "developer") {
		questions = append(questions,
			"Describe a technical challenge you solved and the approach you took.",
			"How do you balance code quality with delivery deadlines?",
		)
	}
	if has("devops", "cloud") {
		questions = append(questions,
			"Describe your experience with CI/CD and production deployments.",
			"How do you approach incident response and post-mortems?",
		)
	}
	for _, s := range head(missing, maxQuestionSkills) {
		questions = append(questions, fmt.Sprintf("What is your hands-on experience with %s?", g.tables.Display(s)))
	}
	questions = append(questions, "Why do you want to join our team and what will you contribute in the first 90 days?")
	return head(questions, maxQuestions)
}

// CoverLetterBullets drafts cover letter points. Technical matches are named
// first.
func (g *Generator) CoverLetterBullets(resumeSkills, required []string, years int, role roles.Role) []string {
	match := scoring.Match(resumeSkills, required)

	top := append([]string(nil), match.Matched...)
	sort.SliceStable(top, func(i, j int) bool {
		ti, tj := g.skills.IsTechnical(top[i]), g.skills.IsTechnical(top[j])
		if ti != tj {
			return ti
		}
		return strings.ToLower(top[i]) < strings.ToLower(top[j])
	})

	bullets := []string{fmt.Sprintf("Over %d years of experience in software development and delivery.", years)}
	if len(top) > 0 {
		bullets = append(bullets, fmt.Sprintf("Proficient in %s and related technologies.",
			strings.Join(head(top, maxCoverLetterSkills), ", ")))
	}
	bullets = append(bullets,
		fmt.Sprintf("Eager to contribute to %s responsibilities and team goals.", role.Name),
		fmt.Sprintf("Strong match to role requirements (%.0f%% skill alignment) with focus on quality and impact.", match.Percentage),
	)
	return head(bullets, maxCoverLetter)
}

// IdealCandidate summarizes what a strong resume for the role contains.
// Roles without a job profile get a generic snapshot.
func (g *Generator) IdealCandidate(role roles.Role) []string {
	p, ok := g.tables.Profile(role.Name)
	if !ok || role.Kind != roles.Known {
		return []string{
			"Strong technical skills matching the job description",
			"Clear experience section",
			"Relevant education and certifications",
		}
	}

	education := p.Education
	if education == "" {
		education = "Bachelor"
	}
	return []string{
		"Key skills: " + strings.Join(head(p.Skills.Critical, maxSnapshotCritical), ", "),
		"Also: " + strings.Join(head(p.Skills.Required, maxSnapshotRequired), ", "),
		fmt.Sprintf("Experience: %d+ years", p.MinExperience),
		fmt.Sprintf("Education: %s or equivalent", education),
	}
}

// ImprovementSuggestions combines the top quality issues with the most
// pressing missing skills, at most five.
func (g *Generator) ImprovementSuggestions(resumeSkills, required, issues []string) []string {
	suggestions := append([]string{}, head(issues, maxIssueSuggestions)...)

	if missing := scoring.Match(resumeSkills, required).Missing; len(missing) > 0 {
		names := make([]string, 0, maxLearnSkills)
		for _, s := range head(missing, maxLearnSkills) {
			names = append(names, g.tables.Display(s))
		}
		suggestions = append(suggestions, "Learn in-demand skills: "+strings.Join(names, ", "))
	}

	if len(suggestions) == 0 {
		suggestions = append(suggestions, "Resume and skills look great! Focus on interview preparation.")
	}
	return head(suggestions, maxSuggestions)
}

var atsKeywords = []string{
	"bachelor", "design", "develop", "experience", "implement", "lead",
	"manage", "master", "qualification", "requirement", "responsibility", "skill",
}

// ATSKeywords returns the common ATS keyword stems present in a job
// description, Title Cased and sorted.
func (g *Generator) ATSKeywords(text string) []string {
	lower := strings.ToLower(text)
	found := []string{}
	for _, k := range atsKeywords {
		if strings.Contains(lower, k) {
			found = append(found, taxonomy.Title(k))
		}
	}
	skills.Sort(found)
	return found
}
