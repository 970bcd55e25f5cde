package insights

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/spigell/resume-analyzer/internal/resume"
	"github.com/spigell/resume-analyzer/internal/skills"
)

// KeywordCount is a job keyword found in the resume.
type KeywordCount struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// KeywordDensity tells how many job keywords appear in the resume.
type KeywordDensity struct {
	Found    []KeywordCount `json:"found"`
	Missing  []string       `json:"missing"`
	ScorePct float64        `json:"score_pct"`
}

// KeywordDensity counts the mentions of every job skill and its aliases in
// the resume. The score is the share of skills found, rounded to one decimal.
func (g *Generator) KeywordDensity(text string, jobSkills []string) KeywordDensity {
	density := KeywordDensity{
		Found:   []KeywordCount{},
		Missing: []string{},
	}
	if strings.TrimSpace(text) == "" || len(jobSkills) == 0 {
		density.Missing = append(density.Missing, jobSkills...)
		return density
	}

	lower := strings.ToLower(text)
	for _, skill := range jobSkills {
		if n := g.skills.Occurrences(lower, skill); n > 0 {
			density.Found = append(density.Found, KeywordCount{Skill: skill, Count: n})
		} else {
			density.Missing = append(density.Missing, skill)
		}
	}
	density.ScorePct = math.Round(float64(len(density.Found))/float64(len(jobSkills))*1000) / 10
	return density
}

// Check states.
const (
	Pass = "pass"
	Warn = "warn"
	Fail = "fail"
)

// CheckItem is one entry of the ATS checklist.
type CheckItem struct {
	Item   string `json:"item"`
	Status string `json:"status"`
	Tip    string `json:"tip"`
}

// ATSChecklist runs the eight ATS friendliness checks.
func (g *Generator) ATSChecklist(text string, resumeSkills []string, years int) []CheckItem {
	lower := strings.ToLower(text)
	contacts := resume.ExtractContact(text).Count()
	words := len(strings.Fields(text))

	verbs := 0
	for _, v := range g.tables.Rubric().ActionVerbs.Verbs {
		verbs += skills.CountTokens(lower, strings.ToLower(v))
	}

	present := func(section string) string {
		if strings.Contains(lower, section) {
			return Pass
		}
		return Fail
	}

	return []CheckItem{
		{
			Item:   "Contact info (email, phone, LinkedIn)",
			Status: tiered(contacts, 2, 1),
			Tip:    "Add email, phone, and LinkedIn URL.",
		},
		{
			Item:   "Experience section",
			Status: present("experience"),
			Tip:    "Include a clear Experience or Work History section.",
		},
		{
			Item:   "Education section",
			Status: present("education"),
			Tip:    "Include Education with degree and institution.",
		},
		{
			Item:   "Skills section",
			Status: present("skills"),
			Tip:    "List technical and soft skills clearly.",
		},
		{
			Item:   "Length (400–1500 words)",
			Status: lengthStatus(words),
			Tip:    "Ideal: 1–2 pages, 400–800 words.",
		},
		{
			Item:   "Action verbs (5+)",
			Status: tiered(verbs, 5, 2),
			Tip:    "Start bullets with Led, Developed, Implemented, etc.",
		},
		{
			Item:   "Skills count (8+)",
			Status: tiered(len(resumeSkills), 8, 5),
			Tip:    "List 8–15 relevant skills.",
		},
		{
			Item:   "Experience years mentioned",
			Status: tiered(years, 1, 1),
			Tip:    "Mention years of experience explicitly.",
		},
	}
}

func tiered(n, pass, warn int) string {
	switch {
	case n >= pass:
		return Pass
	case n >= warn:
		return Warn
	default:
		return Fail
	}
}

func lengthStatus(words int) string {
	switch {
	case words >= 400 && words <= 1500:
		return Pass
	case words >= 200 && words < 400, words > 2000:
		return Warn
	default:
		return Fail
	}
}

// Readability holds length statistics of a resume.
type Readability struct {
	WordCount       int    `json:"word_count"`
	CharCount       int    `json:"char_count"`
	ReadingTimeMins int    `json:"reading_time_mins"`
	LengthOK        bool   `json:"length_ok"`
	Suggestion      string `json:"suggestion"`
}

const wordsPerMinute = 200

// Readability measures the resume at 200 words per minute, rounded up to at
// least one minute, and suggests a length correction.
func (g *Generator) Readability(text string) Readability {
	if strings.TrimSpace(text) == "" {
		return Readability{Suggestion: "Add resume content."}
	}

	words := len(strings.Fields(text))
	r := Readability{
		WordCount:       words,
		CharCount:       utf8.RuneCountInString(text),
		ReadingTimeMins: max(1, int(math.Ceil(float64(words)/wordsPerMinute))),
		LengthOK:        words >= 400 && words <= 1200,
	}
	switch {
	case words < 400:
		r.Suggestion = "Resume is too short. Add more bullet points and achievements (target 400–800 words)."
	case words > 1200:
		r.Suggestion = "Resume is long. Consider trimming to 1–2 pages (under 800 words) for ATS."
	default:
		r.Suggestion = "Length is good for ATS and recruiters."
	}
	return r
}

var (
	strongVerbs = []string{
		"Led", "Developed", "Managed", "Created", "Implemented", "Designed", "Built", "Improved",
		"Achieved", "Optimized", "Launched", "Established", "Reduced", "Increased", "Automated",
	}
	weakPhrases    = []string{"did", "made", "worked", "helped", "used", "responsible for", "handled"}
	suggestedVerbs = []string{"Led", "Developed", "Implemented", "Designed", "Achieved"}
)

const maxUsedVerbs = 10

// VerbReport lists the strong verbs and weak phrases a resume uses.
type VerbReport struct {
	Count        int      `json:"count"`
	Used         []string `json:"used"`
	WeakFound    []string `json:"weak_found"`
	SuggestedAdd []string `json:"suggested_add"`
}

// ActionVerbs finds strong action verbs and weak phrases. Replacements are
// suggested only when no strong verb is used.
func (g *Generator) ActionVerbs(text string) VerbReport {
	lower := strings.ToLower(text)

	used := []string{}
	for _, v := range strongVerbs {
		if skills.ContainsToken(lower, strings.ToLower(v)) {
			used = append(used, v)
		}
	}
	weak := []string{}
	for _, w := range weakPhrases {
		if skills.ContainsToken(lower, w) {
			weak = append(weak, w)
		}
	}
	suggested := []string{}
	if len(used) == 0 {
		suggested = append(suggested, suggestedVerbs...)
	}

	return VerbReport{
		Count:        len(used),
		Used:         head(used, maxUsedVerbs),
		WeakFound:    weak,
		SuggestedAdd: suggested,
	}
}
