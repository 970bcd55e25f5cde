// Package resume reads basic facts out of resume text: years of experience,
// education level and contact details.
package resume

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Education levels, from highest to lowest.
const (
	PhD          = "PhD"
	Master       = "Master"
	Bachelor     = "Bachelor"
	Diploma      = "Diploma"
	HighSchool   = "High School"
	NotMentioned = "Not Mentioned"
)

const (
	maxExperience   = 50
	maxYearsElapsed = 60

	seniorFallback  = 5
	juniorFallback  = 1
	defaultFallback = 2
)

var (
	yearsPattern     = regexp.MustCompile(`(?i)(\d+)\s+(?:years?|yrs?)`)
	plusYearsPattern = regexp.MustCompile(`(?i)(\d+)\+\s*(?:years?|yrs?)`)
	sincePattern     = regexp.MustCompile(`(?i)(?:since|from)\s+((?:19|20)\d{2})`)
	integerPattern   = regexp.MustCompile(`\d+`)
)

// ExtractExperience returns the largest number of years stated in text,
// capped at 50. Stated counts ("5 years", "3+ yrs") and start years
// ("since 2018") are both considered. It returns 0 when nothing is stated.
func ExtractExperience(text string) int {
	return extractExperience(text, time.Now().Year())
}

func extractExperience(text string, currentYear int) int {
	best := 0
	for _, re := range []*regexp.Regexp{yearsPattern, plusYearsPattern} {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if n := ParseYears(m[1]); n > best {
				best = n
			}
		}
	}

	for _, m := range sincePattern.FindAllStringSubmatch(text, -1) {
		elapsed := currentYear - ParseYears(m[1])
		if elapsed > 0 && elapsed <= maxYearsElapsed && elapsed > best {
			best = elapsed
		}
	}

	return min(best, maxExperience)
}

// EstimateExperience is ExtractExperience with a guess for resumes that do
// not state their experience: 5 years for senior profiles, 1 for junior ones
// and 2 otherwise. Blank text gives 0.
func EstimateExperience(text string) int {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	if years := ExtractExperience(text); years > 0 {
		return years
	}

	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "senior"):
		return seniorFallback
	case strings.Contains(lower, "junior"):
		return juniorFallback
	default:
		return defaultFallback
	}
}

// ParseYears returns the first integer in s, or 0 if there is none.
func ParseYears(s string) int {
	m := integerPattern.FindString(s)
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return n
}

type educationLevel struct {
	level   string
	pattern *regexp.Regexp
}

var educationLevels = []educationLevel{
	{PhD, wordsPattern(`phd`, `doctorate`, `doctor of philosophy`, `postdoctoral`)},
	{Master, wordsPattern(`master'?s?`, `ms`, `m\.s`, `mba`, `mtech`, `m\.tech`)},
	{Bachelor, wordsPattern(`bachelor'?s?`, `bs`, `b\.s`, `b\.tech`, `btech`, `bsc`, `b\.sc`)},
	{Diploma, wordsPattern(`diploma`, `associate`, `a\.s`)},
	{HighSchool, wordsPattern(`high school`, `secondary`, `h\.s`, `hs`)},
}

func wordsPattern(words ...string) *regexp.Regexp {
	return regexp.MustCompile(`\b(?:` + strings.Join(words, "|") + `)\b`)
}

// ExtractEducation returns the highest education level mentioned in text.
func ExtractEducation(text string) string {
	lower := strings.ToLower(text)
	for _, e := range educationLevels {
		if e.pattern.MatchString(lower) {
			return e.level
		}
	}
	return NotMentioned
}

// EducationLevels lists the levels ExtractEducation can return.
func EducationLevels() []string {
	return []string{PhD, Master, Bachelor, Diploma, HighSchool, NotMentioned}
}

var (
	emailPattern    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phonePattern    = regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`)
	linkedInPattern = regexp.MustCompile(`(?i)linkedin\.com/in/[A-Za-z0-9-]+`)
)

// Contact holds the contact details found in a resume.
type Contact struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
}

// ExtractContact returns the first email, phone number and LinkedIn profile
// URL in text.
func ExtractContact(text string) Contact {
	return Contact{
		Email:    emailPattern.FindString(text),
		Phone:    phonePattern.FindString(text),
		LinkedIn: linkedInPattern.FindString(text),
	}
}

// Count returns how many of the three contact details are present.
func (c Contact) Count() int {
	n := 0
	for _, v := range []string{c.Email, c.Phone, c.LinkedIn} {
		if v != "" {
			n++
		}
	}
	return n
}
