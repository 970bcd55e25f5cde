package scoring

import (
	"sort"
)

// Eligibility labels of a profile fit.
const (
	ExcellentMatch   = "Excellent Match"
	GoodMatch        = "Good Match"
	PotentialMatch   = "Potential Match"
	LearningRequired = "Learning Required"
)

// UnclassifiedProfile is reported when no profile shares a skill with the resume.
const UnclassifiedProfile = "Unclassified Role"

// ProfileFit is how well a resume fits one job profile.
type ProfileFit struct {
	Role            string  `json:"role"`
	MatchScore      float64 `json:"match_score"`
	CriticalMatched int     `json:"critical_matched"`
	CriticalMissing int     `json:"critical_missing"`
	TotalCritical   int     `json:"total_critical"`
	Eligibility     string  `json:"eligibility"`
	MinExperience   int     `json:"min_experience"`
	AvgSalary       float64 `json:"avg_salary"`
}

// ProfileFits matches the resume with every job profile against its critical
// and required skills, best match first.
func (s *Scorer) ProfileFits(resumeSkills []string) []ProfileFit {
	profiles := s.tables.Profiles()
	fits := make([]ProfileFit, 0, len(profiles))
	resumeKeys := keySet(resumeSkills)

	for _, p := range profiles {
		all := append(append([]string(nil), p.Skills.Critical...), p.Skills.Required...)
		match := Match(resumeSkills, all)

		critical := uniqueKeys(p.Skills.Critical)
		matched := 0
		for _, k := range critical {
			if _, ok := resumeKeys[k]; ok {
				matched++
			}
		}

		criticalPct := 0.0
		if len(critical) > 0 {
			criticalPct = float64(matched) / float64(len(critical)) * 100
		}

		fits = append(fits, ProfileFit{
			Role:            p.Role,
			MatchScore:      match.Percentage,
			CriticalMatched: matched,
			CriticalMissing: len(critical) - matched,
			TotalCritical:   len(critical),
			Eligibility:     eligibility(criticalPct, match.Percentage),
			MinExperience:   p.MinExperience,
			AvgSalary:       p.Salary.Avg,
		})
	}

	sort.SliceStable(fits, func(i, j int) bool {
		return fits[i].MatchScore > fits[j].MatchScore
	})
	return fits
}

// BestProfile returns the profile with the highest match score, or
// UnclassifiedProfile when nothing matches.
func (s *Scorer) BestProfile(resumeSkills []string) (string, float64) {
	best, bestScore := UnclassifiedProfile, 0.0
	for _, fit := range s.ProfileFits(resumeSkills) {
		if fit.MatchScore > bestScore {
			best, bestScore = fit.Role, fit.MatchScore
		}
	}
	return best, bestScore
}

func eligibility(criticalPct, score float64) string {
	switch {
	case criticalPct >= 80 && score >= 70:
		return ExcellentMatch
	case criticalPct >= 60 && score >= 55:
		return GoodMatch
	case criticalPct >= 40 && score >= 40:
		return PotentialMatch
	default:
		return LearningRequired
	}
}
