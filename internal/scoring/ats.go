package scoring

// ATSScore is the applicant tracking system compatibility composite.
type ATSScore struct {
	Score            float64 `json:"score"`
	Label            string  `json:"label"`
	Quality          float64 `json:"quality"`
	SkillFactor      float64 `json:"skill_factor"`
	ExperienceFactor float64 `json:"experience_factor"`
}

const (
	atsQualityWeight    = 0.5
	atsSkillWeight      = 0.25
	atsExperienceWeight = 0.25

	fullTechnicalSkills = 10
	fullExperienceYears = 8
)

// ATS combines the quality score with the number of technical skills and the
// years of experience: 10 technical skills and 8 years each max out their
// factor.
func (s *Scorer) ATS(quality float64, resumeSkills []string, years int) ATSScore {
	technical := len(s.skills.FilterTechnical(resumeSkills))

	skillFactor := min(100, float64(technical)/fullTechnicalSkills*100)
	experienceFactor := min(100, max(0, float64(years))/fullExperienceYears*100)
	score := round2(quality*atsQualityWeight + skillFactor*atsSkillWeight + experienceFactor*atsExperienceWeight)

	return ATSScore{
		Score:            score,
		Label:            ATSLabel(score),
		Quality:          quality,
		SkillFactor:      round2(skillFactor),
		ExperienceFactor: round2(experienceFactor),
	}
}

// ATSLabel names an ATS score band.
func ATSLabel(score float64) string {
	switch {
	case score >= 80:
		return "Excellent"
	case score >= 70:
		return "Very Good"
	case score >= 60:
		return "Good"
	default:
		return "Needs Work"
	}
}
