package scoring

import (
	"math"

	"github.com/spigell/resume-analyzer/internal/resume"
)

// Salary is a predicted annual salary range in thousands.
type Salary struct {
	Min      float64 `json:"min"`
	Avg      float64 `json:"avg"`
	Max      float64 `json:"max"`
	Level    string  `json:"level"`
	Currency string  `json:"currency"`
	Period   string  `json:"period"`
}

// Seniority levels of the salary tables.
const (
	EntryLevel = "Entry Level"
	Junior     = "Junior"
	MidLevel   = "Mid-Level"
	Senior     = "Senior"
	StaffPlus  = "Staff+"
)

// DefaultIndustry is used when no industry is given.
const DefaultIndustry = "Tech"

const (
	maxSalaryYears     = 30
	maxExperienceBonus = 20
	experienceStep     = 0.02
	maxSkillMultiplier = 2.0

	floorMin = 35
	floorAvg = 50
	floorMax = 70
)

var educationMultipliers = map[string]float64{
	resume.PhD:      1.15,
	resume.Master:   1.10,
	resume.Bachelor: 1.05,
}

// SeniorityLevel buckets years of experience.
func SeniorityLevel(years int) string {
	switch {
	case years < 2:
		return EntryLevel
	case years < 5:
		return Junior
	case years < 10:
		return MidLevel
	case years < 15:
		return Senior
	default:
		return StaffPlus
	}
}

// PredictSalary scales the industry band of the seniority level by skill
// premiums, education and experience. The range never drops below 35/50/70.
func (s *Scorer) PredictSalary(years int, resumeSkills []string, education, industry string) Salary {
	if industry == "" {
		industry = DefaultIndustry
	}
	years = min(max(years, 0), maxSalaryYears)

	level := SeniorityLevel(years)
	band := s.tables.SalaryBand(industry, level)

	skillMultiplier := 1.0
	for _, k := range uniqueKeys(resumeSkills) {
		skillMultiplier += s.tables.Premium(k)
	}
	skillMultiplier = min(skillMultiplier, maxSkillMultiplier)

	educationMultiplier, ok := educationMultipliers[education]
	if !ok {
		educationMultiplier = 1
	}

	experienceMultiplier := 1 + float64(min(years, maxExperienceBonus))*experienceStep
	total := skillMultiplier * educationMultiplier * experienceMultiplier

	return Salary{
		Min:      math.RoundToEven(max(floorMin, band.Min*total)),
		Avg:      math.RoundToEven(max(floorAvg, band.Avg*total)),
		Max:      math.RoundToEven(max(floorMax, band.Max*total)),
		Level:    level,
		Currency: "USD",
		Period:   "annual (2024-2026)",
	}
}
