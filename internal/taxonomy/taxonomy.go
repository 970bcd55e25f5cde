// Package taxonomy holds the read-only reference tables used by the analysis
// engine: skill taxonomy, aliases, salary premiums, job profiles, salary bands,
// learning paths, certification catalogs and the resume quality rubric.
package taxonomy

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Demand is a market demand tier of a skill.
type Demand string

const (
	DemandLow      Demand = "Low"
	DemandMedium   Demand = "Medium"
	DemandHigh     Demand = "High"
	DemandCritical Demand = "Critical"
)

// Skill is a taxonomy entry for a technical or creative skill.
type Skill struct {
	Name     string  `mapstructure:"name" validate:"required"`
	Category string  `mapstructure:"category" validate:"required"`
	Demand   Demand  `mapstructure:"demand" validate:"oneof=Low Medium High Critical"`
	Growth   float64 `mapstructure:"growth"`
}

// SoftSkill is a taxonomy entry for an interpersonal skill.
type SoftSkill struct {
	Name       string  `mapstructure:"name" validate:"required"`
	Type       string  `mapstructure:"type" validate:"required"`
	Importance float64 `mapstructure:"importance" validate:"gte=0,lte=1"`
}

// AliasGroup maps a canonical skill key to its variant spellings.
type AliasGroup struct {
	Skill    string   `mapstructure:"skill" validate:"required"`
	Variants []string `mapstructure:"variants" validate:"required,dive,required"`
}

// Premium is the salary premium a skill carries, as a fraction.
type Premium struct {
	Skill string  `mapstructure:"skill" validate:"required"`
	Value float64 `mapstructure:"value" validate:"gte=0"`
}

// Band is a salary band in thousands of USD.
type Band struct {
	Min float64 `mapstructure:"min" validate:"gte=0"`
	Avg float64 `mapstructure:"avg" validate:"gtefield=Min"`
	Max float64 `mapstructure:"max" validate:"gtefield=Avg"`
}

// SkillTiers splits the skills of a job profile by importance.
type SkillTiers struct {
	Critical  []string `mapstructure:"critical" validate:"required"`
	Required  []string `mapstructure:"required"`
	Preferred []string `mapstructure:"preferred"`
}

// Profile is an industry-standard job profile.
type Profile struct {
	Role              string     `mapstructure:"role" validate:"required"`
	Skills            SkillTiers `mapstructure:"skills"`
	MinExperience     int        `mapstructure:"min-experience" validate:"gte=0"`
	TypicalExperience int        `mapstructure:"typical-experience" validate:"gtefield=MinExperience"`
	Education         string     `mapstructure:"education"`
	Salary            Band       `mapstructure:"salary"`
}

// LevelBand is a salary band for one seniority level.
type LevelBand struct {
	Level string `mapstructure:"level" validate:"required"`
	Band  `mapstructure:",squash"`
}

// IndustrySalaries holds salary bands of one industry.
type IndustrySalaries struct {
	Industry string      `mapstructure:"industry" validate:"required"`
	Levels   []LevelBand `mapstructure:"levels" validate:"required,dive"`
}

// LearningPath lists learning resources for a skill.
type LearningPath struct {
	Skill        string   `mapstructure:"skill" validate:"required"`
	Entry        []string `mapstructure:"entry"`
	Intermediate []string `mapstructure:"intermediate"`
	Advanced     []string `mapstructure:"advanced"`
	Timeline     string   `mapstructure:"timeline" validate:"required"`
}

// Certification is a professional certificate recommendation.
type Certification struct {
	Name      string `mapstructure:"name" json:"cert" validate:"required"`
	Relevance string `mapstructure:"relevance" json:"relevance" validate:"required"`
	Duration  string `mapstructure:"duration" json:"duration" validate:"required"`
}

// SkillCertification binds a skill keyword to a certification.
type SkillCertification struct {
	Keyword       string `mapstructure:"keyword" validate:"required"`
	Certification `mapstructure:",squash"`
}

// RoleCertifications lists the default certifications of a role.
type RoleCertifications struct {
	Role           string          `mapstructure:"role" validate:"required"`
	Certifications []Certification `mapstructure:"certifications" validate:"required,dive"`
}

// Threshold is a rubric category scored by a number.
type Threshold struct {
	Points     float64 `mapstructure:"points" validate:"gt=0"`
	Excellent  float64 `mapstructure:"excellent" validate:"gtefield=Good"`
	Good       float64 `mapstructure:"good" validate:"gtefield=Acceptable"`
	Acceptable float64 `mapstructure:"acceptable"`
}

// EducationTiers is the rubric category scored by education level.
type EducationTiers struct {
	Points     float64  `mapstructure:"points" validate:"gt=0"`
	Excellent  []string `mapstructure:"excellent"`
	Good       []string `mapstructure:"good"`
	Acceptable []string `mapstructure:"acceptable"`
}

// Keywords is a rubric category scored by keyword occurrences.
type Keywords struct {
	Points   float64  `mapstructure:"points" validate:"gt=0"`
	Required []string `mapstructure:"required"`
	Verbs    []string `mapstructure:"verbs"`
	Keywords []string `mapstructure:"keywords"`
}

// Rubric is the point allocation table of the resume quality score.
type Rubric struct {
	Length         Threshold      `mapstructure:"length"`
	Skills         Threshold      `mapstructure:"skills"`
	Experience     Threshold      `mapstructure:"experience"`
	Education      EducationTiers `mapstructure:"education"`
	Contact        Keywords       `mapstructure:"contact"`
	Sections       Keywords       `mapstructure:"sections"`
	ActionVerbs    Keywords       `mapstructure:"action-verbs"`
	Quantification Keywords       `mapstructure:"quantification"`
}

// Tables is the immutable set of reference tables. Build it with Load or
// Default; the zero value has no entries.
type Tables struct {
	technical     []Skill
	soft          []SoftSkill
	creative      []Skill
	aliases       []AliasGroup
	premiums      map[string]float64
	profiles      []Profile
	salaries      []IndustrySalaries
	learningPaths map[string]LearningPath
	skillCerts    []SkillCertification
	roleCerts     map[string][]Certification
	certTopUp     map[string][]Certification
	defaultSkills []string
	rubric        Rubric

	technicalIdx map[string]Skill
	softIdx      map[string]SoftSkill
	creativeIdx  map[string]Skill
	aliasIdx     map[string]int
	profileIdx   map[string]Profile
	displayIdx   map[string]string
}

// Title returns s in Title Case. A Caser keeps state, so each call gets its own.
func Title(s string) string {
	return cases.Title(language.English).String(s)
}

// TechnicalNames returns display names of all technical skills in table order.
func (t *Tables) TechnicalNames() []string {
	names := make([]string, 0, len(t.technical))
	for _, s := range t.technical {
		names = append(names, s.Name)
	}
	return names
}

// SoftNames returns display names of all soft skills in table order.
func (t *Tables) SoftNames() []string {
	names := make([]string, 0, len(t.soft))
	for _, s := range t.soft {
		names = append(names, s.Name)
	}
	return names
}

// CreativeNames returns display names of all creative skills in table order.
func (t *Tables) CreativeNames() []string {
	names := make([]string, 0, len(t.creative))
	for _, s := range t.creative {
		names = append(names, s.Name)
	}
	return names
}

// DefaultVocabulary is the technical and soft skill vocabulary.
func (t *Tables) DefaultVocabulary() []string {
	return append(t.TechnicalNames(), t.SoftNames()...)
}

// FullVocabulary is the technical, soft and creative skill vocabulary.
func (t *Tables) FullVocabulary() []string {
	return append(t.DefaultVocabulary(), t.CreativeNames()...)
}

// DefaultSkills is the candidate list used when none is configured.
func (t *Tables) DefaultSkills() []string {
	return append([]string(nil), t.defaultSkills...)
}

// Technical looks up a technical skill by any casing of its name.
func (t *Tables) Technical(name string) (Skill, bool) {
	s, ok := t.technicalIdx[Normalize(name)]
	return s, ok
}

// Soft looks up a soft skill by any casing of its name.
func (t *Tables) Soft(name string) (SoftSkill, bool) {
	s, ok := t.softIdx[Normalize(name)]
	return s, ok
}

// Creative looks up a creative skill by any casing of its name.
func (t *Tables) Creative(name string) (Skill, bool) {
	s, ok := t.creativeIdx[Normalize(name)]
	return s, ok
}

// Display returns the taxonomy casing of a skill, falling back to Title Case
// for unknown skills.
func (t *Tables) Display(name string) string {
	if display, ok := t.displayIdx[Normalize(name)]; ok {
		return display
	}
	return Title(strings.TrimSpace(name))
}

// Premium returns the salary premium of a skill, 0 when it has none.
func (t *Tables) Premium(name string) float64 {
	return t.premiums[Normalize(name)]
}

// Profiles returns all job profiles in table order.
func (t *Tables) Profiles() []Profile {
	return append([]Profile(nil), t.profiles...)
}

// Profile looks up a job profile by role name.
func (t *Tables) Profile(role string) (Profile, bool) {
	p, ok := t.profileIdx[Normalize(role)]
	return p, ok
}

const (
	fallbackIndustry = "Tech"
	fallbackLevel    = "Mid-Level"
)

// SalaryBand returns the band of an industry and seniority level. A missing
// industry falls back to Tech and a missing level to Mid-Level.
func (t *Tables) SalaryBand(industry, level string) Band {
	levels := t.industryLevels(industry)
	if levels == nil {
		levels = t.industryLevels(fallbackIndustry)
	}

	var fallback Band
	for _, l := range levels {
		if strings.EqualFold(l.Level, level) {
			return l.Band
		}
		if l.Level == fallbackLevel {
			fallback = l.Band
		}
	}
	return fallback
}

func (t *Tables) industryLevels(industry string) []LevelBand {
	for _, s := range t.salaries {
		if strings.EqualFold(s.Industry, strings.TrimSpace(industry)) {
			return s.Levels
		}
	}
	return nil
}

// Industries returns the industries that have salary tables.
func (t *Tables) Industries() []string {
	names := make([]string, 0, len(t.salaries))
	for _, s := range t.salaries {
		names = append(names, s.Industry)
	}
	return names
}

// LearningPath looks up the learning path of a skill.
func (t *Tables) LearningPath(skill string) (LearningPath, bool) {
	p, ok := t.learningPaths[Normalize(skill)]
	return p, ok
}

// SkillCertifications returns the keyword to certification table in match order.
func (t *Tables) SkillCertifications() []SkillCertification {
	return append([]SkillCertification(nil), t.skillCerts...)
}

// RoleCertifications returns the default certifications of a role.
func (t *Tables) RoleCertifications(role string) []Certification {
	return append([]Certification(nil), t.roleCerts[Normalize(role)]...)
}

// TopUpCertifications returns the certifications used to complete short lists.
func (t *Tables) TopUpCertifications(role string) []Certification {
	return append([]Certification(nil), t.certTopUp[Normalize(role)]...)
}

// Rubric returns the quality rubric.
func (t *Tables) Rubric() Rubric {
	return t.rubric
}

func (t *Tables) index() {
	t.technicalIdx = make(map[string]Skill, len(t.technical))
	t.softIdx = make(map[string]SoftSkill, len(t.soft))
	t.creativeIdx = make(map[string]Skill, len(t.creative))
	t.displayIdx = make(map[string]string)

	for _, s := range t.technical {
		t.technicalIdx[Normalize(s.Name)] = s
	}
	for _, s := range t.soft {
		t.softIdx[Normalize(s.Name)] = s
	}
	for _, s := range t.creative {
		t.creativeIdx[Normalize(s.Name)] = s
	}
	for _, name := range t.FullVocabulary() {
		if _, ok := t.displayIdx[Normalize(name)]; !ok {
			t.displayIdx[Normalize(name)] = name
		}
	}

	t.aliasIdx = make(map[string]int)
	for i, g := range t.aliases {
		t.aliasIdx[Normalize(g.Skill)] = i
	}

	t.profileIdx = make(map[string]Profile, len(t.profiles))
	for _, p := range t.profiles {
		t.profileIdx[Normalize(p.Role)] = p
	}
}
