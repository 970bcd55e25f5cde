package taxonomy

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

//go:embed tables.yaml
var embeddedTables []byte

type document struct {
	Technical           []Skill              `mapstructure:"technical" validate:"required,dive"`
	Soft                []SoftSkill          `mapstructure:"soft" validate:"required,dive"`
	Creative            []Skill              `mapstructure:"creative" validate:"dive"`
	Aliases             []AliasGroup         `mapstructure:"aliases" validate:"dive"`
	Premiums            []Premium            `mapstructure:"premiums" validate:"dive"`
	Profiles            []Profile            `mapstructure:"profiles" validate:"dive"`
	Salaries            []IndustrySalaries   `mapstructure:"salaries" validate:"required,dive"`
	LearningPaths       []LearningPath       `mapstructure:"learning-paths" validate:"dive"`
	SkillCertifications []SkillCertification `mapstructure:"skill-certifications" validate:"dive"`
	RoleCertifications  []RoleCertifications `mapstructure:"role-certifications" validate:"dive"`
	CertificationTopUp  []RoleCertifications `mapstructure:"certification-top-up" validate:"dive"`
	DefaultSkills       []string             `mapstructure:"default-skills"`
	Rubric              Rubric               `mapstructure:"rubric"`
}

var (
	defaultOnce   sync.Once
	defaultTables *Tables
	defaultErr    error
)

// Default returns the tables built from the embedded document. It is loaded
// once per process and panics if the embedded document is invalid.
func Default() *Tables {
	defaultOnce.Do(func() {
		defaultTables, defaultErr = Load()
	})
	if defaultErr != nil {
		panic(fmt.Sprintf("loading embedded reference tables: %v", defaultErr))
	}
	return defaultTables
}

// Load builds tables from the embedded document with the given YAML overlays
// merged on top in order. A top-level section defined by an overlay replaces
// the embedded section.
func Load(overlays ...io.Reader) (*Tables, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	if err := v.ReadConfig(bytes.NewReader(embeddedTables)); err != nil {
		return nil, fmt.Errorf("reading embedded tables: %w", err)
	}

	for i, overlay := range overlays {
		if err := v.MergeConfig(overlay); err != nil {
			return nil, fmt.Errorf("merging overlay %d: %w", i, err)
		}
	}

	var doc document
	sections := []struct {
		key    string
		target any
	}{
		{"technical", &doc.Technical},
		{"soft", &doc.Soft},
		{"creative", &doc.Creative},
		{"aliases", &doc.Aliases},
		{"premiums", &doc.Premiums},
		{"profiles", &doc.Profiles},
		{"salaries", &doc.Salaries},
		{"learning-paths", &doc.LearningPaths},
		{"skill-certifications", &doc.SkillCertifications},
		{"role-certifications", &doc.RoleCertifications},
		{"certification-top-up", &doc.CertificationTopUp},
		{"default-skills", &doc.DefaultSkills},
		{"rubric", &doc.Rubric},
	}

	for _, section := range sections {
		if err := decode(v.Get(section.key), section.target); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", section.key, err)
		}
	}

	if err := validator.New().Struct(doc); err != nil {
		return nil, fmt.Errorf("validating tables: %w", err)
	}

	return build(doc), nil
}

func decode(input, target any) error {
	if input == nil {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      target,
		ErrorUnused: true,
	})
	if err != nil {
		return err
	}

	return decoder.Decode(input)
}

func build(doc document) *Tables {
	t := &Tables{
		technical:     doc.Technical,
		soft:          doc.Soft,
		creative:      doc.Creative,
		aliases:       doc.Aliases,
		profiles:      doc.Profiles,
		salaries:      doc.Salaries,
		skillCerts:    doc.SkillCertifications,
		defaultSkills: doc.DefaultSkills,
		rubric:        doc.Rubric,
		premiums:      make(map[string]float64, len(doc.Premiums)),
		learningPaths: make(map[string]LearningPath, len(doc.LearningPaths)),
		roleCerts:     make(map[string][]Certification, len(doc.RoleCertifications)),
		certTopUp:     make(map[string][]Certification, len(doc.CertificationTopUp)),
	}

	for _, p := range doc.Premiums {
		t.premiums[Normalize(p.Skill)] = p.Value
	}
	for _, p := range doc.LearningPaths {
		t.learningPaths[Normalize(p.Skill)] = p
	}
	for _, r := range doc.RoleCertifications {
		t.roleCerts[Normalize(r.Role)] = r.Certifications
	}
	for _, r := range doc.CertificationTopUp {
		t.certTopUp[Normalize(r.Role)] = r.Certifications
	}

	t.index()
	return t
}
