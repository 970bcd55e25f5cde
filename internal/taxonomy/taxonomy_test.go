package taxonomy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLoadsEmbeddedTables(t *testing.T) {
	tables := Default()

	assert.Len(t, tables.TechnicalNames(), 60)
	assert.Len(t, tables.SoftNames(), 12)
	assert.Len(t, tables.CreativeNames(), 29)
	assert.Len(t, tables.Profiles(), 9)
	assert.ElementsMatch(t, []string{"Tech", "Finance", "Healthcare Tech", "Startup"}, tables.Industries())
	assert.Contains(t, tables.DefaultSkills(), "REST API")

	skill, ok := tables.Technical("kubernetes")
	require.True(t, ok)
	assert.Equal(t, "Kubernetes", skill.Name)
	assert.Equal(t, DemandCritical, skill.Demand)
	assert.Equal(t, 22.0, skill.Growth)

	soft, ok := tables.Soft("  PROBLEM solving ")
	require.True(t, ok)
	assert.Equal(t, "Cognitive", soft.Type)

	_, ok = tables.Creative("Premiere Pro")
	assert.True(t, ok)
}

func TestDefaultIsShared(t *testing.T) {
	assert.Same(t, Default(), Default())
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "machine learning", Normalize("  Machine Learning\t"))
	assert.Equal(t, "", Normalize("   "))
}

func TestExpandAliases(t *testing.T) {
	t.Parallel()

	tables := Default()

	tests := []struct {
		name   string
		skill  string
		expect []string
	}{
		{
			name:   "canonical key",
			skill:  "Python",
			expect: []string{"python", "py", "python3", "python 3"},
		},
		{
			name:   "variant resolves to its group",
			skill:  "Amazon Web Services",
			expect: []string{"aws", "amazon web services", "amazon aws"},
		},
		{
			name:   "display name listed as variant",
			skill:  "Google Cloud",
			expect: []string{"gcp", "google cloud", "google cloud platform"},
		},
		{
			name:   "unknown skill is a singleton",
			skill:  "Haskell",
			expect: []string{"haskell"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expect, tables.ExpandAliases(tt.skill))
		})
	}
}

func TestExpandAliasesIsSymmetric(t *testing.T) {
	t.Parallel()

	tables := Default()
	for _, canonical := range []string{"javascript", "c#", "cicd", "rest", "oop"} {
		group := tables.ExpandAliases(canonical)
		for _, variant := range group {
			assert.Equal(t, group, tables.ExpandAliases(variant), "variant %q of %q", variant, canonical)
		}
	}
}

func TestLookupsFallBack(t *testing.T) {
	t.Parallel()

	tables := Default()

	assert.Equal(t, 0.12, tables.Premium("Machine Learning"))
	assert.Equal(t, 0.0, tables.Premium("Cobol"))

	assert.Equal(t, "AWS", tables.Display("aws"))
	assert.Equal(t, "Node.js", tables.Display("NODE.JS"))
	assert.Equal(t, "Database Design", tables.Display("database design"))

	finance := tables.SalaryBand("Finance", "Senior")
	assert.Equal(t, Band{Min: 250, Avg: 350, Max: 500}, finance)

	// Finance has no Staff+ band.
	assert.Equal(t, Band{Min: 170, Avg: 220, Max: 300}, tables.SalaryBand("Finance", "Staff+"))
	assert.Equal(t, Band{Min: 300, Avg: 400, Max: 600}, tables.SalaryBand("Retail", "Staff+"))

	path, ok := tables.LearningPath("aws")
	require.True(t, ok)
	assert.Equal(t, "12-16 weeks", path.Timeline)

	_, ok = tables.LearningPath("Rust")
	assert.False(t, ok)

	assert.Len(t, tables.RoleCertifications("devops engineer"), 4)
	assert.Empty(t, tables.RoleCertifications("Florist"))
	assert.Len(t, tables.TopUpCertifications("Data Analyst"), 2)

	profile, ok := tables.Profile("ml engineer")
	require.True(t, ok)
	assert.Equal(t, "Master", profile.Education)
	assert.Equal(t, 2, profile.MinExperience)

	rubric := tables.Rubric()
	assert.Equal(t, 800.0, rubric.Length.Excellent)
	assert.Len(t, rubric.ActionVerbs.Verbs, 10)
}

func TestSkillCertificationsKeepOrder(t *testing.T) {
	t.Parallel()

	certs := Default().SkillCertifications()
	require.NotEmpty(t, certs)
	assert.Equal(t, "kubernetes", certs[0].Keyword)
	assert.Equal(t, "CKA - Kubernetes Administrator", certs[0].Name)
	assert.Equal(t, "blender", certs[len(certs)-1].Keyword)
}

func TestLoadOverlayReplacesSection(t *testing.T) {
	t.Parallel()

	overlay := strings.NewReader(`
premiums:
  - {skill: cobol, value: 0.5}
`)

	tables, err := Load(overlay)
	require.NoError(t, err)

	assert.Equal(t, 0.5, tables.Premium("COBOL"))
	assert.Equal(t, 0.0, tables.Premium("python"))
	assert.Len(t, tables.TechnicalNames(), 60)
}

func TestLoadRejectsInvalidTables(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		overlay string
		errPart string
	}{
		{
			name:    "unknown demand tier",
			overlay: "technical:\n  - {name: Go, category: Language, demand: Huge, growth: 1}\n",
			errPart: "validating tables",
		},
		{
			name:    "salary band out of order",
			overlay: "salaries:\n  - industry: Tech\n    levels:\n      - {level: Junior, min: 100, avg: 50, max: 120}\n",
			errPart: "validating tables",
		},
		{
			name:    "unknown field",
			overlay: "premiums:\n  - {skill: go, value: 0.1, weight: 2}\n",
			errPart: "decoding premiums",
		},
		{
			name:    "malformed yaml",
			overlay: "technical: [\n",
			errPart: "merging overlay 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Load(strings.NewReader(tt.overlay))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errPart)
		})
	}
}
