// Package scoring compares resume skills with job requirements and grades
// resumes: match percentages, the quality rubric, the ATS composite, salary
// prediction, interview readiness and job profile fit.
package scoring

import (
	"math"

	"github.com/spigell/resume-analyzer/internal/skills"
	"github.com/spigell/resume-analyzer/internal/taxonomy"
)

// Scorer grades resumes against the reference tables.
type Scorer struct {
	tables *taxonomy.Tables
	skills *skills.Extractor
}

// NewScorer returns a scorer backed by the extractor's tables.
func NewScorer(extractor *skills.Extractor) *Scorer {
	return &Scorer{
		tables: extractor.Tables(),
		skills: extractor,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// keySet maps the normalized form of every skill to its first spelling.
func keySet(list []string) map[string]string {
	set := make(map[string]string, len(list))
	for _, s := range list {
		k := taxonomy.Normalize(s)
		if k == "" {
			continue
		}
		if _, ok := set[k]; !ok {
			set[k] = s
		}
	}
	return set
}

// uniqueKeys returns the normalized skills in first-seen order.
func uniqueKeys(list []string) []string {
	seen := make(map[string]struct{}, len(list))
	out := make([]string, 0, len(list))
	for _, s := range list {
		k := taxonomy.Normalize(s)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
