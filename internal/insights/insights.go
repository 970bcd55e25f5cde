// Package insights turns extracted skills and scores into recommendations:
// skill gaps, certifications, career paths, resume checks, phrasing help and
// the plain-text report.
package insights

import (
	"github.com/spigell/resume-analyzer/internal/skills"
	"github.com/spigell/resume-analyzer/internal/taxonomy"
)

// Generator derives insights from analysis results. It holds no state besides
// the reference tables and is safe for concurrent use.
type Generator struct {
	tables *taxonomy.Tables
	skills *skills.Extractor
}

// NewGenerator returns a generator backed by the extractor's tables.
func NewGenerator(extractor *skills.Extractor) *Generator {
	return &Generator{
		tables: extractor.Tables(),
		skills: extractor,
	}
}

func head[T any](list []T, n int) []T {
	return list[:min(len(list), n)]
}
