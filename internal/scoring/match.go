package scoring

import (
	"github.com/spigell/resume-analyzer/internal/skills"
	"github.com/spigell/resume-analyzer/internal/taxonomy"
)

// MatchResult is the overlap between resume skills and required skills.
type MatchResult struct {
	Percentage float64  `json:"percentage"`
	Matched    []string `json:"matched"`
	Missing    []string `json:"missing"`
}

// Match returns the share of distinct required skills found in the resume,
// rounded to two decimals. Matched lists every resume entry whose normalized
// form is required, in resume order and casing, so spellings that normalize
// alike are all kept. Missing skills keep the required casing and are sorted.
// No required skills gives a zero result.
func Match(resume, required []string) MatchResult {
	requiredKeys := keySet(required)
	if len(requiredKeys) == 0 {
		return MatchResult{Matched: []string{}, Missing: []string{}}
	}

	resumeKeys := keySet(resume)

	matched := make([]string, 0)
	for _, s := range resume {
		if _, ok := requiredKeys[taxonomy.Normalize(s)]; ok {
			matched = append(matched, s)
		}
	}

	hits := 0
	missing := make([]string, 0)
	for _, k := range uniqueKeys(required) {
		if _, ok := resumeKeys[k]; ok {
			hits++
			continue
		}
		missing = append(missing, requiredKeys[k])
	}
	skills.Sort(missing)

	return MatchResult{
		Percentage: round2(float64(hits) / float64(len(requiredKeys)) * 100),
		Matched:    matched,
		Missing:    missing,
	}
}

const baseWeight = 10

// WeightedMatch is Match where every required entry weighs (1 + premium) * 10,
// so skills with a salary premium count more. Repeated requirements weigh
// once per entry.
func (s *Scorer) WeightedMatch(resume, required []string) float64 {
	resumeKeys := keySet(resume)

	var total, matched float64
	for _, r := range required {
		k := taxonomy.Normalize(r)
		if k == "" {
			continue
		}
		w := (1 + s.tables.Premium(k)) * baseWeight
		total += w
		if _, ok := resumeKeys[k]; ok {
			matched += w
		}
	}

	if total == 0 {
		return 0
	}
	return round2(matched / total * 100)
}
