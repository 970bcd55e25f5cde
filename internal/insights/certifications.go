package insights

import (
	"github.com/spigell/resume-analyzer/internal/roles"
	"github.com/spigell/resume-analyzer/internal/skills"
	"github.com/spigell/resume-analyzer/internal/taxonomy"
)

const (
	maxCertifications = 6
	minCertifications = 3
	roleTopUpLimit    = 4
	areaTopUpLimit    = 5
)

// Recommendation is a certification suggested for a role.
type Recommendation struct {
	Area string `json:"area"`
	taxonomy.Certification
}

// RoleCertifications maps the job skills to certifications through the
// keyword table, keeping the first new certification per skill. Without any
// skill match the role defaults are used; short lists are completed from the
// role defaults up to four. Free-text and unclassified roles have no
// defaults. At most six are returned.
func (g *Generator) RoleCertifications(role roles.Role, jobSkills []string) []taxonomy.Certification {
	certs := []taxonomy.Certification{}
	seen := make(map[string]struct{})
	add := func(c taxonomy.Certification) {
		certs = append(certs, c)
		seen[c.Name] = struct{}{}
	}

	mapping := g.tables.SkillCertifications()
	for _, skill := range jobSkills {
		lower := taxonomy.Normalize(skill)
		for _, m := range mapping {
			if !skills.ContainsToken(lower, m.Keyword) {
				continue
			}
			if _, ok := seen[m.Name]; !ok {
				add(m.Certification)
				break
			}
		}
	}

	defaults := g.roleDefaults(role)
	if len(certs) == 0 {
		for _, c := range defaults {
			if _, ok := seen[c.Name]; !ok {
				add(c)
			}
		}
	}
	if len(certs) < minCertifications {
		for _, c := range defaults {
			if len(certs) >= roleTopUpLimit {
				break
			}
			if _, ok := seen[c.Name]; !ok {
				add(c)
			}
		}
	}

	return head(certs, maxCertifications)
}

// Certifications is RoleCertifications tagged with the role as area. Lists
// shorter than three are completed from the top-up table up to five.
func (g *Generator) Certifications(role roles.Role, jobSkills []string) []Recommendation {
	recs := []Recommendation{}
	seen := make(map[string]struct{})
	for _, c := range g.RoleCertifications(role, jobSkills) {
		recs = append(recs, Recommendation{Area: role.Name, Certification: c})
		seen[c.Name] = struct{}{}
	}

	if len(recs) < minCertifications && role.Kind == roles.Known {
		for _, c := range g.tables.TopUpCertifications(role.Name) {
			if len(recs) >= areaTopUpLimit {
				break
			}
			if _, ok := seen[c.Name]; ok {
				continue
			}
			recs = append(recs, Recommendation{Area: role.Name, Certification: c})
			seen[c.Name] = struct{}{}
		}
	}

	return head(recs, maxCertifications)
}

func (g *Generator) roleDefaults(role roles.Role) []taxonomy.Certification {
	if role.Kind != roles.Known {
		return nil
	}
	return g.tables.RoleCertifications(role.Name)
}
