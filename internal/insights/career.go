package insights

import (
	"github.com/spigell/resume-analyzer/internal/taxonomy"
)

// CareerPath is a realistic next step in an IT career.
type CareerPath struct {
	Title          string   `json:"title"`
	Timeline       string   `json:"timeline"`
	SalaryIncrease string   `json:"salary_increase"`
	Skills         []string `json:"skills"`
}

const maxCareerPaths = 3

// careerTrack is a skill cluster with paths by experience. A step applies
// while years are below its bound; the last step has no bound.
type careerTrack struct {
	cluster []string
	steps   []careerStep
}

type careerStep struct {
	below int
	path  CareerPath
}

var careerTracks = []careerTrack{
	{
		cluster: []string{"python", "java", "javascript", "node.js"},
		steps: []careerStep{
			{below: 2, path: CareerPath{
				Title: "Mid-Level Developer", Timeline: "1-2 years", SalaryIncrease: "15-25%",
				Skills: []string{"System Design", "SQL Optimization", "API Design", "Code Architecture"},
			}},
			{below: 5, path: CareerPath{
				Title: "Senior Developer", Timeline: "2-3 years", SalaryIncrease: "25-40%",
				Skills: []string{"System Architecture", "Performance Tuning", "Security Practices", "Tech Leadership"},
			}},
			{path: CareerPath{
				Title: "Tech Lead / Engineering Manager", Timeline: "3-5 years", SalaryIncrease: "35-60%",
				Skills: []string{"Team Leadership", "Strategic Planning", "Mentoring", "Project Management"},
			}},
		},
	},
	{
		cluster: []string{"aws", "azure", "docker", "kubernetes"},
		steps: []careerStep{
			{below: 2, path: CareerPath{
				Title: "Cloud Engineer", Timeline: "1-2 years", SalaryIncrease: "20-30%",
				Skills: []string{"Container Orchestration", "Infrastructure as Code", "CI/CD", "Cloud Security"},
			}},
			{below: 5, path: CareerPath{
				Title: "Senior DevOps/Cloud Engineer", Timeline: "2-3 years", SalaryIncrease: "30-45%",
				Skills: []string{"Multi-Cloud Architecture", "Kubernetes Mastery", "Terraform", "Cost Optimization"},
			}},
			{path: CareerPath{
				Title: "Cloud Architect", Timeline: "2-4 years", SalaryIncrease: "40-70%",
				Skills: []string{"Enterprise Architecture", "Compliance & Security", "Disaster Recovery", "Cost Strategy"},
			}},
		},
	},
	{
		cluster: []string{"machine learning", "deep learning", "python"},
		steps: []careerStep{
			{below: 3, path: CareerPath{
				Title: "ML Engineer", Timeline: "2-3 years", SalaryIncrease: "25-35%",
				Skills: []string{"Deep Learning Frameworks", "Model Optimization", "Feature Engineering", "MLOps"},
			}},
			{path: CareerPath{
				Title: "Senior ML Engineer / ML Architect", Timeline: "3-4 years", SalaryIncrease: "40-60%",
				Skills: []string{"Advanced ML Architectures", "Distributed ML", "Research", "Production ML Systems"},
			}},
		},
	},
}

var fallbackCareerPath = CareerPath{
	Title: "Senior Specialist", Timeline: "2-3 years", SalaryIncrease: "20-30%",
	Skills: []string{"Advanced Expertise", "Leadership", "Specialization", "Innovation"},
}

// CareerPaths suggests up to three next roles from the backend, cloud and
// machine learning skill clusters crossed with experience. Without any
// cluster skill a generic Senior Specialist path is returned.
func (g *Generator) CareerPaths(years int, resumeSkills []string) []CareerPath {
	have := make(map[string]struct{}, len(resumeSkills))
	for _, s := range resumeSkills {
		have[taxonomy.Normalize(s)] = struct{}{}
	}

	paths := []CareerPath{}
	for _, track := range careerTracks {
		if !track.matches(have) {
			continue
		}
		paths = append(paths, track.step(years))
	}

	if len(paths) == 0 {
		paths = append(paths, clonePath(fallbackCareerPath))
	}
	return head(paths, maxCareerPaths)
}

func (t careerTrack) matches(have map[string]struct{}) bool {
	for _, s := range t.cluster {
		if _, ok := have[s]; ok {
			return true
		}
	}
	return false
}

func (t careerTrack) step(years int) CareerPath {
	for _, s := range t.steps {
		if s.below == 0 || years < s.below {
			return clonePath(s.path)
		}
	}
	return clonePath(t.steps[len(t.steps)-1].path)
}

func clonePath(p CareerPath) CareerPath {
	p.Skills = append([]string(nil), p.Skills...)
	return p
}
