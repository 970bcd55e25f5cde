package roles

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/spigell/resume-analyzer/internal/taxonomy"
)

// Stage is one step of role detection. Classify receives lower-cased text with
// collapsed whitespace and returns false when the next stage should run.
type Stage interface {
	Name() string
	Classify(text string) (Role, bool)
}

type phraseGroup struct {
	role    Role
	phrases []string
}

// phraseStage returns the role of the first group with a phrase in the text.
type phraseStage struct {
	name   string
	groups []phraseGroup
}

func (s phraseStage) Name() string { return s.name }

func (s phraseStage) Classify(text string) (Role, bool) {
	for _, g := range s.groups {
		for _, p := range g.phrases {
			if strings.Contains(text, p) {
				return g.role, true
			}
		}
	}
	return Role{}, false
}

// keywordStage returns the role whose group has the most keywords present.
// Ties go to the group registered first.
type keywordStage struct {
	groups []phraseGroup
}

func (keywordStage) Name() string { return "keyword-score" }

func (s keywordStage) Classify(text string) (Role, bool) {
	best, bestScore := Role{}, 0
	for _, g := range s.groups {
		score := 0
		for _, k := range g.phrases {
			if strings.Contains(text, k) {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = g.role, score
		}
	}
	return best, bestScore > 0
}

const (
	titleScanRunes = 300
	titleMinLen    = 4
	titleMaxLen    = 49
)

// titleStage lifts a literal job title from the start of the description.
type titleStage struct {
	patterns []*regexp.Regexp
}

func (titleStage) Name() string { return "title" }

func (s titleStage) Classify(text string) (Role, bool) {
	head := truncateRunes(text, titleScanRunes)
	for _, re := range s.patterns {
		m := re.FindStringSubmatch(head)
		if m == nil {
			continue
		}
		title := strings.TrimSpace(m[1])
		n := utf8.RuneCountInString(title)
		if n < titleMinLen || n > titleMaxLen {
			continue
		}
		if strings.Contains(title, "experience") || strings.Contains(title, "description") {
			continue
		}
		return Title(taxonomy.Title(title)), true
	}
	return Role{}, false
}

// Detector classifies job descriptions by running its stages in order.
type Detector struct {
	stages []Stage
}

// NewDetector builds a detector from the given stages, or from DefaultStages
// when none are passed.
func NewDetector(stages ...Stage) *Detector {
	if len(stages) == 0 {
		stages = DefaultStages()
	}
	return &Detector{stages: stages}
}

// Detect returns the role of a job description, Other when no stage matches.
func (d *Detector) Detect(text string) Role {
	role, _ := d.DetectWithStage(text)
	return role
}

// DetectWithStage also returns the name of the stage that decided the role,
// "fallback" when none did.
func (d *Detector) DetectWithStage(text string) (Role, string) {
	normalized := normalizeText(text)
	if normalized == "" {
		return Other, "fallback"
	}

	for _, stage := range d.stages {
		if role, ok := stage.Classify(normalized); ok {
			return role, stage.Name()
		}
	}
	return Other, "fallback"
}

// Stages returns the names of the detector stages in order.
func (d *Detector) Stages() []string {
	names := make([]string, 0, len(d.stages))
	for _, s := range d.stages {
		names = append(names, s.Name())
	}
	return names
}

// DefaultStages is the built-in cascade: non-technical phrases, technical
// phrases, technical keyword scoring and title extraction.
func DefaultStages() []Stage {
	return []Stage{
		phraseStage{name: "non-technical", groups: nonTechnicalPhrases},
		phraseStage{name: "technical", groups: technicalPhrases},
		keywordStage{groups: technicalKeywords},
		titleStage{patterns: titlePatterns},
	}
}

func normalizeText(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

var titlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:job title|position|role|we are hiring|looking for|hiring)\s*[:\-]\s*([a-z\s]+?)(?:\s*-|\s*\(|\.|$)`),
	regexp.MustCompile(`^([a-z\s]+?)\s*[-|]\s*(?:full time|part time|remote)`),
	regexp.MustCompile(`^#?\s*([a-z][a-z\s]{3,40}?)(?:\s+job|\s+position|\.)`),
}

var nonTechnicalPhrases = []phraseGroup{
	{DigitalMarketing, []string{
		"digital marketing", "digital marketer", "digital markiting", "digital markting",
		"marketing specialist", "performance marketing", "growth marketing", "online marketing",
		"digital marketing manager", "dm manager", "seo specialist", "ppc specialist",
	}},
	{VideoEditor, []string{"video editor", "video editing", "video edit"}},
	{GraphicDesigner, []string{"graphic designer", "graphic design", "visual designer"}},
	{ContentWriter, []string{"content writer", "content writing", "content creator", "copywriter"}},
	{SocialMediaManager, []string{
		"social media manager", "social media specialist", "smm ", "social media marketing",
		"social media coordinator", "community manager",
	}},
	{UXDesigner, []string{"ux designer", "ux design", "user experience designer"}},
	{UIDesigner, []string{"ui designer", "ui design", "user interface designer"}},
	{MotionGraphicsDesigner, []string{"motion graphics", "motion designer"}},
	{VideoProducer, []string{"video producer", "video production"}},
}

var technicalPhrases = []phraseGroup{
	{ProductManager, []string{"product manager", "product management", "pm role", "technical product manager"}},
	{ProjectManager, []string{"project manager", "project management", "it project manager"}},
	{BusinessAnalyst, []string{"business analyst", "ba role", "business analysis"}},
	{ScrumMaster, []string{"scrum master", "agile coach"}},
	{DevOpsEngineer, []string{"devops engineer", "dev ops engineer"}},
	{CloudArchitect, []string{"cloud architect", "solutions architect"}},
	{DataScientist, []string{"data scientist"}},
	{DataEngineer, []string{"data engineer"}},
	{DataAnalyst, []string{"data analyst", "bi analyst", "business intelligence analyst"}},
	{BackendDeveloper, []string{"backend developer", "back-end developer", "backend engineer"}},
	{FrontendDeveloper, []string{"frontend developer", "front-end developer", "frontend engineer"}},
	{FullStackDeveloper, []string{"full stack developer", "fullstack developer", "full stack engineer"}},
	{IOSDeveloper, []string{"ios developer", "ios engineer", "swift developer", "apple ios"}},
	{AndroidDeveloper, []string{"android developer", "android engineer", "kotlin developer", "android app"}},
	{DotNetDeveloper, []string{".net developer", ".net engineer", "c# developer", "asp.net developer"}},
	{QAEngineer, []string{"qa engineer", "quality assurance engineer", "test engineer"}},
	{SecurityEngineer, []string{"security engineer", "cybersecurity engineer"}},
	{MachineLearningEngineer, []string{"machine learning engineer", "ml engineer", "ai engineer"}},
	{TechnicalWriter, []string{"technical writer", "technical writing", "documentation writer"}},
	{SoftwareEngineer, []string{"software engineer", "software developer", "application developer"}},
}

var technicalKeywords = []phraseGroup{
	{DevOpsEngineer, []string{
		"devops", "dev-ops", "infrastructure engineer", "site reliability engineer", "sre ",
		"kubernetes", "docker", "terraform", "ci/cd", "cicd", "deployment engineer", "linux engineer",
	}},
	{CloudArchitect, []string{
		"cloud architect", "cloud infrastructure", "aws architect", "azure architect",
		"gcp architect", "cloud solutions",
	}},
	{BackendDeveloper, []string{
		"backend", "back-end", "api development", "server-side", "server side",
		"django developer", "flask developer", "nodejs developer", "node.js developer",
		"spring developer", "fastapi developer", "rest api", "microservices",
	}},
	{FrontendDeveloper, []string{
		"frontend", "front-end", "react developer", "vue developer", "angular developer",
		"javascript developer", "typescript developer", "web developer", "frontend engineer",
	}},
	{FullStackDeveloper, []string{"full stack", "fullstack", "full-stack", "full stack engineer"}},
	{MachineLearningEngineer, []string{
		"machine learning", "ml engineer", "deep learning", "neural network", "tensorflow",
		"pytorch", "nlp engineer", "computer vision", "ai/ml",
	}},
	{DataScientist, []string{"data scientist", "statistical analysis", "predictive model", "machine learning model"}},
	{DataEngineer, []string{
		"data engineer", "etl engineer", "data pipeline", "big data", "spark", "hadoop",
		"data warehouse", "data architecture",
	}},
	{DataAnalyst, []string{
		"data analyst", "bi analyst", "business intelligence", "tableau", "power bi",
		"analytics engineer", "sql analyst",
	}},
	{QAEngineer, []string{
		"qa engineer", "quality assurance", "test engineer", "test automation",
		"automated tester", "selenium", "quality engineer",
	}},
	{SecurityEngineer, []string{"security engineer", "cybersecurity", "infosec", "penetration tester", "security architect"}},
	{ProductManager, []string{"product roadmap", "product strategy", "product owner", "prioritization", "user stories"}},
	{ProjectManager, []string{"project management", "pm certification", "pmp", "stakeholder management", "project delivery"}},
}
