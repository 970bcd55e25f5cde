// Package analysis runs the full resume analysis: skill extraction, role
// detection, scoring and insights.
package analysis

import (
	"go.uber.org/zap"

	"github.com/spigell/resume-analyzer/internal/document"
	"github.com/spigell/resume-analyzer/internal/insights"
	"github.com/spigell/resume-analyzer/internal/logger"
	"github.com/spigell/resume-analyzer/internal/resume"
	"github.com/spigell/resume-analyzer/internal/roles"
	"github.com/spigell/resume-analyzer/internal/scoring"
	"github.com/spigell/resume-analyzer/internal/skills"
	"github.com/spigell/resume-analyzer/internal/taxonomy"
)

const logPreviewLen = 80

// Analyzer ties the engine packages together. It is safe for concurrent use.
type Analyzer struct {
	tables       *taxonomy.Tables
	skills       *skills.Extractor
	requirements *roles.RequirementExtractor
	scorer       *scoring.Scorer
	insights     *insights.Generator
	log          *zap.Logger
}

// New builds an analyzer over the tables. A nil logger disables logging.
func New(tables *taxonomy.Tables, cfg roles.RequirementConfig, log *zap.Logger) *Analyzer {
	extractor := skills.NewExtractor(tables)
	return &Analyzer{
		tables:       tables,
		skills:       extractor,
		requirements: roles.NewRequirementExtractor(extractor, nil, cfg),
		scorer:       scoring.NewScorer(extractor),
		insights:     insights.NewGenerator(extractor),
		log:          logger.WithFields(log),
	}
}

// Input is one resume to analyze against a job description.
type Input struct {
	// Name identifies the resume in logs and rankings.
	Name       string
	ResumeText string
	JobText    string
	// Candidates are extra skills to look for besides the taxonomy. Nil means
	// the default candidate list.
	Candidates []string
	// Industry selects the salary tables, Tech when empty.
	Industry string
	// Experience overrides the years found in the resume when positive.
	Experience int
	// StatedExperience skips the guess for resumes that state no years, so
	// their experience is 0.
	StatedExperience bool
}

// JobResult is the analysis of a job description.
type JobResult struct {
	roles.JobAnalysis
	IdealCandidate []string                  `json:"ideal_candidate"`
	Certifications []insights.Recommendation `json:"certifications"`
	Keywords       []string                  `json:"ats_keywords"`
}

// Result is the complete analysis of a resume against a job description.
type Result struct {
	Name               string                    `json:"name,omitempty"`
	Role               roles.Role                `json:"role"`
	Skills             []string                  `json:"skills"`
	Categories         skills.Categories         `json:"categories"`
	JobSkills          []string                  `json:"job_skills"`
	Experience         int                       `json:"experience"`
	Education          string                    `json:"education"`
	Contact            resume.Contact            `json:"contact"`
	Quality            scoring.QualityReport     `json:"quality"`
	Match              scoring.MatchResult       `json:"match"`
	WeightedMatch      float64                   `json:"weighted_match"`
	MatchedTechnical   []string                  `json:"matched_technical"`
	MissingTechnical   []string                  `json:"missing_technical"`
	ATS                scoring.ATSScore          `json:"ats"`
	Salary             scoring.Salary            `json:"salary"`
	Readiness          scoring.Readiness         `json:"interview_readiness"`
	CareerPaths        []insights.CareerPath     `json:"career_paths"`
	Certifications     []insights.Recommendation `json:"certifications"`
	SkillGaps          []insights.SkillGap       `json:"skill_gaps"`
	KeywordDensity     insights.KeywordDensity   `json:"keyword_density"`
	Checklist          []insights.CheckItem      `json:"ats_checklist"`
	Readability        insights.Readability       `json:"readability"`
	ActionVerbs        insights.VerbReport       `json:"action_verbs"`
	TailoringPhrases   []string                  `json:"tailoring_phrases"`
	InterviewQuestions []string                  `json:"interview_questions"`
	CoverLetter        []string                  `json:"cover_letter"`
	IdealCandidate     []string                  `json:"ideal_candidate"`
	Suggestions        []string                  `json:"suggestions"`
	ProfileFits        []scoring.ProfileFit      `json:"profile_fits"`
	Report             string                    `json:"report"`
}

// AnalyzeJob detects the role and the required skills of a job description.
func (a *Analyzer) AnalyzeJob(text string) *JobResult {
	job := a.requirements.Analyze(text)

	if ce := a.log.Check(zap.DebugLevel, "job analyzed"); ce != nil {
		_, stage := a.requirements.Detector().DetectWithStage(text)
		ce.Write(
			zap.String(logger.FieldRole, job.Role.Name),
			zap.String(logger.FieldStage, stage),
			zap.Int("skills", len(job.Skills)),
			zap.String("preview", logger.TruncateForLog(text, logPreviewLen)),
		)
	}

	return &JobResult{
		JobAnalysis:    job,
		IdealCandidate: a.insights.IdealCandidate(job.Role),
		Certifications: a.insights.Certifications(job.Role, job.Skills),
		Keywords:       a.insights.ATSKeywords(text),
	}
}

// Analyze analyzes a resume against the job description of the input. The
// only error is document.ErrExtraction for failure sentinel resume text.
func (a *Analyzer) Analyze(in Input) (*Result, error) {
	if err := document.Check(in.ResumeText); err != nil {
		return nil, err
	}
	return a.AnalyzeAgainst(in, a.AnalyzeJob(in.JobText))
}

// AnalyzeAgainst is Analyze with an already analyzed job description; the
// JobText of the input is ignored.
func (a *Analyzer) AnalyzeAgainst(in Input, job *JobResult) (*Result, error) {
	if err := document.Check(in.ResumeText); err != nil {
		return nil, err
	}

	log := logger.WithDocument(a.log, in.Name, job.Role.Name)
	text := in.ResumeText

	candidates := in.Candidates
	if candidates == nil {
		candidates = a.tables.DefaultSkills()
	}
	resumeSkills := skills.Union(
		a.skills.Extract(text, candidates),
		a.skills.Extract(text, a.tables.FullVocabulary()),
	)

	jobSkills := job.Skills
	if len(jobSkills) == 0 {
		jobSkills = a.tables.DefaultSkills()
		log.Debug("no job skills found, using defaults", zap.Strings("skills", jobSkills))
	}

	years := in.Experience
	switch {
	case years > 0:
	case in.StatedExperience:
		years = resume.ExtractExperience(text)
	default:
		years = resume.EstimateExperience(text)
	}
	education := resume.ExtractEducation(text)
	log.Debug("resume facts extracted",
		zap.Int("skills", len(resumeSkills)),
		zap.Int("experience", years),
		zap.String("education", education),
	)

	match := scoring.Match(resumeSkills, jobSkills)
	quality := a.scorer.Quality(text, resumeSkills, years, education)
	missingTechnical := a.skills.FilterTechnical(match.Missing)

	r := &Result{
		Name:               in.Name,
		Role:               job.Role,
		Skills:             resumeSkills,
		Categories:         a.skills.Categorize(resumeSkills),
		JobSkills:          jobSkills,
		Experience:         years,
		Education:          education,
		Contact:            resume.ExtractContact(text),
		Quality:            quality,
		Match:              match,
		WeightedMatch:      a.scorer.WeightedMatch(resumeSkills, jobSkills),
		MatchedTechnical:   a.skills.FilterTechnical(match.Matched),
		MissingTechnical:   missingTechnical,
		ATS:                a.scorer.ATS(quality.Score, resumeSkills, years),
		Salary:             a.scorer.PredictSalary(years, resumeSkills, education, in.Industry),
		Readiness:          a.scorer.InterviewReadiness(resumeSkills, jobSkills, years, education),
		CareerPaths:        a.insights.CareerPaths(years, resumeSkills),
		Certifications:     job.Certifications,
		SkillGaps:          a.insights.SkillGaps(resumeSkills, jobSkills),
		KeywordDensity:     a.insights.KeywordDensity(text, jobSkills),
		Checklist:          a.insights.ATSChecklist(text, resumeSkills, years),
		Readability:        a.insights.Readability(text),
		ActionVerbs:        a.insights.ActionVerbs(text),
		TailoringPhrases:   a.insights.TailoringPhrases(match.Missing, job.Role),
		InterviewQuestions: a.insights.InterviewQuestions(job.Role, missingTechnical),
		CoverLetter:        a.insights.CoverLetterBullets(resumeSkills, jobSkills, years, job.Role),
		IdealCandidate:     job.IdealCandidate,
		Suggestions:        a.insights.ImprovementSuggestions(resumeSkills, jobSkills, quality.Issues),
		ProfileFits:        a.scorer.ProfileFits(resumeSkills),
	}
	r.Report = a.insights.Report(insights.ReportInput{
		Role:             r.Role.Name,
		Match:            r.Match.Percentage,
		Weighted:         r.WeightedMatch,
		Quality:          r.Quality.Score,
		ATS:              r.ATS.Score,
		Years:            r.Experience,
		Education:        r.Education,
		ResumeSkills:     r.Skills,
		MatchedTechnical: r.MatchedTechnical,
		MissingTechnical: r.MissingTechnical,
		QualityIssues:    r.Quality.Issues,
		SkillGaps:        r.SkillGaps,
		Salary:           r.Salary,
		Readiness:        r.Readiness,
		Density:          r.KeywordDensity,
	})

	log.Info("resume analyzed",
		zap.Float64("match", r.Match.Percentage),
		zap.Float64("ats", r.ATS.Score),
		zap.Float64("quality", r.Quality.Score),
	)
	return r, nil
}

// Tables returns the reference tables of the analyzer.
func (a *Analyzer) Tables() *taxonomy.Tables {
	return a.tables
}
