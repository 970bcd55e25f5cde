// Package roles detects the job role of a job description and extracts the
// skills it asks for.
package roles

import (
	"strings"
)

// Kind tells how a role was determined.
type Kind int

const (
	// Unclassified is the fallback when nothing in the text identifies a role.
	Unclassified Kind = iota
	// Known is one of the roles in the built-in catalog.
	Known
	// ExtractedTitle is a free-text title lifted from the description.
	ExtractedTitle
)

func (k Kind) String() string {
	switch k {
	case Known:
		return "known"
	case ExtractedTitle:
		return "title"
	default:
		return "unclassified"
	}
}

// FallbackName is the name of the unclassified role.
const FallbackName = "Other Role"

// Role is a detected job role.
type Role struct {
	Kind Kind
	Name string

	technical bool
}

// Other is the unclassified role.
var Other = Role{Kind: Unclassified, Name: FallbackName}

// Known roles.
var (
	DigitalMarketing       = nonTechnical("Digital Marketing")
	VideoEditor            = nonTechnical("Video Editor")
	GraphicDesigner        = nonTechnical("Graphic Designer")
	ContentWriter          = nonTechnical("Content Writer")
	SocialMediaManager     = nonTechnical("Social Media Manager")
	UXDesigner             = nonTechnical("UX Designer")
	UIDesigner             = nonTechnical("UI Designer")
	MotionGraphicsDesigner = nonTechnical("Motion Graphics Designer")
	VideoProducer          = nonTechnical("Video Producer")

	ProductManager          = technical("Product Manager")
	ProjectManager          = technical("Project Manager")
	BusinessAnalyst         = technical("Business Analyst")
	ScrumMaster             = technical("Scrum Master")
	DevOpsEngineer          = technical("DevOps Engineer")
	CloudArchitect          = technical("Cloud Architect")
	DataScientist           = technical("Data Scientist")
	DataEngineer            = technical("Data Engineer")
	DataAnalyst             = technical("Data Analyst")
	BackendDeveloper        = technical("Backend Developer")
	FrontendDeveloper       = technical("Frontend Developer")
	FullStackDeveloper      = technical("Full Stack Developer")
	IOSDeveloper            = technical("iOS Developer")
	AndroidDeveloper        = technical("Android Developer")
	DotNetDeveloper         = technical(".NET Developer")
	QAEngineer              = technical("QA Engineer")
	SecurityEngineer        = technical("Security Engineer")
	MachineLearningEngineer = technical("Machine Learning Engineer")
	TechnicalWriter         = technical("Technical Writer")
	SoftwareEngineer        = technical("Software Engineer")
)

var catalog = []Role{
	DigitalMarketing, VideoEditor, GraphicDesigner, ContentWriter, SocialMediaManager,
	UXDesigner, UIDesigner, MotionGraphicsDesigner, VideoProducer,
	ProductManager, ProjectManager, BusinessAnalyst, ScrumMaster, DevOpsEngineer,
	CloudArchitect, DataScientist, DataEngineer, DataAnalyst, BackendDeveloper,
	FrontendDeveloper, FullStackDeveloper, IOSDeveloper, AndroidDeveloper, DotNetDeveloper,
	QAEngineer, SecurityEngineer, MachineLearningEngineer, TechnicalWriter, SoftwareEngineer,
}

func technical(name string) Role {
	return Role{Kind: Known, Name: name, technical: true}
}

func nonTechnical(name string) Role {
	return Role{Kind: Known, Name: name}
}

// Title wraps a free-text title as a role.
func Title(name string) Role {
	return Role{Kind: ExtractedTitle, Name: name}
}

// Catalog returns every known role.
func Catalog() []Role {
	return append([]Role(nil), catalog...)
}

// Lookup resolves a role name against the catalog. Unknown names become
// extracted titles and an empty name is the unclassified role.
func Lookup(name string) Role {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, FallbackName) {
		return Other
	}
	for _, r := range catalog {
		if strings.EqualFold(r.Name, name) {
			return r
		}
	}
	return Title(name)
}

// IsTechnical reports whether the role is a known technical role.
func (r Role) IsTechnical() bool {
	return r.Kind == Known && r.technical
}

// IsFallback reports whether the role is unclassified.
func (r Role) IsFallback() bool {
	return r.Kind == Unclassified
}

func (r Role) String() string {
	return r.Name
}

// MarshalText encodes the role as its name.
func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.Name), nil
}

// UnmarshalText resolves an encoded role name with Lookup.
func (r *Role) UnmarshalText(text []byte) error {
	*r = Lookup(string(text))
	return nil
}
