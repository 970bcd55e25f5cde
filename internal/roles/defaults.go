package roles

var defaultSkills = map[string][]string{
	BackendDeveloper.Name:        {"Python", "Django", "REST API", "PostgreSQL", "AWS", "SQL", "Git"},
	FrontendDeveloper.Name:       {"React", "JavaScript", "HTML", "CSS", "TypeScript", "REST API", "Git"},
	FullStackDeveloper.Name:      {"React", "Node.js", "Python", "SQL", "AWS", "Git", "REST API", "HTML", "CSS"},
	DevOpsEngineer.Name:          {"Docker", "Kubernetes", "AWS", "Jenkins", "Terraform", "Linux", "Git", "CI/CD"},
	CloudArchitect.Name:          {"AWS", "Azure", "Google Cloud", "Terraform", "System Design", "Security", "Docker"},
	DataScientist.Name:           {"Python", "Machine Learning", "SQL", "TensorFlow", "Pandas", "Statistics", "NumPy", "Data Analysis"},
	DataEngineer.Name:            {"Python", "SQL", "Spark", "Hadoop", "AWS", "ETL", "Data Pipelines"},
	DataAnalyst.Name:             {"SQL", "Excel", "Tableau", "Python", "Power BI", "Data Analysis", "Statistics"},
	QAEngineer.Name:              {"TestNG", "Selenium", "Automation", "Java", "Testing", "Git", "CI/CD"},
	SecurityEngineer.Name:        {"Linux", "Cybersecurity", "AWS", "Encryption", "Penetration Testing", "Security"},
	MachineLearningEngineer.Name: {"Python", "Machine Learning", "Deep Learning", "TensorFlow", "PyTorch", "SQL", "Git"},
	SoftwareEngineer.Name:        {"Python", "JavaScript", "SQL", "Git", "REST API", "Problem Solving"},
	ProductManager.Name:          {"Project Management", "Communication", "Problem Solving", "SQL", "Data Analysis", "Agile"},
	ProjectManager.Name:          {"Project Management", "Communication", "Leadership", "Agile", "Problem Solving"},
	BusinessAnalyst.Name:         {"SQL", "Excel", "Data Analysis", "Communication", "Problem Solving"},
	ScrumMaster.Name:             {"Agile", "Project Management", "Communication", "Leadership"},
	IOSDeveloper.Name:            {"Swift", "iOS", "Git", "REST API", "Problem Solving"},
	AndroidDeveloper.Name:        {"Kotlin", "Java", "Git", "REST API", "Problem Solving"},
	DotNetDeveloper.Name:         {"C#", "SQL", "REST API", "Git", "Problem Solving"},
	TechnicalWriter.Name:         {"Content Writing", "Communication", "Documentation", "Technical Writing"},
}

// DefaultSkills returns the skills typical for a technical role. Other roles
// have none.
func DefaultSkills(role Role) []string {
	if !role.IsTechnical() {
		return nil
	}
	return append([]string(nil), defaultSkills[role.Name]...)
}
