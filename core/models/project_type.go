package models

type ProjectType string

const (
	StaticWebsite            ProjectType = "static_website"
	HTMLTemplate             ProjectType = "html_template"
	NodeApplication          ProjectType = "nodejs_application"
	PythonApplication        ProjectType = "python_application"
	ContainerizedApplication ProjectType = "containerized_application"
	UnknownProject           ProjectType = "unknown"
)

// ProjectTypes lists every classification in priority order.
func ProjectTypes() []ProjectType {
	return []ProjectType{
		StaticWebsite,
		NodeApplication,
		PythonApplication,
		ContainerizedApplication,
		HTMLTemplate,
		UnknownProject,
	}
}

func (pt ProjectType) String() string {
	return string(pt)
}
