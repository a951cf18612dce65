package insights

import "github.com/tristendillon/codemap/core/models"

func step(name, kind, description string) models.WorkflowStep {
	return models.WorkflowStep{Name: name, Type: kind, Description: description}
}

var websiteEnhancement = models.WorkflowSuggestion{
	ID:          "website_enhancement",
	Name:        "Website Enhancement",
	Description: "Improve website functionality and user experience",
	Steps: []models.WorkflowStep{
		step("SEO Optimization", "design", "Add meta tags, structured data, and sitemap"),
		step("Performance Optimization", "development", "Optimize images, minify CSS/JS, enable caching"),
		step("Accessibility Audit", "testing", "Ensure WCAG compliance and screen reader support"),
		step("Mobile Testing", "testing", "Test on various devices and screen sizes"),
	},
}

var contentManagement = models.WorkflowSuggestion{
	ID:          "content_management",
	Name:        "Content Management",
	Description: "Manage and update website content",
	Steps: []models.WorkflowStep{
		step("Content Planning", "design", "Plan content updates and new pages"),
		step("Content Creation", "development", "Create new content and update existing pages"),
		step("Content Review", "testing", "Review content for accuracy and SEO"),
		step("Content Deployment", "deployment", "Deploy updated content to live site"),
	},
}

var nodeDevelopment = models.WorkflowSuggestion{
	ID:          "nodejs_development",
	Name:        "Node.js Development",
	Description: "Standard development workflow for Node.js applications",
	Steps: []models.WorkflowStep{
		step("Environment Setup", "setup", "Set up development environment and dependencies"),
		step("Feature Development", "development", "Develop new features and functionality"),
		step("Unit Testing", "testing", "Write and run unit tests"),
		step("Integration Testing", "testing", "Test API endpoints and database integration"),
		step("Code Review", "testing", "Review code for quality and best practices"),
		step("Deployment", "deployment", "Deploy to staging and production environments"),
	},
}

var apiSteps = []models.WorkflowStep{
	step("API Design", "design", "Design API endpoints and data models"),
	step("Endpoint Implementation", "development", "Implement API endpoints and business logic"),
	step("API Testing", "testing", "Test API endpoints with Postman or similar tools"),
	step("Documentation", "documentation", "Create API documentation with Swagger"),
}

var apiDevelopment = models.WorkflowSuggestion{
	ID:          "api_development",
	Name:        "API Development",
	Description: "API endpoint development and testing",
	Steps:       apiSteps,
}

var pythonDevelopment = models.WorkflowSuggestion{
	ID:          "python_development",
	Name:        "Python Development",
	Description: "Standard development workflow for Python applications",
	Steps: []models.WorkflowStep{
		step("Virtual Environment", "setup", "Set up virtual environment and install dependencies"),
		step("Code Development", "development", "Develop application features and functionality"),
		step("Testing", "testing", "Run unit tests and integration tests"),
		step("Code Quality", "testing", "Run linting and code quality checks"),
		step("Documentation", "documentation", "Update documentation and docstrings"),
		step("Deployment", "deployment", "Deploy application to production"),
	},
}

var basicSteps = []models.WorkflowStep{
	step("Project Setup", "setup", "Set up development environment"),
	step("Feature Development", "development", "Develop new features"),
	step("Testing", "testing", "Test functionality"),
	step("Deployment", "deployment", "Deploy to production"),
}

var basicDevelopment = models.WorkflowSuggestion{
	ID:          "basic_development",
	Name:        "Basic Development",
	Description: "Standard development process",
	Steps:       basicSteps,
}

var authFlow = models.WorkflowSuggestion{
	ID:          "auth_flow",
	Name:        "Authentication Flow",
	Description: "User registration and login process",
	Steps: []models.WorkflowStep{
		step("User Registration", "auth", "Create accounts with validated credentials"),
		step("Email Verification", "auth", "Confirm ownership of the registered address"),
		step("User Login", "auth", "Authenticate users and issue tokens"),
		step("Session Management", "auth", "Refresh, expire and revoke sessions"),
	},
}

var apiFlow = models.WorkflowSuggestion{
	ID:          "api_flow",
	Name:        "API Development Flow",
	Description: "API endpoint development process",
	Steps:       apiSteps,
}

var basicFlow = models.WorkflowSuggestion{
	ID:          "basic_flow",
	Name:        "Basic Development Flow",
	Description: "Standard development process",
	Steps:       basicSteps,
}

// typeWorkflows returns the workflows suggested for a project type.
func typeWorkflows(pt models.ProjectType, has map[string]bool) []models.WorkflowSuggestion {
	switch pt {
	case models.StaticWebsite, models.HTMLTemplate:
		flows := []models.WorkflowSuggestion{websiteEnhancement}
		if has["contact_forms"] {
			flows = append(flows, contentManagement)
		}
		return flows
	case models.NodeApplication:
		flows := []models.WorkflowSuggestion{nodeDevelopment}
		if has["api"] {
			flows = append(flows, apiDevelopment)
		}
		return flows
	case models.PythonApplication:
		return []models.WorkflowSuggestion{pythonDevelopment}
	default:
		return []models.WorkflowSuggestion{basicDevelopment}
	}
}

func featureWorkflows(has map[string]bool) []models.WorkflowSuggestion {
	var flows []models.WorkflowSuggestion
	if has["authentication"] {
		flows = append(flows, authFlow)
	}
	if has["api"] {
		flows = append(flows, apiFlow)
	}
	return flows
}
