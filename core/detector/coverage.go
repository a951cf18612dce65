package detector

import (
	"regexp"

	"github.com/tristendillon/codemap/core/logger"
	"github.com/tristendillon/codemap/core/matcher"
	"github.com/tristendillon/codemap/core/models"
)

type coverageRule struct {
	name        string
	description string
	files       []string
	patterns    []*regexp.Regexp
}

var coverageContentExts = []string{".py", ".js", ".ts", ".jsx", ".tsx", ".json", ".md"}

var coverageRules = []coverageRule{
	{
		name:        "authentication",
		description: "User authentication and authorization system",
		files:       []string{"auth", "login", "user", "session"},
		patterns: matcher.Insensitive(
			`auth|login|signin|signup|register|password|jwt|token`,
			`firebase|auth0|oauth|google.*auth|facebook.*auth`,
		),
	},
	{
		name:        "database",
		description: "Database integration and data management",
		files:       []string{"database", "models", "schema", "migration"},
		patterns: matcher.Insensitive(
			`database|db|sql|mongodb|postgres|mysql|sqlite`,
			`prisma|sequelize|mongoose|django.*models`,
		),
	},
	{
		name:        "api",
		description: "API endpoints and data communication",
		files:       []string{"api", "routes", "controllers", "endpoints"},
		patterns: matcher.Insensitive(
			`api|endpoint|route|controller|rest|graphql`,
			`fetch|axios|http|request|response`,
		),
	},
	{
		name:        "frontend",
		description: "User interface and client-side functionality",
		files:       []string{"components", "pages", "views", "frontend"},
		patterns: matcher.Insensitive(
			`react|vue|angular|component|jsx|tsx`,
			`html|css|javascript|typescript|frontend`,
		),
	},
	{
		name:        "backend",
		description: "Server-side logic and business processes",
		files:       []string{"server", "backend", "app", "main"},
		patterns: matcher.Insensitive(
			`server|backend|express|flask|django|fastapi`,
			`node|python|java|spring|dotnet`,
		),
	},
	{
		name:        "deployment",
		description: "Deployment and CI/CD configuration",
		files:       []string{"dockerfile", "deploy", "ci", "github"},
		patterns: matcher.Insensitive(
			`docker|kubernetes|deploy|ci|cd|github.*actions`,
			`heroku|vercel|netlify|aws|azure|gcp`,
		),
	},
	{
		name:        "testing",
		description: "Testing framework and test coverage",
		files:       []string{"test", "spec", "testing", "__tests__"},
		patterns: matcher.Insensitive(
			`test|spec|jest|mocha|pytest|unittest`,
			`cypress|selenium|playwright|testing`,
		),
	},
	{
		name:        "documentation",
		description: "Project documentation and guides",
		files:       []string{"readme", "docs", "documentation"},
		patterns: matcher.Insensitive(
			`readme|docs|documentation|wiki|guide`,
			`comment|docstring|javadoc|jsdoc`,
		),
	},
}

// CoverageDetector is the legacy generic detector. It ignores the project
// type and scores each feature by how much of the tree mentions it: every
// file adds one for a name hit and one for a content hit, and the sum is
// divided by the number of files, capped at 1.
type CoverageDetector struct{}

func (CoverageDetector) Detect(pt models.ProjectType, p Project) []models.DetectedFeature {
	paths := p.Paths()
	total := len(paths)
	if total == 0 {
		total = 1
	}

	features := []models.DetectedFeature{}
	for _, rule := range coverageRules {
		byName := matcher.Rule{NameContains: rule.files}
		byContent := matcher.Rule{Extensions: coverageContentExts, Patterns: rule.patterns}

		matches := 0
		evidence := []string{}
		for _, rel := range paths {
			nameHit := byName.MatchName(rel)
			contentHit := byContent.Match(p, rel)
			if nameHit {
				matches++
			}
			if contentHit {
				matches++
			}
			if nameHit || contentHit {
				evidence = append(evidence, rel)
			}
		}
		if len(evidence) == 0 {
			continue
		}

		features = append(features, models.DetectedFeature{
			Name:        rule.name,
			Confidence:  min(float64(matches)/float64(total), 1.0),
			Files:       evidence,
			Description: rule.description,
		})
	}
	logger.Debug("Detector: coverage mode found %d features in %s project", len(features), pt)
	return features
}
