package detector

import (
	"github.com/tristendillon/codemap/core/manifest"
	"github.com/tristendillon/codemap/core/matcher"
	"github.com/tristendillon/codemap/core/models"
)

var (
	cssFiles    = matcher.Rule{Extensions: []string{".css"}}
	scriptFiles = matcher.Rule{Extensions: []string{".js", ".jsx", ".ts", ".tsx"}}
	htmlFiles   = matcher.Rule{Extensions: []string{".html"}}
	imageFiles  = matcher.Rule{Extensions: []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}}

	responsiveCSS = matcher.Rule{
		Extensions: []string{".css"},
		ContentAny: []string{"@media", "viewport"},
	}
	interactiveJS = matcher.Rule{
		Extensions: []string{".js"},
		ContentAny: []string{"addEventListener", "onclick"},
		Patterns:   matcher.Insensitive("jquery"),
	}
	contactForm = matcher.Rule{
		Extensions: []string{".html"},
		ContentAll: []string{"<form"},
		Patterns:   matcher.Insensitive("contact", "email"),
	}
	seoMeta = matcher.Rule{
		Extensions: []string{".html"},
		ContentAny: []string{`meta name="description"`, `meta name="keywords"`},
	}
	tryCatch = matcher.Rule{
		Extensions: []string{".js", ".ts"},
		ContentAll: []string{"try", "catch"},
	}
	pythonLogging = matcher.Rule{
		Extensions: []string{".py"},
		ContentAny: []string{"import logging", "logging."},
	}

	configNames = []string{"config.json", "config.js", "config.py", ".env", "settings.py"}
	configFiles = matcher.Rule{Names: configNames}
	readmeNames = []string{"README.md", "README.txt"}
	docDirs     = []string{"docs", "documentation"}
	readmeFiles = matcher.Rule{Extensions: []string{".md", ".txt"}, NameContains: []string{"readme"}}

	// galleryThreshold is exclusive: a gallery needs more images than this.
	galleryThreshold = 5
)

func anyFile(rule matcher.Rule) func(Project) bool {
	return func(p Project) bool { return rule.Any(p) }
}

func filesOf(rule matcher.Rule) func(Project) []string {
	return func(p Project) []string { return rule.Find(p) }
}

func fixed(paths ...string) func(Project) []string {
	return func(Project) []string { return append([]string{}, paths...) }
}

func hasDependency(keys ...string) func(Project) bool {
	return func(p Project) bool {
		return manifest.PackageDependencies(p).HasAny(keys...)
	}
}

func mentionsRequirement(subs ...string) func(Project) bool {
	return func(p Project) bool {
		return manifest.PythonRequirements(p).Mentions(subs...)
	}
}

func rootHasAny(names ...string) func(Project) bool {
	return func(p Project) bool {
		for _, name := range names {
			if p.RootExists(name) {
				return true
			}
		}
		return false
	}
}

func rootHasDir(names ...string) func(Project) bool {
	return func(p Project) bool {
		for _, name := range names {
			if p.RootDir(name) {
				return true
			}
		}
		return false
	}
}

func either(a, b func(Project) bool) func(Project) bool {
	return func(p Project) bool { return a(p) || b(p) }
}

func hasGallery(p Project) bool {
	return imageFiles.Count(p) > galleryThreshold
}

var staticProfile = Profile{
	Features: []FeatureRule{
		{
			Name:        "responsive_design",
			Description: "Mobile-responsive design with CSS media queries",
			Confidence:  0.9,
			Present:     anyFile(responsiveCSS),
			Evidence:    filesOf(cssFiles),
		},
		{
			Name:        "interactive_elements",
			Description: "JavaScript-powered interactive components",
			Confidence:  0.8,
			Present:     anyFile(interactiveJS),
			Evidence:    filesOf(scriptFiles),
		},
		{
			Name:        "contact_forms",
			Description: "Contact forms for user interaction",
			Confidence:  0.7,
			Present:     anyFile(contactForm),
			Evidence:    filesOf(htmlFiles),
		},
		{
			Name:        "image_gallery",
			Description: "Image gallery or carousel functionality",
			Confidence:  0.6,
			Present:     hasGallery,
			Evidence:    filesOf(imageFiles),
		},
	},
	Gaps: []GapRule{
		{
			Feature: models.MissingFeature{
				Name:           "responsive_design",
				Priority:       models.PriorityHigh,
				Description:    "Add mobile-responsive design with CSS media queries",
				Implementation: "Add CSS media queries and flexible layouts",
			},
			Present: anyFile(responsiveCSS),
		},
		{
			Feature: models.MissingFeature{
				Name:           "contact_forms",
				Priority:       models.PriorityMedium,
				Description:    "Add contact forms for user interaction",
				Implementation: "Create HTML forms with form validation",
			},
			Present: anyFile(contactForm),
		},
		{
			Feature: models.MissingFeature{
				Name:           "seo_optimization",
				Priority:       models.PriorityMedium,
				Description:    "Add SEO meta tags and optimization",
				Implementation: "Add meta tags, structured data, and sitemap",
			},
			Present: anyFile(seoMeta),
		},
	},
}

var nodeProfile = Profile{
	Features: []FeatureRule{
		{
			Name:        "express_server",
			Description: "Express.js web server framework",
			Confidence:  0.9,
			Present:     hasDependency("express"),
			Evidence:    fixed(manifest.PackageJSON),
		},
		{
			Name:        "react_frontend",
			Description: "React.js frontend framework",
			Confidence:  0.9,
			Present:     hasDependency("react"),
			Evidence:    fixed(manifest.PackageJSON),
		},
		{
			Name:        "mongodb_database",
			Description: "MongoDB database integration",
			Confidence:  0.8,
			Present:     hasDependency("mongodb", "mongoose"),
			Evidence:    fixed(manifest.PackageJSON),
		},
		{
			Name:        "testing_framework",
			Description: "Testing framework for unit tests",
			Confidence:  0.7,
			Present:     hasDependency("jest", "mocha"),
			Evidence:    fixed(manifest.PackageJSON),
		},
	},
	Gaps: []GapRule{
		{
			Feature: models.MissingFeature{
				Name:           "testing_framework",
				Priority:       models.PriorityHigh,
				Description:    "Add testing framework for code quality",
				Implementation: "Install Jest or Mocha with test files",
			},
			Present: hasDependency("jest", "mocha", "chai", "cypress"),
		},
		{
			Feature: models.MissingFeature{
				Name:           "error_handling",
				Priority:       models.PriorityHigh,
				Description:    "Add comprehensive error handling",
				Implementation: "Implement try-catch blocks and error middleware",
			},
			Present: anyFile(tryCatch),
		},
	},
}

var pythonProfile = Profile{
	Features: []FeatureRule{
		{
			Name:        "flask_web_framework",
			Description: "Flask web application framework",
			Confidence:  0.9,
			Present:     mentionsRequirement("flask"),
			Evidence:    fixed(manifest.Requirements),
		},
		{
			Name:        "django_framework",
			Description: "Django web application framework",
			Confidence:  0.9,
			Present:     mentionsRequirement("django"),
			Evidence:    fixed(manifest.Requirements),
		},
		{
			Name:        "sql_database",
			Description: "SQL database integration with SQLAlchemy",
			Confidence:  0.8,
			Present:     mentionsRequirement("sqlalchemy"),
			Evidence:    fixed(manifest.Requirements),
		},
		{
			Name:        "pytest_framework",
			Description: "Pytest testing framework",
			Confidence:  0.7,
			Present:     mentionsRequirement("pytest"),
			Evidence:    fixed(manifest.Requirements),
		},
	},
	Gaps: []GapRule{
		{
			Feature: models.MissingFeature{
				Name:           "virtual_environment",
				Priority:       models.PriorityHigh,
				Description:    "Add virtual environment configuration",
				Implementation: "Create requirements.txt and venv setup",
			},
			Present: rootHasAny(manifest.Requirements),
		},
		{
			Feature: models.MissingFeature{
				Name:           "logging",
				Priority:       models.PriorityMedium,
				Description:    "Add proper logging system",
				Implementation: "Configure Python logging module",
			},
			Present: anyFile(pythonLogging),
		},
	},
}

var genericProfile = Profile{
	Features: []FeatureRule{
		{
			Name:        "configuration_management",
			Description: "Configuration files for project settings",
			Confidence:  0.6,
			Present:     rootHasAny(configNames...),
			Evidence:    filesOf(configFiles),
		},
		{
			Name:        "documentation",
			Description: "Project documentation and guides",
			Confidence:  0.7,
			Present:     either(rootHasAny(readmeNames...), rootHasDir(docDirs...)),
			Evidence:    filesOf(readmeFiles),
		},
	},
}
