package detector

import (
	"strings"

	"github.com/tristendillon/codemap/core/models"
)

// Counts are the signals project classification is decided on.
type Counts struct {
	HTML         int
	Script       int
	Python       int
	PackageJSON  bool
	Requirements bool
	Dockerfile   bool
}

func CountFiles(files []models.DiscoveredFile) Counts {
	var c Counts
	for _, f := range files {
		switch {
		case f.Ext == ".html":
			c.HTML++
		case f.Ext == ".js" || f.Ext == ".jsx" || f.Ext == ".ts" || f.Ext == ".tsx":
			c.Script++
		case f.Ext == ".py":
			c.Python++
		case f.Name == "package.json":
			c.PackageJSON = true
		case f.Name == "requirements.txt":
			c.Requirements = true
		case strings.EqualFold(f.Name, "dockerfile"):
			c.Dockerfile = true
		}
	}
	return c
}

// Classify applies the fixed priority chain; the first match wins.
func Classify(c Counts) models.ProjectType {
	switch {
	case c.HTML > 0 && c.Script > 0 && !c.PackageJSON && c.Python == 0:
		return models.StaticWebsite
	case c.PackageJSON && c.Script > 0:
		return models.NodeApplication
	case c.Requirements && c.Python > 0:
		return models.PythonApplication
	case c.Dockerfile:
		return models.ContainerizedApplication
	case c.HTML > 0:
		return models.HTMLTemplate
	default:
		return models.UnknownProject
	}
}
