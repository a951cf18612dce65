package graph

import (
	"github.com/tristendillon/codemap/core/models"
)

type nodeTheme struct {
	Color string
	Icon  string
}

const fallbackType = "development"

var themes = map[string]nodeTheme{
	"setup":         {"#3B82F6", "⚙️"},
	"development":   {"#10B981", "💻"},
	"testing":       {"#F59E0B", "🧪"},
	"deployment":    {"#8B5CF6", "🚀"},
	"auth":          {"#EF4444", "🔐"},
	"design":        {"#06B6D4", "🎨"},
	"documentation": {"#84CC16", "📚"},
	"database":      {"#F97316", "🗄️"},
	"api":           {"#EC4899", "🔌"},
	"frontend":      {"#6366F1", "🖥️"},
	"backend":       {"#14B8A6", "⚡"},
}

const workflowIcon = "🔄"

var featureNodeTypes = map[string]string{
	"authentication": "auth",
	"database":       "database",
	"api":            "api",
	"frontend":       "frontend",
	"backend":        "backend",
	"deployment":     "deployment",
	"testing":        "testing",
	"documentation":  "documentation",
}

// relationships lists, for an existing feature, the missing features it
// suggests adding next.
var relationships = map[string][]string{
	"frontend":       {"backend", "api", "authentication"},
	"backend":        {"database", "api", "authentication"},
	"api":            {"database", "authentication"},
	"authentication": {"database"},
	"database":       {"deployment"},
	"testing":        {"deployment"},
	"documentation":  {"deployment"},
}

// enabledSteps lists the workflow step types an existing feature feeds into.
var enabledSteps = map[string][]string{
	"authentication": {"auth"},
	"database":       {"database"},
	"api":            {"api", "development"},
	"frontend":       {"frontend", "development"},
	"backend":        {"backend", "development"},
	"testing":        {"testing"},
	"documentation":  {"documentation"},
	"deployment":     {"deployment"},
}

var (
	suggestsEdge = edgeKind{models.EdgeFeatureDependency, "Suggests", models.EdgeStyle{Stroke: "#6B7280", StrokeWidth: 2, StrokeDasharray: "5,5"}}
	containsEdge = edgeKind{models.EdgeWorkflowStep, "Contains", models.EdgeStyle{Stroke: "#3B82F6", StrokeWidth: 2}}
	nextEdge     = edgeKind{models.EdgeStepSequence, "Next", models.EdgeStyle{Stroke: "#10B981", StrokeWidth: 3, StrokeDasharray: "0"}}
	enablesEdge  = edgeKind{models.EdgeFeatureWorkflow, "Enables", models.EdgeStyle{Stroke: "#F59E0B", StrokeWidth: 2, StrokeDasharray: "3,3"}}
	sequenceEdge = edgeKind{models.EdgeSequence, "", models.EdgeStyle{Stroke: "#6B7280", StrokeWidth: 3}}
)

type edgeKind struct {
	Type  models.EdgeType
	Label string
	Style models.EdgeStyle
}

// NodeType maps a feature name onto the node vocabulary.
func NodeType(feature string) string {
	if t, ok := featureNodeTypes[feature]; ok {
		return t
	}
	return fallbackType
}

func themeFor(nodeType string) nodeTheme {
	if t, ok := themes[nodeType]; ok {
		return t
	}
	return themes[fallbackType]
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func featureStyle(theme nodeTheme) models.NodeStyle {
	return models.NodeStyle{
		BackgroundColor: theme.Color,
		Color:           "white",
		BorderColor:     theme.Color,
		BorderWidth:     2,
		FontSize:        14,
		FontWeight:      "bold",
	}
}

func missingStyle(theme nodeTheme) models.NodeStyle {
	return models.NodeStyle{
		BackgroundColor: theme.Color,
		Color:           "white",
		BorderColor:     "#6B7280",
		BorderWidth:     2,
		BorderStyle:     "dashed",
		FontSize:        14,
		FontWeight:      "bold",
		Opacity:         0.8,
	}
}

func workflowStyle() models.NodeStyle {
	return models.NodeStyle{
		BackgroundColor: "#1F2937",
		Color:           "white",
		BorderColor:     "#374151",
		BorderWidth:     3,
		FontSize:        16,
		FontWeight:      "bold",
		Width:           200,
		Height:          60,
	}
}

func stepStyle(theme nodeTheme) models.NodeStyle {
	return models.NodeStyle{
		BackgroundColor: theme.Color,
		Color:           "white",
		BorderColor:     theme.Color,
		BorderWidth:     2,
		FontSize:        12,
		FontWeight:      "normal",
	}
}

func simpleStyle(theme nodeTheme) models.NodeStyle {
	return models.NodeStyle{
		BackgroundColor: theme.Color,
		Color:           "white",
		BorderColor:     theme.Color,
		BorderWidth:     2,
	}
}
