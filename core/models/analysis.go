package models

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

type DetectedFeature struct {
	Name        string   `json:"name"`
	Confidence  float64  `json:"confidence"`
	Files       []string `json:"files"`
	Description string   `json:"description"`
}

type MissingFeature struct {
	Name           string   `json:"name"`
	Priority       Priority `json:"priority"`
	Description    string   `json:"description"`
	Implementation string   `json:"implementation"`
}

type WorkflowStep struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

type WorkflowSuggestion struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Steps       []WorkflowStep `json:"steps"`
}

type TechStack struct {
	Languages      []string `json:"languages"`
	Frameworks     []string `json:"frameworks"`
	Frontend       []string `json:"frontend"`
	Backend        []string `json:"backend"`
	Databases      []string `json:"databases"`
	BuildTools     []string `json:"build_tools"`
	Deployment     []string `json:"deployment"`
	VersionControl []string `json:"version_control"`
	Tools          []string `json:"tools"`
}

// ComplexityMetrics keeps cyclomatic complexity and the function/class counts
// for a future static-analysis pass; they are always zero today.
type ComplexityMetrics struct {
	CyclomaticComplexity int     `json:"cyclomatic_complexity"`
	LinesOfCode          int     `json:"lines_of_code"`
	FunctionCount        int     `json:"function_count"`
	ClassCount           int     `json:"class_count"`
	CommentRatio         float64 `json:"comment_ratio"`
	MaintainabilityIndex float64 `json:"maintainability_index"`
}

type ProjectOverview struct {
	TotalFiles       int            `json:"total_files"`
	FileTypes        map[string]int `json:"file_types"`
	EntryPoints      []string       `json:"entry_points"`
	ProjectStructure *TreeNode      `json:"project_structure"`
}

type AnalysisResult struct {
	ProjectOverview     ProjectOverview      `json:"project_overview"`
	ExistingFeatures    []DetectedFeature    `json:"existing_features"`
	MissingFeatures     []MissingFeature     `json:"missing_features"`
	WorkflowSuggestions []WorkflowSuggestion `json:"workflow_suggestions"`
	ComplexityAnalysis  ComplexityMetrics    `json:"complexity_analysis"`
	TechnologyStack     TechStack            `json:"technology_stack"`
	Recommendations     []string             `json:"recommendations"`
	ProjectType         ProjectType          `json:"project_type"`
}
