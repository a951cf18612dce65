package models

import "time"

type NodeCategory string

const (
	CategoryExistingFeature NodeCategory = "existing_feature"
	CategoryMissingFeature  NodeCategory = "missing_feature"
	CategoryWorkflow        NodeCategory = "workflow"
	CategoryWorkflowStep    NodeCategory = "workflow_step"
)

type EdgeType string

const (
	EdgeFeatureDependency EdgeType = "feature_dependency"
	EdgeWorkflowStep      EdgeType = "workflow_step"
	EdgeStepSequence      EdgeType = "step_sequence"
	EdgeFeatureWorkflow   EdgeType = "feature_workflow"
	EdgeSequence          EdgeType = "sequence"
)

// NodeData is the category-specific payload of a node. Only the fields that
// belong to the node's category are set. Files is a pointer so an existing
// feature with no evidence still encodes "files": [].
type NodeData struct {
	Description    string         `json:"description,omitempty"`
	Confidence     *float64       `json:"confidence,omitempty"`
	Files          *[]string      `json:"files,omitempty"`
	FeatureName    string         `json:"feature_name,omitempty"`
	Priority       Priority       `json:"priority,omitempty"`
	Implementation string         `json:"implementation,omitempty"`
	WorkflowID     string         `json:"workflow_id,omitempty"`
	Steps          []WorkflowStep `json:"steps,omitempty"`
	StepIndex      *int           `json:"step_index,omitempty"`
	StepType       string         `json:"step_type,omitempty"`
}

type NodeStyle struct {
	BackgroundColor string  `json:"backgroundColor,omitempty"`
	Color           string  `json:"color,omitempty"`
	BorderColor     string  `json:"borderColor,omitempty"`
	BorderWidth     int     `json:"borderWidth,omitempty"`
	BorderStyle     string  `json:"borderStyle,omitempty"`
	FontSize        int     `json:"fontSize,omitempty"`
	FontWeight      string  `json:"fontWeight,omitempty"`
	Opacity         float64 `json:"opacity,omitempty"`
	Width           int     `json:"width,omitempty"`
	Height          int     `json:"height,omitempty"`
}

type EdgeStyle struct {
	Stroke          string `json:"stroke"`
	StrokeWidth     int    `json:"strokeWidth"`
	StrokeDasharray string `json:"strokeDasharray,omitempty"`
}

type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type GraphNode struct {
	ID       string       `json:"id"`
	Label    string       `json:"label"`
	Type     string       `json:"type"`
	Category NodeCategory `json:"category"`
	Data     NodeData     `json:"data"`
	Style    NodeStyle    `json:"style"`
	Position Position     `json:"position"`
	Icon     string       `json:"icon,omitempty"`
}

type GraphEdge struct {
	ID     string    `json:"id"`
	Source string    `json:"source"`
	Target string    `json:"target"`
	Type   EdgeType  `json:"type"`
	Style  EdgeStyle `json:"style"`
	Label  string    `json:"label,omitempty"`
}

type AnalysisSummary struct {
	ProjectType         ProjectType `json:"project_type"`
	ExistingFeatures    int         `json:"existing_features"`
	MissingFeatures     int         `json:"missing_features"`
	WorkflowSuggestions int         `json:"workflow_suggestions"`
}

type GraphMetadata struct {
	ProjectID       string           `json:"project_id"`
	GeneratedAt     time.Time        `json:"generated_at"`
	GenerationID    string           `json:"generation_id"`
	TotalNodes      int              `json:"total_nodes"`
	TotalEdges      int              `json:"total_edges"`
	NodeTypes       []string         `json:"node_types,omitempty"`
	AnalysisSummary *AnalysisSummary `json:"analysis_summary,omitempty"`
	Type            string           `json:"type,omitempty"`
}

type GraphResult struct {
	Nodes    []GraphNode   `json:"nodes"`
	Edges    []GraphEdge   `json:"edges"`
	Metadata GraphMetadata `json:"metadata"`
}

// DanglingEdges returns the edges whose source or target is not a node of g.
func (g *GraphResult) DanglingEdges() []GraphEdge {
	ids := make(map[string]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		ids[n.ID] = true
	}

	var dangling []GraphEdge
	for _, e := range g.Edges {
		if !ids[e.Source] || !ids[e.Target] {
			dangling = append(dangling, e)
		}
	}
	return dangling
}

func (g *GraphResult) Node(id string) (GraphNode, bool) {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return GraphNode{}, false
}
