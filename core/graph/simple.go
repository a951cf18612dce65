package graph

import (
	"fmt"

	"github.com/tristendillon/codemap/core/logger"
	"github.com/tristendillon/codemap/core/models"
)

const simpleGraphType = "simple_workflow"

var simpleStages = []struct {
	id, label, kind string
	x               float64
}{
	{"start", "Project Start", "setup", 200},
	{"develop", "Development", "development", 400},
	{"test", "Testing", "testing", 600},
	{"deploy", "Deployment", "deployment", 800},
}

// Simple returns the fixed four-stage pipeline used for projects that have
// not been analysed.
func (b *Builder) Simple(projectID string) *models.GraphResult {
	nodes := make([]models.GraphNode, 0, len(simpleStages))
	for _, stage := range simpleStages {
		theme := themeFor(stage.kind)
		nodes = append(nodes, models.GraphNode{
			ID:       stage.id,
			Label:    stage.label,
			Type:     stage.kind,
			Category: models.CategoryWorkflowStep,
			Style:    simpleStyle(theme),
			Position: models.Position{X: stage.x, Y: 100},
			Icon:     theme.Icon,
		})
	}

	edges := make([]models.GraphEdge, 0, len(nodes)-1)
	for i := 0; i+1 < len(nodes); i++ {
		edges = append(edges, models.GraphEdge{
			ID:     fmt.Sprintf("edge_%d", i+1),
			Source: nodes[i].ID,
			Target: nodes[i+1].ID,
			Type:   sequenceEdge.Type,
			Style:  sequenceEdge.Style,
		})
	}

	metadata := b.metadata(projectID, nodes, edges)
	metadata.Type = simpleGraphType
	logger.Debug("GraphBuilder: simple graph for %s", projectID)
	return &models.GraphResult{Nodes: nodes, Edges: edges, Metadata: metadata}
}
