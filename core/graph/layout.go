package graph

import (
	"math"

	"github.com/tristendillon/codemap/core/models"
)

const (
	centerX       = 400.0
	centerY       = 300.0
	innerRadius   = 200.0
	outerRadius   = 350.0
	workflowX     = 200.0
	workflowY     = 600.0
	workflowGap   = 150.0
	stepOffset    = 100.0
	stepSpacing   = 80.0
	coordDecimals = 1e6
)

// Layout positions nodes in place: existing features on an inner circle,
// missing features on an outer one, and each workflow as a column with its
// steps stacked beneath it.
func Layout(nodes []models.GraphNode) {
	var existing, missing, workflows []int
	for i, n := range nodes {
		switch n.Category {
		case models.CategoryExistingFeature:
			existing = append(existing, i)
		case models.CategoryMissingFeature:
			missing = append(missing, i)
		case models.CategoryWorkflow:
			workflows = append(workflows, i)
		}
	}

	ring(nodes, existing, innerRadius)
	ring(nodes, missing, outerRadius)

	columns := make(map[string]models.Position, len(workflows))
	for i, idx := range workflows {
		pos := models.Position{X: workflowX + float64(i)*workflowGap, Y: workflowY}
		nodes[idx].Position = pos
		if _, seen := columns[nodes[idx].Data.WorkflowID]; !seen {
			columns[nodes[idx].Data.WorkflowID] = pos
		}
	}

	for i := range nodes {
		n := &nodes[i]
		if n.Category != models.CategoryWorkflowStep || n.Data.StepIndex == nil {
			continue
		}
		col, ok := columns[n.Data.WorkflowID]
		if !ok {
			continue
		}
		n.Position = models.Position{
			X: col.X,
			Y: col.Y + stepOffset + float64(*n.Data.StepIndex)*stepSpacing,
		}
	}
}

func ring(nodes []models.GraphNode, members []int, radius float64) {
	count := float64(len(members))
	for i, idx := range members {
		angle := 2 * math.Pi * float64(i) / count
		nodes[idx].Position = models.Position{
			X: round(centerX + radius*math.Cos(angle)),
			Y: round(centerY + radius*math.Sin(angle)),
		}
	}
}

func round(v float64) float64 {
	r := math.Round(v*coordDecimals) / coordDecimals
	if r == 0 {
		return 0
	}
	return r
}
