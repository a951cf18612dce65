// Package analyzer runs the full inventory pipeline over one project tree.
package analyzer

import (
	"context"
	"fmt"

	"github.com/tristendillon/codemap/core/complexity"
	"github.com/tristendillon/codemap/core/detector"
	"github.com/tristendillon/codemap/core/insights"
	"github.com/tristendillon/codemap/core/logger"
	"github.com/tristendillon/codemap/core/models"
	"github.com/tristendillon/codemap/core/techstack"
	"github.com/tristendillon/codemap/core/walker"
)

type Option func(*Analyzer)

func WithMode(mode detector.Mode) Option {
	return func(a *Analyzer) { a.mode = mode }
}

// WithExclude prunes paths matching any of the doublestar patterns.
func WithExclude(patterns ...string) Option {
	return func(a *Analyzer) { a.exclude = append(a.exclude, patterns...) }
}

// WithMaxFileBytes treats files larger than n bytes as unreadable. Zero
// means no limit.
func WithMaxFileBytes(n int64) Option {
	return func(a *Analyzer) { a.maxFileBytes = n }
}

func WithRecommender(r insights.Recommender) Option {
	return func(a *Analyzer) { a.recommender = r }
}

type Analyzer struct {
	mode         detector.Mode
	exclude      []string
	maxFileBytes int64

	scanner     walker.TreeScanner
	features    detector.FeatureDetector
	stack       techstack.Classifier
	scorer      complexity.Scorer
	recommender insights.Recommender
}

func New(opts ...Option) *Analyzer {
	a := &Analyzer{mode: detector.ModeFixed}
	for _, opt := range opts {
		opt(a)
	}

	features, err := detector.NewFeatureDetector(a.mode)
	if err != nil {
		logger.Warn("Analyzer: %v, falling back to %s", err, detector.ModeFixed)
		a.mode = detector.ModeFixed
		features = detector.FixedDetector{}
	}

	a.scanner = walker.NewTreeScanner(a.exclude, a.maxFileBytes)
	a.features = features
	a.stack = techstack.NewClassifier()
	a.scorer = complexity.NewScorer()
	if a.recommender == nil {
		a.recommender = insights.NewRuleRecommender()
	}
	return a
}

func (a *Analyzer) Mode() detector.Mode {
	return a.mode
}

// Analyze inventories the project at path.
func (a *Analyzer) Analyze(path string) (*models.AnalysisResult, error) {
	return a.AnalyzeContext(context.Background(), path)
}

func (a *Analyzer) AnalyzeContext(ctx context.Context, path string) (*models.AnalysisResult, error) {
	snap, err := a.Scan(ctx, path)
	if err != nil {
		return nil, err
	}
	return a.AnalyzeSnapshot(ctx, snap)
}

// Scan walks path without analysing it, so callers can fingerprint the tree
// before deciding whether an analysis is needed.
func (a *Analyzer) Scan(ctx context.Context, path string) (*walker.Snapshot, error) {
	snap, err := a.scanner.Scan(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to scan project: %w", err)
	}
	return snap, nil
}

// AnalyzeSnapshot runs every stage after the walk. The snapshot's content
// memo is filled as a side effect, so it must not be shared across goroutines.
func (a *Analyzer) AnalyzeSnapshot(ctx context.Context, snap *walker.Snapshot) (*models.AnalysisResult, error) {
	pt := detector.Classify(detector.CountFiles(snap.Files))
	logger.Debug("Analyzer: %s classified as %s", snap.Root, pt)

	features := a.features.Detect(pt, snap)
	gaps := detector.MissingFeatures(pt, snap)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stack := a.stack.Classify(snap)
	metrics := a.scorer.Score(snap)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	suggestions := a.recommender.Recommend(pt, features)

	result := &models.AnalysisResult{
		ProjectOverview: models.ProjectOverview{
			TotalFiles:       snap.TotalFiles(),
			FileTypes:        snap.FileTypes,
			EntryPoints:      snap.EntryPoints,
			ProjectStructure: snap.Tree,
		},
		ExistingFeatures:    features,
		MissingFeatures:     append(gaps, suggestions.MissingFeatures...),
		WorkflowSuggestions: suggestions.WorkflowSuggestions,
		ComplexityAnalysis:  metrics,
		TechnologyStack:     stack,
		Recommendations:     suggestions.Recommendations,
		ProjectType:         pt,
	}

	logger.Info("Analyzer: %s: %d files, %d features, %d missing",
		snap.Root, result.ProjectOverview.TotalFiles, len(result.ExistingFeatures), len(result.MissingFeatures))
	return result, nil
}
