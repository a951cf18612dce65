// Package service is the entry point collaborators use: it runs analyses
// through the cache, builds graphs and persists every result.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/tristendillon/codemap/core/analyzer"
	"github.com/tristendillon/codemap/core/cache"
	"github.com/tristendillon/codemap/core/config"
	"github.com/tristendillon/codemap/core/detector"
	"github.com/tristendillon/codemap/core/graph"
	"github.com/tristendillon/codemap/core/logger"
	"github.com/tristendillon/codemap/core/models"
	"github.com/tristendillon/codemap/core/store"
)

type Option func(*Service)

func WithStore(s store.Store) Option {
	return func(svc *Service) { svc.store = s }
}

func WithGraphGenerator(g graph.Generator) Option {
	return func(svc *Service) { svc.graphs = g }
}

// WithMode overrides the detector mode from the config.
func WithMode(mode detector.Mode) Option {
	return func(svc *Service) { svc.mode = mode }
}

type Service struct {
	cfg  *config.Config
	mode detector.Mode

	analyzer    *analyzer.Analyzer
	analyses    *cache.AnalysisCache
	generations *cache.GenerationCache
	store       store.Store
	graphs      graph.Generator
}

func New(cfg *config.Config, opts ...Option) (*Service, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	svc := &Service{
		cfg:  cfg,
		mode: detector.Mode(cfg.Detector.Mode),
	}
	for _, opt := range opts {
		opt(svc)
	}

	if svc.store == nil {
		fileStore, err := store.NewFileStore(cfg.Store.Dir)
		if err != nil {
			return nil, fmt.Errorf("failed to open result store: %w", err)
		}
		svc.store = fileStore
	}
	if svc.graphs == nil {
		svc.graphs = graph.NewBuilder()
	}

	svc.analyzer = analyzer.New(
		analyzer.WithMode(svc.mode),
		analyzer.WithExclude(cfg.Scan.Exclude...),
		analyzer.WithMaxFileBytes(cfg.Scan.MaxFileBytes),
	)
	svc.mode = svc.analyzer.Mode()
	svc.analyses = cache.NewAnalysisCache(cache.ConfigFrom(cfg.Cache))
	svc.generations = cache.NewGenerationCache()
	return svc, nil
}

type analysisRun struct {
	result      *models.AnalysisResult
	fingerprint string
}

// Analyze inventories path and stores the result under id.
func (s *Service) Analyze(id, path string) (*models.AnalysisResult, error) {
	return s.AnalyzeContext(context.Background(), id, path)
}

func (s *Service) AnalyzeContext(ctx context.Context, id, path string) (*models.AnalysisResult, error) {
	run, err := s.analyze(ctx, id, path)
	if err != nil {
		return nil, err
	}
	return run.result, nil
}

func (s *Service) analyze(ctx context.Context, id, path string) (*analysisRun, error) {
	snap, err := s.analyzer.Scan(ctx, path)
	if err != nil {
		return nil, err
	}
	fingerprint := snap.Fingerprint()

	if result, ok := s.analyses.Get(id, fingerprint); ok {
		logger.Debug("ProjectService: reusing analysis of %s", id)
		return &analysisRun{result: result, fingerprint: fingerprint}, nil
	}

	result, err := s.analyzer.AnalyzeSnapshot(ctx, snap)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze %s: %w", id, err)
	}
	if err := s.store.SaveAnalysis(id, result); err != nil {
		return nil, fmt.Errorf("failed to save analysis: %w", err)
	}
	s.analyses.Set(id, fingerprint, result)

	return &analysisRun{result: result, fingerprint: fingerprint}, nil
}

// BuildGraph analyses path and derives its workflow graph. A graph already
// generated from the same tree and settings is loaded instead of rebuilt.
func (s *Service) BuildGraph(id, path string) (*models.GraphResult, error) {
	return s.BuildGraphContext(context.Background(), id, path)
}

func (s *Service) BuildGraphContext(ctx context.Context, id, path string) (*models.GraphResult, error) {
	run, err := s.analyze(ctx, id, path)
	if err != nil {
		return nil, err
	}

	configHash := s.configHash()
	if needs, reason := s.generations.NeedsRegeneration(id, run.fingerprint, configHash); !needs {
		if g, err := s.store.LoadGraph(id); err == nil {
			return g, nil
		}
	} else {
		logger.Debug("ProjectService: generating graph for %s: %s", id, reason)
	}

	g := s.graphs.Build(id, run.result)
	if err := s.store.SaveGraph(id, g); err != nil {
		return nil, fmt.Errorf("failed to save graph: %w", err)
	}
	if err := s.generations.MarkGenerated(id, run.fingerprint, configHash); err != nil {
		logger.Warn("ProjectService: %v", err)
	}
	return g, nil
}

// SimpleGraph builds and stores the fallback pipeline graph for id.
func (s *Service) SimpleGraph(id string) (*models.GraphResult, error) {
	g := s.graphs.Simple(id)
	if err := s.store.SaveSimpleGraph(id, g); err != nil {
		return nil, fmt.Errorf("failed to save simple graph: %w", err)
	}
	return g, nil
}

func (s *Service) LoadAnalysis(id string) (*models.AnalysisResult, error) {
	return s.store.LoadAnalysis(id)
}

func (s *Service) LoadGraph(id string) (*models.GraphResult, error) {
	return s.store.LoadGraph(id)
}

// Forget drops the in-memory state of id so the next call re-analyses.
func (s *Service) Forget(id string) {
	s.analyses.Invalidate(id)
	s.generations.InvalidateGeneration(id)
}

func (s *Service) CacheMetrics() *cache.CacheMetrics {
	return s.analyses.GetMetrics()
}

// LogCacheStats writes the analysis cache counters to the debug log.
func (s *Service) LogCacheStats() {
	s.analyses.LogStats()
}

func (s *Service) Mode() detector.Mode {
	return s.mode
}

func (s *Service) configHash() string {
	return fmt.Sprintf("%s|%s|%d", s.mode, strings.Join(s.cfg.Scan.Exclude, ","), s.cfg.Scan.MaxFileBytes)
}
