// Package detector classifies a project and runs the per-type rule tables
// that decide which features it has and which it lacks.
package detector

import (
	"fmt"

	"github.com/tristendillon/codemap/core/logger"
	"github.com/tristendillon/codemap/core/matcher"
	"github.com/tristendillon/codemap/core/models"
)

// Project is the view of a scanned tree the rules run against.
type Project interface {
	matcher.Source
	RootFile(name string) (string, bool)
	RootExists(rel string) bool
	RootDir(rel string) bool
}

type Mode string

const (
	ModeFixed    Mode = "fixed"
	ModeCoverage Mode = "coverage"
)

// FeatureRule pairs a presence predicate with a constant confidence and the
// files offered as evidence.
type FeatureRule struct {
	Name        string
	Description string
	Confidence  float64
	Present     func(p Project) bool
	Evidence    func(p Project) []string
}

// GapRule reports Feature as missing when Present is false.
type GapRule struct {
	Feature models.MissingFeature
	Present func(p Project) bool
}

type Profile struct {
	Features []FeatureRule
	Gaps     []GapRule
}

// ProfileFor returns the rule set for a project type. Every ProjectType has
// exactly one profile.
func ProfileFor(pt models.ProjectType) Profile {
	switch pt {
	case models.StaticWebsite, models.HTMLTemplate:
		return staticProfile
	case models.NodeApplication:
		return nodeProfile
	case models.PythonApplication:
		return pythonProfile
	case models.ContainerizedApplication, models.UnknownProject:
		return genericProfile
	default:
		logger.Warn("Detector: unknown project type %q, using generic rules", pt)
		return genericProfile
	}
}

type FeatureDetector interface {
	Detect(pt models.ProjectType, p Project) []models.DetectedFeature
}

func NewFeatureDetector(mode Mode) (FeatureDetector, error) {
	switch mode {
	case ModeFixed, "":
		return FixedDetector{}, nil
	case ModeCoverage:
		return CoverageDetector{}, nil
	default:
		return nil, fmt.Errorf("unknown detector mode %q", mode)
	}
}

// FixedDetector scores every feature with its rule's constant confidence.
type FixedDetector struct{}

func (FixedDetector) Detect(pt models.ProjectType, p Project) []models.DetectedFeature {
	features := []models.DetectedFeature{}
	for _, rule := range ProfileFor(pt).Features {
		if !rule.Present(p) {
			continue
		}
		features = append(features, models.DetectedFeature{
			Name:        rule.Name,
			Confidence:  rule.Confidence,
			Files:       rule.Evidence(p),
			Description: rule.Description,
		})
	}
	logger.Debug("Detector: %s project has %d features", pt, len(features))
	return features
}

// MissingFeatures runs the project type's gap checks.
func MissingFeatures(pt models.ProjectType, p Project) []models.MissingFeature {
	missing := []models.MissingFeature{}
	for _, gap := range ProfileFor(pt).Gaps {
		if !gap.Present(p) {
			missing = append(missing, gap.Feature)
		}
	}
	return missing
}
