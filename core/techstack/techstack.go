// Package techstack fingerprints the languages, frameworks and tooling a
// project uses from file names, file contents and its root manifests.
package techstack

import (
	"path"
	"sort"
	"strings"

	"github.com/tristendillon/codemap/core/logger"
	"github.com/tristendillon/codemap/core/manifest"
	"github.com/tristendillon/codemap/core/matcher"
	"github.com/tristendillon/codemap/core/models"
)

type Project interface {
	matcher.Source
	RootFile(name string) (string, bool)
	RootExists(rel string) bool
}

// Signal is one piece of evidence. Every field that is set must hold.
type Signal struct {
	// File is a case-insensitive substring of some file's base name.
	File string
	// Content is a case-insensitive substring of some text file.
	Content string
	// Dependency is an exact key of the root package.json dependencies.
	Dependency string
	// Requirement is a substring of the root requirements.txt.
	Requirement string
	// RootPath must exist directly under the project root.
	RootPath string
}

// Rule names a technology and the signals that each prove it on their own.
type Rule struct {
	Name    string
	Signals []Signal
}

type Classifier interface {
	Classify(p Project) models.TechStack
}

type ClassifierImpl struct{}

func NewClassifier() *ClassifierImpl {
	return &ClassifierImpl{}
}

func (c *ClassifierImpl) Classify(p Project) models.TechStack {
	e := newEvaluator(p)
	stack := models.TechStack{
		Languages:      languages(p),
		Frameworks:     e.run(frameworkRules),
		Frontend:       e.run(frontendRules),
		Backend:        e.run(backendRules),
		Databases:      e.run(databaseRules),
		BuildTools:     e.run(buildToolRules),
		Deployment:     e.run(deploymentRules),
		VersionControl: e.run(versionControlRules),
		Tools:          e.run(toolRules),
	}
	logger.Debug("TechStack: %d languages, %d frameworks", len(stack.Languages), len(stack.Frameworks))
	return stack
}

func languages(p Project) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, rel := range p.Paths() {
		lang, ok := languageByExt[lowerExt(rel)]
		if !ok || seen[lang] {
			continue
		}
		seen[lang] = true
		out = append(out, lang)
	}
	sort.Strings(out)
	return out
}

func lowerExt(rel string) string {
	return strings.ToLower(path.Ext(strings.TrimLeft(path.Base(rel), ".")))
}

// evaluator answers signals for one project, remembering every answer so
// categories that share a signal do not rescan the tree.
type evaluator struct {
	p    Project
	deps manifest.Dependencies
	reqs manifest.RequirementsText

	files    map[string]bool
	contents map[string]bool
	roots    map[string]bool
}

func newEvaluator(p Project) *evaluator {
	return &evaluator{
		p:        p,
		deps:     manifest.PackageDependencies(p),
		reqs:     manifest.PythonRequirements(p),
		files:    map[string]bool{},
		contents: map[string]bool{},
		roots:    map[string]bool{},
	}
}

func (e *evaluator) run(rules []Rule) []string {
	found := []string{}
	for _, rule := range rules {
		for _, s := range rule.Signals {
			if e.holds(s) {
				found = append(found, rule.Name)
				break
			}
		}
	}
	return found
}

func (e *evaluator) holds(s Signal) bool {
	if s.Dependency != "" && !e.deps.HasAny(s.Dependency) {
		return false
	}
	if s.Requirement != "" && !e.reqs.Mentions(s.Requirement) {
		return false
	}
	if s.RootPath != "" && !e.rootExists(s.RootPath) {
		return false
	}
	if s.File != "" && !e.hasFile(s.File) {
		return false
	}
	if s.Content != "" && !e.hasContent(s.Content) {
		return false
	}
	return true
}

func (e *evaluator) hasFile(sub string) bool {
	if v, ok := e.files[sub]; ok {
		return v
	}
	v := matcher.Rule{NameContains: []string{sub}}.Any(e.p)
	e.files[sub] = v
	return v
}

func (e *evaluator) hasContent(sub string) bool {
	if v, ok := e.contents[sub]; ok {
		return v
	}
	v := matcher.Rule{Extensions: textExts, ContentAny: []string{sub}, FoldCase: true}.Any(e.p)
	e.contents[sub] = v
	return v
}

func (e *evaluator) rootExists(rel string) bool {
	if v, ok := e.roots[rel]; ok {
		return v
	}
	v := e.p.RootExists(rel)
	e.roots[rel] = v
	return v
}

var _ Classifier = (*ClassifierImpl)(nil)
