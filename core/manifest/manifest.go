// Package manifest reads the dependency manifests found at a project root.
// Unreadable or malformed manifests are reported as absent, never as errors.
package manifest

import (
	"encoding/json"
	"strings"
)

const (
	PackageJSON  = "package.json"
	Requirements = "requirements.txt"
)

type RootReader interface {
	RootFile(name string) (string, bool)
}

type packageFile struct {
	Dependencies    map[string]json.RawMessage `json:"dependencies"`
	DevDependencies map[string]json.RawMessage `json:"devDependencies"`
}

// Dependencies is the union of dependencies and devDependencies in the root
// package.json. It is empty when the file is missing or cannot be decoded.
type Dependencies struct {
	names map[string]bool
}

func PackageDependencies(r RootReader) Dependencies {
	text, found := r.RootFile(PackageJSON)
	if !found {
		return Dependencies{}
	}

	var pkg packageFile
	if err := json.Unmarshal([]byte(text), &pkg); err != nil {
		return Dependencies{}
	}

	names := make(map[string]bool, len(pkg.Dependencies)+len(pkg.DevDependencies))
	for name := range pkg.Dependencies {
		names[name] = true
	}
	for name := range pkg.DevDependencies {
		names[name] = true
	}
	return Dependencies{names: names}
}

// HasAny reports whether any of keys is an exact dependency name.
func (d Dependencies) HasAny(keys ...string) bool {
	for _, key := range keys {
		if d.names[key] {
			return true
		}
	}
	return false
}

// RequirementsText is the lower-cased root requirements.txt.
type RequirementsText struct {
	text string
	ok   bool
}

func PythonRequirements(r RootReader) RequirementsText {
	text, found := r.RootFile(Requirements)
	if !found {
		return RequirementsText{}
	}
	return RequirementsText{text: strings.ToLower(text), ok: true}
}

// Mentions reports whether any of subs occurs in the requirements text.
func (r RequirementsText) Mentions(subs ...string) bool {
	if !r.ok {
		return false
	}
	for _, sub := range subs {
		if strings.Contains(r.text, strings.ToLower(sub)) {
			return true
		}
	}
	return false
}
