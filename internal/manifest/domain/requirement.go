// Package domain holds the manifest types: packages declare requirements,
// and requirements are matched against sibling checkouts by normalized name.
package domain

import (
	"regexp"
	"strings"
)

// requirementPattern matches dependency entries shaped like "name>=version".
// This is deliberately the whole extraction: entries with extras, markers,
// URLs or other operators are not local-install candidates and are skipped.
var requirementPattern = regexp.MustCompile(`^([A-Za-z0-9](?:[A-Za-z0-9._-]*[A-Za-z0-9])?)\s*>=\s*([0-9][A-Za-z0-9._+!-]*)$`)

// nameSeparators collapses the characters PEP 503 treats as equivalent.
var nameSeparators = regexp.MustCompile(`[-_.]+`)

// Requirement is a single declared dependency.
type Requirement struct {
	Name       string // as written in the manifest
	Constraint string // minimum version, the part after >=
}

// ParseRequirement extracts a Requirement from one manifest line.
// Returns false for anything not shaped like "name>=version".
func ParseRequirement(line string) (Requirement, bool) {
	m := requirementPattern.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return Requirement{}, false
	}
	return Requirement{Name: m[1], Constraint: m[2]}, true
}

// NormalizeName lowers a package name and collapses runs of "-", "_" and
// "." to a single "-", so "Service_Control" matches a "service-control"
// sibling directory.
func NormalizeName(name string) string {
	return nameSeparators.ReplaceAllString(strings.ToLower(name), "-")
}

// NormalizedName returns the requirement's name in normalized form.
func (r Requirement) NormalizedName() string {
	return NormalizeName(r.Name)
}

// String renders the requirement as written in a manifest.
func (r Requirement) String() string {
	return r.Name + ">=" + r.Constraint
}
