package config

import "slices"

// TemplateKind identifies the family of scaffolding tool being driven.
// It selects both the scaffold command shape and the file layout the patcher searches.
type TemplateKind string

const (
	// TemplateVite scaffolds with `npm create vite@latest`.
	TemplateVite TemplateKind = "vite"
	// TemplateNext scaffolds with `npx create-next-app@latest`.
	TemplateNext TemplateKind = "next"
)

// TemplateKinds returns every valid template kind in display order.
func TemplateKinds() []TemplateKind {
	return []TemplateKind{TemplateVite, TemplateNext}
}

// ParseTemplateKind matches s exactly (case-sensitive) against the known kinds.
func ParseTemplateKind(s string) (TemplateKind, bool) {
	for _, k := range TemplateKinds() {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// TailwindPackage is the dev dependency whose presence triggers config patching.
const TailwindPackage = "tailwindcss"

// DependencySet holds the packages installed after scaffolding a template.
// - Dev: installed with --save-dev, in order.
// - Project: runtime dependencies, installed after Dev, in order.
type DependencySet struct {
	Dev     []string `toml:"dev" yaml:"dev"`
	Project []string `toml:"project" yaml:"project"`
}

// NeedsTailwind reports whether the dev dependencies include tailwindcss.
func (d DependencySet) NeedsTailwind() bool {
	return slices.Contains(d.Dev, TailwindPackage)
}

// Equal reports whether both sets list the same packages in the same order.
// A nil list and an empty list are equal.
func (d DependencySet) Equal(other DependencySet) bool {
	return slices.Equal(d.Dev, other.Dev) && slices.Equal(d.Project, other.Project)
}

// Config is the persisted mapping from template kind to dependency set.
// The on-disk document has one top-level table per template kind.
type Config struct {
	Vite DependencySet `toml:"vite" yaml:"vite"`
	Next DependencySet `toml:"next" yaml:"next"`
}

// For returns the dependency set for kind. The bool is false for unknown kinds.
func (c *Config) For(kind TemplateKind) (DependencySet, bool) {
	switch kind {
	case TemplateVite:
		return c.Vite, true
	case TemplateNext:
		return c.Next, true
	default:
		return DependencySet{}, false
	}
}
