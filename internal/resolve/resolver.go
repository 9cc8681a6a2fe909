// Package resolve computes editable-install plans over a workspace.
//
// Resolution is a depth-first walk: every requirement with a sibling
// checkout becomes a local node and is descended into, everything else is
// left to the package index. The resulting order is bottom-up (each package
// after all of its local dependencies) with the root last, which is exactly
// the order editable installs must happen in.
package resolve

import (
	"strings"

	"github.com/zjrosen/pydev/internal/log"
	domain "github.com/zjrosen/pydev/internal/manifest/domain"
	"github.com/zjrosen/pydev/internal/workspace"
)

// Node is one local package in the dependency tree.
type Node struct {
	Pkg    *workspace.Package
	Local  []*Node              // requirements with sibling checkouts
	Remote []domain.Requirement // requirements left to the package index
}

// Plan is the result of resolving a root package.
type Plan struct {
	Root *Node

	// Order lists every local package exactly once, bottom-up, root last.
	Order []*workspace.Package
}

// CycleError reports a dependency cycle among local packages.
type CycleError struct {
	Path []string // package names along the cycle, first == last
}

// Error implements the error interface.
func (e *CycleError) Error() string {
	return "dependency cycle: " + strings.Join(e.Path, " -> ")
}

// Resolver builds install plans from a workspace.
type Resolver struct {
	ws *workspace.Workspace
}

// New creates a Resolver over the given workspace.
func New(ws *workspace.Workspace) *Resolver {
	return &Resolver{ws: ws}
}

const (
	colorWhite = iota // unvisited
	colorGrey         // on the current DFS stack
	colorBlack        // fully resolved
)

type walker struct {
	ws    *workspace.Workspace
	color map[string]int
	nodes map[string]*Node
	stack []string
	order []*workspace.Package
}

// Resolve walks root's local dependency closure and returns the plan.
// Returns a *CycleError if the local packages depend on each other in a
// loop.
func (r *Resolver) Resolve(root *workspace.Package) (*Plan, error) {
	w := &walker{
		ws:    r.ws,
		color: make(map[string]int),
		nodes: make(map[string]*Node),
	}
	node, err := w.visit(root)
	if err != nil {
		return nil, err
	}
	log.Debug(log.CatResolve, "resolved install plan",
		"root", root.Name, "packages", len(w.order))
	return &Plan{Root: node, Order: w.order}, nil
}

func (w *walker) visit(pkg *workspace.Package) (*Node, error) {
	key := pkg.NormalizedName()
	switch w.color[key] {
	case colorGrey:
		return nil, w.cycleFrom(pkg.Name)
	case colorBlack:
		return w.nodes[key], nil
	}
	w.color[key] = colorGrey
	w.stack = append(w.stack, pkg.Name)

	node := &Node{Pkg: pkg}
	for _, req := range pkg.Manifest.Requirements {
		sibling, local := w.ws.FindSibling(pkg, req)
		if !local {
			node.Remote = append(node.Remote, req)
			continue
		}
		child, err := w.visit(sibling)
		if err != nil {
			return nil, err
		}
		node.Local = append(node.Local, child)
	}

	w.stack = w.stack[:len(w.stack)-1]
	w.color[key] = colorBlack
	w.nodes[key] = node
	w.order = append(w.order, pkg)
	return node, nil
}

// cycleFrom builds a CycleError from the DFS stack, starting at the first
// occurrence of the repeated package.
func (w *walker) cycleFrom(name string) *CycleError {
	start := 0
	for i, n := range w.stack {
		if domain.NormalizeName(n) == domain.NormalizeName(name) {
			start = i
			break
		}
	}
	path := append([]string{}, w.stack[start:]...)
	path = append(path, name)
	return &CycleError{Path: path}
}
