package domain

import (
	"iter"
	"path/filepath"
)

// ProjectInfo is one immutable node of a project tree.
// Trees are built once per fetch and shared by reference afterwards.
type ProjectInfo struct {
	dir      string
	name     string
	path     string
	children []*ProjectInfo
}

// NewProjectInfo creates a project tree node. The children slice is copied.
func NewProjectInfo(dir, name, gradlePath string, children []*ProjectInfo) *ProjectInfo {
	kids := make([]*ProjectInfo, len(children))
	copy(kids, children)
	return &ProjectInfo{
		dir:      filepath.Clean(dir),
		name:     name,
		path:     gradlePath,
		children: kids,
	}
}

// NewEmptyProjectInfo creates a childless placeholder node for a directory.
func NewEmptyProjectInfo(dir string) *ProjectInfo {
	return NewProjectInfo(dir, filepath.Base(dir), "", nil)
}

// Dir returns the project directory.
func (p *ProjectInfo) Dir() string { return p.dir }

// Name returns the gradle project name.
func (p *ProjectInfo) Name() string { return p.name }

// Path returns the gradle path of the project, such as ":app:core".
func (p *ProjectInfo) Path() string { return p.path }

// Children returns a copy of the direct children in declared order.
func (p *ProjectInfo) Children() []*ProjectInfo {
	kids := make([]*ProjectInfo, len(p.children))
	copy(kids, p.children)
	return kids
}

// Walk yields the node and all descendants depth-first, parents before children.
func (p *ProjectInfo) Walk() iter.Seq[*ProjectInfo] {
	return func(yield func(*ProjectInfo) bool) {
		p.walk(yield)
	}
}

func (p *ProjectInfo) walk(yield func(*ProjectInfo) bool) bool {
	if !yield(p) {
		return false
	}
	for _, c := range p.children {
		if !c.walk(yield) {
			return false
		}
	}
	return true
}
