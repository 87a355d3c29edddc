package loader_test

import (
	"fmt"
	"strings"

	"go.trai.ch/gradlemodel/internal/core/domain"
	"go.trai.ch/gradlemodel/internal/core/ports"
)

func module(dir, path string, children ...string) domain.IdeaModule {
	name := path[strings.LastIndex(path, ":")+1:]
	if name == "" {
		name = "root"
	}
	m := domain.IdeaModule{
		Name:          name,
		GradleProject: domain.GradleProject{Name: name, Path: path, Children: children},
	}
	if dir != "" {
		m.ContentRoots = []domain.IdeaContentRoot{{RootDirectory: dir}}
	}
	return m
}

// render prints a tree one node per line, children indented.
func render(info *domain.ProjectInfo) string {
	var b strings.Builder
	var walk func(n *domain.ProjectInfo, depth int)
	walk = func(n *domain.ProjectInfo, depth int) {
		fmt.Fprintf(&b, "%s%s %s\n", strings.Repeat("  ", depth), n.Path(), n.Dir())
		for _, c := range n.Children() {
			walk(c, depth+1)
		}
	}
	walk(info, 0)
	return b.String()
}

type testProject struct {
	dir        string
	props      domain.ProjectProperties
	hasProps   bool
	extensions []ports.ExtensionRef
}

func (p testProject) Directory() string { return p.dir }

func (p testProject) DisplayName() string { return p.dir }

func (p testProject) Properties() (domain.ProjectProperties, bool) { return p.props, p.hasProps }

func (p testProject) Extensions() []ports.ExtensionRef { return p.extensions }
