package app

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"go.trai.ch/gradlemodel/internal/core/domain"
)

// RenderTree writes the project tree of m. Child directories are shown
// relative to the root project.
func RenderTree(w io.Writer, m *domain.Model) error {
	root := m.ProjectInfo()
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s) %s\n", root.Name(), displayPath(root.Path()), root.Dir())
	renderChildren(&b, root, root.Dir(), "")

	if ids := m.ExtensionIDs(); len(ids) > 0 {
		b.WriteString("\n")
		for _, id := range ids {
			l, _ := m.ExtensionModels(id)
			fmt.Fprintf(&b, "%s: %d model(s)\n", id, l.Len())
			for _, e := range l.Entries() {
				fmt.Fprintf(&b, "  %s\n", e.Class)
			}
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func renderChildren(b *strings.Builder, node *domain.ProjectInfo, base, indent string) {
	children := node.Children()
	for i, child := range children {
		branch, next := "├── ", "│   "
		if i == len(children)-1 {
			branch, next = "└── ", "    "
		}
		rel, err := filepath.Rel(base, child.Dir())
		if err != nil {
			rel = child.Dir()
		}
		fmt.Fprintf(b, "%s%s%s (%s) %s\n", indent, branch, child.Name(), displayPath(child.Path()), filepath.ToSlash(rel))
		renderChildren(b, child, base, indent+next)
	}
}

func displayPath(p string) string {
	if p == "" {
		return ":"
	}
	return p
}

// ProjectView is the JSON form of a model.
type ProjectView struct {
	Name       string                         `json:"name"`
	Path       string                         `json:"path"`
	Dir        string                         `json:"dir"`
	Root       string                         `json:"root,omitempty"`
	Children   []ProjectView                  `json:"children,omitempty"`
	Extensions map[string][]domain.ModelClass `json:"extensions,omitempty"`
}

// View converts m into its JSON form.
func View(m *domain.Model) ProjectView {
	v := viewOf(m.ProjectInfo())
	v.Root = m.RootProjectDir()
	for _, id := range m.ExtensionIDs() {
		l, _ := m.ExtensionModels(id)
		if v.Extensions == nil {
			v.Extensions = make(map[string][]domain.ModelClass)
		}
		classes := make([]domain.ModelClass, 0, l.Len())
		for _, e := range l.Entries() {
			classes = append(classes, e.Class)
		}
		v.Extensions[id] = classes
	}
	return v
}

func viewOf(info *domain.ProjectInfo) ProjectView {
	v := ProjectView{Name: info.Name(), Path: displayPath(info.Path()), Dir: info.Dir()}
	for _, c := range info.Children() {
		v.Children = append(v.Children, viewOf(c))
	}
	return v
}
