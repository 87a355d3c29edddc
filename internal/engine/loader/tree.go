package loader

import (
	"errors"
	"path/filepath"

	"github.com/dominikbraun/graph"
	"go.trai.ch/gradlemodel/internal/core/domain"
	"go.trai.ch/zerr"
)

// TreeBuilder turns an idea module graph into project trees. Modules are
// indexed by gradle path once; subtrees are built once and shared.
type TreeBuilder struct {
	index   map[string]domain.IdeaModule
	edges   graph.Graph[string, string]
	parents map[string]string
	built   map[string]*domain.ProjectInfo
}

// NewTreeBuilder indexes the modules of project.
func NewTreeBuilder(project domain.IdeaProject) *TreeBuilder {
	b := &TreeBuilder{
		index:   make(map[string]domain.IdeaModule, len(project.Modules)),
		edges:   graph.New(graph.StringHash, graph.Directed(), graph.PreventCycles()),
		parents: make(map[string]string),
		built:   make(map[string]*domain.ProjectInfo),
	}
	for _, m := range project.Modules {
		path := m.GradleProject.Path
		if _, ok := b.index[path]; ok {
			continue
		}
		b.index[path] = m
		_ = b.edges.AddVertex(path)
	}
	return b
}

// Build returns the tree rooted at root. It fails when root has no content root,
// the declared children form a cycle, or a module is declared by two parents.
func (b *TreeBuilder) Build(root domain.IdeaModule) (*domain.ProjectInfo, error) {
	info, ok, err := b.build(root)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrTreeAssembly, "root module has no content root"), "module", root.Name)
	}
	return info, nil
}

func (b *TreeBuilder) build(module domain.IdeaModule) (*domain.ProjectInfo, bool, error) {
	path := module.GradleProject.Path
	if info, ok := b.built[path]; ok {
		return info, true, nil
	}

	dir, ok := module.ModuleDir()
	if !ok {
		return nil, false, nil
	}

	var children []*domain.ProjectInfo
	for _, childPath := range module.GradleProject.Children {
		child, ok := b.index[childPath]
		if !ok {
			continue
		}
		if parent, ok := b.parents[childPath]; ok && parent != path {
			err := zerr.With(zerr.Wrap(domain.ErrTreeAssembly, "module has more than one parent"), "child", childPath)
			return nil, false, zerr.With(zerr.With(err, "parent", parent), "other_parent", path)
		}
		if err := b.edges.AddEdge(path, childPath); err != nil {
			if errors.Is(err, graph.ErrEdgeAlreadyExists) {
				continue
			}
			return nil, false, zerr.With(zerr.With(zerr.Wrap(domain.ErrTreeAssembly, "module graph is not a tree"), "parent", path), "child", childPath)
		}
		b.parents[childPath] = path
		info, ok, err := b.build(child)
		if err != nil {
			return nil, false, err
		}
		if ok {
			children = append(children, info)
		}
	}

	name := module.GradleProject.Name
	if name == "" {
		name = module.Name
	}
	info := domain.NewProjectInfo(dir, name, path, children)
	b.built[path] = info
	return info, true, nil
}

// BuildResult holds the models produced from one idea module graph.
type BuildResult struct {
	Project domain.IdeaProject
	Main    *domain.Model
	Others  []*domain.Model
}

// Known returns every model of the result keyed by project directory.
func (r *BuildResult) Known() map[string]*domain.Model {
	known := make(map[string]*domain.Model, len(r.Others)+1)
	known[r.Main.ProjectDir()] = r.Main
	for _, m := range r.Others {
		known[m.ProjectDir()] = m
	}
	return known
}

// All returns the main model followed by the others.
func (r *BuildResult) All() []*domain.Model {
	return append([]*domain.Model{r.Main}, r.Others...)
}

// BuildAll creates a model for projectDir and for every other module with a
// content root. It fails when no module owns projectDir.
func BuildAll(project domain.IdeaProject, projectDir string, fingerprint domain.Fingerprint) (*BuildResult, error) {
	projectDir = filepath.Clean(projectDir)
	b := NewTreeBuilder(project)

	var root *domain.IdeaModule
	for i := range project.Modules {
		if dir, ok := project.Modules[i].ModuleDir(); ok && filepath.Clean(dir) == projectDir {
			root = &project.Modules[i]
			break
		}
	}
	if root == nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrTreeAssembly, "project is not a module of its build"), "dir", projectDir)
	}

	mainInfo, err := b.Build(*root)
	if err != nil {
		return nil, err
	}

	result := &BuildResult{
		Project: project,
		Main:    domain.NewModel(mainInfo, mainLookup(project, *root), fingerprint),
	}

	seen := map[string]bool{projectDir: true}
	for _, m := range project.Modules {
		dir, ok := m.ModuleDir()
		if !ok || seen[filepath.Clean(dir)] {
			continue
		}
		seen[filepath.Clean(dir)] = true
		info, err := b.Build(m)
		if err != nil {
			return nil, err
		}
		result.Others = append(result.Others, domain.NewModel(info, mainLookup(project, m), fingerprint))
	}
	return result, nil
}

func mainLookup(project domain.IdeaProject, module domain.IdeaModule) domain.Lookup {
	return domain.NewLookup(
		domain.ModelEntry{Class: domain.IdeaProjectModel, Value: project},
		domain.ModelEntry{Class: domain.IdeaModuleModel, Value: module},
	)
}
