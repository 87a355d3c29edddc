package domain

import "path/filepath"

// SourceRoot is a source directory with a display name that is unique among its siblings.
type SourceRoot struct {
	Dir  string `json:"dir"`
	Name string `json:"name"`
}

type namedDir struct {
	index   int
	base    string
	hasBase bool
	dir     string
}

// NameSourceRoots gives every directory the shortest unique name it can get.
// Clashing names are prefixed with their parent directory names ("main/java",
// "test/java") until they differ or no parent is left. The result keeps the
// input order.
func NameSourceRoots(dirs []string) []SourceRoot {
	if len(dirs) == 1 {
		return []SourceRoot{{Dir: dirs[0], Name: filepath.Base(dirs[0])}}
	}

	byName := make(map[string][]namedDir, len(dirs))
	for i, dir := range dirs {
		base, ok := parentOf(dir)
		byName[filepath.Base(dir)] = append(byName[filepath.Base(dir)], namedDir{
			index: i, base: base, hasBase: ok, dir: dir,
		})
	}

	for changed := true; changed; {
		changed = false
		names := make([]string, 0, len(byName))
		for name := range byName {
			names = append(names, name)
		}

		for _, name := range names {
			group, ok := byName[name]
			if !ok {
				continue
			}
			renameable := 0
			for _, d := range group {
				if d.hasBase {
					renameable++
				}
			}
			if renameable <= 1 {
				continue
			}

			delete(byName, name)
			for _, d := range group {
				if !d.hasBase {
					byName[name] = append(byName[name], d)
					continue
				}
				prefix := filepath.Base(d.base)
				if prefix == string(filepath.Separator) {
					prefix = ""
				}
				newName := prefix + "/" + name
				parent, hasParent := parentOf(d.base)
				byName[newName] = append(byName[newName], namedDir{
					index: d.index, base: parent, hasBase: hasParent, dir: d.dir,
				})
			}
			changed = true
		}
	}

	result := make([]SourceRoot, len(dirs))
	for name, group := range byName {
		for _, d := range group {
			result[d.index] = SourceRoot{Dir: d.dir, Name: name}
		}
	}
	return result
}

func parentOf(dir string) (string, bool) {
	parent := filepath.Dir(dir)
	if parent == dir || parent == "." {
		return "", false
	}
	return parent, true
}
