// Package catalog defines the container tree and the traversal and mutation
// operations the rest of the tool is built on.
//
// All lookups are case-sensitive. Callers collecting user input are expected
// to pass names through Normalize first; the core never normalizes on its
// own, so a mixed-case name that was stored normalized will simply not match.
package catalog

import "strings"

// Object is a leaf item stored inside exactly one container's object list.
type Object struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Container is a named node in the catalog tree. Objects and child
// containers keep insertion order; that order is also the traversal order.
type Container struct {
	Name       string       `json:"name"`
	Objects    []*Object    `json:"objects"`
	Containers []*Container `json:"containers"`
}

// NewRoot returns an empty root container with the given name.
func NewRoot(name string) *Container {
	return &Container{
		Name:       name,
		Objects:    make([]*Object, 0),
		Containers: make([]*Container, 0),
	}
}

// Normalize lowercases and trims a user-supplied name. It is applied at the
// input boundary (shell, CLI flags, MCP arguments), never inside the tree
// operations themselves.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ---------------------------------------------------------------------------
// Queries
//
// Every query walks the tree depth-first, checking a node's objects before
// descending into its child containers, and stops at the first match. When
// names repeat, only the first occurrence under that order is ever seen.
// ---------------------------------------------------------------------------

// FindObjectWithPath locates the first object named name and returns it along
// with its location path. The path is built as the recursion unwinds and is
// therefore ordered from the object's immediate parent out to the root;
// callers reverse it for root-to-leaf display.
func FindObjectWithPath(root *Container, name string) (*Object, []string, bool) {
	for _, obj := range root.Objects {
		if obj.Name == name {
			return obj, []string{root.Name}, true
		}
	}
	for _, child := range root.Containers {
		if obj, path, ok := FindObjectWithPath(child, name); ok {
			return obj, append(path, root.Name), true
		}
	}
	return nil, nil, false
}

// FindObject locates the first object named name and returns a live handle to
// it, so the caller can edit it in place.
func FindObject(root *Container, name string) (*Object, bool) {
	for _, obj := range root.Objects {
		if obj.Name == name {
			return obj, true
		}
	}
	for _, child := range root.Containers {
		if obj, ok := FindObject(child, name); ok {
			return obj, true
		}
	}
	return nil, false
}

// FindContainer locates the first container named name, the root included.
func FindContainer(root *Container, name string) (*Container, bool) {
	if root.Name == name {
		return root, true
	}
	for _, child := range root.Containers {
		if c, ok := FindContainer(child, name); ok {
			return c, true
		}
	}
	return nil, false
}

// ---------------------------------------------------------------------------
// Mutations
// ---------------------------------------------------------------------------

// DeleteObject removes the first object named name from whichever container
// holds it. Exactly one occurrence is removed even if duplicates exist
// elsewhere in the tree. Reports whether a removal happened.
func DeleteObject(root *Container, name string) bool {
	for i, obj := range root.Objects {
		if obj.Name == name {
			root.Objects = append(root.Objects[:i], root.Objects[i+1:]...)
			return true
		}
	}
	for _, child := range root.Containers {
		if DeleteObject(child, name) {
			return true
		}
	}
	return false
}

// ModifyObject renames and/or recategorizes the first object named name.
// A blank newName or newCategory leaves the corresponding attribute
// unchanged, so calling with both blank is a no-op that still reports true
// when the object exists. Reports whether the object was found.
func ModifyObject(root *Container, name, newName, newCategory string) bool {
	obj, ok := FindObject(root, name)
	if !ok {
		return false
	}
	if newName != "" {
		obj.Name = newName
	}
	if newCategory != "" {
		obj.Category = newCategory
	}
	return true
}

// AddObject appends obj to the container's object list.
func (c *Container) AddObject(obj *Object) {
	c.Objects = append(c.Objects, obj)
}

// AddContainer creates an empty child container named name, appends it to the
// container's child list, and returns it.
func (c *Container) AddContainer(name string) *Container {
	child := NewRoot(name)
	c.Containers = append(c.Containers, child)
	return child
}

// ---------------------------------------------------------------------------
// Whole-tree helpers
// ---------------------------------------------------------------------------

// Walk visits every object in the tree in traversal order, calling fn with
// the object and its root-to-leaf location path. The path slice is reused
// between calls; fn must copy it if it wants to keep it.
func Walk(root *Container, fn func(obj *Object, path []string)) {
	walk(root, []string{root.Name}, fn)
}

func walk(node *Container, path []string, fn func(obj *Object, path []string)) {
	for _, obj := range node.Objects {
		fn(obj, path)
	}
	for _, child := range node.Containers {
		walk(child, append(path, child.Name), fn)
	}
}

// Count returns the total number of objects in the tree.
func Count(root *Container) int {
	n := len(root.Objects)
	for _, child := range root.Containers {
		n += Count(child)
	}
	return n
}

// Equal reports structural equality: same names, objects, nesting and order.
func Equal(a, b *Container) bool {
	if a.Name != b.Name || len(a.Objects) != len(b.Objects) || len(a.Containers) != len(b.Containers) {
		return false
	}
	for i, obj := range a.Objects {
		if *obj != *b.Objects[i] {
			return false
		}
	}
	for i, child := range a.Containers {
		if !Equal(child, b.Containers[i]) {
			return false
		}
	}
	return true
}
