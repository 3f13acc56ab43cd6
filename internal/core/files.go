package core

import (
	"fmt"
	"io"
)

// indentStep is added to the prefix for every level below the root.
const indentStep = "   "

type Node interface {
	Name() string
	Render(w io.Writer, indent string)
}

type File struct {
	name string
}

type Dir struct {
	name     string
	children []Node
}

func NewFile(name string) *File {
	return &File{name: name}
}

func NewDir(name string) *Dir {
	return &Dir{
		name:     name,
		children: []Node{},
	}
}

func (f *File) Name() string {
	return f.name
}

func (f *File) Render(w io.Writer, indent string) {
	_, _ = fmt.Fprintf(w, "%sFile: %s\n", indent, f.name)
}

// Clone returns a new File with the same name. The copy shares nothing
// with f.
func (f *File) Clone() *File {
	clone := *f
	return &clone
}

func (d *Dir) Name() string {
	return d.name
}

// Add appends child after any existing children. The caller must not add a
// node to its own subtree.
func (d *Dir) Add(child Node) {
	d.children = append(d.children, child)
}

func (d *Dir) Children() []Node {
	return d.children
}

func (d *Dir) Render(w io.Writer, indent string) {
	_, _ = fmt.Fprintf(w, "%sFolder: %s\n", indent, d.name)
	for _, child := range d.children {
		child.Render(w, indent+indentStep)
	}
}
