package core

import "io"

type Filetree struct {
	Root Node
}

// TreeStats summarizes the shape of a tree. Depth is the deepest level below
// the root, so a lone root has depth 0.
type TreeStats struct {
	Files   int `json:"files"`
	Folders int `json:"folders"`
	Depth   int `json:"depth"`
}

func (s TreeStats) Nodes() int {
	return s.Files + s.Folders
}

// BuildSampleTree assembles the demonstration tree: a subfolder holding a
// document and its clone, followed by an image, all under Root.
func BuildSampleTree() *Filetree {
	document := NewFile("document.txt")
	documentCopy := document.Clone()
	image := NewFile("image.png")

	root := NewDir("Root")
	subFolder := NewDir("SubFolder")

	subFolder.Add(document)
	subFolder.Add(documentCopy)

	root.Add(subFolder)
	root.Add(image)

	return &Filetree{Root: root}
}

func (ft *Filetree) Print(w io.Writer, p Printer) {
	p.Print(w, ft.Root)
}

// FlattenTree returns every node in the order they are rendered.
func (ft *Filetree) FlattenTree() []Node {
	var nodes []Node
	walk(ft.Root, 0, func(node Node, _ int) {
		nodes = append(nodes, node)
	})
	return nodes
}

func (ft *Filetree) Stats() TreeStats {
	var stats TreeStats
	walk(ft.Root, 0, func(node Node, depth int) {
		switch node.(type) {
		case *Dir:
			stats.Folders++
		default:
			stats.Files++
		}
		if depth > stats.Depth {
			stats.Depth = depth
		}
	})
	return stats
}

func walk(node Node, depth int, visit func(Node, int)) {
	if node == nil {
		return
	}
	visit(node, depth)
	if dir, ok := node.(*Dir); ok {
		for _, child := range dir.children {
			walk(child, depth+1, visit)
		}
	}
}
