package core

import (
	"bytes"
	"strings"
	"testing"
)

const sampleOutput = `=== Start Printing Structure ===
Folder: Root
   Folder: SubFolder
      File: document.txt
      File: document.txt
   File: image.png
=== End Printing Structure ===
`

// Helpers

// buildNestedTree creates a chain of folders depth levels deep, each holding
// one file, and returns the root.
func buildNestedTree(t *testing.T, depth int) *Dir {
	t.Helper()
	root := NewDir("level0")
	current := root
	for i := 1; i <= depth; i++ {
		next := NewDir("level" + strings.Repeat("x", i))
		current.Add(next)
		current.Add(NewFile("file.txt"))
		current = next
	}
	return root
}

func assertStats(t *testing.T, stats TreeStats, files, folders, depth int) {
	t.Helper()
	if stats.Files != files {
		t.Errorf("expected %d files, got %d", files, stats.Files)
	}
	if stats.Folders != folders {
		t.Errorf("expected %d folders, got %d", folders, stats.Folders)
	}
	if stats.Depth != depth {
		t.Errorf("expected depth %d, got %d", depth, stats.Depth)
	}
}

// Tests

func TestBuildSampleTree(t *testing.T) {
	t.Run("prints the expected structure", func(t *testing.T) {
		var buf bytes.Buffer
		BuildSampleTree().Print(&buf, ConsolePrinter)

		if buf.String() != sampleOutput {
			t.Errorf("expected output:\n%s\ngot:\n%s", sampleOutput, buf.String())
		}
	})

	t.Run("root layout", func(t *testing.T) {
		tree := BuildSampleTree()

		root, ok := tree.Root.(*Dir)
		if !ok {
			t.Fatalf("expected root to be a dir, got %T", tree.Root)
		}
		if len(root.Children()) != 2 {
			t.Fatalf("expected 2 children, got %d", len(root.Children()))
		}

		sub := root.Children()[0].(*Dir)
		first := sub.Children()[0].(*File)
		second := sub.Children()[1].(*File)
		if first == second {
			t.Error("expected the cloned document to be a separate node")
		}
		if first.Name() != second.Name() {
			t.Errorf("expected clone name %q, got %q", first.Name(), second.Name())
		}
	})

	t.Run("stats", func(t *testing.T) {
		assertStats(t, BuildSampleTree().Stats(), 3, 2, 2)
	})
}

func TestFiletree_FlattenTree(t *testing.T) {
	t.Run("pre-order matches render order", func(t *testing.T) {
		nodes := BuildSampleTree().FlattenTree()

		var names []string
		for _, n := range nodes {
			names = append(names, n.Name())
		}
		got := strings.Join(names, ",")
		expected := "Root,SubFolder,document.txt,document.txt,image.png"
		if got != expected {
			t.Errorf("expected %s, got %s", expected, got)
		}
	})

	t.Run("nil root is empty", func(t *testing.T) {
		tree := &Filetree{}

		if nodes := tree.FlattenTree(); len(nodes) != 0 {
			t.Errorf("expected no nodes, got %d", len(nodes))
		}
		assertStats(t, tree.Stats(), 0, 0, 0)
	})

	t.Run("single file root", func(t *testing.T) {
		tree := &Filetree{Root: NewFile("only.txt")}

		assertStats(t, tree.Stats(), 1, 0, 0)
	})
}

func TestFiletree_RenderInvariants(t *testing.T) {
	trees := map[string]*Filetree{
		"sample":   BuildSampleTree(),
		"nested":   {Root: buildNestedTree(t, 6)},
		"empty":    {Root: NewDir("empty")},
		"one leaf": {Root: NewFile("leaf")},
	}

	for name, tree := range trees {
		t.Run(name+" renders one line per node", func(t *testing.T) {
			var buf bytes.Buffer
			tree.Root.Render(&buf, "")

			lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
			if len(lines) != len(tree.FlattenTree()) {
				t.Errorf("expected %d lines, got %d", len(tree.FlattenTree()), len(lines))
			}
		})

		t.Run(name+" indents three spaces per level", func(t *testing.T) {
			var buf bytes.Buffer
			tree.Root.Render(&buf, "")
			lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")

			i := 0
			walk(tree.Root, 0, func(node Node, depth int) {
				expected := strings.Repeat(" ", 3*depth)
				if !strings.HasPrefix(lines[i], expected) || strings.HasPrefix(lines[i], expected+" ") {
					t.Errorf("line %d %q: expected indent of %d spaces", i, lines[i], 3*depth)
				}
				i++
			})
		})
	}
}
