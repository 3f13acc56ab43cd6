package main

import (
	"io"
	"os"

	"foldertree/internal/core"
)

func main() {
	run(os.Stdout)
}

func run(w io.Writer) {
	filetree := core.BuildSampleTree()
	filetree.Print(w, core.ConsolePrinter)
}
