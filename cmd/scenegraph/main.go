package main

import "github.com/katalvlaran/scenegraph/cmd/scenegraph/commands"

func main() {
	commands.Execute()
}
