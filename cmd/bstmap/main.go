package main

import "github.com/c9s/bstmap/pkg/cmd"

func main() {
	cmd.Execute()
}
