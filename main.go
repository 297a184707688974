package main

import (
	"github.com/indexly/subgraph-store/cmd"
)

func main() {
	cmd.Execute()
}
