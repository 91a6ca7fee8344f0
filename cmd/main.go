package main

import (
	"github.com/chtools/blocksmith/pkg/cmd"
)

func main() {
	cmd.Execute()
}
