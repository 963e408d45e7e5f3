package main

import (
	"github.com/c9s/cexio/pkg/cmd"
)

func main() {
	cmd.Execute()
}
