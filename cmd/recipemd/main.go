package main

import (
	"github.com/recipemd/recipemd/pkg/cli"
)

func main() {
	cli.Execute()
}
