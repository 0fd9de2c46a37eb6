package main

import (
	"github.com/NxPKG/BWPlugins/internal/cli"
)

func main() {
	cli.Execute()
}
