package main

import (
	"embed"

	"github.com/mfarouk/teller/cmd"
)

//go:embed migrations
var migrationsFS embed.FS

func main() {
	cmd.Execute(migrationsFS)
}
