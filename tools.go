//go:build tools

package main

// Build-time tooling kept on the module graph so `go generate` works from a
// clean checkout. swag regenerates docs/swagger.json from handler annotations.
import (
	_ "github.com/swaggo/swag/cmd/swag"
)
