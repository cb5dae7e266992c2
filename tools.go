//go:build tools
// +build tools

// Dependencias de herramientas: swag genera docs/swagger.json (swag init -g cmd/api/main.go).
package tools

import (
	_ "github.com/swaggo/swag/cmd/swag"
)
