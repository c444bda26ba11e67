//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// Mocks are generated with github.com/matryer/moq and committed, so moq
// is not a module dependency. Migrations run through the goose tool
// directive in go.mod.
