//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// Tools will be added as they are needed:
// - github.com/matryer/moq (Phase 3)
// - github.com/sqlc-dev/sqlc/cmd/sqlc (Phase 2)
// - github.com/99designs/gqlgen (Phase 9)
// - github.com/pressly/goose/v3/cmd/goose (Phase 2)
