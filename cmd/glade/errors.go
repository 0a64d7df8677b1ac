package main

import (
	"errors"
	"fmt"

	"github.com/alexisbeaulieu97/glade/internal/config"
	gladeerrors "github.com/alexisbeaulieu97/glade/pkg/errors"
)

// Exit codes: 1 for snapshot drift, 2 for config problems, 3 for anything
// else.
const (
	exitDrift  = 1
	exitConfig = 2
	exitOther  = 3
)

var errSnapshotMismatch = errors.New("rendered pages differ from golden files")

func exitCode(err error) int {
	var parseErr *gladeerrors.ParseError
	var validationErr *gladeerrors.ValidationError
	switch {
	case errors.Is(err, errSnapshotMismatch):
		return exitDrift
	case errors.As(err, &parseErr), errors.As(err, &validationErr):
		return exitConfig
	default:
		return exitOther
	}
}

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error { return e.cause }

// loadConfig parses and validates the gallery config at path.
func loadConfig(operation, path string) (*config.Config, error) {
	cfg, err := config.ParseConfig(path)
	if err != nil {
		return nil, newCommandError(operation, "loading "+path, err, "Run 'glade validate "+path+"' for details.")
	}
	return cfg, nil
}
