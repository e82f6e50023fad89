package parse

import (
	"time"

	"github.com/google/uuid"

	"nl-command-parser/internal/intent"
	"nl-command-parser/internal/metadata"
	"nl-command-parser/internal/temporal"
)

// --- Input ---

type ProcessInput struct {
	Text string
	// ReferenceDate anchors all relative temporal expressions. The zero
	// value means "now" in the reference date's own location.
	ReferenceDate time.Time
}

// --- Output ---

// ParseResult is the complete interpretation of one clause.
type ParseResult struct {
	ID            uuid.UUID
	OriginalText  string
	Language      string
	Title         string
	Intent        intent.Intent
	Temporal      temporal.Context
	Metadata      []metadata.Token
	Ambiguity     intent.Ambiguity
	ReferenceDate time.Time
}

type ProcessOutput struct {
	Results []ParseResult
}
