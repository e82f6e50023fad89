package parse

import (
	"context"

	"nl-command-parser/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Process interprets one natural-language utterance against a reference
	// date and returns one result per command clause found in it.
	Process(ctx context.Context, sc model.Scope, input ProcessInput) (ProcessOutput, error)
}
