// Package ai wraps the text-generation backends behind a single Generator.
package ai

import (
	"context"
	"fmt"
	"strings"

	"triptalk/pkg/utils"
)

// Generator turns a prompt into a document. Output carries no schema
// guarantee.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeneratorFunc adapts a plain function to Generator.
type GeneratorFunc func(ctx context.Context, prompt string) (string, error)

func (f GeneratorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// checkContent rejects empty documents so callers never store a blank plan.
func checkContent(provider, content string) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("%s: %w", provider, utils.ErrEmptyGeneration)
	}
	return content, nil
}
