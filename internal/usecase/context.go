package usecase

import (
	"context"

	"go-care-backend/internal/domain"
)

// Identity values arrive two ways: through gin's context, where the auth
// middleware stores them under string keys, or through a plain context with
// typed keys. Look up both.

func ctxUserID(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(string(domain.KeyUserID)).(string); ok && v != "" {
		return v, true
	}
	if v, ok := ctx.Value(domain.KeyUserID).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

func ctxUserRole(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(string(domain.KeyUserRole)).(string); ok && v != "" {
		return v, true
	}
	if v, ok := ctx.Value(domain.KeyUserRole).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
