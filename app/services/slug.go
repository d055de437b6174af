package services

import (
	"context"
	"fmt"

	"github.com/gosimple/slug"
)

// SlugExistsFunc reports whether a candidate slug is already taken within
// the entity's table.
type SlugExistsFunc func(ctx context.Context, slug string) (bool, error)

// AssignSlug derives a URL-safe slug from name and resolves collisions by
// appending -1, -2, ... until an unused value is found. It is called once,
// on first persistence; an already-assigned slug is never recomputed, so
// renaming an entity leaves its slug alone.
func AssignSlug(ctx context.Context, name string, exists SlugExistsFunc) (string, error) {
	base := slug.Make(name)
	candidate := base
	for counter := 1; ; counter++ {
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check slug %q: %w", candidate, err)
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, counter)
	}
}
