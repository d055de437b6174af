package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignSlugCollisionSuffixes(t *testing.T) {
	existing := map[string]bool{}
	exists := func(ctx context.Context, slug string) (bool, error) {
		return existing[slug], nil
	}

	// All three names normalize to the same base and must still get
	// distinct slugs.
	names := []string{"Red Shoes", "red shoes!", "RED   SHOES"}
	want := []string{"red-shoes", "red-shoes-1", "red-shoes-2"}

	for i, name := range names {
		got, err := AssignSlug(context.Background(), name, exists)
		require.NoError(t, err)
		assert.Equal(t, want[i], got)
		existing[got] = true
	}
}

func TestAssignSlugNormalizes(t *testing.T) {
	exists := func(ctx context.Context, slug string) (bool, error) { return false, nil }

	got, err := AssignSlug(context.Background(), "  Éclair  Café!  ", exists)
	require.NoError(t, err)
	assert.Equal(t, "eclair-cafe", got)
}

func TestAssignSlugPropagatesLookupError(t *testing.T) {
	lookupErr := errors.New("db gone")
	exists := func(ctx context.Context, slug string) (bool, error) { return false, lookupErr }

	_, err := AssignSlug(context.Background(), "Red Shoes", exists)
	assert.ErrorIs(t, err, lookupErr)
}
