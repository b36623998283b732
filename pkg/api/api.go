// Package api defines the contract of the plant catalog backend client.
// The implementation over HTTP lives in internal/ioapi.
package api

import (
	"context"

	"github.com/gnames/acervo/pkg/plant"
)

// Client issues requests against the REST backend. Every method maps to
// exactly one HTTP call. Failures are returned once, nothing is retried.
type Client interface {
	// ListAll returns the whole catalog in the order sent by the backend.
	// GET {base}/plantas/
	ListAll(ctx context.Context) ([]plant.Plant, error)

	// Get returns one record.
	// GET {base}/plantas/{id}
	Get(ctx context.Context, id plant.ID) (plant.Plant, error)

	// Create adds a record, the backend assigns its identifier.
	// POST {base}/plantas/
	Create(ctx context.Context, in plant.Input) (plant.Plant, error)

	// Update replaces all fields of an existing record.
	// PUT {base}/plantas/{id}
	Update(ctx context.Context, id plant.ID, in plant.Input) (plant.Plant, error)

	// Remove deletes a record.
	// DELETE {base}/plantas/{id}
	Remove(ctx context.Context, id plant.ID) error
}
