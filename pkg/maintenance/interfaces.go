package maintenance

import (
	"context"
)

// Enumerator lists database objects of a kind from the system catalog.
type Enumerator interface {
	// List returns fully-qualified names ordered by schema and object
	// name. A failed catalog query is returned as an error, there is no
	// partial result.
	List(ctx context.Context, kind Kind) ([]QualifiedName, error)
}

// Applier runs the maintenance statement of a kind for every name.
type Applier interface {
	// Apply executes statements one by one. Failures of individual
	// statements are logged and never stop the batch.
	Apply(ctx context.Context, kind Kind, names []QualifiedName)
}

// Housekeeper runs the enabled maintenance phases.
// Config is provided during construction.
type Housekeeper interface {
	// Run enumerates and maintains tables, indexes and materialized
	// views according to the enabled operation flags. It returns an
	// error only when enumeration of at least one kind failed.
	Run(ctx context.Context) error
}
