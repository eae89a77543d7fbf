package repo

import (
	"context"

	model "github.com/wen89126-oss/lab-compound-db/pkg/model"
)

// ScanQuery carries the two filters the store can push down as exact-match
// predicates. Keyword matching stays in the query layer: a CAS-prefix versus
// substring decision does not map onto a single ILIKE.
type ScanQuery struct {
	Location *model.Location
	LidColor *model.LidColor
}

// CompoundRepo is the durable record store. Create assigns ID and CreatedAt;
// DeleteByID is idempotent; Scan returns live committed state ordered newest
// first (id desc) so the caller's stable CAS sort keeps insertion order as the
// tie-break. No result is ever cached across calls.
type CompoundRepo interface {
	Create(ctx context.Context, c *model.Compound) error
	DeleteByID(ctx context.Context, id int64) error
	Scan(ctx context.Context, q ScanQuery) ([]*model.Compound, error)
}
