package compound

import (
	"context"
	"io"
)

// Service is the compound inventory business surface. All methods take
// context.Context; the web layer passes the request context straight through.
type Service interface {
	// Insert validates and persists one record, returning the assigned id.
	Insert(ctx context.Context, req *InsertReq) (*InsertResp, error)
	// Search runs keyword + filter matching over live store state and
	// returns a deterministically ordered result.
	Search(ctx context.Context, req *SearchReq) (*SearchResp, error)
	// ExportCSV streams the same result set as a CSV document.
	ExportCSV(ctx context.Context, req *SearchReq, w io.Writer) error
	// RequestDelete issues a short-lived confirmation token for id.
	RequestDelete(ctx context.Context, req *DeleteRequestReq) (*DeleteRequestResp, error)
	// ConfirmDelete consumes the token and performs the idempotent delete.
	ConfirmDelete(ctx context.Context, req *DeleteConfirmReq) error
	// QueryCAS looks up basic compound properties by CAS number.
	QueryCAS(ctx context.Context, req *CasReq) (*CasResp, error)
	// Options returns the enumerated form option sets.
	Options(ctx context.Context) *OptionsResp
}
