package compound

import (
	"context"
	"errors"

	code "github.com/wen89126-oss/lab-compound-db/pkg/common/code"
	db "github.com/wen89126-oss/lab-compound-db/pkg/middleware/db"
	logger "github.com/wen89126-oss/lab-compound-db/pkg/middleware/logger"
	model "github.com/wen89126-oss/lab-compound-db/pkg/model"
	repo "github.com/wen89126-oss/lab-compound-db/pkg/repo"
)

type compoundImpl struct {
	*db.Datastore
}

func NewCompoundRepo() repo.CompoundRepo {
	return &compoundImpl{Datastore: db.DB()}
}

// busyOr maps a pool-wait timeout onto the retryable busy error; anything else
// keeps its store-failure code.
func busyOr(err error, fallback *code.ErrCode) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return code.StoreBusyErr.WithErr(err)
	}
	return fallback.WithErr(err)
}

func (r *compoundImpl) Create(ctx context.Context, c *model.Compound) error {
	ctx, cancel := r.WithAcquireTimeout(ctx)
	defer cancel()

	if err := r.DBWithContext(ctx).Create(c).Error; err != nil {
		logger.Errorf(ctx, "CreateCompound err: %+v", err)
		return busyOr(err, code.CreateDataErr)
	}
	return nil
}

func (r *compoundImpl) DeleteByID(ctx context.Context, id int64) error {
	ctx, cancel := r.WithAcquireTimeout(ctx)
	defer cancel()

	// Deleting an absent id affects zero rows, which is the intended no-op.
	if err := r.DBWithContext(ctx).Where("id = ?", id).Delete(&model.Compound{}).Error; err != nil {
		logger.Errorf(ctx, "DeleteCompound id=%d err: %+v", id, err)
		return busyOr(err, code.DeleteDataErr)
	}
	return nil
}

func (r *compoundImpl) Scan(ctx context.Context, q repo.ScanQuery) ([]*model.Compound, error) {
	ctx, cancel := r.WithAcquireTimeout(ctx)
	defer cancel()

	stmt := r.DBWithContext(ctx).Model(&model.Compound{})
	if q.Location != nil {
		stmt = stmt.Where("location = ?", *q.Location)
	}
	if q.LidColor != nil {
		stmt = stmt.Where("lid_color = ?", *q.LidColor)
	}

	list := make([]*model.Compound, 0, 64)
	if err := stmt.Order("id DESC").Find(&list).Error; err != nil {
		logger.Errorf(ctx, "ScanCompounds err: %+v", err)
		return nil, busyOr(err, code.QueryRecordErr)
	}
	return list, nil
}
