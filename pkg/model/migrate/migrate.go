package migrate

import (
	"context"

	db "github.com/wen89126-oss/lab-compound-db/pkg/middleware/db"
	model "github.com/wen89126-oss/lab-compound-db/pkg/model"
	utils "github.com/wen89126-oss/lab-compound-db/pkg/utils"
)

func Table(_ context.Context) error {
	return utils.IfErrReturn(func() error {
		return db.DB().DBIns().AutoMigrate(
			&model.Compound{}, // chemical containers
		)
	}, func() error {
		// Newest-first scans back the insertion-order tie-break.
		return db.DB().DBIns().
			Exec(`CREATE INDEX IF NOT EXISTS idx_compound_created_at ON compound (created_at DESC);`).Error
	})
}
