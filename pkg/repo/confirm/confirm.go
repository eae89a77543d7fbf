package confirm

import (
	"context"
	"strconv"
	"time"

	uuid "github.com/gofrs/uuid/v5"
	r "github.com/redis/go-redis/v9"

	code "github.com/wen89126-oss/lab-compound-db/pkg/common/code"
	logger "github.com/wen89126-oss/lab-compound-db/pkg/middleware/logger"
	redis "github.com/wen89126-oss/lab-compound-db/pkg/middleware/redis"
	repo "github.com/wen89126-oss/lab-compound-db/pkg/repo"
)

const keyPrefix = "labdb:delete:confirm:"

type confirmImpl struct {
	client *r.Client
}

func NewConfirmTokenRepo() repo.ConfirmTokenRepo {
	return &confirmImpl{client: redis.GetClient()}
}

func (c *confirmImpl) Issue(ctx context.Context, id int64, ttl time.Duration) (string, error) {
	token := uuid.Must(uuid.NewV4()).String()

	err := c.client.Set(ctx, keyPrefix+token, strconv.FormatInt(id, 10), ttl).Err()
	if err != nil {
		logger.Errorf(ctx, "issue delete token id=%d err: %+v", id, err)
		return "", code.CreateDataErr.WithErr(err)
	}
	return token, nil
}

func (c *confirmImpl) Consume(ctx context.Context, token string) (int64, error) {
	// GETDEL makes consumption one-shot: a second confirm with the same token
	// behaves exactly like an expired one.
	val, err := c.client.GetDel(ctx, keyPrefix+token).Result()
	if err == r.Nil {
		return 0, code.ConfirmExpiredErr
	}
	if err != nil {
		logger.Errorf(ctx, "consume delete token err: %+v", err)
		return 0, code.QueryRecordErr.WithErr(err)
	}

	id, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, code.ConfirmExpiredErr.WithErr(err)
	}
	return id, nil
}
