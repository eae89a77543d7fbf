package redis

import (
	"context"
	"fmt"

	r "github.com/redis/go-redis/v9"

	"github.com/wen89126-oss/lab-compound-db/pkg/middleware/logger"
)

type Redis struct {
	Host     string
	Port     int
	Password string
	DB       int
}

var redisClient *r.Client

func InitRedis(ctx context.Context, conf *Redis) {
	client := r.NewClient(&r.Options{
		Addr:     fmt.Sprintf("%s:%d", conf.Host, conf.Port),
		Password: conf.Password,
		DB:       conf.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Fatalf(ctx, "init redis fail err: %+v", err)
	}

	redisClient = client
}

func CloseRedis(_ context.Context) {
	if redisClient != nil {
		_ = redisClient.Close()
	}
}

// GetClient returns the shared client, nil before InitRedis.
func GetClient() *r.Client {
	return redisClient
}
