package health

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wen89126-oss/lab-compound-db/pkg/middleware/db"
	"github.com/wen89126-oss/lab-compound-db/pkg/middleware/redis"
)

var errNotInitialized = errors.New("not initialized")

// Health is the flat probe container healthchecks hit.
func Health(g *gin.Context) {
	g.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Live reports only that the process is up.
func Live(g *gin.Context) {
	g.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready verifies the two dependencies a compound request can touch: the
// postgres compound store and the redis holding delete-confirmation tokens.
func Ready(g *gin.Context) {
	checks := gin.H{}
	healthy := true

	probe := func(name string, check func() error) {
		if err := check(); err != nil {
			checks[name] = "unhealthy"
			healthy = false
			return
		}
		checks[name] = "ok"
	}

	probe("compound_store", func() error {
		ds := db.DB()
		if ds == nil {
			return errNotInitialized
		}
		sqlDB, err := ds.DBIns().DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(g.Request.Context())
	})

	probe("confirm_tokens", func() error {
		rc := redis.GetClient()
		if rc == nil {
			return errNotInitialized
		}
		return rc.Ping(g.Request.Context()).Err()
	})

	status := http.StatusOK
	msg := "ready"
	if !healthy {
		status = http.StatusServiceUnavailable
		msg = "not_ready"
	}

	g.JSON(status, gin.H{
		"status": msg,
		"checks": checks,
	})
}
