package api

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/wen89126-oss/lab-compound-db/internal/config"
	"github.com/wen89126-oss/lab-compound-db/pkg/middleware/db"
	migrate "github.com/wen89126-oss/lab-compound-db/pkg/model/migrate"
)

func NewMigrate() *cobra.Command {
	return &cobra.Command{
		Use:          "migrate",
		Long:         "Create the compound table and its indexes",
		SilenceUsage: true,
		PreRunE:      initMigrate,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return migrate.Table(cmd.Root().Context())
		},
		PostRunE: func(cmd *cobra.Command, _ []string) error {
			db.ClosePostgres(cmd.Context())
			return nil
		},
	}
}

func initMigrate(cmd *cobra.Command, _ []string) error {
	conf := config.Global()
	db.InitPostgres(cmd.Context(), &db.Config{
		Host: conf.Database.Host, Port: conf.Database.Port,
		User: conf.Database.User, PW: conf.Database.Password,
		DBName:         conf.Database.Name,
		MaxOpenConns:   conf.Database.MaxOpenConns,
		MaxIdleConns:   conf.Database.MaxIdleConns,
		AcquireTimeout: time.Duration(conf.Database.AcquireTimeout) * time.Second,
		LogConf:        db.LogConf{Level: conf.Log.LogLevel},
	})
	return nil
}
