package main

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/stalexsm/pas/pkg/database"
)

func newMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "数据库迁移",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "执行全部未应用的迁移",
		RunE: func(_ *cobra.Command, _ []string) error {
			return withSQLDB(database.RunMigrations)
		},
	})

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "回滚迁移",
		RunE: func(_ *cobra.Command, _ []string) error {
			if steps <= 0 {
				return fmt.Errorf("--steps 必须大于 0")
			}
			return withSQLDB(func(db *sql.DB, logger *zap.Logger) error {
				return database.RollbackMigrations(db, steps, logger)
			})
		},
	}
	down.Flags().IntVar(&steps, "steps", 1, "回滚的步数")
	cmd.AddCommand(down)

	return cmd
}

// withSQLDB 建立数据库连接后执行 fn
func withSQLDB(fn func(db *sql.DB, logger *zap.Logger) error) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	db, err := database.NewDB(&cfg.Database, cfg.Log.Level, logger)
	if err != nil {
		return fmt.Errorf("数据库连接失败: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	return fn(sqlDB, logger)
}
