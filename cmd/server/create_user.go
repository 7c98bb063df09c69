package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/stalexsm/pas/internal/repository"
	"github.com/stalexsm/pas/internal/service"
	"github.com/stalexsm/pas/pkg/database"
)

func newCreateUserCommand() *cobra.Command {
	var email, fio, passwd string

	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "创建 Developer 账号（首次部署初始化）",
		RunE: func(cmd *cobra.Command, _ []string) error {
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

			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Database.AcquireTimeout)
			defer cancel()

			id, err := service.BootstrapDeveloper(ctx, &cfg.Auth, repository.NewRepository(db), email, fio, passwd)
			if err != nil {
				return fmt.Errorf("创建账号失败: %w", err)
			}

			logger.Info("Developer 账号已创建", zap.Int64("id", id), zap.String("email", email))
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "登录邮箱")
	cmd.Flags().StringVar(&fio, "fio", "", "姓名")
	cmd.Flags().StringVar(&passwd, "passwd", "", "初始密码")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("passwd")

	return cmd
}
