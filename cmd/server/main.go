package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/stalexsm/pas/config"
	applogger "github.com/stalexsm/pas/pkg/logger"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:           "pas",
		Short:         "PAS 生产记录管理后端",
		SilenceUsage:  true,
		SilenceErrors: true,
		// 无子命令时启动 HTTP 服务
		RunE: runServe,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "配置文件路径（默认 ./config/config.yaml 或 ./config.yaml）")

	root.AddCommand(newServeCommand())
	root.AddCommand(newMigrateCommand())
	root.AddCommand(newCreateUserCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(1)
	}
}

// setup 加载配置并初始化日志
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("加载配置失败: %w", err)
	}

	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("初始化日志失败: %w", err)
	}
	return cfg, logger, nil
}
