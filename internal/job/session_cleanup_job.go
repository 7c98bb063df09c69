// Package job 后台定时任务
package job

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/stalexsm/pas/internal/service"
)

// SessionCleanupJob 清理过期会话
type SessionCleanupJob struct {
	authSvc service.AuthService
	timeout time.Duration
	logger  *zap.Logger
}

// NewSessionCleanupJob 创建会话清理任务
func NewSessionCleanupJob(authSvc service.AuthService, timeout time.Duration, logger *zap.Logger) *SessionCleanupJob {
	return &SessionCleanupJob{authSvc: authSvc, timeout: timeout, logger: logger}
}

// Run 实现 cron.Job
func (j *SessionCleanupJob) Run() {
	ctx := context.Background()
	if j.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.timeout)
		defer cancel()
	}

	n, err := j.authSvc.PurgeExpiredSessions(ctx)
	if err != nil {
		j.logger.Warn("清理过期会话失败", zap.Error(err))
		return
	}
	if n > 0 {
		j.logger.Info("已清理过期会话", zap.Int64("count", n))
	}
}

// Scheduler 定时任务调度器
type Scheduler struct {
	cron   *cron.Cron
	logger *zap.Logger
}

// NewScheduler 创建调度器，任务在 UTC 时区下执行
func NewScheduler(logger *zap.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(cron.WithLocation(time.UTC), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger: logger,
	}
}

// Add 注册任务，spec 为空时跳过
func (s *Scheduler) Add(name, spec string, j cron.Job) error {
	if spec == "" {
		s.logger.Info("定时任务已禁用", zap.String("job", name))
		return nil
	}
	if _, err := s.cron.AddJob(spec, j); err != nil {
		return fmt.Errorf("注册定时任务 %s 失败: %w", name, err)
	}
	s.logger.Info("定时任务已注册", zap.String("job", name), zap.String("spec", spec))
	return nil
}

// Start 启动调度
func (s *Scheduler) Start() { s.cron.Start() }

// Stop 停止调度并等待运行中的任务结束
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// Entries 已注册的任务数量
func (s *Scheduler) Entries() int { return len(s.cron.Entries()) }
