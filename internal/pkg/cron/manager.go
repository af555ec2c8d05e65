package cron

import (
	"Ronghua/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

const SessionSweepSpec = "@every 1m"

type Manager struct {
	engine          *cron.Cron
	sessionSweepJob *job.SessionSweepJob
}

// NewCronManager sessionSweepJob 为 nil 时不注册清理任务
func NewCronManager(sessionSweepJob *job.SessionSweepJob) *Manager {
	return &Manager{
		engine:          cron.New(cron.WithSeconds()),
		sessionSweepJob: sessionSweepJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if s.sessionSweepJob != nil {
		if _, err := s.engine.AddJob(SessionSweepSpec, s.sessionSweepJob); err != nil {
			return err
		}
	}
	return nil
}

func (s *Manager) Entries() int {
	return len(s.engine.Entries())
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	<-s.engine.Stop().Done()
}
