package service

import (
	"Ronghua/internal/api/dto"
	"Ronghua/internal/pkg/consts"
	"Ronghua/internal/pkg/mongo"
	"Ronghua/internal/pkg/util"
	"context"
	log "log/slog"
)

type OpLogService interface {
	// Record 写入失败只记日志，不影响请求
	Record(ctx context.Context, entry *mongo.OpLog)
	List(ctx context.Context, q dto.ListQuery) (*dto.PageDTO[dto.OpLogDTO], error)
	Enabled() bool
}

type OpLogServiceImpl struct {
	repo mongo.OpLogRepo
}

// NewOpLogService repo 为 nil 时不记录
func NewOpLogService(repo mongo.OpLogRepo) OpLogService {
	return &OpLogServiceImpl{repo: repo}
}

func (s *OpLogServiceImpl) Enabled() bool {
	return s.repo != nil
}

func (s *OpLogServiceImpl) Record(ctx context.Context, entry *mongo.OpLog) {
	if s.repo == nil {
		return
	}
	if err := s.repo.Insert(ctx, entry); err != nil {
		log.WarnContext(ctx, "op log insert failed", "path", entry.Path, "err", err)
	}
}

func (s *OpLogServiceImpl) List(ctx context.Context, q dto.ListQuery) (*dto.PageDTO[dto.OpLogDTO], error) {
	if s.repo == nil {
		return nil, ErrFeatureDisabled
	}
	q.Normalize()
	items, total, err := s.repo.List(ctx, int64(q.PerPage), int64(q.Offset()))
	if err != nil {
		return nil, err
	}
	return toPage(items, total, q, toOpLogDTO), nil
}

func toOpLogDTO(l *mongo.OpLog) dto.OpLogDTO {
	return dto.OpLogDTO{
		ID:        l.ID.Hex(),
		TraceID:   l.TraceID,
		Admin:     l.Admin,
		Method:    l.Method,
		Path:      l.Path,
		Status:    l.Status,
		LatencyMs: l.LatencyMs,
		CreatedAt: util.FormatTime(l.CreatedAt, consts.TimeLayout),
	}
}
