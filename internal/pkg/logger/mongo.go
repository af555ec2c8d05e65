package logger

import (
	"context"
	log "log/slog"
	"time"

	"go.mongodb.org/mongo-driver/event"
)

const (
	MongoSlowThreshold = 200 * time.Millisecond
	mongoCmdMaxLen     = 1000
)

// 驱动自身的心跳与会话命令
var mongoQuietCommands = map[string]bool{
	"hello":       true,
	"isMaster":    true,
	"ping":        true,
	"endSessions": true,
}

// NewMongoMonitor 命令开始只记 debug，成功按耗时区分 info / warn，失败记 error
func NewMongoMonitor(slow time.Duration) *event.CommandMonitor {
	if slow <= 0 {
		slow = MongoSlowThreshold
	}
	return &event.CommandMonitor{
		Started: func(ctx context.Context, evt *event.CommandStartedEvent) {
			if mongoQuietCommands[evt.CommandName] {
				return
			}
			cmd := evt.Command.String()
			if len(cmd) > mongoCmdMaxLen {
				cmd = cmd[:mongoCmdMaxLen] + "...[truncated]"
			}
			log.DebugContext(ctx, "MongoDB Started",
				log.String("command", evt.CommandName),
				log.String("database", evt.DatabaseName),
				log.Int64("request_id", evt.RequestID),
				log.String("cmd_detail", cmd),
			)
		},
		Succeeded: func(ctx context.Context, evt *event.CommandSucceededEvent) {
			if mongoQuietCommands[evt.CommandName] {
				return
			}
			attrs := []any{
				log.String("command", evt.CommandName),
				log.Duration("latency", evt.Duration),
				log.Int64("request_id", evt.RequestID),
			}
			if evt.Duration > slow {
				log.WarnContext(ctx, "MongoDB Slow", attrs...)
				return
			}
			log.InfoContext(ctx, "MongoDB Success", attrs...)
		},
		Failed: func(ctx context.Context, evt *event.CommandFailedEvent) {
			log.ErrorContext(ctx, "MongoDB Error",
				log.String("command", evt.CommandName),
				log.Duration("latency", evt.Duration),
				log.Int64("request_id", evt.RequestID),
				log.Any("err", evt.Failure),
			)
		},
	}
}
