package logger

import (
	"Ronghua/internal/api/config"
	"io"
	log "log/slog"
	"net"
	"os"
	"strings"
)

var LogWriter io.Writer = os.Stdout

// InitLogger 设置默认 slog，RemoteAddr 可用时日志同时推送到远端收集器
func InitLogger(cfg config.LoggerConfig) {
	level := parseLevel(cfg.Level)
	hStdout := log.NewJSONHandler(os.Stdout, &log.HandlerOptions{Level: level})

	var finalHandler log.Handler = hStdout

	if cfg.RemoteAddr != "" {
		conn, err := net.Dial("tcp", cfg.RemoteAddr)
		if err == nil {
			hRemote := log.NewJSONHandler(conn, &log.HandlerOptions{Level: level}).
				WithAttrs([]log.Attr{
					log.String("target_index", cfg.Index),
					log.String("log_token", cfg.Token),
				})

			finalHandler = NewTeeHandler(hStdout, NewRemoteFilterHandler(hRemote))
			LogWriter = conn
		} else {
			log.Warn("Failed to connect to remote log collector, logging to stdout only", "err", err)
		}
	}

	log.SetDefault(log.New(&ContextHandler{finalHandler}))
}

func parseLevel(s string) log.Level {
	switch strings.ToLower(s) {
	case "debug":
		return log.LevelDebug
	case "warn":
		return log.LevelWarn
	case "error":
		return log.LevelError
	default:
		return log.LevelInfo
	}
}
