package logger

import (
	"bytes"
	"context"
	"errors"
	log "log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingHandler struct{ log.Handler }

func (failingHandler) Handle(context.Context, log.Record) error { return errors.New("broken pipe") }

func TestRemoteFilterOnlyForwardsTracedRecords(t *testing.T) {
	var remote bytes.Buffer
	logger := log.New(&ContextHandler{NewRemoteFilterHandler(log.NewJSONHandler(&remote, nil))})

	logger.Info("startup")
	assert.Empty(t, remote.String())

	logger.InfoContext(WithTraceID(context.Background(), "abc"), "request")
	assert.Contains(t, remote.String(), `"trace_id":"abc"`)
}

func TestTeeHandlerRespectsLevelsAndKeepsGoing(t *testing.T) {
	var info, errs bytes.Buffer
	infoH := log.NewJSONHandler(&info, &log.HandlerOptions{Level: log.LevelInfo})
	errH := log.NewJSONHandler(&errs, &log.HandlerOptions{Level: log.LevelError})
	tee := NewTeeHandler(failingHandler{infoH}, errH)

	assert.True(t, tee.Enabled(context.Background(), log.LevelInfo))
	assert.False(t, tee.Enabled(context.Background(), log.LevelDebug))

	l := log.New(NewTeeHandler(infoH, errH))
	l.Info("only info sink")
	assert.Contains(t, info.String(), "only info sink")
	assert.Empty(t, errs.String())

	err := tee.Handle(context.Background(), log.NewRecord(time.Time{}, log.LevelError, "boom", 0))
	require.Error(t, err)
	assert.Contains(t, errs.String(), "boom")
}

func TestTraceIDRoundTrip(t *testing.T) {
	assert.Equal(t, "", TraceID(context.Background()))
	assert.Equal(t, "t-1", TraceID(WithTraceID(context.Background(), "t-1")))
}
