package service

import (
	"Ronghua/internal/api/dto"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChatter struct {
	reply string
	err   error
}

func (s stubChatter) Chat(context.Context, string) (string, error) {
	return s.reply, s.err
}

func TestChatService_Ask(t *testing.T) {
	ctx := context.Background()

	out, err := NewChatService(nil).Ask(ctx, &dto.ChatDTO{Message: "绒花的历史起源是什么？"})
	require.NoError(t, err)
	assert.Contains(t, out.Reply, "唐代")
	assert.NotEmpty(t, out.Suggestions)

	out, err = NewChatService(nil).Ask(ctx, &dto.ChatDTO{Message: "今天天气如何"})
	require.NoError(t, err)
	assert.Equal(t, defaultAnswer, out.Reply)

	out, err = NewChatService(stubChatter{reply: "模型回答"}).Ask(ctx, &dto.ChatDTO{Message: "你好"})
	require.NoError(t, err)
	assert.Equal(t, "模型回答", out.Reply)

	out, err = NewChatService(stubChatter{err: errors.New("timeout")}).Ask(ctx, &dto.ChatDTO{Message: "制作需要什么材料"})
	require.NoError(t, err)
	assert.Contains(t, out.Reply, "丝绸")

	_, err = NewChatService(nil).Ask(ctx, &dto.ChatDTO{Message: "   "})
	assertKind(t, KindValidation, err)
}
