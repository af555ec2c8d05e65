package llm

import (
	"Ronghua/internal/api/config"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms/fake"
)

func TestClient_Chat(t *testing.T) {
	model := fake.NewFakeLLM([]string{"  绒花起源于唐代。  "})
	client := NewClientWithModel(model, config.LLMConfig{Temperature: 0.7})

	reply, err := client.Chat(context.Background(), "绒花的历史？")
	require.NoError(t, err)
	assert.Equal(t, "绒花起源于唐代。", reply)
}

func TestClient_ChatEmptyReply(t *testing.T) {
	client := NewClientWithModel(fake.NewFakeLLM([]string{"   "}), config.LLMConfig{})

	_, err := client.Chat(context.Background(), "你好")
	assert.ErrorIs(t, err, ErrEmptyReply)
}
