package llm

import (
	"Ronghua/internal/api/config"
	"context"
	"errors"
	log "log/slog"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"golang.org/x/sync/semaphore"
)

const assistantPrompt = `你是绒花非遗传承平台的智能助手，熟悉南京绒花的历史渊源、制作工艺与传承人。
回答要求：使用简体中文，简明准确，不超过 300 字；与绒花、非遗无关的问题礼貌说明只回答相关内容。`

// ErrEmptyReply 模型没有返回任何内容
var ErrEmptyReply = errors.New("llm reply is empty")

// TextWeight 同时在途的文本请求上限
const TextWeight = int64(5)

type Client struct {
	model       llms.Model
	modelName   string
	temperature float64
	sem         *semaphore.Weighted
}

func NewClient(cfg config.LLMConfig) (*Client, error) {
	model, err := openai.New(
		openai.WithModel(cfg.Model),
		openai.WithToken(cfg.ApiKey),
		openai.WithBaseURL(cfg.URL),
	)
	if err != nil {
		log.Error("AI大模型初始化失败", "err", err)
		return nil, err
	}
	return NewClientWithModel(model, cfg), nil
}

// NewClientWithModel 使用已有的模型实现构建客户端
func NewClientWithModel(model llms.Model, cfg config.LLMConfig) *Client {
	return &Client{
		model:       model,
		modelName:   cfg.Model,
		temperature: cfg.Temperature,
		sem:         semaphore.NewWeighted(TextWeight),
	}
}

// Chat 单轮问答
func (c *Client) Chat(ctx context.Context, question string) (string, error) {
	if err := c.sem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer c.sem.Release(1)

	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, assistantPrompt),
		llms.TextParts(llms.ChatMessageTypeHuman, question),
	}
	opts := []llms.CallOption{llms.WithTemperature(c.temperature)}
	if c.modelName != "" {
		opts = append(opts, llms.WithModel(c.modelName))
	}

	log.InfoContext(ctx, "正在请求AI大模型")
	resp, err := c.model.GenerateContent(ctx, messages, opts...)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyReply
	}
	reply := strings.TrimSpace(resp.Choices[0].Content)
	if reply == "" {
		return "", ErrEmptyReply
	}
	return reply, nil
}
