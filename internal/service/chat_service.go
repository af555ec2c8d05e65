package service

import (
	"Ronghua/internal/api/dto"
	"Ronghua/internal/pkg/util"
	"context"
	log "log/slog"
	"strings"
)

// Chatter 问答后端，由 llm.Client 实现
type Chatter interface {
	Chat(ctx context.Context, question string) (string, error)
}

type ChatService interface {
	Ask(ctx context.Context, d *dto.ChatDTO) (*dto.ChatReplyDTO, error)
}

type ChatServiceImpl struct {
	chatter Chatter
}

// NewChatService chatter 为 nil 时使用内置问答
func NewChatService(chatter Chatter) ChatService {
	return &ChatServiceImpl{chatter: chatter}
}

var cannedAnswers = []struct {
	keywords []string
	answer   string
}{
	{[]string{"历史", "起源", "由来", "朝代"}, "绒花起源于唐代，是一种传统的装饰花卉，多用于女性头饰。"},
	{[]string{"材料", "制作", "工艺", "工序", "染色"}, "制作绒花需要选择优质的丝绸材料，经过染色、成型等工序。"},
}

const defaultAnswer = "学习绒花制作建议从基础教程开始，循序渐进地掌握各种技法。"

var chatSuggestions = []string{"绒花历史", "制作工艺", "入门教程"}

func (s *ChatServiceImpl) Ask(ctx context.Context, d *dto.ChatDTO) (*dto.ChatReplyDTO, error) {
	if err := util.ValidateDTO(d); err != nil {
		return nil, err
	}
	question := strings.TrimSpace(d.Message)
	if question == "" {
		return nil, invalid("message 不能为空")
	}

	reply := ""
	if s.chatter != nil {
		answer, err := s.chatter.Chat(ctx, question)
		if err != nil {
			log.WarnContext(ctx, "AI问答失败，使用内置回答", "err", err)
		} else {
			reply = answer
		}
	}
	if reply == "" {
		reply = cannedAnswer(question)
	}
	return &dto.ChatReplyDTO{Reply: reply, Suggestions: chatSuggestions}, nil
}

func cannedAnswer(question string) string {
	for _, c := range cannedAnswers {
		for _, k := range c.keywords {
			if strings.Contains(question, k) {
				return c.answer
			}
		}
	}
	return defaultAnswer
}
