package handler

import (
	"Ronghua/internal/api/dto"
	"Ronghua/internal/api/fixture"
	"Ronghua/internal/api/middleware"
	"Ronghua/internal/pkg/response"
	"Ronghua/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type GameHandler struct {
	gameSvc  service.GameService
	chatSvc  service.ChatService
	useStore bool
}

func NewGameHandler(gameSvc service.GameService, chatSvc service.ChatService, useStore bool) *GameHandler {
	return &GameHandler{
		gameSvc:  gameSvc,
		chatSvc:  chatSvc,
		useStore: useStore,
	}
}

func (s *GameHandler) Profile(c *gin.Context) {
	if !s.useStore {
		replyFixture(c, fixture.GameProfile)
		return
	}
	profile, err := s.gameSvc.Profile(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, profile)
}

// Checkin 没有签到流水，两种模式都返回固定奖励
func (s *GameHandler) Checkin(c *gin.Context) {
	replyFixture(c, fixture.GameCheckin)
}

func (s *GameHandler) Challenges(c *gin.Context) {
	if !s.useStore {
		replyFixture(c, fixture.GameChallenges)
		return
	}
	challenges, err := s.gameSvc.ActiveChallenges(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, challenges)
}

func (s *GameHandler) CompleteChallenge(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	replyFixtureWith(c, fixture.GameChallengeComplete, "challenge_id", id)
}

func (s *GameHandler) Leaderboard(c *gin.Context) {
	if !s.useStore {
		replyFixture(c, fixture.GameLeaderboard)
		return
	}
	limit, _ := strconv.Atoi(c.Query("limit"))
	board, err := s.gameSvc.Leaderboard(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, board)
}

// Chat 演示模式同样走问答服务，未配置模型时使用内置回答
func (s *GameHandler) Chat(c *gin.Context) {
	var req dto.ChatDTO
	if !bindJSON(c, &req) {
		return
	}
	reply, err := s.chatSvc.Ask(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, reply)
}
