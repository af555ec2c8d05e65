package handler

import (
	"Ronghua/internal/pkg/response"
	"Ronghua/internal/service"

	"github.com/gin-gonic/gin"
)

type OpLogHandler struct {
	opLogSvc service.OpLogService
}

func NewOpLogHandler(opLogSvc service.OpLogService) *OpLogHandler {
	return &OpLogHandler{
		opLogSvc: opLogSvc,
	}
}

func (s *OpLogHandler) List(c *gin.Context) {
	q, ok := bindQuery(c)
	if !ok {
		return
	}
	page, err := s.opLogSvc.List(c.Request.Context(), q)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}
