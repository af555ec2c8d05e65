package handler

import (
	"Ronghua/internal/pkg/response"
	"Ronghua/internal/service"
	log "log/slog"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	mediaSvc service.MediaService
}

func NewMediaHandler(mediaSvc service.MediaService) *MediaHandler {
	return &MediaHandler{
		mediaSvc: mediaSvc,
	}
}

func (s *MediaHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	reader, err := file.Open()
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	defer func() { _ = reader.Close() }()

	res, err := s.mediaSvc.Upload(c.Request.Context(), file.Filename, file.Size, reader)
	if err != nil {
		response.Error(c, err)
		return
	}

	log.InfoContext(c.Request.Context(), "media upload success", "object", res.ObjectName, "type", res.MimeType)
	response.SuccessMsg(c, "上传成功", res)
}
