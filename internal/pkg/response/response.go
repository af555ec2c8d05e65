package response

import (
	"Ronghua/internal/api/dto"
	"Ronghua/internal/pkg/util"
	"Ronghua/internal/service"
	stdjson "encoding/json"
	"errors"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

const (
	Ok                  = http.StatusOK
	BadRequest          = http.StatusBadRequest
	Unauthorized        = http.StatusUnauthorized
	NotFound            = http.StatusNotFound
	Conflict            = http.StatusConflict
	InternalServerError = http.StatusInternalServerError
)

// Success 成功返回封装
func Success(c *gin.Context, data interface{}) {
	SuccessMsg(c, "success", data)
}

func SuccessMsg(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, dto.Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Created 创建成功，返回新记录 id
func Created(c *gin.Context, message string, id uint64) {
	c.JSON(http.StatusOK, dto.Response{
		Success: true,
		Message: message,
		Data:    dto.IDDTO{ID: id},
	})
}

// Fail 失败返回封装
func Fail(c *gin.Context, status int, errorCode string, message string) {
	c.JSON(status, dto.Response{
		Success:   false,
		Message:   message,
		Data:      nil,
		ErrorCode: errorCode,
	})
}

// Abort 失败返回并终止后续 handler
func Abort(c *gin.Context, kind service.ErrorKind, message string) {
	Fail(c, kind.Status, kind.Code, message)
	c.Abort()
}

// Error 处理错误，内部错误只记录日志不回显原因
func Error(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		Fail(c, BadRequest, service.KindValidation.Code, "参数错误")
		return
	}

	var fe *util.FieldError
	if errors.As(err, &fe) {
		Fail(c, BadRequest, service.KindValidation.Code, fe.Error())
		return
	}

	var unmarshalTypeError *json.UnmarshalTypeError
	if errors.As(err, &unmarshalTypeError) {
		Fail(c, BadRequest, service.KindValidation.Code, "Json错误")
		return
	}

	kind, ok := service.Classify(err)
	if !ok || kind == service.KindInternal {
		log.ErrorContext(c.Request.Context(), "Error", "err", err, "path", c.FullPath())
		Fail(c, kind.Status, kind.Code, service.UnExpectedError.Error())
		return
	}
	Fail(c, kind.Status, kind.Code, err.Error())
}

// BindError 请求体解析失败，gin 默认使用标准库解码
func BindError(c *gin.Context, err error) {
	var unmarshalTypeError *json.UnmarshalTypeError
	var stdTypeError *stdjson.UnmarshalTypeError
	var stdSyntaxError *stdjson.SyntaxError
	if errors.As(err, &unmarshalTypeError) || errors.As(err, &stdTypeError) || errors.As(err, &stdSyntaxError) {
		Fail(c, BadRequest, service.KindValidation.Code, "Json错误")
		return
	}
	Fail(c, BadRequest, service.KindValidation.Code, "参数错误")
}

// Recovery panic 统一转换为内部错误信封
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.ErrorContext(c.Request.Context(), "Panic recovered", "panic", recovered, "path", c.Request.URL.Path)
		Fail(c, InternalServerError, service.KindInternal.Code, service.UnExpectedError.Error())
		c.Abort()
	})
}
