package service

import (
	"Ronghua/internal/pkg/util"
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind 错误类别，决定 HTTP 状态码与 error_code
type ErrorKind struct {
	Status int
	Code   string
}

var (
	KindUnauthorized       = ErrorKind{Status: http.StatusUnauthorized, Code: "UNAUTHORIZED"}
	KindInvalidCredentials = ErrorKind{Status: http.StatusUnauthorized, Code: "INVALID_CREDENTIALS"}
	KindNotFound           = ErrorKind{Status: http.StatusNotFound, Code: "NOT_FOUND"}
	KindValidation         = ErrorKind{Status: http.StatusBadRequest, Code: "VALIDATION_ERROR"}
	KindConflict           = ErrorKind{Status: http.StatusConflict, Code: "CONFLICT"}
	KindInternal           = ErrorKind{Status: http.StatusInternalServerError, Code: "INTERNAL_ERROR"}
)

var (
	ErrParamInvalid       = errors.New("参数错误")
	ErrUnauthorized       = errors.New("未登录或会话已失效")
	ErrAdminCredential    = errors.New("用户名或密码错误")
	ErrPasswordIncorrect  = errors.New("用户名或密码错误")
	ErrUserInactive       = errors.New("用户已被禁用")
	ErrUserNotFound       = errors.New("用户不存在")
	ErrUserUsernameExist  = errors.New("用户名已存在")
	ErrUserEmailExist     = errors.New("邮箱已被注册")
	ErrUserPhoneExist     = errors.New("手机号已注册")
	ErrPostNotFound       = errors.New("帖子不存在")
	ErrCommentNotFound    = errors.New("评论不存在")
	ErrCommentParent      = errors.New("回复的评论不存在或不属于该帖子")
	ErrContentNotFound    = errors.New("百科内容不存在")
	ErrTutorialNotFound   = errors.New("教程不存在")
	ErrProductNotFound    = errors.New("商品不存在")
	ErrProductUnavailable = errors.New("商品已下架")
	ErrProductInUse       = errors.New("商品存在关联订单，无法删除")
	ErrStockNotEnough     = errors.New("库存不足")
	ErrOrderNotFound      = errors.New("订单不存在")
	ErrStatusInvalid      = errors.New("状态值不合法")
	ErrDuplicate          = errors.New("数据已存在")
	ErrFileNotSupported   = errors.New("不支持的文件类型")
	ErrFileTooLarge       = errors.New("文件大小超出限制")
	ErrFeatureDisabled    = errors.New("功能未启用")
	UnExpectedError       = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]ErrorKind{
	ErrParamInvalid:       KindValidation,
	ErrUnauthorized:       KindUnauthorized,
	ErrAdminCredential:    KindInvalidCredentials,
	ErrPasswordIncorrect:  KindInvalidCredentials,
	ErrUserInactive:       KindUnauthorized,
	ErrUserNotFound:       KindNotFound,
	ErrUserUsernameExist:  KindConflict,
	ErrUserEmailExist:     KindConflict,
	ErrUserPhoneExist:     KindConflict,
	ErrPostNotFound:       KindNotFound,
	ErrCommentNotFound:    KindNotFound,
	ErrCommentParent:      KindValidation,
	ErrContentNotFound:    KindNotFound,
	ErrTutorialNotFound:   KindNotFound,
	ErrProductNotFound:    KindNotFound,
	ErrProductUnavailable: KindValidation,
	ErrProductInUse:       KindConflict,
	ErrStockNotEnough:     KindValidation,
	ErrOrderNotFound:      KindNotFound,
	ErrStatusInvalid:      KindValidation,
	ErrDuplicate:          KindConflict,
	ErrFileNotSupported:   KindValidation,
	ErrFileTooLarge:       KindValidation,
	ErrFeatureDisabled:    KindNotFound,
	UnExpectedError:       KindInternal,
}

// Classify 沿错误链查找已登记的业务错误，未登记的视为内部错误
func Classify(err error) (ErrorKind, bool) {
	var fe *util.FieldError
	if errors.As(err, &fe) {
		return KindValidation, true
	}
	for e := err; e != nil; e = errors.Unwrap(e) {
		if kind, ok := ErrorMap[e]; ok {
			return kind, true
		}
	}
	return KindInternal, false
}

// invalid 给参数错误附加说明，仍可被 errors.Is 识别
func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrParamInvalid, fmt.Sprintf(format, args...))
}
