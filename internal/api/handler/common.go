package handler

import (
	"Ronghua/internal/api/dto"
	"Ronghua/internal/api/fixture"
	"Ronghua/internal/pkg/response"
	"Ronghua/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

// pathID 解析路径中的数字 id，失败时已写回 400
func pathID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		response.Fail(c, response.BadRequest, service.KindValidation.Code, "id 不合法")
		return 0, false
	}
	return id, true
}

func bindQuery(c *gin.Context) (dto.ListQuery, bool) {
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BindError(c, err)
		return q, false
	}
	q.Normalize()
	return q, true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.BindError(c, err)
		return false
	}
	return true
}

// replyFixture 演示模式下原样返回内置数据
func replyFixture(c *gin.Context, name string) {
	f := fixture.Get(name)
	response.SuccessMsg(c, f.Message, f.Data)
}

func replyFixtureWith(c *gin.Context, name, key string, value any) {
	f, err := fixture.WithField(name, key, value)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessMsg(c, f.Message, f.Data)
}
