package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 通用提示文案（前端直接展示 detail）
const (
	MsgOK           = "OK"
	MsgUnauthorized = "Необходима авторизация!"
	MsgForbidden    = "У вас нет доступа для данного действия!"
	MsgNotFound     = "Такой записи не существует!"
	MsgBadRequest   = "Некорректные данные запроса!"
	MsgInternal     = "Внутренняя ошибка сервера!"
	MsgTooMany      = "Слишком много попыток, попробуйте позже!"
	MsgBodyTooLarge = "Слишком большой запрос!"
)

// Detail 消息/错误响应 {detail: ...}
type Detail struct {
	Detail string `json:"detail"`
}

// Created 新建记录响应 {id: ...}
type Created struct {
	ID int64 `json:"id"`
}

// Items 分页列表响应
// Cnt 为总页数（与前端分页组件约定一致）
type Items[T any] struct {
	Cnt   int64 `json:"cnt"`
	Items []T   `json:"items"`
}

// PageCount 由总数与每页数量计算总页数
func PageCount(total int64, perPage int) int64 {
	if perPage <= 0 {
		return 0
	}
	pages := total / int64(perPage)
	if total%int64(perPage) > 0 {
		pages++
	}
	return pages
}

// ── 成功响应 ──

// OK 200 直接返回数据对象
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Done 200 {detail: "OK"}
func Done(c *gin.Context) {
	c.JSON(http.StatusOK, Detail{Detail: MsgOK})
}

// CreatedID 200 {id: ...}
func CreatedID(c *gin.Context, id int64) {
	c.JSON(http.StatusOK, Created{ID: id})
}

// OKPage 200 分页列表
func OKPage[T any](c *gin.Context, list []T, total int64, perPage int) {
	if list == nil {
		list = []T{}
	}
	c.JSON(http.StatusOK, Items[T]{Cnt: PageCount(total, perPage), Items: list})
}

// ── 错误响应 ──

// Error 通用错误响应
func Error(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, Detail{Detail: message})
}

// BadRequest 400
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized 401
func Unauthorized(c *gin.Context) {
	Error(c, http.StatusUnauthorized, MsgUnauthorized)
}

// Forbidden 403
func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message)
}

// NotFound 404
func NotFound(c *gin.Context) {
	Error(c, http.StatusNotFound, MsgNotFound)
}

// InternalError 500
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, MsgInternal)
}
