package http

import (
	"fmt"
	"github.com/gin-gonic/gin"
	"github.com/soffa-io/salesforce-gateway/errors"
	"github.com/soffa-io/salesforce-gateway/h"
	"github.com/soffa-io/salesforce-gateway/sentry"
	"net/http"
)

type Context struct {
	gin *gin.Context
}

func newContext(gin *gin.Context) *Context {
	return &Context{gin: gin}
}

func (c *Context) Request() *http.Request {
	return c.gin.Request
}

func (c *Context) Header(name string) string {
	return c.gin.GetHeader(name)
}

func (c *Context) Param(name string) string {
	return c.gin.Param(name)
}

func (c *Context) RequestId() string {
	return c.gin.GetString("request_id")
}

func (c *Context) BindJson(dest interface{}) bool {
	if err := c.gin.ShouldBind(dest); err != nil {
		_ = sentry.Capture(fmt.Sprintf("http.request.check:%s", c.gin.Request.RequestURI), err)
		c.gin.JSON(http.StatusBadRequest, gin.H{
			"code":  "validation.error",
			"error": err.Error(),
		})
		return false
	}
	return true
}

func (c *Context) IsAborted() bool {
	return c.gin.IsAborted()
}

func (c *Context) Writer() http.ResponseWriter {
	return c.gin.Writer
}

func (c *Context) OK(body interface{}) {
	c.JSON(http.StatusOK, body)
}

func (c *Context) JSON(status int, body interface{}) {
	if !c.IsAborted() {
		c.gin.JSON(status, body)
	}
}

func (c *Context) NotFound(message string) {
	c.JSON(http.StatusNotFound, h.Map{"message": message})
}

func (c *Context) BadRequest(body interface{}) {
	c.JSON(http.StatusBadRequest, body)
}

func (c *Context) SendError(orig error) {
	if c.IsAborted() || orig == nil {
		return
	}

	err := errors.Unwrap(orig)

	switch t := err.(type) {
	default:
		sentry.CaptureException(orig)
		c.gin.JSON(http.StatusInternalServerError, gin.H{
			"message": orig.Error(),
		})
	case errors.ErrTechnical:
		sentry.CaptureException(orig)
		c.gin.JSON(http.StatusBadRequest, gin.H{
			"code":    t.Code,
			"message": orig.Error(),
		})
	case errors.ErrUnauthorized:
		c.gin.JSON(http.StatusUnauthorized, gin.H{
			"message": orig.Error(),
		})
	case errors.ErrFunctional:
		status := http.StatusBadRequest
		if t.Code == errors.ErrNotFoundCode {
			status = http.StatusNotFound
		}
		c.gin.JSON(status, h.Map{
			"code":    t.Code,
			"message": orig.Error(),
		})
	}
}

func (c *Context) Send(res interface{}, err error) {
	if c.IsAborted() {
		return
	}
	if err != nil {
		c.SendError(err)
	} else {
		c.OK(res)
	}
}
