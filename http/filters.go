package http

import (
	"github.com/rs/xid"
	"github.com/soffa-io/salesforce-gateway/h"
)

// RequestIdFilter tags every request with an X-Request-Id, keeping
// an inbound id when the caller already provided one.
type RequestIdFilter struct{}

func (f RequestIdFilter) Handle(ctx *Context) {
	id := ctx.Header("X-Request-Id")
	if h.IsStrEmpty(id) {
		id = xid.New().String()
	}
	ctx.gin.Set("request_id", id)
	ctx.Writer().Header().Set("X-Request-Id", id)
}
