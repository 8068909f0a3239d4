package api

import (
	"github.com/soffa-io/salesforce-gateway/h"
	shttp "github.com/soffa-io/salesforce-gateway/http"
	"github.com/soffa-io/salesforce-gateway/sfdc"
)

// Controller exposes the gateway operations over HTTP. Every POST endpoint
// re-runs the full connect before the requested operation.
type Controller struct {
	Connector *sfdc.Connector
}

type QueryRequest struct {
	Query       string           `json:"query" binding:"required"`
	Credentials sfdc.Credentials `json:"credentials" binding:"required"`
}

func (ctrl Controller) Health(ctx *shttp.Context) {
	ctx.OK(h.Map{
		"status":  "OK",
		"message": "service is up and running",
	})
}

func (ctrl Controller) Welcome(ctx *shttp.Context) {
	ctx.OK(h.Map{
		"message":    "Welcome to the Salesforce gateway API",
		"swagger_ui": "/swagger/index.html",
		"endpoints": h.Map{
			"health_check":    "/health",
			"test_connection": "/connection/test",
			"api_limits":      "/limits",
			"execute_query":   "/query",
			"sample_queries":  "/sample-queries",
		},
	})
}

func (ctrl Controller) SampleQueries(ctx *shttp.Context) {
	ctx.OK(h.Map{
		"sample_queries": sfdc.SampleQueries(),
	})
}

// TestConnection always replies 200: a failed connect is a valid outcome,
// reported through the success flag.
func (ctrl Controller) TestConnection(ctx *shttp.Context) {
	var creds sfdc.Credentials
	if !ctx.BindJson(&creds) {
		return
	}
	result, _ := ctrl.Connector.Connect(creds)
	ctx.OK(result)
}

func (ctrl Controller) Limits(ctx *shttp.Context) {
	var creds sfdc.Credentials
	if !ctx.BindJson(&creds) {
		return
	}
	result, session := ctrl.Connector.Connect(creds)
	if !result.Success {
		ctx.BadRequest(h.Map{"message": result.Message})
		return
	}
	ctx.OK(h.Map{
		"success": true,
		"data":    ctrl.Connector.FetchLimits(session),
	})
}

func (ctrl Controller) Query(ctx *shttp.Context) {
	var req QueryRequest
	if !ctx.BindJson(&req) {
		return
	}
	result, session := ctrl.Connector.Connect(req.Credentials)
	if !result.Success {
		ctx.BadRequest(h.Map{"message": result.Message})
		return
	}
	ctx.OK(h.Map{
		"success": true,
		"query":   req.Query,
		"result":  ctrl.Connector.RunQuery(session, req.Query),
	})
}
