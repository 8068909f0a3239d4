package http

import (
	"fmt"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/soffa-io/salesforce-gateway/h"
	swaggerFiles "github.com/swaggo/files"
	swagger "github.com/swaggo/gin-swagger"
	"net/http"
)

type Router struct {
	engine *gin.Engine
}

type HandlerFunc func(ctx *Context)

type Filter interface {
	Handle(ctx *Context)
}

type Route struct {
	Method  string
	Path    string
	Paths   []string
	Handler HandlerFunc
}

func NewRouter() *Router {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.GET("/swagger/*any", swagger.WrapHandler(swaggerFiles.Handler))
	r.Any("/metrics", func(c *gin.Context) {
		promhttp.Handler().ServeHTTP(c.Writer, c.Request)
	})
	return &Router{engine: r}
}

func (r *Router) HttpHandler() http.Handler {
	return r.engine
}

func (r *Router) Use(filters ...Filter) *Router {
	for _, f := range filters {
		filter := f
		r.engine.Use(func(gc *gin.Context) {
			filter.Handle(newContext(gc))
		})
	}
	return r
}

func (r *Router) Any(path string, handler HandlerFunc) *Route {
	route := &Route{
		Method:  "*",
		Path:    path,
		Handler: handler,
	}
	r.Add(route)
	return route
}

func (r *Router) GET(path string, handler HandlerFunc) *Route {
	route := &Route{
		Method:  "GET",
		Path:    path,
		Handler: handler,
	}
	r.Add(route)
	return route
}

func (r *Router) POST(path string, handler HandlerFunc) *Route {
	route := &Route{
		Method:  "POST",
		Path:    path,
		Handler: handler,
	}
	r.Add(route)
	return route
}

func (r *Router) Add(route *Route) *Router {
	var paths []string
	if !h.IsStrEmpty(route.Path) {
		paths = append(paths, route.Path)
	}
	if len(route.Paths) > 0 {
		paths = append(paths, route.Paths[:]...)
	}

	handler := func(gc *gin.Context) {
		c := newContext(gc)
		defer func() {
			if rec := recover(); rec != nil {
				if err, ok := rec.(error); ok {
					c.SendError(err)
				} else {
					c.SendError(fmt.Errorf("%v", rec))
				}
			}
		}()
		route.Handler(c)
	}

	for _, path := range paths {
		if route.Method == "*" {
			r.engine.Any(path, handler)
		} else {
			r.engine.Handle(route.Method, path, handler)
		}
	}
	return r
}

func (r *Router) Start(port int) {
	_ = r.engine.Run(fmt.Sprintf(":%d", port))
}
