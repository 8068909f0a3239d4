package gateway

import (
	"github.com/gin-gonic/gin"
	"github.com/soffa-io/salesforce-gateway/api"
	"github.com/soffa-io/salesforce-gateway/conf"
	"github.com/soffa-io/salesforce-gateway/h"
	shttp "github.com/soffa-io/salesforce-gateway/http"
	"github.com/soffa-io/salesforce-gateway/log"
	"github.com/soffa-io/salesforce-gateway/sentry"
	"github.com/soffa-io/salesforce-gateway/sfdc"
)

const (
	Name    = "salesforce-gateway"
	Version = "1.0.0"
)

type App struct {
	Name    string
	Version string

	conf        *conf.Manager
	router      *shttp.Router
	connector   *sfdc.Connector
	initialized bool
}

func NewApp(env string) *App {
	return &App{
		Name:    Name,
		Version: Version,
		conf:    conf.UseDefault(env),
	}
}

func (app *App) Conf() *conf.Manager {
	return app.conf
}

func (app *App) Connector() *sfdc.Connector {
	return app.connector
}

func (app *App) bootstrap() {
	if app.initialized {
		return
	}

	if app.conf.IsProdEnv() {
		gin.SetMode(gin.ReleaseMode)
	}
	if dsn := app.conf.Get("SENTRY_DSN"); !h.IsStrEmpty(dsn) {
		sentry.Init(dsn, app.Name, app.Version)
	}

	client := shttp.NewHttpClient(log.IsDebugEnabled())
	app.connector = sfdc.NewConnector(sfdc.NewClient(client))

	router := shttp.NewRouter()
	router.Use(shttp.RequestIdFilter{})

	ctrl := api.Controller{Connector: app.connector}
	router.GET("/", ctrl.Welcome)
	router.GET("/health", ctrl.Health)
	router.GET("/sample-queries", ctrl.SampleQueries)
	router.POST("/connection/test", ctrl.TestConnection)
	router.POST("/limits", ctrl.Limits)
	router.POST("/query", ctrl.Query)

	app.router = router
	app.initialized = true
}

func (app *App) Start(port int) {
	app.bootstrap()
	log.Infof("%s v%s starting on port %d (env=%s)", app.Name, app.Version, port, app.conf.Env())
	app.router.Start(port)
}
