package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/alzcare/notifier/internal/api/handlers/devicetoken"
	"github.com/alzcare/notifier/internal/api/handlers/reminder"
	"github.com/alzcare/notifier/internal/middlewares"
)

func New(reminders *reminder.Handler, tokens *devicetoken.Handler, verifier middlewares.Verifier) *ginext.Engine {
	e := ginext.New()
	e.Use(middlewares.CORSMiddleware())
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	e.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	api := e.Group("/")
	api.Use(middlewares.Auth(verifier))
	{
		api.POST("/reminders", reminders.Create)
		api.GET("/reminders", reminders.List)
		api.PATCH("/reminders/:id", reminders.Update)
		api.DELETE("/reminders/:id", reminders.Delete)
		api.POST("/register-token", tokens.Register)
	}

	return e
}
