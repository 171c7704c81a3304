package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	SubmitGame(c *ginext.Context)
	UpdateGame(c *ginext.Context)
	GetGame(c *ginext.Context)
	DeleteGame(c *ginext.Context)
	GetUserGames(c *ginext.Context)
	CreateVenue(c *ginext.Context)
	UpdateVenue(c *ginext.Context)
	GetVenue(c *ginext.Context)
	ListVenues(c *ginext.Context)
	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	CreateCategory(c *ginext.Context)
	ListCategories(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Games
		api.POST("/games", h.SubmitGame)
		api.PUT("/games/:id", h.UpdateGame)
		api.GET("/games/:id", h.GetGame)
		api.DELETE("/games/:id", h.DeleteGame)

		// Venues
		api.POST("/venues", h.CreateVenue)
		api.GET("/venues", h.ListVenues)
		api.GET("/venues/:id", h.GetVenue)
		api.PUT("/venues/:id", h.UpdateVenue)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id/games", h.GetUserGames)

		// Categories
		api.POST("/categories", h.CreateCategory)
		api.GET("/categories", h.ListCategories)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
