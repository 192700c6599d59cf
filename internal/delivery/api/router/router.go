// Package router contains routing and server setup for the API delivery.
package router

import (
	"blog/internal/delivery/api/middleware"
	"blog/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// APIPrefix is the base path of every versioned route.
const APIPrefix = "/api/v1"

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	PostHandler    *handler.PostHandler
	CommentHandler *handler.CommentHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	postHandler    *handler.PostHandler
	commentHandler *handler.CommentHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		userHandler:    params.UserHandler,
		postHandler:    params.PostHandler,
		commentHandler: params.CommentHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group(APIPrefix)
	apiV1.GET("/health", handler.HealthCheck)

	requireAuth := r.authMiddleware.Authenticate

	// Auth routes
	authGroup := apiV1.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	// Post routes: reads are public, writes need a token
	postsGroup := apiV1.Group("/posts")
	{
		postsGroup.GET("", r.postHandler.ListPosts)
		postsGroup.GET("/:id", r.postHandler.GetPost)
		postsGroup.POST("", r.postHandler.CreatePost, requireAuth)
		postsGroup.PUT("/:id", r.postHandler.UpdatePost, requireAuth)
		postsGroup.DELETE("/:id", r.postHandler.DeletePost, requireAuth)
	}

	// User routes: only account creation is public
	usersGroup := apiV1.Group("/users")
	{
		usersGroup.POST("", r.userHandler.CreateUser)
		usersGroup.GET("", r.userHandler.ListUsers, requireAuth)
		usersGroup.GET("/:id", r.userHandler.GetUser, requireAuth)
		usersGroup.PUT("/:id", r.userHandler.UpdateUser, requireAuth)
		usersGroup.DELETE("/:id", r.userHandler.DeleteUser, requireAuth)
	}

	// Comment routes
	commentsGroup := apiV1.Group("/comments")
	{
		commentsGroup.GET("/:postId", r.commentHandler.ListComments)
		commentsGroup.POST("", r.commentHandler.CreateComment, requireAuth)
		commentsGroup.DELETE("/:id", r.commentHandler.DeleteComment, requireAuth)
	}
}
