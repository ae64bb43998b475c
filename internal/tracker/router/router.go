package router

import (
	"taskhub/internal/tracker/handler"
	"taskhub/internal/tracker/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func RegisterRoutes(e *echo.Echo, h *handler.TrackerHandler, svc service.TrackerService) {
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.PUT, echo.PATCH, echo.POST, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, handler.HeaderUserID},
	}))

	// Health Check
	e.GET("/health", handler.HealthCheck)

	v1 := e.Group("/api/v1")
	v1.Use(handler.RequestIDMiddleware)

	// Registration - NO identity middleware
	v1.POST("/signup", h.Signup)

	api := v1.Group("", handler.IdentityMiddleware(svc))

	// Users
	api.GET("/users", h.ListUsers)
	api.GET("/users/:user_id", h.GetUser)
	api.DELETE("/users/:user_id", h.DeleteUser)

	// Projects
	api.GET("/projects", h.ListProjects)
	api.POST("/projects", h.CreateProject)
	api.GET("/projects/:project_id", h.GetProject)
	api.PUT("/projects/:project_id", h.UpdateProject)
	api.PATCH("/projects/:project_id", h.UpdateProject)
	api.DELETE("/projects/:project_id", h.DeleteProject)
	api.POST("/projects/:project_id/add_member", h.AddMember)
	api.POST("/projects/:project_id/remove_member", h.RemoveMember)
	api.GET("/projects/:project_id/activity", h.ListActivity)

	// Tasks
	api.GET("/tasks", h.ListTasks)
	tasks := api.Group("/projects/:project_id/tasks")
	tasks.GET("", h.ListTasks)
	tasks.POST("", h.CreateTask)
	tasks.GET("/:task_id", h.GetTask)
	tasks.PUT("/:task_id", h.UpdateTask)
	tasks.PATCH("/:task_id", h.UpdateTask)
	tasks.DELETE("/:task_id", h.DeleteTask)
	tasks.GET("/:task_id/activity", h.ListActivity)

	// Comments
	tasks.GET("/:task_id/comments", h.ListComments)
	tasks.POST("/:task_id/comments", h.CreateComment)
	tasks.GET("/:task_id/comments/:comment_id", h.GetComment)
	tasks.PUT("/:task_id/comments/:comment_id", h.UpdateComment)
	tasks.PATCH("/:task_id/comments/:comment_id", h.UpdateComment)
	tasks.DELETE("/:task_id/comments/:comment_id", h.DeleteComment)

	// Attachments
	tasks.GET("/:task_id/attachments", h.ListAttachments)
	tasks.POST("/:task_id/attachments", h.CreateAttachment)
	tasks.GET("/:task_id/attachments/:attachment_id", h.GetAttachment)
	tasks.PUT("/:task_id/attachments/:attachment_id", h.UpdateAttachment)
	tasks.PATCH("/:task_id/attachments/:attachment_id", h.UpdateAttachment)
	tasks.DELETE("/:task_id/attachments/:attachment_id", h.DeleteAttachment)
}
