package main

import (
	"github.com/gin-gonic/gin"
	"intern-hub.backend/internal/interfaces/http/handlers"
)

type routeDeps struct {
	authHandler      *handlers.AuthHandler
	profileHandler   *handlers.ProfileHandler
	adminHandler     *handlers.AdminHandler
	directoryHandler *handlers.DirectoryHandler
	authMiddleware   gin.HandlerFunc
	adminOnly        gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public, /me behind auth)
		auth := v1.Group("/auth")
		{
			auth.POST("/signup", d.authHandler.Signup)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/logout", d.authHandler.Logout)
			auth.GET("/me", d.authMiddleware, d.authHandler.Me)
		}

		// Profile routes (protected)
		profile := v1.Group("/profile")
		profile.Use(d.authMiddleware)
		{
			profile.GET("", d.profileHandler.Get)
			profile.PUT("", d.profileHandler.Save)
			profile.GET("/summary", d.profileHandler.Summary)
		}

		// Public intern directory
		interns := v1.Group("/interns")
		{
			interns.GET("/search", d.directoryHandler.Search)
		}

		// Admin routes (protected, admin only)
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, d.adminOnly)
		{
			admin.GET("/users", d.adminHandler.ListUsers)
			admin.POST("/users/:id/approve", d.adminHandler.ApproveUser)
			admin.POST("/users/:id/reject", d.adminHandler.RejectUser)

			admin.GET("/students", d.adminHandler.ListStudents)
			admin.GET("/students/:id", d.adminHandler.GetStudent)
			admin.POST("/students/:id/approve", d.adminHandler.ApproveStudent)
			admin.POST("/students/:id/reject", d.adminHandler.RejectStudent)

			admin.GET("/stats", d.adminHandler.Stats)
		}
	}
}
