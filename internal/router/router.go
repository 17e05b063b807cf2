// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/city-issue-tracker/internal/config"
	"github.com/iliyamo/city-issue-tracker/internal/handler"
	"github.com/iliyamo/city-issue-tracker/internal/middleware"
	"github.com/iliyamo/city-issue-tracker/internal/model"
)

// RegisterRoutes wires every endpoint onto the Echo instance.
//
// Route map:
//
//	GET    /healthz                          liveness check
//	POST   /v1/auth/register                 create account
//	POST   /v1/auth/login                    plaintext credential login
//	GET    /v1/me                            session identity
//	POST   /v1/complaints                    submit (rate limited)
//	GET    /v1/complaints                    own complaints (cached)
//	POST   /v1/complaints/suggest            canned description helper
//	GET    /v1/admin/complaints              full queue (cached, ?sort=date)
//	PATCH  /v1/admin/complaints/:id/status   set status
//	GET    /v1/admin/stats                   status counts
//	GET    /v1/admin/users                   user directory
//	DELETE /v1/admin/users/:email            delete non-admin account
func RegisterRoutes(e *echo.Echo, cfg config.Config, rdb *redis.Client, cache *middleware.ListingCache,
	auth *handler.AuthHandler, complaints *handler.ComplaintHandler, admin *handler.AdminHandler) {

	e.GET("/healthz", handler.Health)

	pub := e.Group("/v1/auth")
	pub.POST("/register", auth.Register)
	pub.POST("/login", auth.Login)

	listed := cache.Middleware()
	limit := middleware.NewRateLimit(config.LoadRateLimitConfig(), rdb)

	// Authenticated routes: both roles.
	v1 := e.Group("/v1")
	v1.Use(middleware.JWTAuth(cfg.JWTSecret))
	v1.Use(middleware.RequireRole(model.RoleUser, model.RoleAdmin))
	v1.GET("/me", auth.Me)
	v1.POST("/complaints", complaints.Submit, limit)
	v1.GET("/complaints", complaints.ListMine, listed)
	v1.POST("/complaints/suggest", complaints.Suggest)

	// Admin-only triage surface.
	adm := e.Group("/v1/admin")
	adm.Use(middleware.JWTAuth(cfg.JWTSecret))
	adm.Use(middleware.RequireRole(model.RoleAdmin))
	adm.GET("/complaints", admin.ListAll, listed)
	adm.PATCH("/complaints/:id/status", admin.SetStatus)
	adm.GET("/stats", admin.Stats)
	adm.GET("/users", admin.ListUsers)
	adm.DELETE("/users/:email", admin.DeleteUser)
}
