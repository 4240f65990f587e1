package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/upadhyaysaumya55/CruiseShip-Management-System/internal/middleware"
	"github.com/upadhyaysaumya55/CruiseShip-Management-System/internal/models"
	"github.com/upadhyaysaumya55/CruiseShip-Management-System/internal/policy"
)

// RegisterRoutes wires the full HTTP surface. Every role-gated group
// declares its allow-set right here, next to the routes it protects;
// a group without RequireRoles is public by construction, and a
// RequireRoles with an empty set would deny everyone rather than
// letting anyone through.
func RegisterRoutes(
	r *gin.Engine,
	auth *AuthHandler,
	items *ItemHandler,
	bookings *BookingHandler,
	contact *ContactHandler,
	authenticate gin.HandlerFunc,
) {
	r.GET("/", index)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Registration: one endpoint per role, role fixed server-side.
	r.POST("/voyager/register/", auth.Register(models.RoleVoyager))
	r.POST("/admin/register/", auth.Register(models.RoleAdmin))
	r.POST("/manager/register/", auth.Register(models.RoleManager))
	r.POST("/head_cook/register/", auth.Register(models.RoleHeadCook))
	r.POST("/supervisor/register/", auth.Register(models.RoleSupervisor))

	r.POST("/session/login/", auth.SessionLogin)
	r.POST("/session/logout/", auth.SessionLogout)

	r.POST("/token/", auth.Token)
	r.POST("/token/refresh/", auth.TokenRefresh)

	r.POST("/contact/", contact.Create)

	voyager := r.Group("/voyager", authenticate,
		middleware.RequireRoles(policy.Roles(models.RoleVoyager, models.RoleHeadCook)))
	{
		voyager.GET("/", voyagerBase)
		voyager.GET("/catering/", items.ListByCategory(models.CategoryCatering))
		voyager.POST("/catering/", bookings.CreateForType(models.TypeCatering))
		voyager.GET("/stationery/", items.ListByCategory(models.CategoryStationery))
		voyager.POST("/stationery/", bookings.CreateForType(models.TypeStationery))
		voyager.GET("/bookings/", bookings.ListMine)
		voyager.POST("/bookings/", bookings.Create)
	}

	admin := r.Group("/admin", authenticate,
		middleware.RequireRoles(policy.Roles(models.RoleAdmin)))
	{
		admin.GET("/items/", items.List)
		admin.POST("/items/", items.Create)
		admin.GET("/items/:id/", items.Get)
		admin.PUT("/items/:id/", items.Update)
		admin.DELETE("/items/:id/", items.Delete)
	}

	manager := r.Group("/manager", authenticate,
		middleware.RequireRoles(policy.Roles(models.RoleManager)))
	{
		manager.GET("/bookings/", bookings.ListAll)
	}

	headCook := r.Group("/head_cook", authenticate,
		middleware.RequireRoles(policy.Roles(models.RoleHeadCook)))
	{
		headCook.GET("/", headCookBase)
		headCook.GET("/orders/", bookings.ListByType(models.TypeCatering))
	}

	supervisor := r.Group("/supervisor", authenticate,
		middleware.RequireRoles(policy.Roles(models.RoleSupervisor)))
	{
		supervisor.GET("/orders/", bookings.ListByType(models.TypeStationery))
	}
}

func index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the Cruise Ship Management System API",
	})
}

func voyagerBase(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Voyager API is working",
		"endpoints": []string{
			"/voyager/catering/",
			"/voyager/stationery/",
			"/voyager/bookings/",
		},
	})
}

func headCookBase(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"role":     "head_cook",
		"location": "Head Cook Dashboard",
		"message":  "Welcome Head Cook!",
	})
}
