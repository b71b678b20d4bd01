package routes

import (
	"net/http"
	"time"

	"salonbook/handlers"
	"salonbook/middleware"
	"salonbook/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterPublicRoutes registers the customer booking flow. None of these
// need a session.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/slots/available", hb.AvailableSlots)

	public := r.Group("/public")
	{
		public.GET("/salon/:id", hb.PublicSalon)
		public.GET("/working-hours/:salonId", hb.PublicWorkingHours)
		public.GET("/services/:salonId", hb.PublicServices)
		public.POST("/appointments/create", hb.CreateAppointment)
		public.GET("/appointments/:id", hb.GetAppointment)
	}
}

// RegisterAuthRoutes registers owner account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", hb.Register)
		auth.POST("/login", hb.Login)
		auth.POST("/logout", hb.Logout)
		auth.GET("/verify", middleware.SessionAuth(hb.Sessions, hb.SessionCookie), hb.VerifySession)
	}
	r.GET("/owner/profile", middleware.SessionAuth(hb.Sessions, hb.SessionCookie), hb.OwnerProfile)
}

// RegisterOwnerRoutes registers the owner dashboard. Everything except salon
// creation needs the owner to have a salon already.
func RegisterOwnerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	owner := r.Group("")
	owner.Use(middleware.SessionAuth(hb.Sessions, hb.SessionCookie))

	salon := owner.Group("/salon")
	{
		salon.GET("/my-salon", hb.MySalon)
		salon.POST("/create", hb.CreateSalon)
		salon.POST("/update", middleware.RequireSalon(), hb.UpdateSalon)
	}

	scoped := owner.Group("")
	scoped.Use(middleware.RequireSalon())

	hours := scoped.Group("/hours")
	{
		hours.GET("/get", hb.GetHours)
		hours.POST("/set", hb.SetHours)
	}

	service := scoped.Group("/service")
	{
		service.GET("/all", hb.ListServices)
		service.POST("/add", hb.AddService)
		service.PUT("/update/:id", hb.UpdateService)
		service.DELETE("/delete/:id", hb.DeleteService)
	}

	staff := scoped.Group("/staff")
	{
		staff.GET("/all", hb.ListStaff)
		staff.POST("/add", hb.AddStaff)
		staff.PUT("/update/:id", hb.UpdateStaff)
		staff.DELETE("/delete/:id", hb.DeleteStaff)
	}

	appointments := scoped.Group("/appointments")
	{
		appointments.GET("/all", hb.ListAppointments)
		appointments.GET("/by-date", hb.ListAppointmentsByDate)
		appointments.POST("/cancel/:id", hb.CancelAppointment)
		appointments.POST("/status/:id", hb.UpdateAppointmentStatus)
		appointments.DELETE("/delete/:id", hb.DeleteAppointment)
	}
}

// RegisterHealthRoute registers the health-check and metrics endpoints.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		status := utils.GetHealthStatus()
		code := http.StatusOK
		if !status.Healthy() {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{"status": status, "healthy": status.Healthy()})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// RegisterRoutes centralizes registration of all endpoints and the CORS policy.
// The dashboard authenticates with a cookie, so origins must be listed
// explicitly when credentials are allowed.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, allowedOrigins []string) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterPublicRoutes(r, hb)
	RegisterAuthRoutes(r, hb)
	RegisterOwnerRoutes(r, hb)
	RegisterHealthRoute(r)
}
