package routes

import (
	"github.com/captainwycliffe/omnimed/authentication"
	"github.com/captainwycliffe/omnimed/controllers"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

func SetupRoutes() *gin.Engine {
	//creates a new Gin engine instance with default configurations
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	//patient routes
	r.POST("/users", controllers.CreateUser)
	r.GET("/users/:user_id", controllers.GetUser)
	r.GET("/doctors", controllers.GetDoctors)

	patients := r.Group("/patients")
	{
		patients.POST("/:user_id/register", controllers.RegisterPatient)
		patients.GET("/:user_id", controllers.GetPatient)
		patients.POST("/:user_id/predict", controllers.PredictDisease)
		patients.GET("/:user_id/match-doctor", controllers.MatchDoctor)
		patients.GET("/:user_id/matched-doctor", controllers.GetMatchedDoctor)
		patients.POST("/:user_id/appointments", controllers.CreateAppointment)
		patients.GET("/:user_id/appointments", controllers.GetAppointmentHistory)
	}

	r.GET("/appointments/:id", controllers.GetAppointment)

	//Admin routes
	r.POST("/admin/login", controllers.AdminLogin)

	admin := r.Group("/admin")
	admin.Use(authentication.AdminAuthMiddleware())
	{
		admin.POST("/logout", controllers.AdminLogout)
		admin.GET("/appointments", controllers.GetAppointmentTable)
		admin.PATCH("/appointments/:id/schedule", controllers.ScheduleAppointment)
		admin.PATCH("/appointments/:id/cancel", controllers.CancelAppointment)
	}

	return r
}
