package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/kamrul-dev/roamio/internal/container"
	"github.com/kamrul-dev/roamio/internal/handlers"
	"github.com/kamrul-dev/roamio/internal/middleware"
	"github.com/kamrul-dev/roamio/internal/models"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	// API version 1
	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "OK",
				"service": "roamio-api",
			})
		})

		// public routes
		v1.POST("/signup", handlers.Signup(container.UserService))
		v1.POST("/login", handlers.Login(container.UserService))
		v1.POST("/logout", handlers.Logout())
		v1.POST("/forgot-password", handlers.ForgotPassword(container.UserService))

		v1.GET("/packages", handlers.ListPackages(container.PackageService))
		v1.GET("/packages/:id", handlers.GetPackage(container.PackageService))
		v1.GET("/guides", handlers.ListGuides(container.UserService))
		v1.GET("/stories", handlers.ListStories(container.StoryService))
		v1.GET("/stories/:id", handlers.GetStory(container.StoryService))

		// home page samplers; kept off the :id trees because gin's router
		// does not mix static and param segments at the same level
		v1.GET("/home/packages", handlers.RandomPackages(container.PackageService))
		v1.GET("/home/stories", handlers.RandomStories(container.StoryService))
	}

	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(container.UserService, container.Logger))

	protected.GET("/profile", handlers.Profile())
	protected.PATCH("/profile", handlers.UpdateProfile(container.UserService))
	protected.GET("/my-stories", handlers.ListMyStories(container.StoryService))

	bookingRoutes := protected.Group("/bookings")
	{
		bookingRoutes.POST("/", handlers.CreateBooking(container.BookingService))
		bookingRoutes.GET("/", handlers.ListMyBookings(container.BookingService))
		bookingRoutes.DELETE("/:id", handlers.CancelBooking(container.BookingService))
		bookingRoutes.GET("/assigned", middleware.RequireRole(models.RoleGuide, models.RoleAdmin), handlers.ListAssignedBookings(container.BookingService))
		bookingRoutes.PATCH("/:id/status", middleware.RequireRole(models.RoleGuide, models.RoleAdmin), handlers.DecideBooking(container.BookingService))
	}

	paymentRoutes := protected.Group("/payments")
	{
		paymentRoutes.POST("/intent", handlers.CreatePaymentIntent(container.PaymentService))
		paymentRoutes.POST("/confirm", handlers.ConfirmPayment(container.PaymentService))
	}

	storyRoutes := protected.Group("/stories")
	{
		storyRoutes.POST("/", handlers.CreateStory(container.StoryService))
		storyRoutes.PATCH("/:id", handlers.UpdateStory(container.StoryService))
		storyRoutes.DELETE("/:id", handlers.DeleteStory(container.StoryService))
		storyRoutes.POST("/:id/comments", handlers.AddComment(container.StoryService))
	}

	applicationRoutes := protected.Group("/applications")
	{
		applicationRoutes.POST("/", handlers.ApplyAsGuide(container.ApplicationService))
	}

	adminRoutes := protected.Group("/admin")
	adminRoutes.Use(middleware.RequireRole(models.RoleAdmin))
	{
		adminRoutes.POST("/packages", handlers.CreatePackage(container.PackageService))
		adminRoutes.DELETE("/packages/:id", handlers.DeletePackage(container.PackageService))
		adminRoutes.GET("/users", handlers.ListUsers(container.UserService))
		adminRoutes.PATCH("/users/role/:email", handlers.UpdateUserRole(container.UserService))
		adminRoutes.GET("/applications", handlers.ListApplications(container.ApplicationService))
		adminRoutes.POST("/applications/:id/accept", handlers.AcceptApplication(container.ApplicationService))
		adminRoutes.POST("/applications/:id/reject", handlers.RejectApplication(container.ApplicationService))
	}

	return r
}
