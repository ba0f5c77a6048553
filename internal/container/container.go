package container

import (
	"log/slog"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/kamrul-dev/roamio/internal/models"
	"github.com/kamrul-dev/roamio/internal/payments"
	"github.com/kamrul-dev/roamio/internal/services"
	"github.com/supabase-community/supabase-go"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Logger     *slog.Logger
	Cloudinary *cloudinary.Cloudinary

	SupabaseClient *supabase.Client
	MongoDBClient  *mongo.Client

	UserService        *services.UserService
	PackageService     *services.PackageService
	BookingService     *services.BookingService
	PaymentService     *services.PaymentService
	StoryService       *services.StoryService
	ApplicationService *services.ApplicationService
}

// NewContainer creates a new dependency injection container
func NewContainer(
	logger *slog.Logger,
	cld *cloudinary.Cloudinary,
	supabaseClient *supabase.Client,
	mongoDBClient *mongo.Client,
	gateway payments.Gateway,
	supaUrl, supaKey string,
) *Container {
	supa := models.SupabaseNewRepo(supabaseClient, supaUrl, supaKey)
	mongoRepo := models.MongodbNewRepo(mongoDBClient)

	userService := services.NewUserService(supa)
	packageService := services.NewPackageService(mongoRepo, cld)
	bookingService := services.NewBookingService(mongoRepo, mongoRepo, userService)
	paymentService := services.NewPaymentService(gateway, mongoRepo, mongoRepo, logger)
	storyService := services.NewStoryService(mongoRepo, cld)
	applicationService := services.NewApplicationService(mongoRepo, userService)

	return &Container{
		Logger:             logger,
		Cloudinary:         cld,
		SupabaseClient:     supabaseClient,
		MongoDBClient:      mongoDBClient,
		UserService:        userService,
		PackageService:     packageService,
		BookingService:     bookingService,
		PaymentService:     paymentService,
		StoryService:       storyService,
		ApplicationService: applicationService,
	}
}
