package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/lawfirm-api/internal/config"
	"github.com/BruksfildServices01/lawfirm-api/internal/domain/booking"
	"github.com/BruksfildServices01/lawfirm-api/internal/handlers"
	"github.com/BruksfildServices01/lawfirm-api/internal/httperr"
	infraRepo "github.com/BruksfildServices01/lawfirm-api/internal/infra/repository"
	"github.com/BruksfildServices01/lawfirm-api/internal/middleware"
	"github.com/BruksfildServices01/lawfirm-api/internal/seed"
	ucBooking "github.com/BruksfildServices01/lawfirm-api/internal/usecase/booking"
	ucContact "github.com/BruksfildServices01/lawfirm-api/internal/usecase/contact"
)

// Deps are the long-lived collaborators built once in main.
type Deps struct {
	DB       *gorm.DB
	Config   *config.Config
	Logger   logrus.FieldLogger
	Locker   booking.SlotLocker
	Notifier ucBooking.Notifier
}

// NewRouter builds the engine with the global middleware, health check and
// generic 404 in place, then registers the API routes.
func NewRouter(deps Deps) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.CORSMiddleware(deps.Config.CORSOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.NoRoute(func(c *gin.Context) {
		httperr.NotFound(c)
	})

	RegisterRoutes(r, deps)
	return r
}

func RegisterRoutes(r *gin.Engine, deps Deps) {

	// ======================================================
	// INFRA
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(deps.DB)
	contactRepo := infraRepo.NewContactGormRepository(deps.DB)
	testimonialRepo := infraRepo.NewTestimonialGormRepository(deps.DB)
	practiceAreaRepo := infraRepo.NewPracticeAreaGormRepository(deps.DB)

	// ======================================================
	// USE CASES
	// ======================================================
	getAvailabilityUC := ucBooking.NewGetAvailability(bookingRepo)
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		deps.Locker,
		deps.Notifier,
		deps.Logger,
	)
	createContactUC := ucContact.NewCreateContact(contactRepo, deps.Notifier)
	seeder := seed.NewSeeder(testimonialRepo, practiceAreaRepo, deps.Logger)

	// ======================================================
	// HANDLERS
	// ======================================================
	bookingHandler := handlers.NewBookingHandler(getAvailabilityUC, createBookingUC, deps.Logger)
	contentHandler := handlers.NewContentHandler(testimonialRepo, practiceAreaRepo, deps.Logger)
	contactHandler := handlers.NewContactHandler(createContactUC, deps.Logger)
	adminHandler := handlers.NewAdminHandler(seeder, deps.Logger)

	// ======================================================
	// PUBLIC
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/bookings", bookingHandler.Availability)
		api.POST("/bookings", bookingHandler.Create)

		api.GET("/testimonials", contentHandler.Testimonials)
		api.GET("/practice-areas", contentHandler.PracticeAreas)

		api.POST("/contact", contactHandler.Create)
	}

	// ======================================================
	// ADMIN
	// ======================================================
	admin := api.Group("/admin")
	admin.Use(middleware.AdminAuth(deps.Config.SecretKey))
	{
		admin.POST("/seed", adminHandler.Seed)
	}
}
