package main

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/nawabifest/backend/internal/config"
	"github.com/nawabifest/backend/internal/handler"
	"github.com/nawabifest/backend/internal/middleware"
	"github.com/nawabifest/backend/internal/repository"
	"github.com/nawabifest/backend/internal/service"
	"github.com/nawabifest/backend/pkg/database"
	"github.com/nawabifest/backend/pkg/email"
	"github.com/nawabifest/backend/pkg/logger"
	"github.com/nawabifest/backend/pkg/payment"
	"github.com/nawabifest/backend/pkg/qrcode"
	"github.com/nawabifest/backend/pkg/storage"
	"github.com/nawabifest/backend/pkg/utils"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	cfg := config.LoadConfig()

	appLogger, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer appLogger.Sync()

	// Database (runs migrations and seeds the fest program)
	db := database.NewDatabase()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	coinRepo := repository.NewCoinHistoryRepository(db)
	eventRepo := repository.NewEventRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	passRepo := repository.NewPassTierRepository(db)

	// Proof storage (Cloudflare R2)
	proofStorage, err := storage.NewR2Storage(cfg)
	if err != nil {
		log.Fatal("Failed to initialize R2 storage:", err)
	}

	// Email service
	emailService := email.NewEmailService(appLogger)

	// Stripe service
	stripeService := payment.NewStripeService(os.Getenv("STRIPE_SECRET_KEY"))

	// QR service for fest passes
	qrService := qrcode.NewQRService(cfg.FrontendURL)

	// Services
	authService := service.NewAuthService(userRepo, emailService)
	userService := service.NewUserService(userRepo, coinRepo)
	rewardService := service.NewRewardService(userRepo, cartRepo)
	referralService := service.NewReferralService(userRepo)
	eventService := service.NewEventService(eventRepo)
	cartService := service.NewCartService(cartRepo, eventRepo)
	teamService := service.NewTeamService(teamRepo, eventRepo, userRepo)
	passService := service.NewPassService(passRepo)
	orderService := service.NewOrderService(
		orderRepo,
		cartRepo,
		passRepo,
		userRepo,
		stripeService,
		proofStorage,
		emailService,
		qrService,
		appLogger,
	)
	adminService := service.NewAdminService(userRepo, appLogger)

	// Validator
	validator := utils.NewValidator()

	// Handlers
	authHandler := handler.NewAuthHandler(authService, validator)
	userHandler := handler.NewUserHandler(userService, validator)
	rewardHandler := handler.NewRewardHandler(rewardService, referralService, validator)
	eventHandler := handler.NewEventHandler(eventService)
	cartHandler := handler.NewCartHandler(cartService, validator)
	teamHandler := handler.NewTeamHandler(teamService, validator)
	orderHandler := handler.NewOrderHandler(orderService, passService, validator, appLogger)
	adminHandler := handler.NewAdminHandler(adminService, orderService, validator)

	// Router
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendURL,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, DELETE",
		AllowCredentials: true,
	}))
	app.Use(fiberlogger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        30,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	api := app.Group("/api")

	// Public routes
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/forgot-password", authHandler.ForgotPassword)
	auth.Post("/reset-password", authHandler.ResetPassword)
	auth.Post("/verify-email", authHandler.VerifyEmail)

	api.Get("/events", eventHandler.GetCatalog)
	api.Get("/events/:slug", eventHandler.GetBySlug)
	api.Get("/leaderboard", rewardHandler.Leaderboard)
	api.Get("/passes", orderHandler.GetPassTiers)

	// Stripe webhook (public, signature-verified)
	api.Post("/payments/webhook", orderHandler.HandleStripeWebhook)

	// Protected routes
	api.Use(middleware.AuthMiddleware())
	{
		user := api.Group("/user")
		user.Get("/profile", userHandler.GetMyProfile)
		user.Put("/profile", userHandler.UpdateProfile)
		user.Post("/change-password", userHandler.ChangePassword)
		user.Get("/coins", userHandler.GetMyCoins)

		api.Post("/rewards/claim", rewardHandler.Claim)

		cart := api.Group("/cart")
		cart.Get("/", cartHandler.GetCart)
		cart.Post("/", cartHandler.AddItem)
		cart.Delete("/:slug", cartHandler.RemoveItem)

		api.Post("/checkout", orderHandler.Checkout)

		orders := api.Group("/orders")
		orders.Get("/", orderHandler.GetMyOrders)
		orders.Post("/:id/proof", orderHandler.UploadPaymentProof)
		orders.Post("/:id/stripe-session", orderHandler.CreateStripeSession)
		orders.Get("/:id/pass", orderHandler.GetPassQR)

		teams := api.Group("/teams")
		teams.Post("/", teamHandler.CreateTeam)
		teams.Post("/join", teamHandler.JoinTeam)
		teams.Get("/:slug", teamHandler.GetMyTeam)

		// Admin back-office
		admin := api.Group("/admin", middleware.AdminMiddleware())
		admin.Get("/users", adminHandler.GetUsers)
		admin.Put("/users/:id", adminHandler.UpdateUser)
		admin.Post("/users/:id/coins", adminHandler.GrantCoins)
		admin.Delete("/users/:id", adminHandler.DeleteUser)
		admin.Get("/orders", adminHandler.GetOrders)
		admin.Post("/orders/:id/review", adminHandler.ReviewOrder)
	}

	appLogger.Info("starting server", zap.String("port", cfg.Port))
	log.Fatal(app.Listen(":" + cfg.Port))
}
