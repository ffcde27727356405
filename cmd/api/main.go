package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/dailycare-store/docs"
	"github.com/jhoicas/dailycare-store/internal/application/analytics"
	"github.com/jhoicas/dailycare-store/internal/application/auth"
	"github.com/jhoicas/dailycare-store/internal/application/ports"
	"github.com/jhoicas/dailycare-store/internal/application/usecase"
	"github.com/jhoicas/dailycare-store/internal/domain/storefront"
	"github.com/jhoicas/dailycare-store/internal/infrastructure/feed"
	"github.com/jhoicas/dailycare-store/internal/infrastructure/mail"
	"github.com/jhoicas/dailycare-store/internal/infrastructure/media"
	"github.com/jhoicas/dailycare-store/internal/infrastructure/pdf"
	"github.com/jhoicas/dailycare-store/internal/infrastructure/postgres"
	"github.com/jhoicas/dailycare-store/internal/infrastructure/sms"
	httpRouter "github.com/jhoicas/dailycare-store/internal/interfaces/http"
	"github.com/jhoicas/dailycare-store/pkg/config"
	"github.com/jhoicas/dailycare-store/pkg/logger"
	"github.com/jhoicas/dailycare-store/pkg/telemetry"
)

const storeName = "PureGlow"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.App.Name, cfg.Telemetry)
	if err != nil {
		log.Warn().Err(err).Msg("telemetría desactivada")
	}
	defer func() { _ = shutdownTracing(context.Background()) }()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	cartRepo := postgres.NewCartRepository(pool)
	wishlistRepo := postgres.NewWishlistRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	otpRepo := postgres.NewOTPRepository(pool)
	resetRepo := postgres.NewPasswordResetRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Integraciones opcionales: sin credenciales quedan en nil y los casos de uso degradan.
	var smsSender ports.SMSSender
	if s := sms.NewTwilioSender(cfg.Twilio); s != nil {
		smsSender = s
	} else {
		log.Warn().Msg("Twilio no configurado: los OTP se devolverán como otp_debug")
	}
	var mailer ports.Mailer
	if m := mail.NewSMTPMailer(cfg.SMTP); m != nil {
		mailer = m
	} else {
		log.Warn().Msg("SMTP no configurado: los enlaces de recuperación se devolverán como reset_debug")
	}
	var uploader ports.ImageUploader
	cld, err := media.NewCloudinaryUploader(cfg.Cloudinary)
	switch {
	case err != nil:
		log.Error().Err(err).Msg("cliente de Cloudinary")
	case cld != nil:
		uploader = cld
	default:
		log.Warn().Msg("Cloudinary no configurado: /api/upload/image responderá 500")
	}

	// Una sola cola de notificaciones compartida por carrito, pedidos y administración.
	notifications := storefront.NewNotificationFeed()

	authUC := auth.NewAuthUseCase(userRepo, otpRepo, resetRepo, smsSender, mailer, auth.Config{
		JWT: auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		},
		PublicURL: cfg.App.PublicURL,
	}, log)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, feed.NewRSSBuilder(storeName, cfg.App.PublicURL))
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	cartUC := usecase.NewCartUseCase(cartRepo, productRepo, notifications)
	wishlistUC := usecase.NewWishlistUseCase(wishlistRepo, productRepo)
	orderUC := usecase.NewOrderUseCase(txRunner, orderRepo, userRepo, pdf.NewOrderInvoiceGenerator(storeName), notifications, log)
	userUC := usecase.NewUserUseCase(userRepo)
	adminUC := usecase.NewAdminUseCase(orderRepo, notifications)
	uploadUC := usecase.NewUploadUseCase(uploader, log)
	statsUC := analytics.NewStatsUseCase(statsRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    6 * 1024 * 1024,
		ErrorHandler: httpRouter.ErrorHandler(log),
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Daily Care Store API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		ProductUC:  productUC,
		CategoryUC: categoryUC,
		CartUC:     cartUC,
		WishlistUC: wishlistUC,
		OrderUC:    orderUC,
		UserUC:     userUC,
		AdminUC:    adminUC,
		UploadUC:   uploadUC,
		StatsUC:    statsUC,
		JWTSecret:  cfg.JWT.Secret,
		Log:        log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
