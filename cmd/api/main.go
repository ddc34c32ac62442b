package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	appanalytics "github.com/jhoicas/Hotel-api/internal/application/analytics"
	"github.com/jhoicas/Hotel-api/internal/application/auth"
	"github.com/jhoicas/Hotel-api/internal/application/cache"
	"github.com/jhoicas/Hotel-api/internal/application/document"
	"github.com/jhoicas/Hotel-api/internal/application/export"
	"github.com/jhoicas/Hotel-api/internal/application/realtime"
	"github.com/jhoicas/Hotel-api/internal/application/reservation"
	"github.com/jhoicas/Hotel-api/internal/application/usecase"
	"github.com/jhoicas/Hotel-api/internal/domain/pricing"
	infraexport "github.com/jhoicas/Hotel-api/internal/infrastructure/export"
	infrapdf "github.com/jhoicas/Hotel-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Hotel-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/Hotel-api/internal/infrastructure/redis"
	"github.com/jhoicas/Hotel-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/Hotel-api/internal/interfaces/http"
	"github.com/jhoicas/Hotel-api/pkg/config"
	"github.com/jhoicas/Hotel-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB, postgres.PoolOptions{AppName: cfg.App.Name})
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	roomTypeRepo := postgres.NewRoomTypeRepository(pool)
	roomRepo := postgres.NewRoomRepository(pool)
	guestRepo := postgres.NewGuestRepository(pool)
	documentRepo := postgres.NewGuestDocumentRepository(pool)
	reservationRepo := postgres.NewReservationRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Caché de lecturas: Redis si está configurado; si no, deshabilitada.
	readCache := cache.Disabled()
	cacheTable := cache.DefaultTable()
	if cfg.Redis.Addr != "" {
		rdb, err := infraredis.NewClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("conexión a Redis")
		}
		defer rdb.Close()
		ttl := time.Duration(cfg.Redis.CacheTTLSeconds) * time.Second
		readCache = cache.New(infraredis.NewCacheStore(rdb, cfg.App.Name), ttl, cacheTable, log.Named("cache"))
		log.Info().Str("addr", cfg.Redis.Addr).Dur("ttl", ttl).Msg("caché Redis habilitada")
	}

	objectStorage, err := storage.NewMinioStorage(ctx, cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Str("endpoint", cfg.Storage.Endpoint).Msg("almacenamiento de objetos")
	}

	calc := pricing.NewCalculator(cfg.Pricing.TaxRate)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo)
	roomTypeUC := usecase.NewRoomTypeUseCase(roomTypeRepo, readCache)
	roomUC := usecase.NewRoomUseCase(roomRepo, roomTypeRepo, readCache)
	guestUC := usecase.NewGuestUseCase(guestRepo, readCache)
	documentUC := document.NewUseCase(documentRepo, guestRepo, objectStorage, readCache, document.Config{
		MaxBytes:     cfg.Storage.MaxUploadBytes(),
		SignedURLTTL: time.Duration(cfg.Storage.SignedURLSeconds) * time.Second,
	}, log.Named("documents"))
	reservationUC := reservation.NewUseCase(reservationRepo, roomRepo, roomTypeRepo, guestRepo, txRunner, calc, readCache)

	// PDF: confirmación de reserva
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name, "es")
	reservationPDF := reservation.NewPDFUseCase(reservationRepo, roomRepo, roomTypeRepo, guestRepo, calc, pdfGenerator)

	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo, readCache)
	exportUC := export.NewUseCase(roomRepo, guestRepo, reservationRepo,
		infraexport.CSV{}, infraexport.JSON{}, infraexport.XLSX{},
	).WithLogger(log.Named("export"))

	// Cambios de tablas → invalidación de caché (LISTEN/NOTIFY)
	var sub *realtime.Subscription
	if cfg.Realtime.Enabled {
		feed := postgres.NewChangeFeed(pool, cfg.Realtime.Channel, log.Named("change_feed"))
		sub = realtime.NewSubscription(feed, cacheTable.Tables(), readCache.OnChange, log.Named("realtime"))
		sub.Start(ctx)
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    int(cfg.Storage.MaxUploadBytes()) + 1024*1024,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Hotel API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		UserUC:         userUC,
		RoomTypeUC:     roomTypeUC,
		RoomUC:         roomUC,
		GuestUC:        guestUC,
		DocumentUC:     documentUC,
		ReservationUC:  reservationUC,
		ReservationPDF: reservationPDF,
		DashboardUC:    dashboardUC,
		ExportUC:       exportUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	<-ctx.Done()

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	if sub != nil {
		sub.Stop()
	}

	log.Info().Msg("aplicación detenida")
}
