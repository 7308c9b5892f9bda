package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/practicas-api/internal/application/auth"
	"github.com/jhoicas/practicas-api/internal/application/ports"
	"github.com/jhoicas/practicas-api/internal/application/solicitud"
	"github.com/jhoicas/practicas-api/internal/application/usecase"
	"github.com/jhoicas/practicas-api/internal/domain/repository"
	"github.com/jhoicas/practicas-api/internal/infrastructure/email"
	"github.com/jhoicas/practicas-api/internal/infrastructure/memory"
	"github.com/jhoicas/practicas-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/practicas-api/internal/infrastructure/pdf"
	"github.com/jhoicas/practicas-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/practicas-api/internal/interfaces/http"
	"github.com/jhoicas/practicas-api/pkg/config"
	"github.com/jhoicas/practicas-api/pkg/logger"
	"github.com/jhoicas/practicas-api/pkg/token"
)

const swaggerFile = "./docs/swagger.json"

// repos agrupa los puertos de persistencia del backend elegido (postgres o memoria).
type repos struct {
	solicitudes repository.EmpresaSolicitudRepository
	mensajes    repository.EmpresaMensajeRepository
	empresas    repository.EmpresaRepository
	contactos   repository.ContactoEmpresaRepository
	users       repository.UserRepository
	tx          solicitud.TxRunner
	close       func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		App:   cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("storage", cfg.Storage).
		Str("mail", cfg.Mail.Provider).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		secret, err := token.New()
		if err != nil {
			log.Fatal().Err(err).Msg("generar JWT_SECRET temporal")
		}
		cfg.JWT.Secret = secret
		log.Warn().Msg("JWT_SECRET vacío: se usa un secreto aleatorio, los tokens no sobreviven a un reinicio")
	}

	ctx := context.Background()
	r, err := openStorage(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar almacenamiento")
	}
	defer r.close()

	var mailer ports.Mailer
	switch cfg.Mail.Provider {
	case "sendgrid":
		mailer = email.NewSendgridMailer(cfg.Mail.SendgridAPIKey, cfg.App.Name, cfg.Mail.FromName, cfg.Mail.FromAddress)
	default:
		mailer = email.NewLogMailer(log.Zerolog())
	}

	prom := metrics.New("practicas")

	solicitudUC := solicitud.NewUseCase(solicitud.Deps{
		Solicitudes: r.solicitudes,
		Mensajes:    r.mensajes,
		TxRunner:    r.tx,
		Mailer:      mailer,
		Links:       cfg.Portal,
		Metrics:     prom,
		Logger:      log.Zerolog(),
	})
	pdfUC := solicitud.NewPDFUseCase(r.solicitudes, r.mensajes, cfg.Portal, infrapdf.NewMarotoPDFGenerator(cfg.Mail.FromName))
	empresaUC := usecase.NewEmpresaUseCase(r.empresas, r.contactos)
	authUC := auth.NewAuthUseCase(r.users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(httpRouter.RequestLogger(log.Zerolog(), prom))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Prácticas API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "storage": cfg.Storage})
	})
	app.Get("/metrics", adaptor.HTTPHandler(prom.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		SolicitudUC: solicitudUC,
		PDFUC:       pdfUC,
		EmpresaUC:   empresaUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
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

func openStorage(ctx context.Context, cfg *config.Config, log *logger.Logger) (*repos, error) {
	if cfg.Storage == "memory" {
		log.Warn().Msg("STORAGE=memory: los datos se pierden al reiniciar")
		st := memory.NewStore()
		return &repos{
			solicitudes: st.Solicitudes(),
			mensajes:    st.Mensajes(),
			empresas:    st.Empresas(),
			contactos:   st.Contactos(),
			users:       st.Users(),
			tx:          st,
			close:       func() {},
		}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		log.Info().Msg("migraciones aplicadas")
	}
	return &repos{
		solicitudes: postgres.NewEmpresaSolicitudRepository(pool),
		mensajes:    postgres.NewEmpresaMensajeRepository(pool),
		empresas:    postgres.NewEmpresaRepository(pool),
		contactos:   postgres.NewContactoEmpresaRepository(pool),
		users:       postgres.NewUserRepository(pool),
		tx:          postgres.NewTxRunner(pool),
		close:       pool.Close,
	}, nil
}
