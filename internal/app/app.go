package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/alexedwards/scs/goredisstore"
	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"github.com/riandyrn/otelchi"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/contrib/bridges/otelslog"

	"github.com/cinemadiroma/booking-gateway/internal/catalog"
	"github.com/cinemadiroma/booking-gateway/internal/domain"
	appvalidator "github.com/cinemadiroma/booking-gateway/internal/validator"
	"github.com/cinemadiroma/booking-gateway/internal/vcs"
)

var (
	version = vcs.Version()
)

type application struct {
	config         config
	logger         *slog.Logger
	redis          *redis.Client
	validator      *validator.Validate
	sessionManager *scs.SessionManager
	layout         domain.Layout
	pricePerSeat   decimal.Decimal

	catalogRepo domain.CatalogRepository
	accountSvc  domain.AccountService
}

type config struct {
	port int
	env  string
	redis struct {
		url          string
		maxOpenConns int
		maxIdleConns int
		maxIdleTime  time.Duration
	}
	catalog struct {
		baseURL string
		timeout time.Duration
	}
	booking struct {
		pricePerSeat       string
		maxSeatsPerBooking int
	}
	otelCollectorUrl string
}

func Run() error {
	var cfg config

	flag.IntVar(&cfg.port, "port", envInt("PORT", 3000), "server port")
	flag.StringVar(&cfg.env, "env", envString("ENV", "dev"), "Environment (dev|staging|prod)")

	flag.StringVar(&cfg.redis.url, "redis-url", envString("REDIS_URL", ""), "Redis URL")
	flag.IntVar(&cfg.redis.maxOpenConns, "redis-max-open-conns", 25, "Redis max open connections")
	flag.IntVar(&cfg.redis.maxIdleConns, "redis-max-idle-conns", 10, "Redis max idle connections")
	flag.DurationVar(&cfg.redis.maxIdleTime, "redis-max-idle-time", 2*time.Minute, "Redis max idle time for connections")

	flag.StringVar(&cfg.catalog.baseURL, "catalog-url", envString("CATALOG_URL", "http://localhost:8000"), "Movie catalog API base URL")
	flag.DurationVar(&cfg.catalog.timeout, "catalog-timeout", 10*time.Second, "Movie catalog API request timeout")

	flag.StringVar(&cfg.booking.pricePerSeat, "price-per-seat", envString("PRICE_PER_SEAT", "8.50"), "Ticket price per seat")
	flag.IntVar(&cfg.booking.maxSeatsPerBooking, "max-seats-per-booking", 0, "Max seats per booking (0 = unbounded)")

	flag.StringVar(&cfg.otelCollectorUrl, "otel-collector-url", envString("OTEL_COLLECTOR_URL", ""), "OpenTelemetry collector URL")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	pricePerSeat, err := decimal.NewFromString(cfg.booking.pricePerSeat)
	if err != nil {
		return fmt.Errorf("invalid price-per-seat %q: %w", cfg.booking.pricePerSeat, err)
	}

	redisClient, err := newRedisClient(cfg)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	catalogClient := catalog.New(cfg.catalog.baseURL, cfg.catalog.timeout)

	app := &application{
		config:         cfg,
		logger:         logger,
		redis:          redisClient,
		validator:      appvalidator.NewValidator(),
		sessionManager: newSessionManager(redisClient),
		layout:         domain.DefaultLayout(),
		pricePerSeat:   pricePerSeat,
		catalogRepo:    catalogClient,
		accountSvc:     catalogClient,
	}

	shutdownTelemetry, err := app.initTelemetry()
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	if cfg.otelCollectorUrl != "" {
		app.logger = slog.New(NewMultiHandler(
			slog.NewTextHandler(os.Stdout, nil),
			otelslog.NewHandler("booking-gateway"),
		))
	}

	return app.run()
}

func newSessionManager(client *redis.Client) *scs.SessionManager {
	sessionManager := scs.New()

	sessionManager.Store = goredisstore.New(client)
	sessionManager.IdleTimeout = 20 * time.Minute
	sessionManager.Cookie.Name = "session_id"

	return sessionManager
}

func newRedisClient(cfg config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:            cfg.redis.url,
		MaxIdleConns:    cfg.redis.maxIdleConns,
		MaxActiveConns:  cfg.redis.maxOpenConns,
		ConnMaxIdleTime: cfg.redis.maxIdleTime,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := rdb.Ping(ctx).Err()
	if err != nil {
		return nil, err
	}

	if err := redisotel.InstrumentTracing(rdb); err != nil {
		return nil, err
	}

	return rdb, nil
}

func (app *application) run() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.port),
		Handler:      app.routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := srv.Shutdown(ctx)
		if err != nil {
			shutdownError <- err
		}

		shutdownError <- nil
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

func (app *application) routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)

	r.Use(middleware.RequestID)
	r.Use(otelchi.Middleware("booking-gateway", otelchi.WithChiRoutes(r)))
	r.Use(app.requestLogger)
	r.Use(app.recoverPanic)
	r.Use(app.sessionManager.LoadAndSave)

	r.Get("/healthcheck", app.GetHealth)

	r.Get("/movies", app.GetMovies)
	r.Get("/movies/{movieID}", app.GetMovieDetails)
	r.Get("/movies/{movieID}/seat-map", app.GetSeatMap)
	r.Post("/movies/{movieID}/selection", app.CreateSelection)

	r.Get("/cinemas", app.GetCinemas)

	r.Route("/selection", func(r chi.Router) {
		r.Get("/", app.GetSelection)
		r.Delete("/", app.DeleteSelection)
		r.Post("/seats", app.ToggleSeat)
		r.Post("/checkout", app.CheckoutHandoff)
	})

	r.Get("/checkout/order", app.GetCheckoutOrder)

	r.Post("/auth/register", app.RegisterUser)
	r.Post("/auth/login", app.Login)
	r.Post("/auth/logout", app.Logout)
	r.Post("/auth/password-reset", app.RequestPasswordReset)

	r.With(app.requireAuthentication).Route("/users/me", func(r chi.Router) {
		r.Get("/", app.GetCurrentUser)
		r.Patch("/", app.UpdateUser)
	})

	return r
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}

	return n
}
