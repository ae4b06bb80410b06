package main

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"regexp"
	"strings"
	"syscall"
	"time"

	"archery/client"
	"archery/config"
	"archery/controller"
	"archery/cron"
	"archery/docs"
	"archery/logger"
	"archery/service"

	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	ginprometheus "github.com/zsais/go-gin-prometheus"
	"gorm.io/gorm"
)

// @title           Archery Club API
// @version         1.0
// @description     Backend API for archery clubs, competitions, championships and scoring.

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	t := time.Now()

	cfg := config.Env()
	if err := logger.Init(logger.Config{Debug: cfg.LogDebug, LogToFile: cfg.LogToFile, LogsDir: cfg.LogDir}); err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.Log

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := config.InitDB()
	if err != nil {
		log.Fatalw("Failed to initialize database", "error", err)
	}
	services, err := buildServices(ctx, db)
	if err != nil {
		log.Fatalw("Failed to build services", "error", err)
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	if err := r.SetTrustedProxies(nil); err != nil {
		log.Fatalw("Failed to set trusted proxies", "error", err)
	}
	addLogger(r)
	addMetrics(r)
	addDocs(r)
	setCors(r, cfg.CorsOrigins)
	cacheStore := persistence.NewInMemoryStore(60 * time.Second)
	controller.SetRoutes(r, services, cacheStore)

	var handler http.Handler = r
	if cfg.CSRFKey != "" {
		handler = controller.CSRF([]byte(cfg.CSRFKey), config.IsProduction(), originHosts(cfg.CorsOrigins))(r)
	}

	interval := time.Duration(cfg.SnapshotIntervalSeconds) * time.Second
	go cron.SnapshotLoop(ctx, services.Performance, interval)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Errorw("Failed to shut down server", "error", err)
		}
	}()

	log.Infow("Server started", "addr", cfg.HTTPAddr, "startup", time.Since(t))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalw("Failed to start server", "error", err)
	}
}

func buildServices(ctx context.Context, db *gorm.DB) (*controller.Services, error) {
	cfg := config.Env()
	log := logger.Log

	var attempts service.AttemptCounter = service.NewMemoryAttemptCounter()
	redisClient, err := config.NewRedisClient(ctx)
	if err != nil {
		log.Warnw("redis unavailable, counting login failures in memory", "error", err)
	} else if redisClient != nil {
		attempts = service.NewRedisAttemptCounter(redisClient)
	}

	storage, err := client.NewStorageClient(cfg.StorageURL, cfg.StorageKey, cfg.StorageBucket)
	if err != nil {
		return nil, err
	}
	assets := service.NewAssetService(storage)

	eligibility := service.NewEligibilityService(db)
	interval := time.Duration(cfg.SnapshotIntervalSeconds) * time.Second
	return &controller.Services{
		Accounts:    service.NewAccountService(db, attempts, assets),
		Clubs:       service.NewClubService(db, assets),
		Categories:  service.NewCategoryService(db),
		Rounds:      service.NewRoundService(db),
		Events:      service.NewEventService(db, eligibility, assets),
		Eligibility: eligibility,
		Reviews:     service.NewReviewService(db, service.NewDecisionPublisher(), service.NewNotifier()),
		Scores:      service.NewScoreService(db),
		Performance: service.NewPerformanceService(db, 2*interval),
		Friends:     service.NewFriendService(db),
	}, nil
}

func addLogger(r *gin.Engine) {
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/api/metrics"},
	}))
}

func addMetrics(r *gin.Engine) {
	p := ginprometheus.NewPrometheus("gin")
	re := regexp.MustCompile(`\d+`)
	p.ReqCntURLLabelMappingFn = func(c *gin.Context) string {
		url := strings.Split(c.Request.URL.String(), "?")[0]
		url = strings.ReplaceAll(url, "self", "?")
		url = re.ReplaceAllString(url, "?")
		return strings.TrimPrefix(url, "/api")
	}
	p.MetricsPath = "/api/metrics"
	p.Use(r)
}

func addDocs(r *gin.Engine) {
	docs.SwaggerInfo.BasePath = "/api"
	r.GET("/api/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}

func setCors(r *gin.Engine, origins []string) {
	corsConfigGetOptions := cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", controller.CSRFHeader},
		ExposeHeaders:    []string{controller.CSRFHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	corsConfigOtherMethods := cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", controller.CSRFHeader},
		ExposeHeaders:    []string{controller.CSRFHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	getOptions := cors.New(corsConfigGetOptions)
	otherMethods := cors.New(corsConfigOtherMethods)

	r.Use(func(c *gin.Context) {
		if c.Request.Method == "OPTIONS" {
			// the preflighted method decides which policy applies
			requestedMethod := c.GetHeader("Access-Control-Request-Method")
			if requestedMethod == "GET" || requestedMethod == "OPTIONS" {
				getOptions(c)
			} else {
				otherMethods(c)
			}
			c.AbortWithStatus(204)
			return
		}

		if c.Request.Method == "GET" {
			getOptions(c)
		} else {
			otherMethods(c)
		}
	})
}

// originHosts turns CORS origins into the host list gorilla/csrf expects.
func originHosts(origins []string) []string {
	hosts := make([]string, 0, len(origins))
	for _, origin := range origins {
		u, err := url.Parse(origin)
		if err != nil || u.Host == "" {
			continue
		}
		hosts = append(hosts, u.Host)
	}
	return hosts
}
