package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yourusername/quizhub-api/internal/config"
	"github.com/yourusername/quizhub-api/internal/domain/entity"
	"github.com/yourusername/quizhub-api/internal/handler"
	"github.com/yourusername/quizhub-api/internal/middleware"
	pgRepo "github.com/yourusername/quizhub-api/internal/repository/postgres"
	redisRepo "github.com/yourusername/quizhub-api/internal/repository/redis"
	"github.com/yourusername/quizhub-api/internal/service"
	"github.com/yourusername/quizhub-api/pkg/auth"
	"github.com/yourusername/quizhub-api/pkg/database"
)

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Загрузка конфигурации из %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к PostgreSQL
	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	// Применяем миграции
	if err := database.MigrateDB(db); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к Redis
	redisClient, err := database.NewUniversalRedisClient(cfg.Redis)
	if err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		os.Exit(1)
	}
	log.Println("Successfully connected to Redis")

	// Инициализируем репозитории
	userRepo := pgRepo.NewUserRepo(db)
	categoryRepo := pgRepo.NewCategoryRepo(db)
	questionRepo := pgRepo.NewQuestionRepo(db)
	optionRepo := pgRepo.NewOptionRepo(db)
	quizRepo := pgRepo.NewQuizRepo(db)
	assignmentRepo := pgRepo.NewAssignmentRepo(db)
	resultRepo := pgRepo.NewResultRepo(db)

	cacheRepo, err := redisRepo.NewCacheRepo(redisClient)
	if err != nil {
		log.Printf("Failed to initialize CacheRepo: %v", err)
		os.Exit(1)
	}

	// Инициализируем JWT сервис
	jwtService, err := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpirationMin, cfg.JWT.Issuer, cfg.JWT.Audience)
	if err != nil {
		log.Printf("Failed to initialize JWTService: %v", err)
		os.Exit(1)
	}

	// Сервис уведомлений: Resend при наличии ключа, иначе заглушка
	var emailService service.EmailService
	if cfg.Email.ResendAPIKey != "" {
		emailService, err = service.NewResendEmailService(cfg.Email.ResendAPIKey, cfg.Email.From)
		if err != nil {
			log.Printf("Failed to initialize ResendEmailService: %v", err)
			os.Exit(1)
		}
		log.Println("Email notifications enabled (Resend)")
	} else {
		emailService = &service.NoopEmailService{}
		log.Println("Email notifications disabled (no RESEND_API_KEY)")
	}

	// Инициализируем сервисы
	authService, err := service.NewAuthService(userRepo, jwtService)
	if err != nil {
		log.Printf("Failed to initialize AuthService: %v", err)
		os.Exit(1)
	}
	userService := service.NewUserService(userRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	questionService := service.NewQuestionService(questionRepo, categoryRepo)
	optionService := service.NewOptionService(optionRepo, questionRepo)
	quizService := service.NewQuizService(quizRepo, questionRepo, categoryRepo, userRepo, assignmentRepo, resultRepo, emailService)
	resultService := service.NewResultService(db, quizRepo, assignmentRepo, resultRepo, cacheRepo)
	dashboardService := service.NewDashboardService(assignmentRepo, resultRepo, cacheRepo)

	// Инициализируем обработчики
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	questionHandler := handler.NewQuestionHandler(questionService)
	optionHandler := handler.NewOptionHandler(optionService)
	quizHandler := handler.NewQuizHandler(quizService)
	userQuizHandler := handler.NewUserQuizHandler(quizService, resultService)
	resultHandler := handler.NewResultHandler(resultService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	authMiddleware := middleware.NewAuthMiddleware(jwtService)
	rateLimiter := middleware.NewRateLimiter(redisClient)

	isProduction := gin.Mode() == gin.ReleaseMode

	router := gin.Default()

	// Настройка доверенных прокси для корректной работы c.ClientIP()
	// В production (GIN_MODE=release): не доверяем прокси (защита от IP spoofing)
	// В development: доверяем localhost
	if isProduction {
		if err := router.SetTrustedProxies(nil); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	} else {
		if err := router.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	}

	// Настройка CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Настраиваем маршруты API
	api := router.Group("/api")
	{
		// Аутентификация — со строгим rate limit против перебора паролей
		authGroup := api.Group("/auth")
		authGroup.Use(rateLimiter.Limit(middleware.StrictAuthRateLimitConfig()))
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}

		// Административные маршруты
		admin := api.Group("/")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(entity.RoleAdmin))
		{
			users := admin.Group("/users")
			{
				users.GET("", userHandler.ListUsers)
			}

			categories := admin.Group("/categories")
			{
				categories.POST("", categoryHandler.CreateCategory)
				categories.GET("", categoryHandler.ListCategories)
				categories.GET("/:id", middleware.ExtractUintParam("id", "categoryID"), categoryHandler.GetCategory)
				categories.PUT("/:id", middleware.ExtractUintParam("id", "categoryID"), categoryHandler.UpdateCategory)
				categories.DELETE("/:id", middleware.ExtractUintParam("id", "categoryID"), categoryHandler.DeleteCategory)
			}

			questions := admin.Group("/questions")
			{
				questions.POST("", questionHandler.CreateQuestion)
				questions.GET("", questionHandler.ListQuestions)
				questions.GET("/:id", middleware.ExtractUintParam("id", "questionID"), questionHandler.GetQuestion)
				questions.PUT("/:id", middleware.ExtractUintParam("id", "questionID"), questionHandler.UpdateQuestion)
				questions.DELETE("/:id", middleware.ExtractUintParam("id", "questionID"), questionHandler.DeleteQuestion)
				questions.GET("/:id/options", middleware.ExtractUintParam("id", "questionID"), optionHandler.ListOptionsByQuestion)
			}

			options := admin.Group("/options")
			{
				options.POST("", optionHandler.CreateOption)
				options.GET("/:id", middleware.ExtractUintParam("id", "optionID"), optionHandler.GetOption)
				options.PUT("/:id", middleware.ExtractUintParam("id", "optionID"), optionHandler.UpdateOption)
				options.DELETE("/:id", middleware.ExtractUintParam("id", "optionID"), optionHandler.DeleteOption)
			}

			quizzes := admin.Group("/quizzes")
			{
				quizzes.POST("", quizHandler.CreateQuiz)
				quizzes.GET("", quizHandler.ListQuizzes)
				quizzes.GET("/all-assigned", quizHandler.ListAllAssigned)
				quizzes.GET("/all-assigned/export", quizHandler.ExportAllAssigned)
				quizzes.GET("/:quizId", middleware.ExtractUintParam("quizId", "quizID"), quizHandler.GetQuiz)
				quizzes.PUT("/:quizId", middleware.ExtractUintParam("quizId", "quizID"), quizHandler.UpdateQuiz)
				quizzes.DELETE("/:quizId", middleware.ExtractUintParam("quizId", "quizID"), quizHandler.DeleteQuiz)
				quizzes.POST("/:quizId/assign/:userId",
					middleware.ExtractUintParam("quizId", "quizID"),
					middleware.ExtractUintParam("userId", "targetUserID"),
					quizHandler.AssignQuiz)
				quizzes.DELETE("/:quizId/assign/:userId",
					middleware.ExtractUintParam("quizId", "quizID"),
					middleware.ExtractUintParam("userId", "targetUserID"),
					quizHandler.UnassignQuiz)
			}
		}

		// Пользовательские маршруты
		user := api.Group("/user")
		user.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(entity.RoleUser))
		{
			user.GET("/dashboard/summary", dashboardHandler.Summary)

			userQuizzes := user.Group("/quizzes")
			{
				userQuizzes.GET("/my-assigned", userQuizHandler.ListMyAssigned)
				userQuizzes.GET("/:id/take", middleware.ExtractUintParam("id", "quizID"), userQuizHandler.TakeQuiz)
				userQuizzes.POST("/:id/submit", middleware.ExtractUintParam("id", "quizID"), userQuizHandler.SubmitQuiz)
			}

			userResults := user.Group("/results")
			{
				userResults.GET("/my-results", resultHandler.ListMyResults)
				userResults.GET("/:id", middleware.ExtractUintParam("id", "resultID"), resultHandler.GetResult)
			}
		}
	}

	// Настраиваем HTTP сервер с тайм-аутами для защиты от slow client attacks
	readTimeout := cfg.Server.ReadTimeout
	if readTimeout <= 0 {
		readTimeout = 15
	}
	writeTimeout := cfg.Server.WriteTimeout
	if writeTimeout <= 0 {
		writeTimeout = 15
	}
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(readTimeout) * time.Second,
		WriteTimeout: time.Duration(writeTimeout) * time.Second,
	}

	// Запускаем сервер в горутине
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
		}
	}()

	// Ждем сигнала остановки
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Контекст с таймаутом для graceful shutdown сервера
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		os.Exit(1)
	}

	if err := redisClient.Close(); err != nil {
		log.Printf("Error closing Redis client: %v", err)
	}

	log.Println("Server exited properly")
}
