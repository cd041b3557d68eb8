package main

import (
	"context"
	"gotaskr/constants"
	"gotaskr/controllers"
	"gotaskr/infra"
	"gotaskr/middlewares"
	"gotaskr/models"
	"gotaskr/repositories"
	"gotaskr/services"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func setupRouter(db *gorm.DB, cfg infra.Config) *gin.Engine {

	authRepository := repositories.NewAuthRepository(db)
	tokenRepository := repositories.NewTokenRepository(db)
	authService := services.NewAuthService(authRepository, tokenRepository, cfg.SecretKey, time.Duration(cfg.TokenExpiryMin)*time.Minute)
	authController := controllers.NewAuthController(authService)

	taskRepository := repositories.NewTaskRepository(db)
	taskService := services.NewTaskService(taskRepository)
	taskController := controllers.NewTaskController(taskService)
	apiController := controllers.NewAPIController(taskService)

	r := gin.Default()
	r.Use(cors.Default())

	guestRouter := r.Group("/", middlewares.GuestMiddleware(authService))
	authRouter := r.Group("/", middlewares.AuthMiddleware(authService))

	guestRouter.GET("", authController.LoginForm)
	guestRouter.POST("", authController.Login)
	guestRouter.GET("/register/", authController.RegisterForm)
	guestRouter.POST("/register/", authController.Register)

	authRouter.GET("/logout/", authController.Logout)
	authRouter.GET("/tasks/", taskController.List)
	authRouter.POST("/tasks/", taskController.Create)
	authRouter.GET("/complete/:id/", taskController.Complete)
	authRouter.GET("/delete/:id/", taskController.Delete)

	apiRouter := r.Group("/api/v1")
	apiRouter.GET("/tasks/", apiController.FindAll)
	apiRouter.GET("/tasks/:id", apiController.FindById)

	r.NoRoute(func(ctx *gin.Context) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrNothingHere})
	})

	return r
}

func initDB(cfg infra.Config) *gorm.DB {
	db := infra.SetupDB(cfg)

	if cfg.AutoMigrate {
		if err := db.AutoMigrate(&models.User{}, &models.Task{}, &models.BlacklistedToken{}); err != nil {
			panic("Failed to migrate database")
		}
	}

	return db
}

func main() {
	infra.Initialize()

	cfg, err := infra.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db := initDB(cfg)
	r := setupRouter(db, cfg)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
	log.Println("Server exited")
}
