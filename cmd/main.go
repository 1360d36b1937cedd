package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eaglebank/bank-api/internal/cache"
	"github.com/eaglebank/bank-api/internal/config"
	"github.com/eaglebank/bank-api/internal/handler"
	"github.com/eaglebank/bank-api/internal/idgen"
	"github.com/eaglebank/bank-api/internal/middleware"
	"github.com/eaglebank/bank-api/internal/repository"
	"github.com/eaglebank/bank-api/internal/service"
	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"
)

func main() {
	cfg := config.Load()

	// Database connection (source of truth)
	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	if err := repository.EnsureSchema(db); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	// Redis connection (read model cache)
	redis, err := cache.Connect(cfg.RedisAddr, "", cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redis.Close()

	ids := idgen.New()

	userRepo := repository.NewUserRepository(db, redis)
	accountRepo := repository.NewAccountRepository(db, redis)

	userSvc := service.NewUserService(userRepo, ids)
	accountSvc := service.NewAccountService(accountRepo, ids, cfg.Currency)

	userHandler := handler.NewUserHandler(userSvc)
	accountHandler := handler.NewAccountHandler(accountSvc)

	// Setup router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Identity())

	users := router.Group("/v1/users")
	{
		users.POST("", userHandler.CreateUser)
		users.GET("/:userId", userHandler.GetUser)
		users.PATCH("/:userId", userHandler.UpdateUser)
		users.DELETE("/:userId", userHandler.DeleteUser)
	}

	accounts := router.Group("/v1/accounts")
	{
		accounts.POST("", accountHandler.CreateAccount)
		accounts.GET("/:accountId", accountHandler.GetAccount)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		log.Println("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}()

	log.Printf("Bank API starting on port %s", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Failed to start server: %v", err)
	}
}
