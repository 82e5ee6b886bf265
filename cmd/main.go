package main

import (
	"log"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/KENOx7/qayib/config"
	"github.com/KENOx7/qayib/database"
	"github.com/KENOx7/qayib/handlers"
	"github.com/KENOx7/qayib/routes"
	"github.com/KENOx7/qayib/session"
)

func main() {
	_ = godotenv.Load() // .env is optional
	cfg := config.Load()

	database.Connect(cfg)

	store := newSessionStore(cfg)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())
	e.Validator = handlers.NewValidator()

	routes.Register(e, store, cfg.SessionTTL)
	e.Static("/", cfg.PublicDir)

	addr := ":" + cfg.AppPort
	log.Printf("server listening at %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

func newSessionStore(cfg *config.Config) session.Store {
	if cfg.SessionBackend == "redis" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		return session.NewRedisStore(client, cfg.SessionTTL)
	}
	return session.NewMemoryStore(cfg.SessionTTL)
}
