package main

import (
	"log"

	"shopops/backend/foundation/web"
	"shopops/backend/internal/auth"
	"shopops/backend/internal/commands"
	"shopops/backend/internal/pkg/config"
	"shopops/backend/internal/pkg/repository/postgresql"
	"shopops/backend/internal/router"

	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalln("config:", err)
	}

	postgresDB := postgresql.NewDB(
		cfg.DBUsername,
		cfg.DBPassword,
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBName,
		cfg.DisableTLS,
	)

	commands.MigrateUP(postgresDB)

	redisDB := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	authenticator := auth.New(cfg.JWTKey)

	r := router.NewRouter(web.NewApp(), postgresDB, redisDB, authenticator, cfg)

	if err := r.Init(); err != nil {
		log.Fatalln("server:", err)
	}
}
