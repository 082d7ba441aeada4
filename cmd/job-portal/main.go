package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/MMoizSiddiqui/JOB-PORTAL-fullstack/internal/auth"
	"github.com/MMoizSiddiqui/JOB-PORTAL-fullstack/internal/cache"
	"github.com/MMoizSiddiqui/JOB-PORTAL-fullstack/internal/config"
	"github.com/MMoizSiddiqui/JOB-PORTAL-fullstack/internal/db"
	"github.com/MMoizSiddiqui/JOB-PORTAL-fullstack/internal/handlers"
	"github.com/MMoizSiddiqui/JOB-PORTAL-fullstack/internal/models"
	"github.com/MMoizSiddiqui/JOB-PORTAL-fullstack/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	dbConn, err := db.Connect(cfg.DBURL)
	if err != nil {
		log.Fatal(err)
	}

	err = dbConn.AutoMigrate(
		&models.User{},
		&models.Job{},
		&models.Application{},
		&models.Review{},
	)
	if err != nil {
		log.Fatal(err)
	}

	st := store.New(dbConn)
	if _, err := st.EnsureAdmin(context.Background(), "Admin", cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatal(err)
	}

	h := handlers.New(st, auth.NewManager(cfg.JWTSecret), cache.New(cfg.RedisAddr), cfg.UploadDir)

	r := gin.Default()
	handlers.SetupRoutes(r, h)

	log.Printf("Job portal listening on %s", cfg.HTTPPort)
	if err := r.Run(cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
