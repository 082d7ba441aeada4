// scripts/migrate.go
package scripts

import (
	"context"
	"log"

	"github.com/MMoizSiddiqui/JOB-PORTAL-fullstack/internal/config"
	"github.com/MMoizSiddiqui/JOB-PORTAL-fullstack/internal/db"
	"github.com/MMoizSiddiqui/JOB-PORTAL-fullstack/internal/models"
	"github.com/MMoizSiddiqui/JOB-PORTAL-fullstack/internal/store"
)

func Migrate() {
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

	log.Println("Migrations complete")
}
