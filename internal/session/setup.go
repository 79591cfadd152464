package session

import (
	"log"

	"github.com/FundSpring/FS-Web/internal/db"
)

func Init() {
	if err := db.EnsureSchema(db.DB, "fs_web"); err != nil {
		log.Fatal("Failed to ensure schema fs_web: ", err)
	}

	if err := db.DB.AutoMigrate(&Session{}); err != nil {
		log.Fatal("Failed to auto-migrate tables", err)
	}
}
