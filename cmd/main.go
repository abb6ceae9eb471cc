package main

import (
	"log"
	"os"

	"github.com/akksi/picky/config"
	"github.com/akksi/picky/routes"
	"github.com/akksi/picky/services"
	"github.com/akksi/picky/utils"
)

func main() {
	config.LoadEnv()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer config.CloseDB(db)

	utils.InitS3()
	utils.InitSES()

	photos, err := services.NewPhotoService()
	if err != nil {
		log.Printf("photo labeling disabled: %v", err)
	}

	hub := services.NewRealtimeHub()

	r := routes.SetupRouter(db, hub, photos)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
