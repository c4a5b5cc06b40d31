package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"consult-auto-reply/handlers"
	"consult-auto-reply/models"
	"consult-auto-reply/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found. using environment variables")
	}

	// 번역 누락은 기동 시점에 잡는다
	if err := services.ValidateAutoResponseTemplates(); err != nil {
		log.Fatalf("auto response template validation failed: %v", err)
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "consultations.db"
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		log.Fatal(err)
	}
	if err := db.AutoMigrate(&models.Consultation{}); err != nil {
		log.Fatal(err)
	}

	r := gin.Default()
	r.POST("/webhook/consultation", handlers.HandleConsultationWebhook(db))
	r.GET("/api/admin/auto-response", handlers.HandleAutoResponseInfo())
	r.GET("/api/admin/consultations", handlers.HandleListConsultations(db))
	r.POST("/api/admin/consultations/:id/answer", handlers.HandleAnswerConsultation(db))

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
