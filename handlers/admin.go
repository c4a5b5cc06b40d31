package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"consult-auto-reply/models"
	"consult-auto-reply/services"
)

// HandleAutoResponseInfo 관리자 패널용 자동응답 스냅샷을 반환한다
func HandleAutoResponseInfo() gin.HandlerFunc {
	return func(c *gin.Context) {
		info, err := services.ComputeAutoResponseInfo()
		if err != nil {
			log.Printf("auto response info error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute auto response info"})
			return
		}

		c.JSON(http.StatusOK, info)
	}
}

// HandleListConsultations 최근 상담 목록을 반환한다. status 쿼리로 필터링할 수 있다.
func HandleListConsultations(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var consultations []models.Consultation

		query := db.Order("created_at desc").Limit(100)
		if status := c.Query("status"); status != "" {
			query = query.Where("status = ?", status)
		}

		if err := query.Find(&consultations).Error; err != nil {
			log.Printf("consultation list error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"consultations": consultations})
	}
}

// HandleAnswerConsultation 상담원이 응대를 마친 상담을 answered 상태로 바꾼다
func HandleAnswerConsultation(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var consultation models.Consultation
		if err := db.Where("id = ?", id).First(&consultation).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "consultation not found"})
			return
		}

		consultation.Status = "answered"
		consultation.UpdatedAt = time.Now()
		if err := db.Save(&consultation).Error; err != nil {
			log.Printf("consultation update error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"id": consultation.ID, "status": consultation.Status})
	}
}
