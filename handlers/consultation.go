package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"consult-auto-reply/models"
	"consult-auto-reply/services"
)

// ConsultationPayload 채팅 제공자가 보내주는 인바운드 상담 메시지
type ConsultationPayload struct {
	UserID   string `json:"user_id"`
	Language string `json:"language"`
	Message  string `json:"message"`
}

// HandleConsultationWebhook 인바운드 상담 메시지를 수신한다.
// 운영시간 외(또는 공휴일)에는 자동응답을 기록·발송하고, 운영시간 내에는 상담원 응대를 기다린다.
func HandleConsultationWebhook(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload ConsultationPayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}

		if payload.UserID == "" || payload.Message == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id and message are required"})
			return
		}

		// 사용자 프로필에서 온 언어 코드는 검증 후 사용, 미지원이면 영어로 폴백
		lang := services.SupportedLanguage(payload.Language)
		if !services.HasAutoResponseMessage(payload.Language) {
			log.Printf("unsupported language %q from user %s. falling back to %s",
				payload.Language, payload.UserID, services.DefaultLanguage)
			lang = services.DefaultLanguage
		}

		status, err := services.CheckBusinessHoursInKorea()
		if err != nil {
			log.Printf("business hours check error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "business hours check failed"})
			return
		}

		consultation := models.Consultation{
			ID:         uuid.NewString(),
			UserID:     payload.UserID,
			Language:   string(lang),
			Message:    payload.Message,
			Status:     "pending",
			WasHoliday: status.IsPublicHoliday,
			CreatedAt:  time.Now(),
			UpdatedAt:  time.Now(),
		}

		if status.IsBusinessHours {
			if err := db.Create(&consultation).Error; err != nil {
				log.Printf("consultation insert failed: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
				return
			}

			log.Printf("consultation registered for agents: %s (user: %s)", consultation.ID, consultation.UserID)
			c.JSON(http.StatusOK, gin.H{"id": consultation.ID, "auto_replied": false})
			return
		}

		// 운영시간 외: 공휴일이면 다음 영업일이 들어간 휴일 안내문, 아니면 일반 안내문
		var opts *services.AutoResponseOptions
		if status.IsPublicHoliday && status.NextBusinessDay != nil {
			formatted, err := services.FormatNextBusinessDayForLanguage(*status.NextBusinessDay, lang)
			if err != nil {
				log.Printf("next business day format error: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "format error"})
				return
			}
			opts = &services.AutoResponseOptions{
				IsPublicHoliday:          true,
				NextBusinessDayFormatted: formatted,
			}
		}

		replyText, err := services.GetAutoResponseMessage(lang, opts)
		if err != nil {
			log.Printf("auto response message error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "message error"})
			return
		}

		consultation.Status = "auto_replied"
		consultation.AutoReplyText = replyText

		if err := db.Create(&consultation).Error; err != nil {
			log.Printf("consultation insert failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		if err := services.SendAutoReply(consultation.UserID, replyText); err != nil {
			// 발송 실패는 기록만 남긴다. 메시지는 운영시간에 상담원이 직접 응대한다.
			log.Printf("auto reply send failed (consultation: %s): %v", consultation.ID, err)
		}

		if err := services.NotifyAutoReplySent(consultation); err != nil {
			log.Printf("ops notification failed (consultation: %s): %v", consultation.ID, err)
		}

		log.Printf("auto reply sent: %s (user: %s, language: %s, holiday: %v)",
			consultation.ID, consultation.UserID, consultation.Language, consultation.WasHoliday)

		c.JSON(http.StatusOK, gin.H{
			"id":           consultation.ID,
			"auto_replied": true,
			"reply":        replyText,
		})
	}
}
