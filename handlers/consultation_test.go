package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/h2non/gock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"consult-auto-reply/models"
	"consult-auto-reply/services"
)

func setupConsultationHandlerTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("fail to open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.Consultation{}); err != nil {
		t.Fatalf("fail to migrate test db: %v", err)
	}

	r := gin.New()
	r.POST("/webhook/consultation", HandleConsultationWebhook(db))
	return r, db
}

func postConsultation(r *gin.Engine, payload ConsultationPayload) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", "/webhook/consultation", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandleConsultationWebhook(t *testing.T) {
	defer gock.Off()

	r, db := setupConsultationHandlerTest(t)

	// 운영 알림은 비활성화, 채팅 발송은 목으로 대체
	os.Unsetenv("SLACK_OPS_CHANNEL")
	os.Setenv("CHAT_API_URL", "https://chat-api.example.com/v1/messages")
	defer os.Unsetenv("CHAT_API_URL")

	gock.New("https://chat-api.example.com").
		Post("/v1/messages").
		Persist().
		Reply(200).
		JSON(map[string]interface{}{"ok": true})

	w := postConsultation(r, ConsultationPayload{
		UserID:   "user-1",
		Language: "ko",
		Message:  "임플란트 비용 문의드립니다",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		ID          string `json:"id"`
		AutoReplied bool   `json:"auto_replied"`
		Reply       string `json:"reply"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ID)

	// 핸들러와 같은 기준으로 기대값을 계산한다 (실제 시계 사용)
	status, err := services.CheckBusinessHoursInKorea()
	assert.NoError(t, err)
	assert.Equal(t, !status.IsBusinessHours, resp.AutoReplied)

	var saved models.Consultation
	assert.NoError(t, db.Where("id = ?", resp.ID).First(&saved).Error)
	assert.Equal(t, "user-1", saved.UserID)
	assert.Equal(t, "ko", saved.Language)

	if resp.AutoReplied {
		assert.Equal(t, "auto_replied", saved.Status)
		assert.Equal(t, resp.Reply, saved.AutoReplyText)
		assert.NotEmpty(t, resp.Reply)
	} else {
		assert.Equal(t, "pending", saved.Status)
		assert.Empty(t, saved.AutoReplyText)
	}
}

func TestHandleConsultationWebhook_UnsupportedLanguageFallsBack(t *testing.T) {
	defer gock.Off()

	r, db := setupConsultationHandlerTest(t)

	os.Unsetenv("SLACK_OPS_CHANNEL")
	os.Setenv("CHAT_API_URL", "https://chat-api.example.com/v1/messages")
	defer os.Unsetenv("CHAT_API_URL")

	gock.New("https://chat-api.example.com").
		Post("/v1/messages").
		Persist().
		Reply(200).
		JSON(map[string]interface{}{"ok": true})

	w := postConsultation(r, ConsultationPayload{
		UserID:   "user-2",
		Language: "fr", // 미지원 언어
		Message:  "Bonjour",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		ID string `json:"id"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	// 영어로 폴백해 저장된다
	var saved models.Consultation
	assert.NoError(t, db.Where("id = ?", resp.ID).First(&saved).Error)
	assert.Equal(t, string(services.DefaultLanguage), saved.Language)
}

func TestHandleConsultationWebhook_InvalidPayload(t *testing.T) {
	r, _ := setupConsultationHandlerTest(t)

	tests := []struct {
		name    string
		payload ConsultationPayload
	}{
		{
			name:    "user_id 누락",
			payload: ConsultationPayload{Language: "ko", Message: "문의"},
		},
		{
			name:    "message 누락",
			payload: ConsultationPayload{UserID: "user-1", Language: "ko"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postConsultation(r, tt.payload)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestHandleConsultationWebhook_MalformedJSON(t *testing.T) {
	r, _ := setupConsultationHandlerTest(t)

	req := httptest.NewRequest("POST", "/webhook/consultation", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
