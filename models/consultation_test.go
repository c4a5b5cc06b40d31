package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupConsultationTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("fail to open test db: %v", err)
	}

	if err := db.AutoMigrate(&Consultation{}); err != nil {
		t.Fatalf("fail to migrate test db: %v", err)
	}

	return db
}

func TestConsultation_CreateAndRead(t *testing.T) {
	db := setupConsultationTestDB(t)

	consultation := Consultation{
		ID:            "test-consultation",
		UserID:        "user-1",
		Language:      "ko",
		Message:       "치아 미백 상담 가능한가요?",
		Status:        "auto_replied",
		AutoReplyText: "안녕하세요, 메디컬 투어 상담센터입니다.",
		WasHoliday:    true,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	err := db.Create(&consultation).Error
	assert.NoError(t, err)

	var saved Consultation
	err = db.Where("id = ?", "test-consultation").First(&saved).Error
	assert.NoError(t, err)

	assert.Equal(t, "user-1", saved.UserID)
	assert.Equal(t, "ko", saved.Language)
	assert.Equal(t, "auto_replied", saved.Status)
	assert.True(t, saved.WasHoliday)
	assert.NotEmpty(t, saved.AutoReplyText)
}

func TestConsultation_StatusFilter(t *testing.T) {
	db := setupConsultationTestDB(t)

	rows := []Consultation{
		{ID: "c1", UserID: "u1", Language: "en", Message: "hi", Status: "pending"},
		{ID: "c2", UserID: "u2", Language: "ko", Message: "문의", Status: "auto_replied"},
		{ID: "c3", UserID: "u3", Language: "ja", Message: "質問", Status: "auto_replied"},
	}
	for _, row := range rows {
		assert.NoError(t, db.Create(&row).Error)
	}

	var autoReplied []Consultation
	err := db.Where("status = ?", "auto_replied").Find(&autoReplied).Error
	assert.NoError(t, err)
	assert.Len(t, autoReplied, 2)
}

func TestConsultation_SoftDelete(t *testing.T) {
	db := setupConsultationTestDB(t)

	consultation := Consultation{ID: "c1", UserID: "u1", Language: "en", Message: "hi", Status: "pending"}
	assert.NoError(t, db.Create(&consultation).Error)

	assert.NoError(t, db.Delete(&consultation).Error)

	// 소프트 삭제 후 일반 조회에서는 보이지 않는다
	var found Consultation
	err := db.Where("id = ?", "c1").First(&found).Error
	assert.Error(t, err)

	// Unscoped 조회에서는 남아 있다
	err = db.Unscoped().Where("id = ?", "c1").First(&found).Error
	assert.NoError(t, err)
}
