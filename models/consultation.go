package models

import (
	"time"

	"gorm.io/gorm"
)

// Consultation 인바운드 상담 메시지 한 건.
// 운영시간 외에 수신되면 자동응답이 기록되고, 운영시간 내에는 상담원 답변을 기다린다.
type Consultation struct {
	ID            string `gorm:"primaryKey"`
	UserID        string `gorm:"index"` // 채팅 제공자 쪽 사용자 ID
	Language      string // 자동응답에 사용한 언어 코드 (검증 후 폴백 반영)
	Message       string
	Status        string // "pending", "auto_replied", "answered"
	AutoReplyText string // 실제로 발송된 자동응답 본문 (발송된 경우만)
	WasHoliday    bool   // 수신 시점이 공휴일이었는지
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}
