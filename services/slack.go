package services

import (
	"fmt"
	"log"
	"os"

	"github.com/slack-go/slack"
	"consult-auto-reply/models"
)

// slackClientFactory 테스트에서 클라이언트를 바꿔끼우기 위한 훅
var slackClientFactory = func() slackPoster {
	return slack.New(os.Getenv("SLACK_BOT_TOKEN"))
}

type slackPoster interface {
	PostMessage(channelID string, options ...slack.MsgOption) (string, string, error)
}

// NotifyAutoReplySent 자동응답 발송 사실을 운영 채널에 알린다.
// 채널 설정이 없으면 조용히 건너뛴다 (로컬 개발 환경).
func NotifyAutoReplySent(consultation models.Consultation) error {
	channel := os.Getenv("SLACK_OPS_CHANNEL")
	if channel == "" {
		log.Printf("SLACK_OPS_CHANNEL is not set. skip ops notification")
		return nil
	}

	variant := "운영시간 외"
	if consultation.WasHoliday {
		variant = "공휴일"
	}

	text := fmt.Sprintf("*🤖 자동응답 발송* (%s)\n*상담 ID*: %s\n*사용자*: %s\n*언어*: %s\n*문의 내용*: %s",
		variant, consultation.ID, consultation.UserID, consultation.Language, consultation.Message)

	client := slackClientFactory()
	_, _, err := client.PostMessage(channel, slack.MsgOptionText(text, false))
	if err != nil {
		return fmt.Errorf("slack ops notification failed: %w", err)
	}

	return nil
}
