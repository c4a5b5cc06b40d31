package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
)

// OutboundReply 채팅 제공자에게 보내는 자동응답 페이로드
type OutboundReply struct {
	UserID string `json:"user_id"`
	Text   string `json:"text"`
}

// ChatSendResponse 채팅 제공자 발송 API의 응답 바디
type ChatSendResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// SendAutoReply 렌더링된 자동응답 본문을 채팅 제공자 API로 발송한다
func SendAutoReply(userID, text string) error {
	apiURL := os.Getenv("CHAT_API_URL")
	if apiURL == "" {
		apiURL = "https://chat-api.example.com/v1/messages"
	}

	reply := OutboundReply{
		UserID: userID,
		Text:   text,
	}

	jsonData, err := json.Marshal(reply)
	if err != nil {
		return err
	}

	req, err := http.NewRequest("POST", apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}

	req.Header.Set("Authorization", "Bearer "+os.Getenv("CHAT_API_TOKEN"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)

	var sendResp ChatSendResponse
	if err := json.Unmarshal(bodyBytes, &sendResp); err != nil {
		return err
	}

	if !sendResp.OK {
		return fmt.Errorf("chat api error: %s", sendResp.Error)
	}

	return nil
}
