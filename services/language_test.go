package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// 지원 언어 집합은 닫힌 집합이다. 언어를 추가하면 템플릿과 날짜 포맷도 함께 추가해야
// 하므로, 목록이 바뀌면 이 테스트가 먼저 알려준다.
func TestSupportedLanguages_ClosedSet(t *testing.T) {
	expected := []SupportedLanguage{"ko", "en", "th", "zh-Hant", "ja", "hi", "ar", "ru", "tl"}
	assert.Equal(t, expected, SupportedLanguages)
}

func TestDefaultLanguage(t *testing.T) {
	assert.Equal(t, LangEnglish, DefaultLanguage)
	assert.True(t, IsSupportedLanguage(string(DefaultLanguage)))
}

// 지원 언어마다 템플릿 두 종과 날짜 포맷이 빠짐없이 존재한다
func TestSupportedLanguages_FullyWired(t *testing.T) {
	assert.NoError(t, ValidateAutoResponseTemplates())

	for _, lang := range SupportedLanguages {
		assert.True(t, HasAutoResponseMessage(string(lang)), "language: %s", lang)
	}
}
