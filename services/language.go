package services

// SupportedLanguage 상담 자동응답이 지원하는 언어 코드
type SupportedLanguage string

const (
	LangKorean     SupportedLanguage = "ko"
	LangEnglish    SupportedLanguage = "en"
	LangThai       SupportedLanguage = "th"
	LangChineseTrd SupportedLanguage = "zh-Hant"
	LangJapanese   SupportedLanguage = "ja"
	LangHindi      SupportedLanguage = "hi"
	LangArabic     SupportedLanguage = "ar"
	LangRussian    SupportedLanguage = "ru"
	LangTagalog    SupportedLanguage = "tl"
)

// SupportedLanguages 지원 언어 전체 목록 (표시 순서 고정)
var SupportedLanguages = []SupportedLanguage{
	LangKorean,
	LangEnglish,
	LangThai,
	LangChineseTrd,
	LangJapanese,
	LangHindi,
	LangArabic,
	LangRussian,
	LangTagalog,
}

// DefaultLanguage 검증되지 않은 언어 코드가 들어왔을 때의 폴백
const DefaultLanguage = LangEnglish

// IsSupportedLanguage 주어진 언어 코드가 지원 대상인지 확인한다
func IsSupportedLanguage(lang string) bool {
	for _, l := range SupportedLanguages {
		if string(l) == lang {
			return true
		}
	}
	return false
}
