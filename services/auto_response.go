package services

import (
	"fmt"
	"strings"
)

// NextBusinessDayPlaceholder 휴일 안내문에서 다음 영업일 문자열로 치환되는 토큰.
// 휴일 템플릿마다 정확히 한 번 등장해야 한다.
const NextBusinessDayPlaceholder = "{nextBusinessDay}"

// AutoResponseOptions 자동응답 선택 옵션. 공휴일 컨텍스트가 있을 때만 휴일 안내문이 선택된다.
type AutoResponseOptions struct {
	IsPublicHoliday          bool
	NextBusinessDayFormatted string
}

// offHoursMessages 운영시간 외 안내문. 배포에 포함된 정적 번역이며 런타임 번역은 하지 않는다.
var offHoursMessages = map[SupportedLanguage]string{
	LangKorean:     "안녕하세요, 메디컬 투어 상담센터입니다. 지금은 상담 운영시간이 아닙니다. 운영시간은 평일 오전 9시부터 오후 6시까지(한국 시간)입니다. 남겨주신 문의는 운영시간에 순서대로 답변드리겠습니다.",
	LangEnglish:    "Hello! Thank you for contacting us. Our consultation team is currently offline. Business hours are Monday to Friday, 9:00 AM to 6:00 PM (Korea Standard Time). We will reply to your message in order during business hours.",
	LangThai:       "สวัสดีค่ะ ขอบคุณที่ติดต่อเรา ขณะนี้อยู่นอกเวลาทำการของทีมให้คำปรึกษา เวลาทำการคือวันจันทร์ถึงวันศุกร์ 9:00 - 18:00 น. (เวลาเกาหลี) เราจะตอบกลับข้อความของคุณตามลำดับในเวลาทำการค่ะ",
	LangChineseTrd: "您好！感謝您的來訊。目前為非諮詢服務時間。服務時間為週一至週五上午9點至下午6點（韓國時間）。我們將於服務時間內依序回覆您的訊息。",
	LangJapanese:   "こんにちは。お問い合わせありがとうございます。現在は相談受付時間外です。受付時間は平日午前9時から午後6時まで（韓国時間）です。いただいたメッセージには受付時間内に順番にご返信いたします。",
	LangHindi:      "नमस्ते! हमसे संपर्क करने के लिए धन्यवाद। अभी हमारी परामर्श टीम उपलब्ध नहीं है। कार्य समय सोमवार से शुक्रवार, सुबह 9 बजे से शाम 6 बजे तक (कोरिया समय) है। कार्य समय में हम आपके संदेश का क्रमानुसार उत्तर देंगे।",
	LangArabic:     "مرحباً! شكراً لتواصلكم معنا. فريق الاستشارات غير متاح حالياً. ساعات العمل من الاثنين إلى الجمعة، من 9 صباحاً حتى 6 مساءً (بتوقيت كوريا). سنرد على رسالتكم بالترتيب خلال ساعات العمل.",
	LangRussian:    "Здравствуйте! Спасибо за обращение. Сейчас нерабочее время консультационного центра. Часы работы: с понедельника по пятницу, с 9:00 до 18:00 (по корейскому времени). Мы ответим на ваше сообщение в порядке очереди в рабочее время.",
	LangTagalog:    "Kumusta! Salamat sa pagmemensahe. Wala po kami sa oras ng konsultasyon ngayon. Ang aming oras ng serbisyo ay Lunes hanggang Biyernes, 9:00 AM hanggang 6:00 PM (oras ng Korea). Sasagutin namin ang inyong mensahe sa loob ng oras ng serbisyo.",
}

// holidayMessages 공휴일 안내문. {nextBusinessDay} 토큰이 실제 날짜로 치환된다.
var holidayMessages = map[SupportedLanguage]string{
	LangKorean:     "안녕하세요, 메디컬 투어 상담센터입니다. 오늘은 한국 공휴일로 상담센터가 운영되지 않습니다. {nextBusinessDay}부터 순서대로 답변드리겠습니다. 양해 부탁드립니다.",
	LangEnglish:    "Hello! Thank you for contacting us. Today is a public holiday in Korea, so our consultation team is unavailable. We will get back to you starting {nextBusinessDay}. Thank you for your patience.",
	LangThai:       "สวัสดีค่ะ วันนี้เป็นวันหยุดนักขัตฤกษ์ของเกาหลี ทีมให้คำปรึกษาจึงไม่สามารถตอบกลับได้ เราจะติดต่อกลับตั้งแต่วันที่ {nextBusinessDay} เป็นต้นไป ขออภัยในความไม่สะดวกค่ะ",
	LangChineseTrd: "您好！今天是韓國的公休日，諮詢團隊暫停服務。我們將於{nextBusinessDay}起依序回覆您，感謝您的耐心等候。",
	LangJapanese:   "こんにちは。本日は韓国の祝日のため、相談センターはお休みです。{nextBusinessDay}より順番にご返信いたします。ご了承ください。",
	LangHindi:      "नमस्ते! आज कोरिया में सार्वजनिक अवकाश है, इसलिए हमारी परामर्श टीम उपलब्ध नहीं है। हम {nextBusinessDay} से आपको उत्तर देंगे। धन्यवाद।",
	LangArabic:     "مرحباً! اليوم عطلة رسمية في كوريا، لذا فريق الاستشارات غير متاح. سنعاود التواصل معكم ابتداءً من {nextBusinessDay}. شكراً لتفهمكم.",
	LangRussian:    "Здравствуйте! Сегодня в Корее государственный праздник, поэтому консультационный центр не работает. Мы ответим вам начиная с {nextBusinessDay}. Спасибо за понимание.",
	LangTagalog:    "Kumusta! Public holiday po ngayon sa Korea kaya hindi available ang aming consultation team. Sasagutin namin kayo simula {nextBusinessDay}. Salamat sa inyong pag-unawa.",
}

// HasAutoResponseMessage 언어 코드가 자동응답 템플릿에 등록되어 있는지 확인한다.
// 외부에서 온 검증되지 않은 언어 코드는 반드시 이 함수를 먼저 통과시켜야 한다.
func HasAutoResponseMessage(lang string) bool {
	_, ok := offHoursMessages[SupportedLanguage(lang)]
	return ok
}

// GetAutoResponseMessage 언어에 맞는 자동응답 안내문을 반환한다.
// 공휴일 컨텍스트(IsPublicHoliday + 포맷된 다음 영업일)가 있으면 휴일 안내문에
// 날짜를 치환해 반환하고, 그 외에는 운영시간 외 안내문을 그대로 반환한다.
func GetAutoResponseMessage(lang SupportedLanguage, opts *AutoResponseOptions) (string, error) {
	offHours, ok := offHoursMessages[lang]
	if !ok {
		return "", fmt.Errorf("unsupported language: %s", lang)
	}

	if opts != nil && opts.IsPublicHoliday && opts.NextBusinessDayFormatted != "" {
		holiday := holidayMessages[lang]
		return strings.Replace(holiday, NextBusinessDayPlaceholder, opts.NextBusinessDayFormatted, 1), nil
	}

	return offHours, nil
}

// ValidateAutoResponseTemplates 템플릿 테이블의 정합성을 검사한다.
// 지원 언어마다 두 안내문이 모두 있어야 하고, 운영시간 외 안내문에는 토큰이 없어야 하며
// 휴일 안내문에는 토큰이 정확히 한 번 있어야 한다. 서버 기동 시 한 번 호출한다.
func ValidateAutoResponseTemplates() error {
	for _, lang := range SupportedLanguages {
		offHours, ok := offHoursMessages[lang]
		if !ok {
			return fmt.Errorf("missing off-hours message for language %s", lang)
		}
		if strings.Contains(offHours, NextBusinessDayPlaceholder) {
			return fmt.Errorf("off-hours message for language %s must not contain %s", lang, NextBusinessDayPlaceholder)
		}

		holiday, ok := holidayMessages[lang]
		if !ok {
			return fmt.Errorf("missing holiday message for language %s", lang)
		}
		if n := strings.Count(holiday, NextBusinessDayPlaceholder); n != 1 {
			return fmt.Errorf("holiday message for language %s must contain %s exactly once (found %d)",
				lang, NextBusinessDayPlaceholder, n)
		}
	}
	return nil
}
