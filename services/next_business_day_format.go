package services

import (
	"fmt"
	"time"
)

// 언어별 월 이름 테이블. 표시 전용이며 날짜 값 자체는 바뀌지 않는다.
var (
	thaiMonths = [12]string{
		"มกราคม", "กุมภาพันธ์", "มีนาคม", "เมษายน", "พฤษภาคม", "มิถุนายน",
		"กรกฎาคม", "สิงหาคม", "กันยายน", "ตุลาคม", "พฤศจิกายน", "ธันวาคม",
	}
	hindiMonths = [12]string{
		"जनवरी", "फ़रवरी", "मार्च", "अप्रैल", "मई", "जून",
		"जुलाई", "अगस्त", "सितंबर", "अक्टूबर", "नवंबर", "दिसंबर",
	}
	arabicMonths = [12]string{
		"يناير", "فبراير", "مارس", "أبريل", "مايو", "يونيو",
		"يوليو", "أغسطس", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر",
	}
	russianMonths = [12]string{
		"января", "февраля", "марта", "апреля", "мая", "июня",
		"июля", "августа", "сентября", "октября", "ноября", "декабря",
	}
	tagalogMonths = [12]string{
		"Enero", "Pebrero", "Marso", "Abril", "Mayo", "Hunyo",
		"Hulyo", "Agosto", "Setyembre", "Oktubre", "Nobyembre", "Disyembre",
	}
)

// FormatNextBusinessDayForLanguage 다음 영업일 날짜를 언어별 표기 관례로 렌더링한다.
// 지원 언어 전체에 대해 항상 비어 있지 않은 문자열을 반환하며,
// 미지원 언어 코드는 호출부 버그로 보고 에러를 반환한다.
func FormatNextBusinessDayForLanguage(date time.Time, lang SupportedLanguage) (string, error) {
	d := date.In(KoreaLocation)

	switch lang {
	case LangKorean:
		return d.Format("2006년 1월 2일"), nil
	case LangEnglish:
		return d.Format("January 2, 2006"), nil
	case LangThai:
		return fmt.Sprintf("%d %s %d", d.Day(), thaiMonths[d.Month()-1], d.Year()), nil
	case LangChineseTrd, LangJapanese:
		return d.Format("2006年1月2日"), nil
	case LangHindi:
		return fmt.Sprintf("%d %s %d", d.Day(), hindiMonths[d.Month()-1], d.Year()), nil
	case LangArabic:
		return fmt.Sprintf("%d %s %d", d.Day(), arabicMonths[d.Month()-1], d.Year()), nil
	case LangRussian:
		return fmt.Sprintf("%d %s %d г.", d.Day(), russianMonths[d.Month()-1], d.Year()), nil
	case LangTagalog:
		return fmt.Sprintf("%s %d, %d", tagalogMonths[d.Month()-1], d.Day(), d.Year()), nil
	}

	return "", fmt.Errorf("unsupported language: %s", lang)
}
