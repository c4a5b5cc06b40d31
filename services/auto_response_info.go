package services

import "time"

// AutoResponseInfo 관리자 화면에 한 번에 내려주는 자동응답 스냅샷.
// 호출 시점의 상태와 언어별 안내문 미리보기, 공휴일 목록을 담는다.
type AutoResponseInfo struct {
	Status                   BusinessHoursStatus          `json:"status"`
	NextBusinessDayFormatted map[SupportedLanguage]string `json:"next_business_day_formatted"`
	OffHoursMessages         map[SupportedLanguage]string `json:"off_hours_messages"`
	HolidayMessages          map[SupportedLanguage]string `json:"holiday_messages"`
	SupportedLanguages       []SupportedLanguage          `json:"supported_languages"`
	HolidayDates             []string                     `json:"holiday_dates"`
}

// ComputeAutoResponseInfo 현재 시각 기준의 스냅샷을 계산한다
func ComputeAutoResponseInfo() (AutoResponseInfo, error) {
	return ComputeAutoResponseInfoAt(time.Now())
}

// ComputeAutoResponseInfoAt 주어진 시각 기준의 스냅샷 계산.
// 휴일 안내문 미리보기는 오늘이 공휴일이 아니어도 항상 렌더링할 수 있도록
// 상태의 다음 영업일이 없으면 오늘 기준 다음 영업일을 따로 구해 쓴다.
func ComputeAutoResponseInfoAt(now time.Time) (AutoResponseInfo, error) {
	status, err := CheckBusinessHoursInKoreaWithTime(now)
	if err != nil {
		return AutoResponseInfo{}, err
	}

	dateForHolidayMessage := status.NextBusinessDay
	if dateForHolidayMessage == nil {
		next, err := NextBusinessDay(status.TodayKorea)
		if err != nil {
			return AutoResponseInfo{}, err
		}
		dateForHolidayMessage = &next
	}

	formatted := make(map[SupportedLanguage]string, len(SupportedLanguages))
	offHours := make(map[SupportedLanguage]string, len(SupportedLanguages))
	holiday := make(map[SupportedLanguage]string, len(SupportedLanguages))

	for _, lang := range SupportedLanguages {
		f, err := FormatNextBusinessDayForLanguage(*dateForHolidayMessage, lang)
		if err != nil {
			return AutoResponseInfo{}, err
		}
		formatted[lang] = f

		off, err := GetAutoResponseMessage(lang, nil)
		if err != nil {
			return AutoResponseInfo{}, err
		}
		offHours[lang] = off

		hol, err := GetAutoResponseMessage(lang, &AutoResponseOptions{
			IsPublicHoliday:          true,
			NextBusinessDayFormatted: f,
		})
		if err != nil {
			return AutoResponseInfo{}, err
		}
		holiday[lang] = hol
	}

	return AutoResponseInfo{
		Status:                   status,
		NextBusinessDayFormatted: formatted,
		OffHoursMessages:         offHours,
		HolidayMessages:          holiday,
		SupportedLanguages:       SupportedLanguages,
		HolidayDates:             HolidayDates(),
	}, nil
}
