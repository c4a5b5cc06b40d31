package services

import (
	"fmt"
	"sort"
	"time"
)

// KoreaLocation 한국 표준시 (UTC+9, 서머타임 없음)
var KoreaLocation = time.FixedZone("KST", 9*60*60)

// nextBusinessDayMaxScan 다음 영업일 탐색 상한 (일 단위).
// 공휴일 테이블이 정상이라면 이 범위를 넘는 연휴는 존재하지 않는다.
const nextBusinessDayMaxScan = 30

// koreanHolidays 연도별 한국 공휴일 테이블 (YYYY-MM-DD).
// 대체공휴일과 선거일, 임시공휴일을 포함한다. 런타임에 수정하지 않으며
// 다음 연도 공휴일이 확정되면 배포로 갱신한다.
var koreanHolidays = map[int][]string{
	2024: {
		"2024-01-01", // 신정
		"2024-02-09", // 설날 연휴
		"2024-02-10", // 설날
		"2024-02-11", // 설날 연휴
		"2024-02-12", // 대체공휴일 (설날)
		"2024-03-01", // 삼일절
		"2024-04-10", // 제22대 국회의원 선거일
		"2024-05-05", // 어린이날
		"2024-05-06", // 대체공휴일 (어린이날)
		"2024-05-15", // 부처님오신날
		"2024-06-06", // 현충일
		"2024-08-15", // 광복절
		"2024-09-16", // 추석 연휴
		"2024-09-17", // 추석
		"2024-09-18", // 추석 연휴
		"2024-10-01", // 국군의 날 (임시공휴일)
		"2024-10-03", // 개천절
		"2024-10-09", // 한글날
		"2024-12-25", // 성탄절
	},
	2025: {
		"2025-01-01", // 신정
		"2025-01-27", // 임시공휴일
		"2025-01-28", // 설날 연휴
		"2025-01-29", // 설날
		"2025-01-30", // 설날 연휴
		"2025-03-01", // 삼일절
		"2025-03-03", // 대체공휴일 (삼일절)
		"2025-05-05", // 어린이날·부처님오신날
		"2025-05-06", // 대체공휴일
		"2025-06-03", // 제21대 대통령 선거일
		"2025-06-06", // 현충일
		"2025-08-15", // 광복절
		"2025-10-03", // 개천절
		"2025-10-05", // 추석 연휴
		"2025-10-06", // 추석
		"2025-10-07", // 추석 연휴
		"2025-10-08", // 대체공휴일 (추석)
		"2025-10-09", // 한글날
		"2025-12-25", // 성탄절
	},
	2026: {
		"2026-01-01", // 신정
		"2026-02-16", // 설날 연휴
		"2026-02-17", // 설날
		"2026-02-18", // 설날 연휴
		"2026-03-01", // 삼일절
		"2026-03-02", // 대체공휴일 (삼일절)
		"2026-05-05", // 어린이날
		"2026-05-24", // 부처님오신날
		"2026-05-25", // 대체공휴일 (부처님오신날)
		"2026-06-01", // 전국동시지방선거일
		"2026-06-06", // 현충일
		"2026-08-15", // 광복절
		"2026-08-17", // 대체공휴일 (광복절)
		"2026-09-24", // 추석 연휴
		"2026-09-25", // 추석
		"2026-09-26", // 추석 연휴
		"2026-09-28", // 대체공휴일 (추석)
		"2026-10-03", // 개천절
		"2026-10-05", // 대체공휴일 (개천절)
		"2026-10-09", // 한글날
		"2026-12-25", // 성탄절
	},
}

// holidaySet 날짜 문자열 조회용 집합. 패키지 로드 시 한 번 구성된다.
var holidaySet = buildHolidaySet()

func buildHolidaySet() map[string]bool {
	set := make(map[string]bool)
	for _, dates := range koreanHolidays {
		for _, d := range dates {
			set[d] = true
		}
	}
	return set
}

// HolidayDates 등록된 모든 공휴일을 날짜 오름차순으로 반환한다
func HolidayDates() []string {
	years := make([]int, 0, len(koreanHolidays))
	for y := range koreanHolidays {
		years = append(years, y)
	}
	sort.Ints(years)

	dates := make([]string, 0, len(holidaySet))
	for _, y := range years {
		dates = append(dates, koreanHolidays[y]...)
	}
	return dates
}

// IsPublicHoliday 주어진 시각의 한국 기준 날짜가 공휴일인지 확인한다
func IsPublicHoliday(t time.Time) bool {
	return holidaySet[t.In(KoreaLocation).Format("2006-01-02")]
}

// isWeekend 토요일 또는 일요일 여부
func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// NextBusinessDay from 다음날부터 주말도 공휴일도 아닌 가장 이른 날짜를 찾는다.
// 연휴와 주말이 이어지는 경우 하루씩 전진하며, 탐색이 상한을 넘으면
// 공휴일 테이블 이상으로 보고 에러를 반환한다.
func NextBusinessDay(from time.Time) (time.Time, error) {
	day := from.In(KoreaLocation)
	day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, KoreaLocation)

	for i := 0; i < nextBusinessDayMaxScan; i++ {
		day = day.AddDate(0, 0, 1)
		if !isWeekend(day) && !IsPublicHoliday(day) {
			return day, nil
		}
	}

	return time.Time{}, fmt.Errorf("no business day found within %d days after %s: holiday table is broken",
		nextBusinessDayMaxScan, from.In(KoreaLocation).Format("2006-01-02"))
}
