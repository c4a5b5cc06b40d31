package services

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// 상담센터 운영시간 (한국 시간, 평일만). 배포 단위 상수이며 런타임에 바꾸지 않는다.
const (
	BusinessHoursStart = "09:00"
	BusinessHoursEnd   = "18:00"
)

// BusinessHoursStatus 현재 시점의 운영시간 판정 결과. 호출마다 새로 만들어지는 불변 값이다.
type BusinessHoursStatus struct {
	IsBusinessHours bool       `json:"is_business_hours"`
	IsPublicHoliday bool       `json:"is_public_holiday"`
	CurrentTime     string     `json:"current_time"`
	NextBusinessDay *time.Time `json:"next_business_day,omitempty"` // 오늘이 공휴일일 때만 설정
	TodayKorea      time.Time  `json:"today_korea"`
}

// CheckBusinessHoursInKorea 현재 시각 기준으로 한국 상담센터가 운영 중인지 판정한다
func CheckBusinessHoursInKorea() (BusinessHoursStatus, error) {
	return CheckBusinessHoursInKoreaWithTime(time.Now())
}

// CheckBusinessHoursInKoreaWithTime 주어진 시각 기준의 판정. 테스트에서 시각을 고정할 때 사용한다.
// 시각은 호출 시점에 한 번만 읽으며, 판정 도중 다시 읽지 않는다.
func CheckBusinessHoursInKoreaWithTime(now time.Time) (BusinessHoursStatus, error) {
	koreaNow := now.In(KoreaLocation)
	todayKorea := time.Date(koreaNow.Year(), koreaNow.Month(), koreaNow.Day(), 0, 0, 0, 0, KoreaLocation)

	isHoliday := IsPublicHoliday(todayKorea)
	isWeekday := !isWeekend(todayKorea)

	withinWindow := isWeekday && isWithinBusinessWindow(koreaNow)

	status := BusinessHoursStatus{
		IsBusinessHours: withinWindow && !isHoliday,
		IsPublicHoliday: isHoliday,
		CurrentTime:     koreaNow.Format("2006-01-02 15:04:05 (KST)"),
		TodayKorea:      todayKorea,
	}

	// 공휴일인 경우에만 안내용 다음 영업일을 채운다
	if isHoliday {
		next, err := NextBusinessDay(todayKorea)
		if err != nil {
			return BusinessHoursStatus{}, err
		}
		status.NextBusinessDay = &next
	}

	return status, nil
}

// isWithinBusinessWindow 시각이 운영시간 구간 [시작, 종료) 안인지 확인한다.
// 종료 시각 정각은 운영시간에 포함하지 않는다.
func isWithinBusinessWindow(t time.Time) bool {
	currentMinutes := t.Hour()*60 + t.Minute()

	startHour, startMin, err := parseBusinessHoursTime(BusinessHoursStart)
	if err != nil {
		return false
	}

	endHour, endMin, err := parseBusinessHoursTime(BusinessHoursEnd)
	if err != nil {
		return false
	}

	startMinutes := startHour*60 + startMin
	endMinutes := endHour*60 + endMin

	return currentMinutes >= startMinutes && currentMinutes < endMinutes
}

// parseBusinessHoursTime 시각 문자열(HH:MM)을 시와 분으로 분해한다
func parseBusinessHoursTime(timeStr string) (int, int, error) {
	if timeStr == "" {
		return 0, 0, errors.New("empty time string")
	}

	parts := strings.Split(timeStr, ":")
	if len(parts) != 2 {
		return 0, 0, errors.New("invalid time format")
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, errors.New("invalid hour")
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, errors.New("invalid minute")
	}

	return hour, minute, nil
}
