// Package clock содержит источник времени и кодирование логических временных меток
// вида YYYYMMDDHHMM, по которым упорядочиваются изменения в журнале.
package clock

import (
	"fmt"
	"strings"
	"time"
)

const (
	// timestampLayout - формат логической метки (до минут)
	timestampLayout = "200601021504"

	// SQLLayout - формат даты продажи в таблице sold на сервере
	SQLLayout = "2006-01-02 15:04:05"

	// MinTimestamp - наименьшая валидная метка (DELETE использует 0 и сортируется раньше)
	MinTimestamp int64 = 100001010000
)

// posLayouts - форматы дат, встречающиеся в базе кассы
var posLayouts = []string{
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05",
}

//go:generate moq -out clock_mock.go . Clock

// Clock - источник текущего времени
type Clock interface {
	Now() time.Time
}

// System - Clock на основе time.Now
type System struct{}

// Now возвращает текущее время
func (System) Now() time.Time {
	return time.Now()
}

// Timestamp кодирует время в логическую метку YYYYMMDDHHMM (секунды отбрасываются)
func Timestamp(t time.Time) int64 {
	var ts int64
	for _, c := range t.Format(timestampLayout) {
		ts = ts*10 + int64(c-'0')
	}
	return ts
}

// FromTimestamp восстанавливает время из логической метки (UTC, точность до минуты)
func FromTimestamp(ts int64) (time.Time, error) {
	if ts < MinTimestamp {
		return time.Time{}, fmt.Errorf("invalid logical timestamp %d", ts)
	}
	t, err := time.ParseInLocation(timestampLayout, fmt.Sprintf("%012d", ts), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid logical timestamp %d: %w", ts, err)
	}
	return t, nil
}

// FormatSQL переводит логическую метку обратно в дату вида "2006-01-02 15:04:00"
func FormatSQL(ts int64) (string, error) {
	t, err := FromTimestamp(ts)
	if err != nil {
		return "", err
	}
	return t.Format(SQLLayout), nil
}

// ParsePOS разбирает дату из базы кассы ("2024-10-04 14:24:48.1000" и подобные).
// Значение может прийти строкой, []byte или уже time.Time (зависит от объявленного типа колонки).
func ParsePOS(v any) (time.Time, error) {
	var s string
	switch val := v.(type) {
	case time.Time:
		return val, nil
	case string:
		s = val
	case []byte:
		s = string(val)
	case nil:
		return time.Time{}, fmt.Errorf("empty date")
	default:
		return time.Time{}, fmt.Errorf("unsupported date type %T", v)
	}

	s = strings.TrimSpace(s)
	for _, layout := range posLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
