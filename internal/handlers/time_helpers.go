package handlers

import (
	"time"

	"github.com/BruksfildServices01/care-scheduler/internal/timezone"
)

// Todas as datas da API chegam no fuso padrão da plataforma.

func parseDate(dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		timezone.Location(timezone.DefaultTimezone),
	)
}

func parseDateTime(dateStr, timeStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02 15:04",
		dateStr+" "+timeStr,
		timezone.Location(timezone.DefaultTimezone),
	)
}
