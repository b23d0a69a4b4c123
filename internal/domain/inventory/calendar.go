package inventory

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/almoxarifado-api/internal/domain"
)

// DateLayout formato de fecha de calendario aceptado por la API (AAAA-MM-DD).
const DateLayout = "2006-01-02"

// ResolveOccurredAt convierte la fecha de calendario del movimiento en un instante.
// Una fecha AAAA-MM-DD se fija al mediodía local de ese día, lo que evita que un cambio
// de horario o de zona desplace el movimiento al día anterior. Sin fecha se usa now.
func ResolveOccurredAt(date string, now time.Time, loc *time.Location) (time.Time, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return now, nil
	}
	d, err := ParseDay(date, loc)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, loc), nil
}

// ParseDay interpreta AAAA-MM-DD como el inicio (00:00) de ese día en loc.
func ParseDay(date string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	d, err := time.ParseInLocation(DateLayout, strings.TrimSpace(date), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: fecha inválida %q (formato AAAA-MM-DD)", domain.ErrInvalidInput, date)
	}
	return d, nil
}

// DayRange intervalo cerrado de días de calendario locales. Un extremo nil no limita.
type DayRange struct {
	From *time.Time
	To   *time.Time
}

// NewDayRange construye el intervalo desde fechas AAAA-MM-DD opcionales.
// Con solo from, el intervalo es ese único día; to incluye hasta 23:59:59.999.
func NewDayRange(from, to string, loc *time.Location) (DayRange, error) {
	var r DayRange
	from, to = strings.TrimSpace(from), strings.TrimSpace(to)
	if from != "" {
		start, err := ParseDay(from, loc)
		if err != nil {
			return r, err
		}
		r.From = &start
		if to == "" {
			end := endOfDay(start)
			r.To = &end
		}
	}
	if to != "" {
		day, err := ParseDay(to, loc)
		if err != nil {
			return r, err
		}
		end := endOfDay(day)
		r.To = &end
	}
	if r.From != nil && r.To != nil && r.To.Before(*r.From) {
		return r, fmt.Errorf("%w: la fecha final es anterior a la inicial", domain.ErrInvalidInput)
	}
	return r, nil
}

// Contains indica si t cae dentro del intervalo.
func (r DayRange) Contains(t time.Time) bool {
	if r.From != nil && t.Before(*r.From) {
		return false
	}
	if r.To != nil && t.After(*r.To) {
		return false
	}
	return true
}

func endOfDay(day time.Time) time.Time {
	return day.AddDate(0, 0, 1).Add(-time.Millisecond)
}
