package finance

import "time"

// Window intervalo de tiempo cerrado [Start, End] para agrupar registros.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains indica si t cae dentro del intervalo (extremos incluidos).
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Days cantidad de días calendario que abarca la ventana (mínimo 1).
func (w Window) Days() int {
	d := int(w.End.Sub(w.Start).Hours()/24) + 1
	if d < 1 {
		return 1
	}
	return d
}

// TrailingDays ventana móvil de los últimos n días: (now-n, now].
func TrailingDays(now time.Time, n int) Window {
	return Window{Start: now.AddDate(0, 0, -n).Add(time.Nanosecond), End: now}
}

// PreviousTrailingDays la ventana de comparación (now-2n, now-n]: los días
// n+1 a 2n hacia atrás, contigua a TrailingDays sin solaparse.
func PreviousTrailingDays(now time.Time, n int) Window {
	return Window{
		Start: now.AddDate(0, 0, -2*n).Add(time.Nanosecond),
		End:   now.AddDate(0, 0, -n),
	}
}

// MonthWindow el mes calendario completo: día 1 00:00 hasta el último
// instante del último día.
func MonthWindow(year int, month time.Month, loc *time.Location) Window {
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return Window{Start: start, End: start.AddDate(0, 1, 0).Add(-time.Nanosecond)}
}

// DayWindow el día calendario completo de t.
func DayWindow(t time.Time) Window {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return Window{Start: start, End: start.AddDate(0, 0, 1).Add(-time.Nanosecond)}
}

// WeekStart el lunes 00:00 de la semana ISO que contiene a t.
func WeekStart(t time.Time) time.Time {
	// time.Weekday: domingo = 0; la semana ISO arranca en lunes
	offset := (int(t.Weekday()) + 6) % 7
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -offset)
}

// DaysInMonth días del mes calendario de t.
func DaysInMonth(t time.Time) int {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return first.AddDate(0, 1, -1).Day()
}
