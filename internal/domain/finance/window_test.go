package finance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTrailingDays_IntervaloCerradoEnNow(t *testing.T) {
	w := TrailingDays(testNow, 30)

	assert.True(t, w.Contains(testNow), "el extremo superior (now) está incluido")
	assert.True(t, w.Contains(testNow.AddDate(0, 0, -29)))
	assert.False(t, w.Contains(testNow.AddDate(0, 0, -30)),
		"el día 30 exacto pertenece a la ventana anterior, no a la actual")
}

func TestPreviousTrailingDays_ContiguaSinSolape(t *testing.T) {
	current := TrailingDays(testNow, 30)
	previous := PreviousTrailingDays(testNow, 30)

	boundary := testNow.AddDate(0, 0, -30)
	assert.False(t, current.Contains(boundary))
	assert.True(t, previous.Contains(boundary), "el límite cae exactamente en una sola ventana")
	assert.True(t, previous.Contains(testNow.AddDate(0, 0, -59)))
	assert.False(t, previous.Contains(testNow.AddDate(0, 0, -60)))
}

func TestMonthWindow_CubreElMesCompleto(t *testing.T) {
	w := MonthWindow(2024, time.February, time.UTC) // bisiesto

	assert.True(t, w.Contains(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, w.Contains(time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC)))
	assert.False(t, w.Contains(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
}

func TestDayWindow(t *testing.T) {
	w := DayWindow(time.Date(2025, 6, 11, 15, 30, 0, 0, time.UTC))

	assert.True(t, w.Contains(time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)))
	assert.True(t, w.Contains(time.Date(2025, 6, 11, 23, 59, 59, 0, time.UTC)))
	assert.False(t, w.Contains(time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)))
}

func TestWeekStart_SemanaISOArrancaEnLunes(t *testing.T) {
	monday := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		in   time.Time
	}{
		{"lunes mismo día", time.Date(2025, 6, 9, 10, 0, 0, 0, time.UTC)},
		{"miércoles", time.Date(2025, 6, 11, 23, 0, 0, 0, time.UTC)},
		{"domingo pertenece a la semana que empezó el lunes anterior", time.Date(2025, 6, 15, 1, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, monday, WeekStart(tc.in))
		})
	}
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 30, DaysInMonth(time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 31, DaysInMonth(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 29, DaysInMonth(time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 28, DaysInMonth(time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC)))
}
