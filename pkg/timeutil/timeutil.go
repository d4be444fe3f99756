// Package timeutil concentra os helpers de data do otimizador.
// O negócio opera em Mountain Time; usamos offset fixo UTC-7 para manter
// as janelas de relatório estáveis (o agendador absorve o horário de verão).
package timeutil

import "time"

var mountainZone = time.FixedZone("MST", -7*60*60)

const dateLayout = "2006-01-02"

// Now retorna o horário atual em Mountain Time
func Now() time.Time {
	return time.Now().In(mountainZone)
}

// Today retorna a data de hoje em Mountain Time (YYYY-MM-DD)
func Today() string {
	return Now().Format(dateLayout)
}

// CurrentMonth retorna o número do mês atual em Mountain Time
func CurrentMonth() int {
	return int(Now().Month())
}

// LookbackDate retorna a data de N dias atrás (YYYY-MM-DD)
func LookbackDate(lookbackDays int) string {
	return Now().AddDate(0, 0, -lookbackDays).Format(dateLayout)
}

// WeekBoundaries retorna (segunda, domingo) da semana corrente
func WeekBoundaries() (string, string) {
	now := Now()

	// time.Weekday começa no domingo; deslocamos para semana seg-dom
	offset := (int(now.Weekday()) + 6) % 7
	monday := now.AddDate(0, 0, -offset)
	sunday := monday.AddDate(0, 0, 6)

	return monday.Format(dateLayout), sunday.Format(dateLayout)
}

// DaysSince retorna os dias entre uma data YYYY-MM-DD e hoje.
// Datas não parseáveis contam como 0 dias.
func DaysSince(dateStr string) int {
	then, err := time.ParseInLocation(dateLayout, dateStr, mountainZone)
	if err != nil {
		return 0
	}
	return int(Now().Sub(then).Hours() / 24)
}

// FormatHuman formata YYYY-MM-DD como "February 10, 2026"
func FormatHuman(dateStr string) string {
	dt, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return dateStr
	}
	return dt.Format("January 2, 2006")
}
