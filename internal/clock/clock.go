package clock

import "time"

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Today retorna a data local no formato usado por todas as entidades.
// As derivações recebem "today" como parâmetro para serem testáveis; este
// helper só é chamado na borda (main / ui).
func Today() string {
	return time.Now().Format(DateLayout)
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

func ParseTime(s string) (time.Time, error) {
	return time.Parse(TimeLayout, s)
}

// Month extracts the month number of a YYYY-MM-DD date. ok=false for dates
// that do not parse (legacy data may carry empty strings).
func Month(date string) (time.Month, bool) {
	t, err := ParseDate(date)
	if err != nil {
		return 0, false
	}
	return t.Month(), true
}

// MonthDay extracts month and day-of-month. ok=false when the date does not
// parse.
func MonthDay(date string) (time.Month, int, bool) {
	t, err := ParseDate(date)
	if err != nil {
		return 0, 0, false
	}
	return t.Month(), t.Day(), true
}
