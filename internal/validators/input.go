package validators

import (
	"strings"

	"github.com/BruksfildServices01/estetica-admin/internal/clock"
)

// IsEmailValid faz só a checagem sintática; a app roda offline, então não
// consultamos MX como a API fazia.
func IsEmailValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	return strings.Contains(domain, ".") && !strings.HasPrefix(domain, ".") &&
		!strings.HasSuffix(domain, ".")
}

func IsDateValid(s string) bool {
	_, err := clock.ParseDate(s)
	return err == nil
}

func IsTimeValid(s string) bool {
	_, err := clock.ParseTime(s)
	return err == nil
}
