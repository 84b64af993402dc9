package validate_reservation

import (
	"fmt"
	"regexp"
)

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// validateRequest проверяет формат полей до применения правил допуска.
// Пустые поля здесь не ошибка — ими занимается domain.Admit.
func validateRequest(req *Request) error {
	if req.Date != "" && !dateRe.MatchString(req.Date) {
		return fmt.Errorf("%w: date must be YYYY-MM-DD, got %q", ErrInvalidInput, req.Date)
	}
	return nil
}
