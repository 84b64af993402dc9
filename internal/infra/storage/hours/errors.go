package hours

import "errors"

var (
	// ErrHoursNotFound возвращается, когда запись о часах работы еще не создана
	ErrHoursNotFound = errors.New("hours.repository: business hours not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("hours.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("hours.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("hours.repository: failed to scan row")
)
