package audit

import "errors"

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("audit.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("audit.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("audit.repository: failed to scan row")

	// ErrEncodePayload возвращается при ошибке сериализации payload записи
	ErrEncodePayload = errors.New("audit.repository: failed to encode payload")
)
