package rules

import "errors"

var (
	// ErrNoRulesForIndustry возвращается, когда для индустрии не настроено ни одного правила
	ErrNoRulesForIndustry = errors.New("rules.repository: no rules configured for industry")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("rules.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("rules.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("rules.repository: failed to scan row")
)
