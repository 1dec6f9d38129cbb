package checkout

import "errors"

var (
	// ErrIncompleteSelection возвращается, когда в выборе не хватает полей
	ErrIncompleteSelection = errors.New("checkout: selection is incomplete")

	// ErrPublish возвращается, когда запрос не удалось передать платежному воркеру
	ErrPublish = errors.New("checkout: failed to publish request")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("checkout: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("checkout: failed to execute query")
)
