package get_catalog

import "github.com/m04kA/LondonHouse-ReservationService/internal/service/sessions/models"

type CatalogProvider interface {
	Catalog() *models.CatalogResponse
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
