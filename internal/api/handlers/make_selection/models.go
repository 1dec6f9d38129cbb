package make_selection

import (
	"errors"
	"strings"
)

var errMissingValue = errors.New("missing value for the selected field")

// SelectionRequest тело запроса выбора. Заполняется одно поле, соответствующее {field}.
type SelectionRequest struct {
	ServiceID *int64  `json:"serviceId,omitempty"`
	StylistID *int64  `json:"stylistId,omitempty"`
	Day       *int    `json:"day,omitempty"`
	Time      *string `json:"time,omitempty"`
}

// validate проверяет, что для поля передано значение
func (r SelectionRequest) validate(field string) error {
	var present bool
	switch field {
	case fieldService:
		present = r.ServiceID != nil
	case fieldStylist:
		present = r.StylistID != nil
	case fieldDate:
		present = r.Day != nil
	case fieldTime:
		present = r.Time != nil && strings.TrimSpace(*r.Time) != ""
	}
	if !present {
		return errMissingValue
	}
	return nil
}
