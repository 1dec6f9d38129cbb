package wizard

import "github.com/m04kA/LondonHouse-ReservationService/internal/domain"

// GatePredicate decides whether a stage is complete enough to move forward
type GatePredicate func(selection domain.BookingSelection) bool

// gates lists the completion precondition of every stage that has a successor.
// The confirmation stage has no entry: it never advances.
var gates = map[domain.WizardStage]GatePredicate{
	domain.StageService: func(s domain.BookingSelection) bool {
		return s.Service != nil
	},
	domain.StageStylist: func(s domain.BookingSelection) bool {
		return s.Stylist != nil
	},
	domain.StageSchedule: func(s domain.BookingSelection) bool {
		return s.Date != nil && s.Time != nil
	},
}

// StageComplete evaluates the gating predicate of the stage
func StageComplete(stage domain.WizardStage, selection domain.BookingSelection) bool {
	gate, ok := gates[stage]
	if !ok {
		return false
	}
	return gate(selection)
}
