package wizard

import (
	"context"

	"github.com/m04kA/LondonHouse-ReservationService/internal/domain"
)

// Summary returns the confirmation overview.
// ok is false outside the confirmation stage.
func (w *Wizard) Summary() (summary domain.Summary, ok bool) {
	if w.Stage() != domain.StageConfirmation || w.transiting {
		return domain.Summary{}, false
	}
	return w.store.Selection().Summarize(w.catalog.Period), true
}

// ConfirmAndPay hands the completed selection to checkout, resets the wizard
// and leaves the booking view. It returns false outside the confirmation stage.
func (w *Wizard) ConfirmAndPay(ctx context.Context) bool {
	if w.Stage() != domain.StageConfirmation || w.transiting {
		return false
	}

	selection := w.store.Selection()
	if w.checkout != nil {
		if err := w.checkout.Checkout(ctx, selection); err != nil {
			// Сбой оплаты на стороне коллаборатора, мастер всё равно сбрасывается
			w.logger.Error("Wizard: checkout handoff failed: %v", err)
		}
	}

	w.reset()
	w.logger.Info("Wizard: booking confirmed, leaving booking view")
	if w.navigator != nil {
		w.navigator.ExitWizard()
	}
	return true
}

// Exit discards the selection and leaves the booking view.
// Allowed at any time, including during a transition.
func (w *Wizard) Exit() {
	w.reset()
	if w.navigator != nil {
		w.navigator.ExitWizard()
	}
}
