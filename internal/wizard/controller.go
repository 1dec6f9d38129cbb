package wizard

import (
	"time"

	"github.com/m04kA/LondonHouse-ReservationService/internal/domain"
)

// Wizard drives one booking session through its four stages.
//
// A Wizard has a single owner and is not safe for concurrent use. Transitions
// are two-phase: Advance only marks the wizard as transitioning and records a
// settle deadline; the stage is incremented by the first operation that
// observes the deadline has passed. No goroutines or sleeps are involved.
type Wizard struct {
	catalog      domain.Catalog
	store        SelectionStore
	stage        domain.WizardStage
	settleDelay  time.Duration
	settleAt     time.Time
	transiting   bool
	checkout     Checkout
	navigator    Navigator
	timeProvider TimeProvider
	logger       Logger
}

// NewWizard создает мастер бронирования на первом шаге с пустым выбором
func NewWizard(
	catalog domain.Catalog,
	settleDelay time.Duration,
	checkout Checkout,
	navigator Navigator,
	logger Logger,
) *Wizard {
	if settleDelay < 0 {
		settleDelay = 0
	}
	return &Wizard{
		catalog:      catalog,
		stage:        domain.FirstStage,
		settleDelay:  settleDelay,
		checkout:     checkout,
		navigator:    navigator,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider replaces the clock used for settle deadlines
func (w *Wizard) WithTimeProvider(tp TimeProvider) *Wizard {
	if tp != nil {
		w.timeProvider = tp
	}
	return w
}

// Stage returns the current stage, completing an elapsed transition first
func (w *Wizard) Stage() domain.WizardStage {
	w.settle()
	return w.stage
}

// Transitioning reports whether a transition is waiting for its settle delay
func (w *Wizard) Transitioning() bool {
	w.settle()
	return w.transiting
}

// Selection returns a copy of the accumulated picks
func (w *Wizard) Selection() domain.BookingSelection {
	return w.store.Selection()
}

// Catalog returns the options the wizard was built with
func (w *Wizard) Catalog() domain.Catalog {
	return w.catalog
}

// CanAdvance is the state of the "continue" affordance
func (w *Wizard) CanAdvance() bool {
	w.settle()
	if w.transiting || w.stage >= domain.LastStage {
		return false
	}
	return StageComplete(w.stage, w.store.Selection())
}

// CanRetreat is the state of the "go back" affordance
func (w *Wizard) CanRetreat() bool {
	w.settle()
	return !w.transiting && w.stage > domain.FirstStage
}

// Advance starts a transition to the next stage.
// It is a no-op returning false while the current stage is incomplete,
// on the last stage, or while another transition is pending.
func (w *Wizard) Advance() bool {
	if !w.CanAdvance() {
		return false
	}

	w.transiting = true
	w.settleAt = w.timeProvider.Now().Add(w.settleDelay)
	w.logger.Info("Wizard: advancing from stage %s, settles in %s", w.stage, w.settleDelay)

	// С нулевой задержкой переход завершается сразу
	w.settle()
	return true
}

// Retreat moves back one stage keeping every pick.
// It is a no-op returning false on the first stage or during a transition.
func (w *Wizard) Retreat() bool {
	if !w.CanRetreat() {
		return false
	}
	w.stage--
	w.logger.Info("Wizard: retreated to stage %s", w.stage)
	return true
}

// Progress describes every stage for the progress rail
func (w *Wizard) Progress() []StageProgress {
	current := w.Stage()
	stages := domain.Stages()
	progress := make([]StageProgress, 0, len(stages))
	for _, s := range stages {
		progress = append(progress, StageProgress{
			Stage:     s,
			Label:     s.Label(),
			Active:    s == current,
			Completed: s < current,
		})
	}
	return progress
}

// StageProgress is one entry of the progress rail
type StageProgress struct {
	Stage     domain.WizardStage
	Label     string
	Active    bool
	Completed bool
}

// settle completes a pending transition once its deadline has passed
func (w *Wizard) settle() {
	if !w.transiting {
		return
	}
	if w.timeProvider.Now().Before(w.settleAt) {
		return
	}
	w.stage++
	w.transiting = false
	w.settleAt = time.Time{}
}

// reset returns the wizard to its initial state
func (w *Wizard) reset() {
	w.store.Clear()
	w.stage = domain.FirstStage
	w.transiting = false
	w.settleAt = time.Time{}
}
