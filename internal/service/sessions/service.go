package sessions

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/LondonHouse-ReservationService/internal/domain"
	"github.com/m04kA/LondonHouse-ReservationService/internal/service/sessions/models"
	"github.com/m04kA/LondonHouse-ReservationService/internal/wizard"
	"github.com/m04kA/LondonHouse-ReservationService/pkg/metrics"
)

// session одна открытая сессия мастера.
// mu сериализует запросы к мастеру, lastSeen и closed читаются без блокировки.
type session struct {
	mu       sync.Mutex
	id       string
	wizard   *wizard.Wizard
	lastSeen atomic.Int64
	closed   atomic.Bool
}

func (s *session) touch(now time.Time) {
	s.lastSeen.Store(now.UnixNano())
}

// Service реестр сессий мастера бронирования.
// Lock order: session.mu, then Service.mu.
type Service struct {
	catalog      domain.Catalog
	settleDelay  time.Duration
	ttl          time.Duration
	checkout     Checkout
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger

	mu       sync.RWMutex
	sessions map[string]*session
}

// NewService создает новый экземпляр сервиса сессий
func NewService(
	catalog domain.Catalog,
	settleDelay time.Duration,
	ttl time.Duration,
	checkout Checkout,
	metrics Metrics,
	logger Logger,
) *Service {
	if ttl <= 0 {
		ttl = domain.DefaultSessionTTL
	}
	return &Service{
		catalog:      catalog,
		settleDelay:  settleDelay,
		ttl:          ttl,
		checkout:     checkout,
		metrics:      metrics,
		timeProvider: realTimeProvider{},
		logger:       logger,
		sessions:     make(map[string]*session),
	}
}

// WithTimeProvider заменяет часы сервиса и создаваемых мастеров
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	if tp != nil {
		s.timeProvider = tp
	}
	return s
}

// Catalog возвращает каталог, с которым создаются мастера
func (s *Service) Catalog() *models.CatalogResponse {
	return models.FromDomainCatalog(s.catalog)
}

// Count возвращает число открытых сессий
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Start открывает новую сессию на первом шаге с пустым выбором
func (s *Service) Start(ctx context.Context) (*models.SessionResponse, error) {
	sess := &session{id: uuid.NewString()}
	sess.touch(s.timeProvider.Now())

	// Выход из мастера (подтверждение или Exit) закрывает сессию
	navigator := wizard.NavigatorFunc(func() {
		sess.closed.Store(true)
		s.remove(sess.id)
	})

	sess.wizard = wizard.NewWizard(s.catalog, s.settleDelay, s.checkout, navigator, s.logger).
		WithTimeProvider(s.timeProvider)

	s.mu.Lock()
	s.sessions[sess.id] = sess
	active := len(s.sessions)
	s.mu.Unlock()

	s.setActive(active)
	s.logger.Info("Start: session id=%s opened, active=%d", sess.id, active)

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return models.FromWizard(sess.id, sess.wizard), nil
}

// Get возвращает текущее состояние сессии
func (s *Service) Get(ctx context.Context, id string) (*models.SessionResponse, error) {
	var resp *models.SessionResponse
	err := s.withSession(id, func(sess *session) error {
		resp = models.FromWizard(sess.id, sess.wizard)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// SelectService выбирает услугу по ID из каталога
func (s *Service) SelectService(ctx context.Context, id string, serviceID int64) (*models.SessionResponse, error) {
	service, ok := s.catalog.FindService(serviceID)
	if !ok {
		s.logger.Warn("SelectService: service id=%d not in catalog, session=%s", serviceID, id)
		return nil, ErrServiceNotFound
	}
	return s.pick(id, "SelectService", func(w *wizard.Wizard) bool {
		return w.PickService(service)
	})
}

// SelectStylist выбирает мастера по ID из каталога
func (s *Service) SelectStylist(ctx context.Context, id string, stylistID int64) (*models.SessionResponse, error) {
	stylist, ok := s.catalog.FindStylist(stylistID)
	if !ok {
		s.logger.Warn("SelectStylist: stylist id=%d not in catalog, session=%s", stylistID, id)
		return nil, ErrStylistNotFound
	}
	return s.pick(id, "SelectStylist", func(w *wizard.Wizard) bool {
		return w.PickStylist(stylist)
	})
}

// SelectDate выбирает день из периода бронирования
func (s *Service) SelectDate(ctx context.Context, id string, day int) (*models.SessionResponse, error) {
	offered, ok := s.catalog.FindDay(day)
	if !ok {
		s.logger.Warn("SelectDate: day=%d is not offered, session=%s", day, id)
		return nil, ErrDayNotOffered
	}
	return s.pick(id, "SelectDate", func(w *wizard.Wizard) bool {
		return w.PickDate(offered)
	})
}

// SelectTime выбирает временной слот. Требует выбранной даты.
func (s *Service) SelectTime(ctx context.Context, id string, slot string) (*models.SessionResponse, error) {
	if !s.catalog.HasTimeSlot(slot) {
		s.logger.Warn("SelectTime: slot=%q is not offered, session=%s", slot, id)
		return nil, ErrSlotNotOffered
	}
	return s.pick(id, "SelectTime", func(w *wizard.Wizard) bool {
		return w.PickTime(slot)
	})
}

// Advance запускает переход на следующий шаг.
// Незавершенный шаг не является ошибкой: состояние возвращается без изменений.
func (s *Service) Advance(ctx context.Context, id string) (*models.SessionResponse, error) {
	var resp *models.SessionResponse
	err := s.withSession(id, func(sess *session) error {
		stage := sess.wizard.Stage()
		if sess.wizard.Advance() {
			s.event(metrics.EventAdvance, stage)
			s.logger.Info("Advance: session=%s leaving stage %s", id, stage)
		} else {
			s.event(metrics.EventAdvanceBlocked, stage)
			s.logger.Info("Advance: session=%s blocked on stage %s", id, stage)
		}
		resp = models.FromWizard(sess.id, sess.wizard)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Retreat возвращает на предыдущий шаг, сохраняя выбор
func (s *Service) Retreat(ctx context.Context, id string) (*models.SessionResponse, error) {
	var resp *models.SessionResponse
	err := s.withSession(id, func(sess *session) error {
		stage := sess.wizard.Stage()
		if sess.wizard.Retreat() {
			s.event(metrics.EventRetreat, stage)
		}
		resp = models.FromWizard(sess.id, sess.wizard)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Confirm передает выбор на оплату и закрывает сессию
func (s *Service) Confirm(ctx context.Context, id string) (*models.ConfirmResponse, error) {
	var resp *models.ConfirmResponse
	err := s.withSession(id, func(sess *session) error {
		// Сводка снимается до сброса мастера
		summary, ok := sess.wizard.Summary()
		if !ok {
			s.logger.Warn("Confirm: session=%s is on stage %s", id, sess.wizard.Stage())
			return ErrConfirmUnavailable
		}
		if !sess.wizard.ConfirmAndPay(ctx) {
			return ErrConfirmUnavailable
		}
		s.event(metrics.EventConfirm, domain.StageConfirmation)
		s.logger.Info("Confirm: session=%s confirmed %s with %s at %s %s",
			id, summary.ServiceName, summary.StylistName, summary.Date, summary.Time)

		resp = &models.ConfirmResponse{
			View:      domain.ViewWebsite,
			Confirmed: true,
			Summary:   models.FromDomainSummary(summary),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Exit сбрасывает выбор и закрывает сессию. Разрешен в любой момент.
func (s *Service) Exit(ctx context.Context, id string) (*models.ExitResponse, error) {
	err := s.withSession(id, func(sess *session) error {
		stage := sess.wizard.Stage()
		sess.wizard.Exit()
		s.event(metrics.EventExit, stage)
		s.logger.Info("Exit: session=%s left on stage %s", id, stage)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &models.ExitResponse{View: domain.ViewWebsite}, nil
}

// SweepIdle закрывает сессии, неактивные дольше ttl. Возвращает число закрытых.
func (s *Service) SweepIdle(now time.Time) int {
	cutoff := now.Add(-s.ttl).UnixNano()

	s.mu.Lock()
	swept := 0
	for id, sess := range s.sessions {
		if sess.lastSeen.Load() > cutoff {
			continue
		}
		sess.closed.Store(true)
		delete(s.sessions, id)
		swept++
	}
	active := len(s.sessions)
	s.mu.Unlock()

	if swept > 0 {
		s.setActive(active)
		s.logger.Info("SweepIdle: closed %d idle sessions, active=%d", swept, active)
	}
	return swept
}

// Run периодически вызывает SweepIdle до отмены ctx
func (s *Service) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Run: session sweeper stopped")
			return
		case <-ticker.C:
			s.SweepIdle(s.timeProvider.Now())
		}
	}
}

// pick применяет выбор к активному шагу
func (s *Service) pick(id, op string, apply func(w *wizard.Wizard) bool) (*models.SessionResponse, error) {
	var resp *models.SessionResponse
	err := s.withSession(id, func(sess *session) error {
		stage := sess.wizard.Stage()
		if !apply(sess.wizard) {
			s.event(metrics.EventPickRejected, stage)
			s.logger.Warn("%s: pick rejected on stage %s, transitioning=%t, session=%s",
				op, stage, sess.wizard.Transitioning(), id)
			return ErrPickRejected
		}
		s.event(metrics.EventPick, stage)
		resp = models.FromWizard(sess.id, sess.wizard)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// withSession находит сессию и выполняет fn под ее блокировкой
func (s *Service) withSession(id string, fn func(sess *session) error) error {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		s.logger.Warn("session id=%s not found", id)
		return ErrSessionNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	// Сессия могла закрыться, пока ждали блокировку
	if sess.closed.Load() {
		return ErrSessionNotFound
	}
	sess.touch(s.timeProvider.Now())

	return fn(sess)
}

func (s *Service) remove(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	active := len(s.sessions)
	s.mu.Unlock()

	s.setActive(active)
}

func (s *Service) event(event string, stage domain.WizardStage) {
	if s.metrics != nil {
		s.metrics.ObserveWizardEvent(event, stage.String())
	}
}

func (s *Service) setActive(n int) {
	if s.metrics != nil {
		s.metrics.SetActiveSessions(n)
	}
}
