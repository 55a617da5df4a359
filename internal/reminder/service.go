package reminder

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/glamourlabs/salon-manager/internal/models"
	"github.com/glamourlabs/salon-manager/internal/timezone"
	ucschedule "github.com/glamourlabs/salon-manager/internal/usecase/schedule"
)

// Intervalo do tick de relógio; os lembretes são recalculados a cada tick,
// não a cada requisição
const tickInterval = 60 * time.Second

// Service mantém um snapshot por conta dos agendamentos que começam na
// próxima hora. Um único ticker atualiza o snapshot; leitores nunca
// disparam recálculo.
type Service struct {
	upcoming *ucschedule.ListUpcoming
	log      *zap.Logger

	mu       sync.RWMutex
	snapshot map[string][]models.Appointment
}

func NewService(upcoming *ucschedule.ListUpcoming, log *zap.Logger) *Service {
	return &Service{
		upcoming: upcoming,
		log:      log,
		snapshot: map[string][]models.Appointment{},
	}
}

// Start dispara o loop de atualização; retorna imediatamente. O loop para
// quando ctx é cancelado.
func (s *Service) Start(ctx context.Context) {
	go func() {
		s.refresh(ctx)

		ticker := time.NewTicker(tickInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.refresh(ctx)
			}
		}
	}()
}

func (s *Service) refresh(ctx context.Context) {
	byAccount, err := s.upcoming.ExecuteAll(ctx, timezone.Now())
	if err != nil {
		// snapshot anterior permanece válido até o próximo tick
		s.log.Warn("reminder refresh failed", zap.Error(err))
		return
	}

	s.mu.Lock()
	s.snapshot = byAccount
	s.mu.Unlock()

	total := 0
	for _, aps := range byAccount {
		total += len(aps)
	}
	if total > 0 {
		s.log.Info("upcoming appointments within the hour",
			zap.Int("count", total),
			zap.Int("accounts", len(byAccount)),
		)
	}
}

// Snapshot devolve a visão corrente de uma conta. O slice publicado nunca
// é mutado depois do refresh.
func (s *Service) Snapshot(accountID string) []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot[accountID]
}
