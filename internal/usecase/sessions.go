package usecase

import (
	"context"
	"sync"

	"storefront/internal/clients"
	"storefront/internal/domain"

	"github.com/sirupsen/logrus"
)

// SessionManager keeps one Synchronizer per user identifier, created on
// first use. Sessions live for the process lifetime; there is no
// persistence or cross-process sharing.
type SessionManager struct {
	client clients.ShopperClient
	notify domain.Notifier
	log    *logrus.Logger

	mu       sync.Mutex
	sessions map[string]*Synchronizer
}

func NewSessionManager(client clients.ShopperClient, notifier domain.Notifier, logger *logrus.Logger) *SessionManager {
	return &SessionManager{
		client:   client,
		notify:   notifier,
		log:      logger,
		sessions: make(map[string]*Synchronizer),
	}
}

// Get returns the user's synchronizer, creating and priming it on first
// use. A failed initial fetch is logged and notified by the synchronizer
// itself; the session still exists and later fetches can recover.
func (m *SessionManager) Get(ctx context.Context, userID string) *Synchronizer {
	m.mu.Lock()
	s, ok := m.sessions[userID]
	if !ok {
		s = NewSynchronizer(m.client, m.notify, m.log)
		m.sessions[userID] = s
	}
	m.mu.Unlock()

	if err := s.SetUser(ctx, userID); err != nil {
		m.log.Warnf("SessionManager: initial sync for user %s failed: %v", userID, err)
	}
	return s
}
