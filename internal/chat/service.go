package chat

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sharan-555/portfolio-api/internal/ai"
	"gorm.io/gorm"
)

// Service is the session manager: it binds a session_id to an ordered
// transcript, bounds the context sent per completion call, and persists the
// user/assistant exchange.
type Service struct {
	repo              *Repo
	provider          ai.Provider
	contextWindowSize int

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewService(repo *Repo, provider ai.Provider, contextWindowSize int) *Service {
	if contextWindowSize <= 0 || contextWindowSize > 100 {
		contextWindowSize = 6
	}
	return &Service{
		repo:              repo,
		provider:          provider,
		contextWindowSize: contextWindowSize,
		locks:             make(map[string]*sync.Mutex),
	}
}

// sessionLock serializes the read-window/complete/append sequence per
// session_id so concurrent calls on one session append in call order.
func (s *Service) sessionLock(sessionID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[sessionID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[sessionID] = l
	}
	return l
}

// Chat runs one exchange: resolve the session (generating a fresh id when
// absent), build the bounded context, call the provider, and persist both
// sides of the exchange. Provider failure never escapes; it is answered by
// the keyword fallback, which is persisted like any assistant reply. The
// returned session id is always usable for follow-up calls.
func (s *Service) Chat(ctx context.Context, sessionID, message string) (reply string, sid string, err error) {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	l := s.sessionLock(sessionID)
	l.Lock()
	defer l.Unlock()

	// Missing session just means first message; anything else is a real
	// persistence failure.
	recentDesc, err := s.repo.ListRecentMessagesDesc(ctx, sessionID, s.contextWindowSize)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", "", err
	}

	providerMsgs := make([]ai.Message, 0, len(recentDesc)+2)
	providerMsgs = append(providerMsgs, ai.Message{Role: "system", Content: ai.PersonaPrompt})
	// reverse to ASC (oldest -> newest)
	for i := len(recentDesc) - 1; i >= 0; i-- {
		m := recentDesc[i]
		providerMsgs = append(providerMsgs, ai.Message{Role: m.Role, Content: m.Content})
	}
	providerMsgs = append(providerMsgs, ai.Message{Role: "user", Content: message})

	reply, provErr := s.provider.Chat(ctx, providerMsgs)
	if provErr != nil {
		log.Printf("[Chat] provider failed session_id=%s msg_len=%d err=%v; using fallback", sessionID, len(message), provErr)
		reply = FallbackReply(message)
	}

	now := time.Now().UTC()
	if err := s.repo.InsertMessage(ctx, &Message{
		SessionID: sessionID,
		Role:      "user",
		Content:   message,
		CreatedAt: now,
	}); err != nil {
		return "", "", err
	}
	if err := s.repo.InsertMessage(ctx, &Message{
		SessionID: sessionID,
		Role:      "assistant",
		Content:   reply,
		CreatedAt: now,
	}); err != nil {
		return "", "", err
	}
	if err := s.repo.UpsertSession(ctx, sessionID, now); err != nil {
		return "", "", err
	}

	return reply, sessionID, nil
}

// Transcript returns the full stored conversation in order.
func (s *Service) Transcript(ctx context.Context, sessionID string) ([]Message, error) {
	return s.repo.ListMessages(ctx, sessionID)
}
