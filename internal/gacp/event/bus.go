package event

import (
	"sync"
	"time"
)

// Event types published by the survey workflow.
const (
	TypeSurveySubmitted         = "survey.submitted"
	TypeSurveyReviewClaimed     = "survey.review_claimed"
	TypeSurveyApproved          = "survey.approved"
	TypeSurveyRejected          = "survey.rejected"
	TypeSurveyRevisionRequested = "survey.revision_requested"
	TypeCertificateIssued       = "certificate.issued"
	TypeCertificateRevoked      = "certificate.revoked"
)

// Event is a workflow notification. The bus is an in-process convenience, not
// a messaging system: delivery is synchronous and non-durable.
type Event struct {
	Type      string
	SurveyID  string
	ActorID   string
	ActorRole string
	Status    string
	Comment   string
	At        time.Time
}

// Handler receives events. Handlers must not block; Publish runs them inline
// on the request goroutine.
type Handler func(Event)

// Bus is a synchronous publish/subscribe fan-out scoped to one process.
type Bus struct {
	mu   sync.RWMutex
	subs map[string][]Handler
}

func NewBus() *Bus {
	return &Bus{subs: make(map[string][]Handler)}
}

// Subscribe registers a handler for one event type. Use SubscribeAll for a
// catch-all. Handlers run in registration order.
func (b *Bus) Subscribe(eventType string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs[eventType] = append(b.subs[eventType], h)
}

// SubscribeAll registers a handler for every event type.
func (b *Bus) SubscribeAll(h Handler) {
	b.Subscribe("*", h)
}

// Publish delivers the event to type subscribers first, then catch-all
// subscribers. Publishing with no subscribers is a no-op.
func (b *Bus) Publish(ev Event) {
	if ev.At.IsZero() {
		ev.At = time.Now()
	}

	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.subs[ev.Type])+len(b.subs["*"]))
	handlers = append(handlers, b.subs[ev.Type]...)
	handlers = append(handlers, b.subs["*"]...)
	b.mu.RUnlock()

	for _, h := range handlers {
		h(ev)
	}
}
