package application

import (
	"sync"

	"github.com/formflowhq/formflow/internal/domain/response"
)

// ResponseBroker fans newly submitted responses out to WebSocket
// subscribers watching a form's dashboard.
type ResponseBroker struct {
	mu   sync.Mutex
	subs map[uint]map[chan response.Response]struct{}
}

func NewResponseBroker() *ResponseBroker {
	return &ResponseBroker{subs: make(map[uint]map[chan response.Response]struct{})}
}

// Subscribe registers a watcher for a form. The returned cancel func must be
// called when the watcher goes away.
func (b *ResponseBroker) Subscribe(formID uint) (<-chan response.Response, func()) {
	ch := make(chan response.Response, 16)
	b.mu.Lock()
	if b.subs[formID] == nil {
		b.subs[formID] = make(map[chan response.Response]struct{})
	}
	b.subs[formID][ch] = struct{}{}
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		if set, ok := b.subs[formID]; ok {
			delete(set, ch)
			if len(set) == 0 {
				delete(b.subs, formID)
			}
		}
		b.mu.Unlock()
		close(ch)
	}
	return ch, cancel
}

// Publish delivers a response to every subscriber. Slow subscribers drop
// messages rather than blocking submission.
func (b *ResponseBroker) Publish(formID uint, resp response.Response) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subs[formID] {
		select {
		case ch <- resp:
		default:
		}
	}
}
