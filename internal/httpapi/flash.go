package httpapi

import (
	"net/http"
	"sync"

	"github.com/google/uuid"
)

const sessionCookie = "showbill_session"

// flashQueue holds short-lived status messages per client, drained on the
// next home render. The in-process map stands in for a server-side session.
type flashQueue struct {
	mu       sync.Mutex
	byClient map[string][]string
}

func newFlashQueue() *flashQueue {
	return &flashQueue{byClient: make(map[string][]string)}
}

func (q *flashQueue) Add(client, message string) {
	if client == "" {
		return
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.byClient[client] = append(q.byClient[client], message)
}

// Drain returns the queued messages for a client and clears them.
func (q *flashQueue) Drain(client string) []string {
	q.mu.Lock()
	defer q.mu.Unlock()
	messages := q.byClient[client]
	delete(q.byClient, client)
	if messages == nil {
		messages = []string{}
	}
	return messages
}

// clientID identifies the requesting client via the session cookie,
// minting a new one if absent.
func (s *Server) clientID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	id := uuid.NewString()
	cookie := &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
	}
	http.SetCookie(w, cookie)
	// Later lookups within the same request must resolve to the minted id,
	// so messages queued by a handler survive into its home render.
	r.AddCookie(cookie)
	return id
}
