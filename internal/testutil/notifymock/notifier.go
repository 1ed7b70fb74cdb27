package notifymock

import (
	"context"
	"sync"
)

// Sent is one recorded notice.
type Sent struct {
	To      string
	Subject string
	Body    string
}

// Notifier records every send; set Err (or FailFor) to simulate delivery
// failures.
type Notifier struct {
	mu      sync.Mutex
	Sends   []Sent
	Err     error
	FailFor map[string]error // per-recipient failures
}

func (n *Notifier) Send(_ context.Context, to, subject, body string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if err, ok := n.FailFor[to]; ok {
		return err
	}
	if n.Err != nil {
		return n.Err
	}
	n.Sends = append(n.Sends, Sent{To: to, Subject: subject, Body: body})
	return nil
}

func (n *Notifier) Count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.Sends)
}
