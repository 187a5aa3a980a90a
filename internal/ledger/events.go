package ledger

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// EventKind names what changed.
type EventKind string

const (
	EventTaskCompleted         EventKind = "task_completed"
	EventTaskCompletionRemoved EventKind = "task_completion_removed"
	EventCompletionsUpdated    EventKind = "completions_updated"
	EventMoneyAllocated        EventKind = "money_allocated"
	EventGoalUpdated           EventKind = "goal_updated"
	EventInvestmentUpdated     EventKind = "investment_updated"
	EventBalanceUpdated        EventKind = "balance_updated"
	EventEarningRecorded       EventKind = "earning_recorded"
)

// Event tells subscribers that a member's ledger changed and should be re-read.
type Event struct {
	Kind       EventKind  `json:"kind"`
	FamilyID   uuid.UUID  `json:"familyId"`
	MemberID   uuid.UUID  `json:"memberId"`
	ResourceID *uuid.UUID `json:"resourceId,omitempty"`
	Amount     int64      `json:"amount,omitempty"`
	At         time.Time  `json:"at"`
}

// Notifier delivers events to subscribers. Subscribers are called
// synchronously, after the change is committed and without any ledger lock
// held, so they may call back into the Service.
type Notifier struct {
	mu     sync.RWMutex
	next   int
	scoped map[Scope]map[int]func(Event)
	all    map[int]func(Event)
}

// NewNotifier returns an empty Notifier.
func NewNotifier() *Notifier {
	return &Notifier{
		scoped: make(map[Scope]map[int]func(Event)),
		all:    make(map[int]func(Event)),
	}
}

// Subscribe registers fn for events of one member. The returned function
// removes the subscription.
func (n *Notifier) Subscribe(scope Scope, fn func(Event)) func() {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.next
	n.next++

	if n.scoped[scope] == nil {
		n.scoped[scope] = make(map[int]func(Event))
	}
	n.scoped[scope][id] = fn

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()

		delete(n.scoped[scope], id)
		if len(n.scoped[scope]) == 0 {
			delete(n.scoped, scope)
		}
	}
}

// SubscribeAll registers fn for events of every member.
func (n *Notifier) SubscribeAll(fn func(Event)) func() {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.next
	n.next++
	n.all[id] = fn

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.all, id)
	}
}

func (n *Notifier) publish(events ...Event) {
	if len(events) == 0 {
		return
	}

	n.mu.RLock()
	var targets []func(Event)
	for _, fn := range n.all {
		targets = append(targets, fn)
	}
	scope := Scope{FamilyID: events[0].FamilyID, MemberID: events[0].MemberID}
	for _, fn := range n.scoped[scope] {
		targets = append(targets, fn)
	}
	n.mu.RUnlock()

	for _, e := range events {
		for _, fn := range targets {
			fn(e)
		}
	}
}
