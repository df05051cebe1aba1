package aswap

import (
	"encoding/hex"
	"sync"

	"github.com/iov-one/pswap"
)

// EventKind names a successful transition.
type EventKind string

const (
	KindSetUp                    EventKind = "SetUp"
	KindInitiated                EventKind = "Initiated"
	KindParticipated             EventKind = "Participated"
	KindPremiumFilled            EventKind = "PremiumFilled"
	KindInitiatorAssetRedeemed   EventKind = "InitiatorAssetRedeemed"
	KindParticipantAssetRedeemed EventKind = "ParticipantAssetRedeemed"
	KindInitiatorAssetRefunded   EventKind = "InitiatorAssetRefunded"
	KindParticipantAssetRefunded EventKind = "ParticipantAssetRefunded"
	KindPremiumRedeemed          EventKind = "PremiumRedeemed"
	KindPremiumRefunded          EventKind = "PremiumRefunded"
)

// Event is emitted after a transition was written.
type Event interface {
	Kind() EventKind
	SwapKey() []byte
}

// SetUpEvent carries the registered swap terms.
type SetUpEvent struct {
	Time              pswap.UnixTime `json:"time"`
	Key               []byte         `json:"key"`
	Initiator         pswap.Address  `json:"initiator"`
	Participant       pswap.Address  `json:"participant"`
	TokenA            string         `json:"token_a"`
	TokenB            string         `json:"token_b"`
	InitiatorAmount   uint64         `json:"initiator_amount"`
	ParticipantAmount uint64         `json:"participant_amount"`
	PremiumAmount     uint64         `json:"premium_amount"`
}

func (SetUpEvent) Kind() EventKind   { return KindSetUp }
func (e SetUpEvent) SwapKey() []byte { return e.Key }

// DepositEvent is emitted when a record is filled.
type DepositEvent struct {
	EventKind EventKind      `json:"kind"`
	Time      pswap.UnixTime `json:"time"`
	Key       []byte         `json:"key"`
	Depositor pswap.Address  `json:"depositor"`
	Token     string         `json:"token"`
	Amount    uint64         `json:"amount"`
	Expiry    pswap.UnixTime `json:"expiry"`
}

func (e DepositEvent) Kind() EventKind { return e.EventKind }
func (e DepositEvent) SwapKey() []byte { return e.Key }

// SettlementEvent is emitted when a record is redeemed or refunded.
type SettlementEvent struct {
	EventKind EventKind      `json:"kind"`
	Time      pswap.UnixTime `json:"time"`
	Key       []byte         `json:"key"`
	Recipient pswap.Address  `json:"recipient"`
	Token     string         `json:"token"`
	Amount    uint64         `json:"amount"`
	// Secret is set for asset redemptions.
	Secret []byte `json:"secret,omitempty"`
}

func (e SettlementEvent) Kind() EventKind { return e.EventKind }
func (e SettlementEvent) SwapKey() []byte { return e.Key }

// Notifier receives an event after every successful transition.
type Notifier interface {
	Notify(ctx pswap.Context, e Event)
}

// NotifierFunc allows to use a function as a Notifier.
type NotifierFunc func(pswap.Context, Event)

func (fn NotifierFunc) Notify(ctx pswap.Context, e Event) {
	fn(ctx, e)
}

// MultiNotifier passes every event to all notifiers in order.
type MultiNotifier []Notifier

func (m MultiNotifier) Notify(ctx pswap.Context, e Event) {
	for _, n := range m {
		n.Notify(ctx, e)
	}
}

// LogNotifier writes every event to the context logger.
type LogNotifier struct{}

func (LogNotifier) Notify(ctx pswap.Context, e Event) {
	pswap.GetLogger(ctx).Info("swap event",
		"kind", string(e.Kind()),
		"swap", hex.EncodeToString(e.SwapKey()))
}

// EventRecorder keeps all received events in memory.
type EventRecorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *EventRecorder) Notify(ctx pswap.Context, e Event) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
}

// Events returns all events received so far.
func (r *EventRecorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Kinds returns the kinds of all events received so far.
func (r *EventRecorder) Kinds() []EventKind {
	var kinds []EventKind
	for _, e := range r.Events() {
		kinds = append(kinds, e.Kind())
	}
	return kinds
}

// Reset drops all recorded events.
func (r *EventRecorder) Reset() {
	r.mu.Lock()
	r.events = nil
	r.mu.Unlock()
}
