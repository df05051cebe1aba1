package app

import (
	"encoding/json"
	"io"
	"sync"

	"github.com/iov-one/pswap"
	"github.com/iov-one/pswap/x/aswap"
)

// JSONNotifier writes every swap event as a single line of JSON.
type JSONNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

var _ aswap.Notifier = (*JSONNotifier)(nil)

// NewJSONNotifier returns a notifier writing to w.
func NewJSONNotifier(w io.Writer) *JSONNotifier {
	return &JSONNotifier{w: w}
}

func (n *JSONNotifier) Notify(ctx pswap.Context, e aswap.Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	line := struct {
		Kind  aswap.EventKind `json:"kind"`
		Event aswap.Event     `json:"event"`
	}{Kind: e.Kind(), Event: e}
	if err := json.NewEncoder(n.w).Encode(line); err != nil {
		pswap.GetLogger(ctx).Error("cannot write event", "err", err)
	}
}
