package amqp

import (
	"encoding/json"
	"time"
)

// Refresh reasons carried on the queue. Stale means a snapshot was served
// past its freshness window; miss means a code had no snapshot at all.
const (
	ReasonStale    = "stale"
	ReasonMiss     = "miss"
	ReasonUpstream = "upstream_failure"
	ReasonPeriodic = "periodic"
)

// RefreshMessage asks the worker to re-fetch one item's series from
// KOSIS and persist a fresh snapshot.
type RefreshMessage struct {
	Code      string    `json:"code"`
	Reason    string    `json:"reason"`
	Timestamp time.Time `json:"timestamp"`
}

func NewRefreshMessage(code, reason string) *RefreshMessage {
	return &RefreshMessage{
		Code:      code,
		Reason:    reason,
		Timestamp: time.Now(),
	}
}

func (m *RefreshMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func RefreshMessageFromJSON(data []byte) (*RefreshMessage, error) {
	var msg RefreshMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
