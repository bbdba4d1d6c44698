package amqp

import (
	"testing"
	"time"
)

func TestRefreshMessageRoundTrip(t *testing.T) {
	msg := NewRefreshMessage("110K01119", ReasonStale)

	body, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}

	got, err := RefreshMessageFromJSON(body)
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	if got.Code != "110K01119" || got.Reason != ReasonStale {
		t.Errorf("got %+v", got)
	}
	if time.Since(got.Timestamp) > time.Minute {
		t.Errorf("timestamp too old: %v", got.Timestamp)
	}
}

func TestRefreshMessageFromJSONInvalid(t *testing.T) {
	if _, err := RefreshMessageFromJSON([]byte(`not json`)); err == nil {
		t.Error("expected decode error")
	}
}
