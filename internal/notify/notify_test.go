package notify

import (
	"testing"

	"github.com/uga-caes/docsite/internal/config"
)

func TestNewPublisher_DisabledFails(t *testing.T) {
	_, err := NewPublisher(config.NotificationsConfig{Enabled: false})
	if err == nil {
		t.Fatalf("expected error when notifications are disabled")
	}
}
