package services

import (
	"bytes"
	"context"
	"testing"

	"github.com/ASHISH26940/portfolio-api/pkg/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildNotification(t *testing.T) {
	msg := &db.Message{ID: 3, Name: "Jane", Email: "jane@example.com", Message: "Hello\nworld"}

	m, err := buildNotification("owner@example.com", msg)
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = m.WriteTo(&buf)
	require.NoError(t, err)
	raw := buf.String()

	assert.Contains(t, raw, "owner@example.com")
	assert.Contains(t, raw, "jane@example.com")
	assert.Contains(t, raw, "text/plain")
	assert.Contains(t, raw, "text/html")
	assert.Contains(t, raw, "New portfolio message from Jane")
}

func TestBuildNotificationRejectsBadOwner(t *testing.T) {
	_, err := buildNotification("not an address", &db.Message{Name: "x", Email: "x@example.com"})
	assert.Error(t, err)
}

func TestNopNotifier(t *testing.T) {
	var n Notifier = NopNotifier{}
	assert.NoError(t, n.NotifyNewMessage(context.Background(), &db.Message{}))
}
