package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestServiceValid(t *testing.T) {
	tests := []struct {
		service Service
		want    bool
	}{
		{ServiceUserAdmin, true},
		{ServiceLab, true},
		{ServicePharmacy, true},
		{ServiceHospital, true},
		{ServiceChat, true},
		{Service("billing"), false},
		{Service(""), false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.service.Valid(), "service %q", tt.service)
	}
}

func TestSeverityValid(t *testing.T) {
	tests := []struct {
		severity Severity
		want     bool
	}{
		{SeverityInfo, true},
		{SeverityWarning, true},
		{SeverityError, true},
		{SeveritySuccess, true},
		{Severity("fatal"), false},
		{Severity(""), false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.severity.Valid(), "severity %q", tt.severity)
	}
}

func TestNotificationKey(t *testing.T) {
	n := NewNotification(ServiceLab, SeverityInfo, "Result Ready", "your result is in", "u1", nil)
	n.ID = "t1"
	assert.Equal(t, "lab:t1", n.Key())
}

func TestNotificationBroadcast(t *testing.T) {
	targeted := NewNotification(ServiceChat, SeverityInfo, "hi", "hello", "u1", nil)
	assert.False(t, targeted.Broadcast())

	broadcast := NewNotification(ServiceHospital, SeverityWarning, "maintenance", "tonight", "", nil)
	assert.True(t, broadcast.Broadcast())
}

func TestNotificationMarkAsRead(t *testing.T) {
	n := NewNotification(ServiceLab, SeverityInfo, "t", "m", "u1", nil)
	assert.False(t, n.Read)
	assert.Nil(t, n.ReadAt)

	n.MarkAsRead()
	assert.True(t, n.Read)
	if assert.NotNil(t, n.ReadAt) {
		first := *n.ReadAt
		// Marking again is a no-op; the transition is one-way.
		n.MarkAsRead()
		assert.True(t, n.Read)
		assert.Equal(t, first, *n.ReadAt)
	}
}

func TestNotificationIsExpired(t *testing.T) {
	n := NewNotification(ServiceLab, SeverityInfo, "t", "m", "u1", nil)
	assert.False(t, n.IsExpired(), "no expiry set")

	past := time.Now().Add(-time.Minute)
	n.ExpiresAt = &past
	assert.True(t, n.IsExpired())

	future := time.Now().Add(time.Hour)
	n.ExpiresAt = &future
	assert.False(t, n.IsExpired())
}
