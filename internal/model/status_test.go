package model

import "testing"

func TestExpiryStatus_NeedsAttention(t *testing.T) {
	tests := []struct {
		status   ExpiryStatus
		expected bool
	}{
		{StatusSafe, false},
		{StatusWarning, true},
		{StatusExpired, true},
	}

	for _, test := range tests {
		result := test.status.NeedsAttention()
		if result != test.expected {
			t.Errorf("ExpiryStatus(%s).NeedsAttention() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestExpiryStatus_IsExpired(t *testing.T) {
	tests := []struct {
		status   ExpiryStatus
		expected bool
	}{
		{StatusSafe, false},
		{StatusWarning, false},
		{StatusExpired, true},
	}

	for _, test := range tests {
		result := test.status.IsExpired()
		if result != test.expected {
			t.Errorf("ExpiryStatus(%s).IsExpired() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestExpiryStatus_String(t *testing.T) {
	status := StatusWarning
	expected := "WARNING"
	result := status.String()

	if result != expected {
		t.Errorf("ExpiryStatus.String() = %s, expected %s", result, expected)
	}
}
