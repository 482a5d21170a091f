package model

import "testing"

func TestCardStatus_String(t *testing.T) {
	tests := []struct {
		status   CardStatus
		expected string
	}{
		{CardStatusLoading, "Loading"},
		{CardStatusLoaded, "Loaded"},
		{CardStatusBroken, "Broken"},
	}

	for _, test := range tests {
		if test.status.String() != test.expected {
			t.Errorf("String() for %v = %s, expected %s", test.status, test.status.String(), test.expected)
		}
	}
}

func TestCardStatus_IsLoaded(t *testing.T) {
	tests := []struct {
		status   CardStatus
		expected bool
	}{
		{CardStatusLoading, false},
		{CardStatusLoaded, true},
		{CardStatusBroken, false},
	}

	for _, test := range tests {
		if test.status.IsLoaded() != test.expected {
			t.Errorf("IsLoaded() for %s = %v, expected %v", test.status, test.status.IsLoaded(), test.expected)
		}
	}
}

func TestCardStatus_IsBroken(t *testing.T) {
	tests := []struct {
		status   CardStatus
		expected bool
	}{
		{CardStatusLoading, false},
		{CardStatusLoaded, false},
		{CardStatusBroken, true},
	}

	for _, test := range tests {
		if test.status.IsBroken() != test.expected {
			t.Errorf("IsBroken() for %s = %v, expected %v", test.status, test.status.IsBroken(), test.expected)
		}
	}
}
