package appointment

import "testing"

func TestInitialStatus(t *testing.T) {
	if got := InitialStatus(); got != StatusPending {
		t.Errorf("InitialStatus() = %q, want pending", got)
	}
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		in   Status
		want bool
	}{
		{StatusPending, true},
		{StatusConfirmed, true},
		{StatusCompleted, true},
		{StatusCancelled, true},
		{Status("scheduled"), false},
		{Status(""), false},
	}

	for _, tt := range tests {
		if got := IsValid(tt.in); got != tt.want {
			t.Errorf("IsValid(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAgendaOfferings(t *testing.T) {
	tests := []struct {
		current       Status
		offerComplete bool
		offerCancel   bool
	}{
		{StatusPending, true, true},
		{StatusConfirmed, true, true},
		// estados finais continuam alcançando o oposto
		{StatusCompleted, false, true},
		{StatusCancelled, true, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.current), func(t *testing.T) {
			if got := CanOfferComplete(tt.current); got != tt.offerComplete {
				t.Errorf("CanOfferComplete(%s) = %v, want %v", tt.current, got, tt.offerComplete)
			}
			if got := CanOfferCancel(tt.current); got != tt.offerCancel {
				t.Errorf("CanOfferCancel(%s) = %v, want %v", tt.current, got, tt.offerCancel)
			}
		})
	}
}
