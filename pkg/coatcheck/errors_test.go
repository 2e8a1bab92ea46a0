package coatcheck

import (
	"errors"
	"testing"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindWrongStore, "wrong store"},
		{Kind(0), "unknown"},
		{Kind(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.expected)
		}
	}
}

func TestClaimErrorWraps(t *testing.T) {
	s := New[int]()
	other := New[int]()
	ticket := other.Check(1)

	_, err := s.Claim(ticket)
	if err == nil {
		t.Fatal("expected claim error")
	}

	if !errors.Is(err, ErrWrongStore) {
		t.Error("errors.Is(err, ErrWrongStore) = false, want true")
	}

	var claimErr *ClaimError
	if !errors.As(err, &claimErr) {
		t.Fatalf("error = %T, want *ClaimError", err)
	}
	if claimErr.Error() != "coatcheck: claim failed: wrong store" {
		t.Errorf("Error() = %q", claimErr.Error())
	}
}

func TestAccessErrorWraps(t *testing.T) {
	s := New[int]()
	other := New[int]()
	ticket := other.Check(1)

	_, err := s.Get(ticket)
	if err == nil {
		t.Fatal("expected access error")
	}

	if !errors.Is(err, ErrWrongStore) {
		t.Error("errors.Is(err, ErrWrongStore) = false, want true")
	}

	var accessErr *AccessError
	if !errors.As(err, &accessErr) {
		t.Fatalf("error = %T, want *AccessError", err)
	}
	if accessErr.Kind() != KindWrongStore {
		t.Errorf("Kind() = %v, want %v", accessErr.Kind(), KindWrongStore)
	}
	if accessErr.Error() != "coatcheck: access denied: wrong store" {
		t.Errorf("Error() = %q", accessErr.Error())
	}
}
