package clusters

import (
	"errors"
	"testing"
)

func TestNewClusterID(t *testing.T) {
	testCases := []struct {
		name      string
		receivers []string
		expected  string
		expectErr bool
	}{
		{"single", []string{"VR2W-101"}, "VR2W-101", false},
		{"sorted", []string{"R1", "R2"}, "R1+R2", false},
		{"unsorted", []string{"R3", "R1", "R2"}, "R1+R2+R3", false},
		{"duplicates", []string{"R2", "R1", "R2"}, "R1+R2", false},
		{"whitespace_trimmed", []string{" R2", "R1 "}, "R1+R2", false},
		{"no_receivers", nil, "", true},
		{"blank_receiver", []string{"R1", " "}, "", true},
		{"separator_in_name", []string{"A+B", "C"}, "", true},
		{"separator_alone", []string{"+"}, "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := NewClusterID(tc.receivers...)
			if tc.expectErr {
				if err == nil {
					t.Errorf("Expected error for receivers %v, got nil", tc.receivers)
				} else if !errors.Is(err, ErrInvalidInput) {
					t.Errorf("Expected ErrInvalidInput, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if result != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, result)
			}
		})
	}
}

func TestReceivers(t *testing.T) {
	id, err := NewClusterID("R9", "R1", "R5")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	got := Receivers(id)
	want := []string{"R1", "R5", "R9"}
	if len(got) != len(want) {
		t.Fatalf("Length mismatch: expected %d, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Receiver mismatch at index %d: expected %q, got %q", i, want[i], got[i])
		}
	}

	if Receivers("") != nil {
		t.Error("Expected nil receivers for an empty identifier")
	}
}

func TestNewClusterID_DistinctSetsGetDistinctIDs(t *testing.T) {
	split, err := NewClusterID("A", "B", "C")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, err := NewClusterID("A+B", "C"); err == nil {
		t.Fatalf("Expected error for a receiver name containing %q, identifier would collide with %q",
			ReceiverSeparator, split)
	}
}
