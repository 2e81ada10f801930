package security

import (
	"strings"
	"testing"
)

func TestTempPasswordLengthAndAlphabet(t *testing.T) {
	password, err := TempPassword(12)
	if err != nil {
		t.Fatalf("generate password: %v", err)
	}
	if len(password) != 12 {
		t.Fatalf("expected 12 characters, got %d", len(password))
	}
	for _, char := range password {
		if !strings.ContainsRune(tempPasswordAlphabet, char) {
			t.Fatalf("character %q outside alphabet", char)
		}
	}
}

func TestTempPasswordRejectsNonPositiveLength(t *testing.T) {
	for _, length := range []int{0, -1} {
		if _, err := TempPassword(length); err == nil {
			t.Fatalf("expected error for length %d", length)
		}
	}
}

func TestTempPasswordIsNotConstant(t *testing.T) {
	seen := map[string]bool{}
	for attempt := 0; attempt < 8; attempt++ {
		password, err := TempPassword(12)
		if err != nil {
			t.Fatalf("generate password: %v", err)
		}
		seen[password] = true
	}
	if len(seen) < 2 {
		t.Fatal("expected distinct passwords across generations")
	}
}
