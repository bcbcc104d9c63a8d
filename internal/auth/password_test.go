package auth

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHasher_HashAndVerify(t *testing.T) {
	// Low cost keeps the test fast; verification is cost-agnostic.
	h := NewHasher(bcrypt.MinCost)

	digest, err := h.Hash("pw123")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	if digest == "pw123" {
		t.Fatal("digest must not equal plaintext")
	}

	if !strings.HasPrefix(digest, "$2") {
		t.Errorf("expected bcrypt digest, got %q", digest)
	}

	if !h.Verify("pw123", digest) {
		t.Error("expected correct password to verify")
	}

	if h.Verify("wrong", digest) {
		t.Error("expected wrong password to fail verification")
	}
}

func TestHasher_UniqueSalts(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	d1, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	d2, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	if d1 == d2 {
		t.Error("expected different digests for the same password (random salt)")
	}
}

func TestHasher_MalformedDigest(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	for _, digest := range []string{"", "not-a-hash", "$2a$10$short"} {
		if h.Verify("anything", digest) {
			t.Errorf("expected malformed digest %q to verify as false", digest)
		}
	}
}

func TestNewHasher_CostFallback(t *testing.T) {
	tests := []struct {
		name string
		cost int
		want int
	}{
		{"below range", MinCost - 1, DefaultCost},
		{"above range", MaxCost + 1, DefaultCost},
		{"in range", 12, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHasher(tt.cost)
			if h.cost != tt.want {
				t.Errorf("got cost %d, want %d", h.cost, tt.want)
			}
		})
	}
}
