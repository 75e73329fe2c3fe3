package ui

import (
	"testing"

	"github.com/criptobot/gobot/internal/domain"
)

func TestNextBrokerCycles(t *testing.T) {
	b := domain.BrokerInteractiveBrokers
	seen := map[domain.BrokerType]bool{}
	for i := 0; i < len(brokerOrder); i++ {
		seen[b] = true
		b = nextBroker(b)
	}
	if len(seen) != len(brokerOrder) {
		t.Fatalf("cycle should visit every broker once, visited %d", len(seen))
	}
	if b != domain.BrokerInteractiveBrokers {
		t.Fatalf("cycle should wrap around, ended at %s", b)
	}
	// Unknown values restart the cycle instead of panicking.
	if nextBroker("bogus") != brokerOrder[0] {
		t.Fatal("unknown broker should map to the first entry")
	}
}

func TestMaskSecret(t *testing.T) {
	cases := map[string]string{
		"":          "",
		"abc":       "***",
		"abcd":      "****",
		"abcdefgh":  "****efgh",
		"key-12345": "*****2345",
	}
	for in, want := range cases {
		if got := maskSecret(in); got != want {
			t.Fatalf("maskSecret(%q) = %q, want %q", in, got, want)
		}
	}
}
