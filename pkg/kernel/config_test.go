package kernel

import "testing"

func TestConfig_ValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
	}{
		{"zero nproc", Config{NPROC: 0, NCPU: 1, QTicks: [NumQueues]int{1, 1, 1, 1, 1}}},
		{"zero ncpu", Config{NPROC: 1, NCPU: 0, QTicks: [NumQueues]int{1, 1, 1, 1, 1}}},
		{"unknown policy", Config{NPROC: 1, NCPU: 1, Policy: "bogus", QTicks: [NumQueues]int{1, 1, 1, 1, 1}}},
		{"zero qtick", Config{NPROC: 1, NCPU: 1, QTicks: [NumQueues]int{1, 0, 1, 1, 1}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.cfg.validate(); err == nil {
				t.Fatal("validate() = nil, want an error")
			}
		})
	}
}

func TestConfig_ResolvedPolicyDefaultsToRR(t *testing.T) {
	var cfg Config
	if got := cfg.resolvedPolicy(); got != PolicyRR {
		t.Fatalf("resolvedPolicy() = %v, want PolicyRR", got)
	}
}

func TestDefault_IsValid(t *testing.T) {
	if err := Default().validate(); err != nil {
		t.Fatalf("Default() is not valid: %v", err)
	}
}
