package itimer_test

import (
	"testing"

	"github.com/procclock/itimer-go/pkg/itimer"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind itimer.Kind
		want string
	}{
		{itimer.Wall, "WALL"},
		{itimer.UserCPU, "USER_CPU"},
		{itimer.TotalCPU, "TOTAL_CPU"},
		{itimer.Kind(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestRegistryLive(t *testing.T) {
	registry := itimer.NewRegistry()

	if registry.Live(itimer.Wall) {
		t.Error("fresh registry Live(Wall) = true, want false")
	}

	tm, err := itimer.NewWithConfig(itimer.Wall, seconds(1.0), seconds(1.0), itimer.Config{
		Clock:    newFakeClock(),
		Registry: registry,
	})
	if err != nil {
		t.Fatalf("NewWithConfig failed: %v", err)
	}
	if !registry.Live(itimer.Wall) {
		t.Error("Live(Wall) = false while timer exists, want true")
	}
	if registry.Live(itimer.UserCPU) {
		t.Error("Live(UserCPU) = true, want false")
	}

	if err := tm.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if registry.Live(itimer.Wall) {
		t.Error("Live(Wall) = true after Close, want false")
	}
}

func TestSettingIsZero(t *testing.T) {
	if !(itimer.Setting{}).IsZero() {
		t.Error("zero Setting IsZero() = false, want true")
	}
	if (itimer.Setting{Value: seconds(1.0)}).IsZero() {
		t.Error("armed Setting IsZero() = true, want false")
	}
}
