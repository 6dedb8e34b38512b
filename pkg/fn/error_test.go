package fn

import (
	"errors"
	"testing"
)

func TestFromMessage(t *testing.T) {
	t.Parallel()
	e := FromMessage("rule violated")

	if e.Message() != "rule violated" || e.Error() != "rule violated" {
		t.Fatalf("expected message 'rule violated', got: %q", e.Message())
	}
	if e.HasFault() || e.Fault() != nil {
		t.Fatalf("expected logical error without fault, got: %v", e.Fault())
	}
}

func TestFromMessage_EmptyFallsBack(t *testing.T) {
	t.Parallel()
	e := FromMessage("")

	if e.Message() != DefaultFailureMessage {
		t.Fatalf("expected default failure message, got: %q", e.Message())
	}
}

func TestFromFault(t *testing.T) {
	t.Parallel()
	fault := errors.New("disk full")
	e := FromFault(fault)

	if e.Message() != "disk full" {
		t.Fatalf("expected message derived from fault, got: %q", e.Message())
	}
	if e.Fault() != fault {
		t.Fatalf("expected the exact fault wrapped, got: %v", e.Fault())
	}
	if !errors.Is(e, fault) {
		t.Fatalf("expected errors.Is to see through the wrapper")
	}
}

func TestFromFault_NilFault(t *testing.T) {
	t.Parallel()
	e := FromFault(nil)

	if e.Message() != DefaultFailureMessage || e.HasFault() {
		t.Fatalf("expected default logical error, got: msg=%q, fault=%v", e.Message(), e.Fault())
	}
}

func TestWrap(t *testing.T) {
	t.Parallel()
	fault := errors.New("timeout")
	e := Wrap("fetch user", fault)

	if e.Message() != "fetch user: timeout" {
		t.Fatalf("expected joined message, got: %q", e.Message())
	}
	if e.Fault() != fault {
		t.Fatalf("expected the exact fault wrapped, got: %v", e.Fault())
	}
}

func TestWrap_NilFault(t *testing.T) {
	t.Parallel()
	e := Wrap("fetch user", nil)

	if e.Message() != "fetch user" || e.HasFault() {
		t.Fatalf("expected logical error 'fetch user', got: msg=%q, fault=%v", e.Message(), e.Fault())
	}
}

func TestFaultOf(t *testing.T) {
	t.Parallel()
	fault := errors.New("root cause")

	if got := FaultOf(FromFault(fault)); got != fault {
		t.Fatalf("expected wrapped fault, got: %v", got)
	}
	if got := FaultOf(errors.New("plain")); got != nil {
		t.Fatalf("expected nil for non-faulter error, got: %v", got)
	}
}
