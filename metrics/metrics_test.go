package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestNewReturnsUnregisteredCollectors(t *testing.T) {
	c := New()
	if c.MessagesProcessed == nil || c.FramesRendered == nil || c.ActiveSubscriptions == nil {
		t.Fatal("New() left a collector nil")
	}
	if c.CommandsByVariant == nil || c.TerminalDispatchFails == nil {
		t.Fatal("New() left a collector nil")
	}
}

func TestRegisterSucceedsOnFreshRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New()
	if err := c.Register(reg); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	c.MessagesProcessed.Inc()
	c.CommandsByVariant.WithLabelValues("message").Inc()

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}
	if len(families) == 0 {
		t.Fatal("Gather() returned no metric families after registration")
	}
}

func TestRegisterTwiceOnSameRegistryFails(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New()
	if err := c.Register(reg); err != nil {
		t.Fatalf("first Register() error = %v", err)
	}
	if err := c.Register(reg); err == nil {
		t.Fatal("second Register() on the same collectors should fail with a duplicate-registration error")
	}
}

func TestMultipleCollectorsOnSeparateRegistriesDoNotConflict(t *testing.T) {
	regA := prometheus.NewRegistry()
	regB := prometheus.NewRegistry()

	if err := New().Register(regA); err != nil {
		t.Fatalf("Register() on regA error = %v", err)
	}
	if err := New().Register(regB); err != nil {
		t.Fatalf("Register() on regB error = %v", err)
	}
}
