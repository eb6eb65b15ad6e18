package service

import "testing"

func TestNewProgressManagerDisabledIsNoOp(t *testing.T) {
	pm := NewProgressManager(false)
	if _, ok := pm.(*NoOpProgressManager); !ok {
		t.Fatalf("expected NoOpProgressManager when disabled, got %T", pm)
	}
	if pm.IsInteractive() {
		t.Error("expected IsInteractive to be false")
	}
}

func TestNoOpTaskProgressAcceptsCalls(t *testing.T) {
	pm := NewProgressManager(false)
	task := pm.StartTask("scanning", 10)
	task.Increment(1)
	task.Describe("still scanning")
	task.Complete()
	pm.Close()
}
