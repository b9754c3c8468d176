package seqcore

import "testing"

func TestSequenceAddEdgeRegistersBothEndpoints(t *testing.T) {
	a := NewEvent("a", func() {})
	b := NewEvent("b", func() {})
	seq := NewSequence()
	seq.AddEdge(a, b)
	events := seq.Events()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	children := seq.Children(a)
	if len(children) != 1 || children[0] != b {
		t.Fatalf("expected a's only child to be b, got %v", children)
	}
}

func TestSequenceDistinguishesEventsByIdentity(t *testing.T) {
	// Two events with the same name must remain distinct nodes.
	a1 := NewEvent("burn", func() {})
	a2 := NewEvent("burn", func() {})
	seq := NewSequence()
	seq.AddEvent(a1)
	seq.AddEvent(a2)
	if len(seq.Events()) != 2 {
		t.Fatal("expected two distinct events despite identical names")
	}
}
