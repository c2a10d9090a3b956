package hub

import (
	"context"
	"testing"

	"github.com/EMMA019/black-jackgames/internal/session"
	"github.com/EMMA019/black-jackgames/internal/store"
)

func TestHub_EnsureThenGet_SamePointer(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := NewHub(ctx, store.NewMemory(), 0, nil)
	reply := make(chan *session.Session, 1)

	h.Inbox() <- EnsureSession{SID: "abc123", Reply: reply}
	s1 := <-reply

	h.Inbox() <- GetSession{SID: "abc123", Reply: reply}
	s2 := <-reply

	if s1 == nil || s2 == nil || s1 != s2 {
		t.Fatalf("expected same session pointer")
	}
}

func TestHub_GetUnknownIsNil(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := NewHub(ctx, store.NewMemory(), 0, nil)
	reply := make(chan *session.Session, 1)
	h.Inbox() <- GetSession{SID: "nope", Reply: reply}
	if s := <-reply; s != nil {
		t.Fatalf("expected nil for unknown sid")
	}
}

func TestHub_RemoveShutsSessionDown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := NewHub(ctx, store.NewMemory(), 0, nil)
	reply := make(chan *session.Session, 1)
	h.Inbox() <- EnsureSession{SID: "gone", Reply: reply}
	<-reply

	h.Inbox() <- RemoveSession{SID: "gone"}
	h.Inbox() <- GetSession{SID: "gone", Reply: reply}
	if got := <-reply; got != nil {
		t.Fatalf("expected session removed")
	}
}
