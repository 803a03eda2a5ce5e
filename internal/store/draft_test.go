package store

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newRedisDraftStore(t *testing.T) (*RedisDraftStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	return NewRedisDraftStore(redis.NewClient(&redis.Options{Addr: mr.Addr()})), mr
}

func TestRedisDraftStoreMissingKey(t *testing.T) {
	s, _ := newRedisDraftStore(t)
	if _, err := s.Get(context.Background(), DraftKey("p1")); !errors.Is(err, ErrNoDraft) {
		t.Fatalf("got %v, want ErrNoDraft", err)
	}
}

func TestRedisDraftStoreRoundTrip(t *testing.T) {
	s, mr := newRedisDraftStore(t)
	key := DraftKey("p1")

	if err := s.Put(context.Background(), key, []byte(`{"project":{}}`), 0); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if ttl := mr.TTL(key); ttl != DefaultDraftTTL {
		t.Errorf("ttl = %v, want the default %v", ttl, DefaultDraftTTL)
	}

	got, err := s.Get(context.Background(), key)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != `{"project":{}}` {
		t.Errorf("value = %q", got)
	}

	if err := s.Remove(context.Background(), key); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := s.Get(context.Background(), key); !errors.Is(err, ErrNoDraft) {
		t.Errorf("got %v after removal, want ErrNoDraft", err)
	}
}

func TestRedisDraftStoreExpiry(t *testing.T) {
	s, mr := newRedisDraftStore(t)
	key := DraftKey("p1")

	if err := s.Put(context.Background(), key, []byte("x"), DefaultDraftTTL); err != nil {
		t.Fatalf("Put: %v", err)
	}
	mr.FastForward(DefaultDraftTTL)
	if _, err := s.Get(context.Background(), key); !errors.Is(err, ErrNoDraft) {
		t.Errorf("got %v after expiry, want ErrNoDraft", err)
	}
}
