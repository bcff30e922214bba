package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// fakeRedis answers the Get/Set slice of the go-redis API from a plain map.
type fakeRedis struct {
	data   map[string]string
	expiry map[string]time.Duration
	getErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{
		data:   make(map[string]string),
		expiry: make(map[string]time.Duration),
	}
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	b, ok := value.([]byte)
	if !ok {
		return redis.NewStatusResult("", errors.New("unexpected value type"))
	}
	f.data[key] = string(b)
	f.expiry[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func testRedisStore(t *testing.T) (*Redis, *fakeRedis) {
	t.Helper()
	fake := newFakeRedis()
	store := &Redis{client: fake, expiry: 10 * time.Minute, logger: zerolog.Nop()}
	return store, fake
}

func TestRedisGetMissing(t *testing.T) {
	store, _ := testRedisStore(t)
	if _, ok := store.Get("nothing"); ok {
		t.Fatal("expected miss on empty store")
	}
}

func TestRedisSetAndGetRoundTrip(t *testing.T) {
	store, fake := testRedisStore(t)
	before := time.Now()
	store.Set("laptop", sampleOffers("Laptop"))

	if _, ok := fake.data["search:laptop"]; !ok {
		t.Fatalf("entry not stored under prefixed key, have %v", fake.data)
	}
	if got := fake.expiry["search:laptop"]; got != 10*time.Minute {
		t.Errorf("server-side expiry = %v, want the store's gc window", got)
	}

	entry, ok := store.Get("laptop")
	if !ok {
		t.Fatal("expected hit after set")
	}
	if len(entry.Data) != 1 || entry.Data[0].Title != "Laptop" {
		t.Errorf("unexpected data: %+v", entry.Data)
	}
	if entry.Data[0].Price == nil || *entry.Data[0].Price != 9.99 {
		t.Errorf("price = %v, want 9.99 after round-trip", entry.Data[0].Price)
	}
	if entry.Timestamp.Before(before.Truncate(time.Second)) {
		t.Errorf("timestamp %v predates the write", entry.Timestamp)
	}
}

func TestRedisUndecodableEntryIsMiss(t *testing.T) {
	store, fake := testRedisStore(t)
	fake.data["search:bad"] = "{not json"

	if _, ok := store.Get("bad"); ok {
		t.Fatal("undecodable entry must read as a miss")
	}
}

func TestRedisErrorIsMiss(t *testing.T) {
	store, fake := testRedisStore(t)
	fake.getErr = errors.New("connection refused")

	if _, ok := store.Get("laptop"); ok {
		t.Fatal("transport error must read as a miss")
	}
}

func TestNewRedisExpiryIsDoubleTTL(t *testing.T) {
	store := NewRedis(nil, 5*time.Minute, zerolog.Nop())
	if store.expiry != 10*time.Minute {
		t.Fatalf("expiry = %v, want 2x the freshness TTL", store.expiry)
	}
}
