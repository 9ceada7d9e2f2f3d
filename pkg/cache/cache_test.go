package cache_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sandrolain/gojsh/pkg/cache"
	"github.com/sandrolain/gojsh/pkg/parser"
	"github.com/sandrolain/gojsh/pkg/types"
)

func compile(t *testing.T, source string) *types.Expression {
	t.Helper()
	expr, err := parser.Compile(source)
	if err != nil {
		t.Fatalf("Compile(%q): %v", source, err)
	}
	return expr
}

func TestCacheDefaultCapacity(t *testing.T) {
	if got := cache.New(0).Capacity(); got != cache.DefaultCapacity {
		t.Fatalf("capacity = %d", got)
	}
	if got := cache.New(-3).Capacity(); got != cache.DefaultCapacity {
		t.Fatalf("capacity = %d", got)
	}
}

func TestCacheSetGet(t *testing.T) {
	c := cache.New(4)
	expr := compile(t, "(get a)")
	c.Set("(get a)", expr)

	got, ok := c.Get("(get a)")
	if !ok || got != expr {
		t.Fatal("expected the stored expression")
	}
	if _, ok := c.Get("(get b)"); ok {
		t.Fatal("expected a miss")
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := cache.New(3)
	for _, src := range []string{"a", "b", "c"} {
		c.Set(src, compile(t, src))
	}
	// touch "a" so that "b" is the oldest
	c.Get("a")
	c.Set("d", compile(t, "d"))

	if c.Len() != 3 {
		t.Fatalf("len = %d", c.Len())
	}
	if _, ok := c.Get("b"); ok {
		t.Error(`"b" should have been evicted`)
	}
	for _, src := range []string{"a", "c", "d"} {
		if _, ok := c.Get(src); !ok {
			t.Errorf("%q should be cached", src)
		}
	}
}

func TestCacheGetOrCompile(t *testing.T) {
	c := cache.New(4)
	calls := 0
	fn := func() (*types.Expression, error) {
		calls++
		return parser.Compile("(+ 1 2)")
	}

	first, err := c.GetOrCompile("(+ 1 2)", fn)
	if err != nil {
		t.Fatal(err)
	}
	second, err := c.GetOrCompile("(+ 1 2)", fn)
	if err != nil {
		t.Fatal(err)
	}
	if calls != 1 || first != second {
		t.Fatalf("calls = %d, same = %v", calls, first == second)
	}

	boom := errors.New("boom")
	for range 2 {
		if _, err := c.GetOrCompile("bad", func() (*types.Expression, error) { return nil, boom }); !errors.Is(err, boom) {
			t.Fatalf("err = %v", err)
		}
	}
	if c.Len() != 1 {
		t.Errorf("errors must not be cached, len = %d", c.Len())
	}
}

func TestCacheStats(t *testing.T) {
	c := cache.New(1)
	c.Get("x")
	c.Set("x", compile(t, "x"))
	c.Get("x")
	c.Set("y", compile(t, "y"))

	want := cache.Stats{Hits: 1, Misses: 1, Evictions: 1, Entries: 1}
	if diff := cmp.Diff(want, c.Stats()); diff != "" {
		t.Errorf("stats mismatch (-want +got):\n%s", diff)
	}

	c.Clear()
	if diff := cmp.Diff(cache.Stats{}, c.Stats()); diff != "" {
		t.Errorf("stats after Clear (-want +got):\n%s", diff)
	}
}

func TestCacheInvalidate(t *testing.T) {
	c := cache.New(4)
	c.Set("k", compile(t, "k"))
	c.Invalidate("k")
	c.Invalidate("missing")
	if _, ok := c.Get("k"); ok {
		t.Fatal("expected a miss after Invalidate")
	}
}

func TestCacheConcurrentAccess(t *testing.T) {
	c := cache.New(8)
	expr := compile(t, "(get a)")
	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			src := string(rune('a' + i%10))
			c.Set(src, expr)
			c.Get(src)
		}()
	}
	wg.Wait()
	if c.Len() > 8 {
		t.Errorf("len %d exceeds capacity", c.Len())
	}
}
