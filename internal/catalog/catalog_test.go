package catalog

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/san-kum/wobbly/internal/harmonic"
)

func openTemp(t *testing.T) *Catalog {
	t.Helper()
	c, err := Open(filepath.Join(t.TempDir(), "nested", "catalog.db"))
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func standardEntry(name string) Entry {
	return Entry{
		Name:      name,
		Wobbles:   4,
		Overshoot: 0.2,
		Omega:     harmonic.Standard.Omega,
		Gamma:     harmonic.Standard.Gamma,
		Policy:    harmonic.PolicyLegacy.String(),
	}
}

func TestPutGet(t *testing.T) {
	ctx := context.Background()
	c := openTemp(t)

	if err := c.Put(ctx, standardEntry("standard")); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	e, err := c.Get(ctx, "standard")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if e.Omega != harmonic.Standard.Omega || e.Gamma != harmonic.Standard.Gamma {
		t.Errorf("constants should round-trip exactly, got %+v", e)
	}
	if e.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}
	if e.Curve() != harmonic.StandardCurve {
		t.Errorf("expected standard curve, got %+v", e.Curve())
	}
}

func TestPutReplaces(t *testing.T) {
	ctx := context.Background()
	c := openTemp(t)

	e := standardEntry("mine")
	if err := c.Put(ctx, e); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	e.Reverse = true
	if err := c.Put(ctx, e); err != nil {
		t.Fatalf("second put failed: %v", err)
	}

	got, err := c.Get(ctx, "mine")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !got.Reverse {
		t.Error("expected replaced entry to be reversed")
	}

	all, err := c.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("expected 1 entry, got %d", len(all))
	}
}

func TestPutRejectsInvalid(t *testing.T) {
	c := openTemp(t)

	if err := c.Put(context.Background(), Entry{Name: "flat", Omega: 1}); err == nil {
		t.Error("expected error for zero gamma")
	}
	if err := c.Put(context.Background(), standardEntry("")); err == nil {
		t.Error("expected error for empty name")
	}
}

func TestListOrdered(t *testing.T) {
	ctx := context.Background()
	c := openTemp(t)

	for _, name := range []string{"zeta", "alpha", "mid"} {
		if err := c.Put(ctx, standardEntry(name)); err != nil {
			t.Fatalf("put %s failed: %v", name, err)
		}
	}

	all, err := c.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	expected := []string{"alpha", "mid", "zeta"}
	for i, e := range all {
		if e.Name != expected[i] {
			t.Errorf("position %d: expected %s, got %s", i, expected[i], e.Name)
		}
	}
}

func TestDeleteAndNotFound(t *testing.T) {
	ctx := context.Background()
	c := openTemp(t)

	if err := c.Put(ctx, standardEntry("tmp")); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	if err := c.Delete(ctx, "tmp"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := c.Get(ctx, "tmp"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if err := c.Delete(ctx, "tmp"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound deleting twice, got %v", err)
	}
}
