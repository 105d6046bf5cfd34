package prompts_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/SalmanMuhammad/scribe/internal/prompts"
)

func newTestStore() prompts.System {
	return prompts.New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func seed(t *testing.T, sys prompts.System, contents ...string) {
	t.Helper()
	for _, c := range contents {
		if _, err := sys.Create(c); err != nil {
			t.Fatalf("seed %q: %v", c, err)
		}
	}
}

func TestCreate(t *testing.T) {
	t.Run("rejects empty content", func(t *testing.T) {
		tests := []struct {
			name    string
			content string
		}{
			{"empty string", ""},
			{"whitespace only", "   \t\n  "},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				sys := newTestStore()
				if _, err := sys.Create(tt.content); !errors.Is(err, prompts.ErrEmptyPrompt) {
					t.Errorf("Create(%q) error = %v, want ErrEmptyPrompt", tt.content, err)
				}
			})
		}
	})

	t.Run("trims content", func(t *testing.T) {
		sys := newTestStore()
		p, err := sys.Create("  hello  ")
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if p.Content != "hello" {
			t.Errorf("content = %q, want %q", p.Content, "hello")
		}
		if p.CreatedAt.IsZero() {
			t.Error("created_at not set")
		}
		if p.UpdatedAt != nil {
			t.Error("updated_at should be absent on create")
		}
	})

	t.Run("assigns id equal to pre-insert length", func(t *testing.T) {
		sys := newTestStore()
		for i := range 5 {
			p, err := sys.Create("prompt")
			if err != nil {
				t.Fatalf("Create failed: %v", err)
			}
			if p.ID != i {
				t.Errorf("id = %d, want %d", p.ID, i)
			}
		}
	})
}

func TestList(t *testing.T) {
	t.Run("empty store", func(t *testing.T) {
		sys := newTestStore()
		list, count := sys.List()
		if count != 0 || len(list) != 0 {
			t.Errorf("List() = %d items, count %d, want 0, 0", len(list), count)
		}
	})

	t.Run("preserves insertion order", func(t *testing.T) {
		sys := newTestStore()
		seed(t, sys, "first", "second", "third")

		list, count := sys.List()
		if count != 3 {
			t.Fatalf("count = %d, want 3", count)
		}

		want := []string{"first", "second", "third"}
		for i, p := range list {
			if p.Content != want[i] {
				t.Errorf("list[%d].Content = %q, want %q", i, p.Content, want[i])
			}
			if p.ID != i {
				t.Errorf("list[%d].ID = %d, want %d", i, p.ID, i)
			}
		}
	})
}

func TestGet(t *testing.T) {
	sys := newTestStore()
	seed(t, sys, "a", "b")

	t.Run("id equals position for every valid index", func(t *testing.T) {
		for i := range 2 {
			p, err := sys.Get(i)
			if err != nil {
				t.Fatalf("Get(%d) failed: %v", i, err)
			}
			if p.ID != i {
				t.Errorf("Get(%d).ID = %d, want %d", i, p.ID, i)
			}
		}
	})

	t.Run("out of range", func(t *testing.T) {
		for _, index := range []int{-1, 2, 5} {
			if _, err := sys.Get(index); !errors.Is(err, prompts.ErrNotFound) {
				t.Errorf("Get(%d) error = %v, want ErrNotFound", index, err)
			}
		}
	})
}

func TestUpdate(t *testing.T) {
	t.Run("replaces content in place", func(t *testing.T) {
		sys := newTestStore()
		seed(t, sys, "original")

		result, err := sys.Update(0, "  revised  ")
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if result.OldContent != "original" {
			t.Errorf("old = %q, want %q", result.OldContent, "original")
		}
		if result.NewContent != "revised" {
			t.Errorf("new = %q, want %q", result.NewContent, "revised")
		}

		p, err := sys.Get(0)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if p.Content != "revised" {
			t.Errorf("content = %q, want %q", p.Content, "revised")
		}
		if p.ID != 0 {
			t.Errorf("id changed to %d, want 0", p.ID)
		}
		if p.UpdatedAt == nil {
			t.Error("updated_at not set")
		}
	})

	t.Run("rejects empty content", func(t *testing.T) {
		sys := newTestStore()
		seed(t, sys, "keep")

		if _, err := sys.Update(0, "   "); !errors.Is(err, prompts.ErrEmptyPrompt) {
			t.Errorf("error = %v, want ErrEmptyPrompt", err)
		}

		p, _ := sys.Get(0)
		if p.Content != "keep" {
			t.Errorf("content mutated to %q on failed update", p.Content)
		}
	})

	t.Run("out of range", func(t *testing.T) {
		sys := newTestStore()
		if _, err := sys.Update(0, "content"); !errors.Is(err, prompts.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})
}

func TestDelete(t *testing.T) {
	t.Run("renumbers remaining records", func(t *testing.T) {
		sys := newTestStore()
		seed(t, sys, "A", "B", "C")

		removed, err := sys.Delete(1)
		if err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if removed.Content != "B" {
			t.Errorf("removed content = %q, want B", removed.Content)
		}
		if removed.ID != 1 {
			t.Errorf("removed id = %d, want original id 1", removed.ID)
		}

		list, count := sys.List()
		if count != 2 {
			t.Fatalf("count = %d, want 2", count)
		}
		if list[0].Content != "A" || list[0].ID != 0 {
			t.Errorf("list[0] = {%d %q}, want {0 A}", list[0].ID, list[0].Content)
		}
		if list[1].Content != "C" || list[1].ID != 1 {
			t.Errorf("list[1] = {%d %q}, want {1 C}", list[1].ID, list[1].Content)
		}
	})

	t.Run("records before the index are unchanged", func(t *testing.T) {
		sys := newTestStore()
		seed(t, sys, "a", "b", "c", "d")

		if _, err := sys.Delete(2); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}

		list, _ := sys.List()
		want := []string{"a", "b", "d"}
		for i, p := range list {
			if p.Content != want[i] || p.ID != i {
				t.Errorf("list[%d] = {%d %q}, want {%d %q}", i, p.ID, p.Content, i, want[i])
			}
		}
	})

	t.Run("delete last then reuse index", func(t *testing.T) {
		sys := newTestStore()
		seed(t, sys, "only")

		if _, err := sys.Delete(0); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if _, err := sys.Delete(0); !errors.Is(err, prompts.ErrNotFound) {
			t.Errorf("second delete error = %v, want ErrNotFound", err)
		}

		p, err := sys.Create("replacement")
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if p.ID != 0 {
			t.Errorf("id = %d, want 0 after collection emptied", p.ID)
		}
	})

	t.Run("out of range", func(t *testing.T) {
		sys := newTestStore()
		seed(t, sys, "a", "b")

		for _, index := range []int{-1, 2, 5} {
			if _, err := sys.Delete(index); !errors.Is(err, prompts.ErrNotFound) {
				t.Errorf("Delete(%d) error = %v, want ErrNotFound", index, err)
			}
		}
	})
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", prompts.ErrNotFound, 404},
		{"empty prompt", prompts.ErrEmptyPrompt, 400},
		{"unknown error", errors.New("something else"), 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := prompts.MapHTTPStatus(tt.err); got != tt.want {
				t.Errorf("MapHTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
