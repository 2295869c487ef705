package tenant

import "testing"

func TestResolve(t *testing.T) {
	t.Run("plain value", func(t *testing.T) {
		if got := Resolve("acme", "kuaforun"); got != "acme" {
			t.Errorf("Resolve = %q, want %q", got, "acme")
		}
	})

	t.Run("comma separated takes first", func(t *testing.T) {
		if got := Resolve("a, b", "kuaforun"); got != "a" {
			t.Errorf("Resolve = %q, want %q", got, "a")
		}
	})

	t.Run("leading empty token skipped", func(t *testing.T) {
		if got := Resolve(" , b", "kuaforun"); got != "b" {
			t.Errorf("Resolve = %q, want %q", got, "b")
		}
	})

	t.Run("absent header falls back", func(t *testing.T) {
		if got := Resolve("", "kuaforun"); got != "kuaforun" {
			t.Errorf("Resolve = %q, want %q", got, "kuaforun")
		}
	})

	t.Run("blank header falls back", func(t *testing.T) {
		if got := Resolve("   ", "kuaforun"); got != "kuaforun" {
			t.Errorf("Resolve = %q, want %q", got, "kuaforun")
		}
	})

	t.Run("only commas falls back", func(t *testing.T) {
		if got := Resolve(",,", "kuaforun"); got != "kuaforun" {
			t.Errorf("Resolve = %q, want %q", got, "kuaforun")
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		a := Resolve("x, y", "d")
		b := Resolve("x, y", "d")
		if a != b {
			t.Errorf("Resolve not deterministic: %q vs %q", a, b)
		}
	})
}
