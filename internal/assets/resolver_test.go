package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/duckpond/quackchat/internal/script"
)

func TestResolverPrefersConfiguredDir(t *testing.T) {
	dir := t.TempDir()
	art := "custom duck art"
	if err := os.WriteFile(filepath.Join(dir, "avatar_b.txt"), []byte(art+"\n"), 0644); err != nil {
		t.Fatalf("write avatar: %v", err)
	}

	r := NewResolver(dir, zerolog.Nop())
	if got := r.Avatar(script.SpeakerB); got != art {
		t.Fatalf("expected configured art, got %q", got)
	}
}

func TestResolverFallsBackToPlaceholder(t *testing.T) {
	r := NewResolver(t.TempDir(), zerolog.Nop())

	if got := r.Avatar(script.SpeakerA); got != placeholderA {
		t.Fatalf("expected placeholder for missing asset")
	}
	if _, ok := r.Background("living-room"); ok {
		t.Fatalf("expected missing background to report false")
	}
}
