package ui

import (
	"testing"

	"orgsetup/internal/config"
)

func TestCoverCatalogueResolves(t *testing.T) {
	if len(coverCatalogue) != len(coverShortNames) {
		t.Fatalf("catalogue has %d entries, want %d", len(coverCatalogue), len(coverShortNames))
	}
	for _, e := range coverCatalogue {
		if e.Glyph == "" || e.URL == "" {
			t.Errorf("%s: empty glyph or url", e.ShortName)
		}
	}
}

func TestDefaultCoverIsMushroom(t *testing.T) {
	if coverCatalogue[0].URL != config.DefaultCover {
		t.Fatalf("first cover = %q, want default %q", coverCatalogue[0].URL, config.DefaultCover)
	}
	if coverGlyph(config.DefaultCover) != "🍄" {
		t.Fatalf("default cover glyph = %q", coverGlyph(config.DefaultCover))
	}
}

func TestCoverURL(t *testing.T) {
	tests := []struct {
		runes []rune
		want  string
	}{
		{[]rune{0x1f344}, "https://cdn.jsdelivr.net/npm/emoji-datasource-twitter/img/twitter/64/1f344.png"},
		{[]rune{0x2b50}, "https://cdn.jsdelivr.net/npm/emoji-datasource-twitter/img/twitter/64/2b50.png"},
		{[]rune{0x26a1, 0xfe0f}, "https://cdn.jsdelivr.net/npm/emoji-datasource-twitter/img/twitter/64/26a1.png"},
	}
	for _, tt := range tests {
		if got := coverURL(tt.runes); got != tt.want {
			t.Errorf("coverURL(%U) = %q, want %q", tt.runes, got, tt.want)
		}
	}
}

func TestEmojiPickerCycles(t *testing.T) {
	p := newEmojiPicker(config.DefaultCover)
	if p.Name() != "mushroom" {
		t.Fatalf("initial = %q", p.Name())
	}

	p = p.Prev()
	if p.Name() != coverShortNames[len(coverShortNames)-1] {
		t.Fatalf("Prev from first should wrap, got %q", p.Name())
	}
	p = p.Next()
	if p.Name() != "mushroom" {
		t.Fatalf("Next should wrap back, got %q", p.Name())
	}
	p = p.Next()
	if p.Name() != "rocket" || p.Value() != coverCatalogue[1].URL {
		t.Fatalf("Next = %q %q", p.Name(), p.Value())
	}
}

func TestEmojiPickerCustomCover(t *testing.T) {
	p := newEmojiPicker("https://example.com/logo.png")
	if p.Value() != "https://example.com/logo.png" || p.Name() != "" {
		t.Fatalf("custom cover lost: %q %q", p.Value(), p.Name())
	}
	if p.Glyph() != "▣" {
		t.Errorf("custom glyph = %q", p.Glyph())
	}
	if p = p.Next(); p.Name() != "mushroom" {
		t.Fatalf("Next from custom should select the first emoji, got %q", p.Name())
	}

	if got := newEmojiPicker("").Glyph(); got != "·" {
		t.Errorf("empty cover glyph = %q", got)
	}
}
