package ui

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark-emoji/definition"
)

// coverURLPattern is the emoji-datasource twitter image set the backend
// accepts as organization covers.
const coverURLPattern = "https://cdn.jsdelivr.net/npm/emoji-datasource-twitter/img/twitter/64/%s.png"

// coverShortNames is the curated picker catalogue, in display order.
var coverShortNames = []string{
	"mushroom",
	"rocket",
	"star",
	"fire",
	"zap",
	"sparkles",
	"seedling",
	"evergreen_tree",
	"sunflower",
	"rainbow",
	"gem",
	"dart",
	"trophy",
	"bulb",
	"coffee",
	"books",
	"art",
	"briefcase",
	"globe_with_meridians",
	"package",
}

// coverEmoji is one choice in the picker.
type coverEmoji struct {
	ShortName string
	Glyph     string
	URL       string
}

var coverCatalogue = buildCoverCatalogue(coverShortNames)

func buildCoverCatalogue(names []string) []coverEmoji {
	emojis := definition.Github()
	out := make([]coverEmoji, 0, len(names))
	for _, name := range names {
		e, ok := emojis.Get(name)
		if !ok || len(e.Unicode) == 0 {
			continue
		}
		out = append(out, coverEmoji{
			ShortName: name,
			Glyph:     string(e.Unicode),
			URL:       coverURL(e.Unicode),
		})
	}
	return out
}

// coverURL builds the image URL from the emoji's code points, e.g. 1f344.
func coverURL(codepoints []rune) string {
	parts := make([]string, 0, len(codepoints))
	for _, r := range codepoints {
		if r == 0xfe0f {
			continue
		}
		parts = append(parts, fmt.Sprintf("%04x", r))
	}
	return fmt.Sprintf(coverURLPattern, strings.Join(parts, "-"))
}

// coverGlyph returns the emoji drawn for a cover URL, or a placeholder for
// covers outside the catalogue.
func coverGlyph(url string) string {
	if i := coverIndex(url); i >= 0 {
		return coverCatalogue[i].Glyph
	}
	if url == "" {
		return "·"
	}
	return "▣"
}

func coverIndex(url string) int {
	for i, e := range coverCatalogue {
		if e.URL == url {
			return i
		}
	}
	return -1
}

// emojiPicker cycles through the cover catalogue. A cover outside the
// catalogue (from config) is kept until the user moves.
type emojiPicker struct {
	index  int
	custom string
}

func newEmojiPicker(initial string) emojiPicker {
	if i := coverIndex(initial); i >= 0 {
		return emojiPicker{index: i}
	}
	return emojiPicker{index: -1, custom: initial}
}

// Value returns the selected cover URL.
func (p emojiPicker) Value() string {
	if p.index < 0 || p.index >= len(coverCatalogue) {
		return p.custom
	}
	return coverCatalogue[p.index].URL
}

// Glyph returns the selected emoji.
func (p emojiPicker) Glyph() string {
	return coverGlyph(p.Value())
}

// Name returns the selected emoji's short name, "" for a custom cover.
func (p emojiPicker) Name() string {
	if p.index < 0 || p.index >= len(coverCatalogue) {
		return ""
	}
	return coverCatalogue[p.index].ShortName
}

func (p emojiPicker) Next() emojiPicker {
	if len(coverCatalogue) == 0 {
		return p
	}
	p.index = (p.index + 1) % len(coverCatalogue)
	return p
}

func (p emojiPicker) Prev() emojiPicker {
	if len(coverCatalogue) == 0 {
		return p
	}
	if p.index <= 0 {
		p.index = len(coverCatalogue) - 1
		return p
	}
	p.index--
	return p
}
