package app

import (
	"testing"

	"github.com/dshills/vellum/internal/input/key"
)

func TestPromptTyping(t *testing.T) {
	p := NewPrompt("Save as: %s (ESC to cancel)", nil)

	for _, r := range "a.txt" {
		result, _ := p.HandleKey(key.NewRuneEvent(r, key.ModNone))
		if result != PromptActive {
			t.Fatalf("HandleKey(%q) = %v, want PromptActive", r, result)
		}
	}
	if p.Text() != "a.txt" {
		t.Errorf("Text() = %q, want %q", p.Text(), "a.txt")
	}
}

func TestPromptRender(t *testing.T) {
	p := NewPrompt("Search: %s (Use ESC/Arrows/Enter)", nil)
	p.HandleKey(key.NewRuneEvent('h', key.ModNone))
	p.HandleKey(key.NewRuneEvent('i', key.ModNone))

	want := "Search: hi (Use ESC/Arrows/Enter)"
	if got := p.Render(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestPromptBackspace(t *testing.T) {
	p := NewPrompt("%s", nil)
	p.HandleKey(key.NewRuneEvent('a', key.ModNone))
	p.HandleKey(key.NewRuneEvent('b', key.ModNone))

	p.HandleKey(key.NewSpecialEvent(key.KeyBackspace, key.ModNone))
	if p.Text() != "a" {
		t.Errorf("after backspace Text() = %q, want %q", p.Text(), "a")
	}

	p.HandleKey(key.NewSpecialEvent(key.KeyDelete, key.ModNone))
	if p.Text() != "" {
		t.Errorf("after delete Text() = %q, want empty", p.Text())
	}

	// trimming an empty buffer is a no-op
	result, _ := p.HandleKey(key.NewSpecialEvent(key.KeyBackspace, key.ModNone))
	if result != PromptActive || p.Text() != "" {
		t.Errorf("backspace on empty: result %v text %q", result, p.Text())
	}
}

func TestPromptEscapeCancels(t *testing.T) {
	p := NewPrompt("%s", nil)
	p.HandleKey(key.NewRuneEvent('x', key.ModNone))

	result, text := p.HandleKey(key.NewSpecialEvent(key.KeyEscape, key.ModNone))
	if result != PromptCancelled {
		t.Errorf("escape result = %v, want PromptCancelled", result)
	}
	if text != "x" {
		t.Errorf("escape text = %q, want %q", text, "x")
	}
}

func TestPromptEnterAccepts(t *testing.T) {
	p := NewPrompt("%s", nil)

	// Enter on an empty buffer keeps the prompt open
	result, _ := p.HandleKey(key.NewSpecialEvent(key.KeyEnter, key.ModNone))
	if result != PromptActive {
		t.Fatalf("enter on empty = %v, want PromptActive", result)
	}

	p.HandleKey(key.NewRuneEvent('o', key.ModNone))
	p.HandleKey(key.NewRuneEvent('k', key.ModNone))
	result, text := p.HandleKey(key.NewSpecialEvent(key.KeyEnter, key.ModNone))
	if result != PromptAccepted {
		t.Errorf("enter result = %v, want PromptAccepted", result)
	}
	if text != "ok" {
		t.Errorf("enter text = %q, want %q", text, "ok")
	}
}

func TestPromptCallbackSeesEveryKey(t *testing.T) {
	var texts []string
	var keys []key.Key
	p := NewPrompt("%s", func(text string, ev key.Event) {
		texts = append(texts, text)
		keys = append(keys, ev.Key)
	})

	p.HandleKey(key.NewRuneEvent('a', key.ModNone))
	p.HandleKey(key.NewSpecialEvent(key.KeyRight, key.ModNone))
	p.HandleKey(key.NewSpecialEvent(key.KeyEscape, key.ModNone))

	wantTexts := []string{"a", "a", "a"}
	wantKeys := []key.Key{key.KeyRune, key.KeyRight, key.KeyEscape}
	if len(texts) != len(wantTexts) {
		t.Fatalf("callback ran %d times, want %d", len(texts), len(wantTexts))
	}
	for i := range wantTexts {
		if texts[i] != wantTexts[i] || keys[i] != wantKeys[i] {
			t.Errorf("call %d = (%q, %v), want (%q, %v)",
				i, texts[i], keys[i], wantTexts[i], wantKeys[i])
		}
	}
}

func TestPromptIgnoresSpecialKeys(t *testing.T) {
	p := NewPrompt("%s", nil)
	p.HandleKey(key.NewRuneEvent('q', key.ModNone))

	for _, k := range []key.Key{key.KeyUp, key.KeyDown, key.KeyLeft, key.KeyRight, key.KeyHome, key.KeyEnd, key.KeyTab} {
		result, _ := p.HandleKey(key.NewSpecialEvent(k, key.ModNone))
		if result != PromptActive {
			t.Errorf("key %v result = %v, want PromptActive", k, result)
		}
	}
	if p.Text() != "q" {
		t.Errorf("Text() = %q, want %q", p.Text(), "q")
	}
}

func TestPromptRejectsControlAndWide(t *testing.T) {
	p := NewPrompt("%s", nil)
	p.HandleKey(key.NewRuneEvent('a', key.ModCtrl))
	p.HandleKey(key.NewRuneEvent('é', key.ModNone))
	if p.Text() != "" {
		t.Errorf("Text() = %q, want empty", p.Text())
	}
}
