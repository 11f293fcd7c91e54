// Package practical models the keyboard-only editing surface used by
// practical tasks and the predicates that decide when a task is complete.
package practical

import "github.com/mattn/go-runewidth"

// Buffer is a single-line text field with a caret and an optional selection.
// The selection spans [min(anchor, caret), max(anchor, caret)); anchor < 0
// means nothing is selected.
type Buffer struct {
	text   []rune
	caret  int
	anchor int
}

// NewBuffer returns a buffer holding text with the caret at the end.
func NewBuffer(text string) *Buffer {
	b := &Buffer{anchor: -1}
	b.SetText(text)
	return b
}

// Text returns the buffer contents.
func (b *Buffer) Text() string {
	return string(b.text)
}

// SetText replaces the contents, placing the caret at the end.
func (b *Buffer) SetText(text string) {
	b.text = []rune(text)
	b.caret = len(b.text)
	b.anchor = -1
}

// Caret returns the caret position in runes.
func (b *Buffer) Caret() int {
	return b.caret
}

// Selection returns the selected rune range and whether one exists.
func (b *Buffer) Selection() (start, end int, ok bool) {
	if b.anchor < 0 || b.anchor == b.caret {
		return 0, 0, false
	}
	if b.anchor < b.caret {
		return b.anchor, b.caret, true
	}
	return b.caret, b.anchor, true
}

// Selected returns the selected text, or "" when nothing is selected.
func (b *Buffer) Selected() string {
	start, end, ok := b.Selection()
	if !ok {
		return ""
	}
	return string(b.text[start:end])
}

// SelectAll selects the whole contents.
func (b *Buffer) SelectAll() {
	b.anchor = 0
	b.caret = len(b.text)
}

// DeleteSelection removes the selected text. It reports whether anything changed.
func (b *Buffer) DeleteSelection() bool {
	start, end, ok := b.Selection()
	if !ok {
		b.anchor = -1
		return false
	}
	b.text = append(b.text[:start:start], b.text[end:]...)
	b.caret = start
	b.anchor = -1
	return true
}

// Insert replaces the selection (if any) with s.
func (b *Buffer) Insert(s string) bool {
	changed := b.DeleteSelection()
	if s == "" {
		return changed
	}
	r := []rune(s)
	out := make([]rune, 0, len(b.text)+len(r))
	out = append(out, b.text[:b.caret]...)
	out = append(out, r...)
	out = append(out, b.text[b.caret:]...)
	b.text = out
	b.caret += len(r)
	return true
}

// Backspace deletes the selection or the rune before the caret.
func (b *Buffer) Backspace() bool {
	if b.DeleteSelection() {
		return true
	}
	if b.caret == 0 {
		return false
	}
	b.text = append(b.text[:b.caret-1:b.caret-1], b.text[b.caret:]...)
	b.caret--
	return true
}

// Delete deletes the selection or the rune after the caret.
func (b *Buffer) Delete() bool {
	if b.DeleteSelection() {
		return true
	}
	if b.caret >= len(b.text) {
		return false
	}
	b.text = append(b.text[:b.caret:b.caret], b.text[b.caret+1:]...)
	return true
}

// Move sets the caret to pos. With extend the selection grows from the
// current anchor (or the old caret); otherwise the selection is dropped.
func (b *Buffer) Move(pos int, extend bool) {
	pos = max(0, min(pos, len(b.text)))
	if extend {
		if b.anchor < 0 {
			b.anchor = b.caret
		}
	} else {
		b.anchor = -1
	}
	b.caret = pos
}

// Left moves the caret one rune left.
func (b *Buffer) Left(extend bool) {
	if !extend {
		if start, _, ok := b.Selection(); ok {
			b.Move(start, false)
			return
		}
	}
	b.Move(b.caret-1, extend)
}

// Right moves the caret one rune right.
func (b *Buffer) Right(extend bool) {
	if !extend {
		if _, end, ok := b.Selection(); ok {
			b.Move(end, false)
			return
		}
	}
	b.Move(b.caret+1, extend)
}

// Home moves the caret to the start.
func (b *Buffer) Home(extend bool) { b.Move(0, extend) }

// End moves the caret to the end.
func (b *Buffer) End(extend bool) { b.Move(len(b.text), extend) }

// CaretColumn returns the display column of the caret, accounting for wide runes.
func (b *Buffer) CaretColumn() int {
	return runewidth.StringWidth(string(b.text[:b.caret]))
}

// Width returns the display width of the contents.
func (b *Buffer) Width() int {
	return runewidth.StringWidth(string(b.text))
}
