package practical

import "github.com/abhisek/shortcutmaster/internal/catalog"

// Field indexes on the surface. Which fields exist depends on the task kind.
const (
	FieldSource      = 0
	FieldDestination = 1
	FieldSingle      = 0
	// FieldTabTarget is the third input of a tab-navigation task.
	FieldTabTarget = 2
)

// Op enumerates surface commands.
type Op int

const (
	OpNone Op = iota
	OpSelectAll
	OpCopy
	OpCut
	OpPaste
	OpInsert
	OpBackspace
	OpDelete
	OpLeft
	OpRight
	OpHome
	OpEnd
	OpFocusNext
	OpFocusPrev
)

// Command is one editing or focus operation.
type Command struct {
	Op     Op
	Text   string // OpInsert payload; OpPaste with Text set pastes it instead of the clipboard
	Extend bool   // cursor moves extend the selection
}

// Change describes what a command did to the surface.
type Change struct {
	Buffers    bool
	FocusMoved bool
}

// Any reports whether the command had an observable effect.
func (c Change) Any() bool {
	return c.Buffers || c.FocusMoved
}

// Surface is the set of input fields a practical task is performed on,
// together with the focus pointer and a private clipboard.
type Surface struct {
	Fields    []*Buffer
	Labels    []string
	focus     int
	clipboard string
}

// NewSurface lays out fields for task, seeding buffers from its initial text.
func NewSurface(task catalog.PracticalTask) *Surface {
	s := &Surface{}
	switch task.Kind {
	case catalog.KindCopyPaste, catalog.KindCutPaste:
		s.Fields = []*Buffer{NewBuffer(task.InitialText), NewBuffer("")}
		s.Labels = []string{"Left field", "Right field"}
	case catalog.KindSelectAllDelete:
		s.Fields = []*Buffer{NewBuffer(task.InitialText)}
		s.Labels = []string{"Text"}
	case catalog.KindTabNavigation:
		s.Fields = []*Buffer{NewBuffer(""), NewBuffer(""), NewBuffer("")}
		s.Labels = []string{"First (start here)", "Second (pass with Tab)", "Third (reach to clear)"}
	}
	return s
}

// Focus returns the focused field index.
func (s *Surface) Focus() int {
	return s.focus
}

// Clipboard returns the surface clipboard contents.
func (s *Surface) Clipboard() string {
	return s.clipboard
}

// Text returns the contents of field i, or "" if it does not exist.
func (s *Surface) Text(i int) string {
	if i < 0 || i >= len(s.Fields) {
		return ""
	}
	return s.Fields[i].Text()
}

// SetFocus moves focus to field i. Out-of-range indexes are ignored.
func (s *Surface) SetFocus(i int) Change {
	if i < 0 || i >= len(s.Fields) || i == s.focus {
		return Change{}
	}
	s.focus = i
	return Change{FocusMoved: true}
}

// Apply runs cmd against the focused field.
func (s *Surface) Apply(cmd Command) Change {
	if len(s.Fields) == 0 {
		return Change{}
	}
	b := s.Fields[s.focus]
	switch cmd.Op {
	case OpSelectAll:
		b.SelectAll()
	case OpCopy:
		if sel := b.Selected(); sel != "" {
			s.clipboard = sel
		}
	case OpCut:
		if sel := b.Selected(); sel != "" {
			s.clipboard = sel
			return Change{Buffers: b.DeleteSelection()}
		}
	case OpPaste:
		text := s.clipboard
		if cmd.Text != "" {
			text = cmd.Text
		}
		if text == "" {
			return Change{}
		}
		return Change{Buffers: b.Insert(text)}
	case OpInsert:
		return Change{Buffers: b.Insert(cmd.Text)}
	case OpBackspace:
		return Change{Buffers: b.Backspace()}
	case OpDelete:
		return Change{Buffers: b.Delete()}
	case OpLeft:
		b.Left(cmd.Extend)
	case OpRight:
		b.Right(cmd.Extend)
	case OpHome:
		b.Home(cmd.Extend)
	case OpEnd:
		b.End(cmd.Extend)
	case OpFocusNext:
		return s.SetFocus((s.focus + 1) % len(s.Fields))
	case OpFocusPrev:
		return s.SetFocus((s.focus - 1 + len(s.Fields)) % len(s.Fields))
	}
	return Change{}
}
