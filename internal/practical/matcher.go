package practical

import "github.com/abhisek/shortcutmaster/internal/catalog"

// Complete reports whether task's goal holds on surface. Completion is
// judged from effects only, so any key sequence reaching the goal counts.
func Complete(task catalog.PracticalTask, s *Surface) bool {
	switch task.Kind {
	case catalog.KindCopyPaste:
		return s.Text(FieldDestination) == task.InitialText
	case catalog.KindCutPaste:
		return s.Text(FieldSource) == "" && s.Text(FieldDestination) == task.InitialText
	case catalog.KindSelectAllDelete:
		return s.Text(FieldSingle) == ""
	case catalog.KindTabNavigation:
		// Only arrival at the final target matters, not the route taken.
		return len(s.Fields) > FieldTabTarget && s.Focus() == FieldTabTarget
	}
	return false
}
