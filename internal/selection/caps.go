package selection

// Capability predicates derived from the current state. Every predicate
// denies its action when Valid is false; the toolbar and the dispatcher's
// permission table consult these instead of asking the engine per action.

// IsInImage reports whether the selection is an image.
func (s *State) IsInImage() bool {
	return s.Valid && s.Image != nil
}

// IsInLink reports whether the selection is inside a link.
func (s *State) IsInLink() bool {
	return s.Valid && s.Link != nil
}

// IsInTable reports whether the selection is inside a table.
func (s *State) IsInTable() bool {
	return s.Valid && s.Table.Inside
}

// CanCopyCut reports whether there is content to copy or cut: a non-empty
// text selection or a selected image.
func (s *State) CanCopyCut() bool {
	return s.Valid && (s.Selection != "" || s.Image != nil)
}

// CanApplyFormat reports whether character formats (bold, italic, ...) may
// be toggled at the selection.
func (s *State) CanApplyFormat() bool {
	return s.Valid && !s.IsInImage()
}

// CanApplyStyle reports whether the paragraph style may be replaced.
func (s *State) CanApplyStyle() bool {
	return s.Valid && !s.IsInImage()
}

// CanToggleList reports whether list membership may be toggled.
func (s *State) CanToggleList() bool {
	return s.Valid && !s.IsInImage()
}

// CanIndent reports whether the selection may be indented.
func (s *State) CanIndent() bool {
	return s.Valid && !s.IsInImage()
}

// CanOutdent reports whether the selection may be outdented.
func (s *State) CanOutdent() bool {
	return s.Valid && !s.IsInImage()
}

// CanInsertLink reports whether a link may be inserted or edited.
func (s *State) CanInsertLink() bool {
	return s.Valid && !s.IsInImage()
}

// CanInsertImage reports whether an image may be inserted or modified.
func (s *State) CanInsertImage() bool {
	return s.Valid
}

// CanInsertTable reports whether a table may be inserted. Nested tables
// are not supported, so this denies inside an existing table.
func (s *State) CanInsertTable() bool {
	return s.Valid && !s.Table.Inside
}
