package selection

// ParagraphStyle identifies the block style at the selection.
type ParagraphStyle int

const (
	// StyleUndefined means the engine reported no block style.
	StyleUndefined ParagraphStyle = iota

	// StyleP is a plain paragraph.
	StyleP

	// StyleH1 through StyleH6 are heading levels.
	StyleH1
	StyleH2
	StyleH3
	StyleH4
	StyleH5
	StyleH6
)

// String returns the style's wire form, or "" for StyleUndefined.
func (p ParagraphStyle) String() string {
	switch p {
	case StyleP:
		return "P"
	case StyleH1:
		return "H1"
	case StyleH2:
		return "H2"
	case StyleH3:
		return "H3"
	case StyleH4:
		return "H4"
	case StyleH5:
		return "H5"
	case StyleH6:
		return "H6"
	default:
		return ""
	}
}

// ParseParagraphStyle maps a wire string to a ParagraphStyle.
// Unknown values map to StyleUndefined.
func ParseParagraphStyle(s string) ParagraphStyle {
	switch s {
	case "P":
		return StyleP
	case "H1":
		return StyleH1
	case "H2":
		return StyleH2
	case "H3":
		return StyleH3
	case "H4":
		return StyleH4
	case "H5":
		return StyleH5
	case "H6":
		return StyleH6
	default:
		return StyleUndefined
	}
}

// ListType identifies the list context at the selection.
type ListType int

const (
	// ListUndefined means the selection is not inside a list.
	ListUndefined ListType = iota

	// ListUnordered is a bulleted list.
	ListUnordered

	// ListOrdered is a numbered list.
	ListOrdered
)

// String returns the list type's wire form, or "" for ListUndefined.
func (l ListType) String() string {
	switch l {
	case ListUnordered:
		return "UL"
	case ListOrdered:
		return "OL"
	default:
		return ""
	}
}

// ParseListType maps a wire string to a ListType.
// Unknown values map to ListUndefined.
func ParseListType(s string) ListType {
	switch s {
	case "UL":
		return ListUnordered
	case "OL":
		return ListOrdered
	default:
		return ListUndefined
	}
}

// Border identifies how a table draws its borders.
type Border int

const (
	// BorderCell is the sentinel default: borders on every cell.
	BorderCell Border = iota

	// BorderOuter draws only the table's outer border.
	BorderOuter

	// BorderHeader draws the outer border and a header separator.
	BorderHeader

	// BorderNone draws no borders.
	BorderNone
)

// String returns the border mode's wire form.
func (b Border) String() string {
	switch b {
	case BorderOuter:
		return "outer"
	case BorderHeader:
		return "header"
	case BorderNone:
		return "none"
	default:
		return "cell"
	}
}

// ParseBorder maps a wire string to a Border.
// Unknown values map to BorderCell.
func ParseBorder(s string) Border {
	switch s {
	case "outer":
		return BorderOuter
	case "header":
		return BorderHeader
	case "none":
		return BorderNone
	default:
		return BorderCell
	}
}

// Rect is the selection's bounding rectangle in the surface's local
// coordinate space, used for popover anchoring and keyboard avoidance.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Link describes the link enclosing the selection.
type Link struct {
	// HRef is the link target.
	HRef string

	// Text is the enclosing link's text content.
	Text string
}

// Image describes the image at or enclosing the selection.
// Width and Height are meaningful only together; both are zero when the
// engine did not report dimensions.
type Image struct {
	Src    string
	Alt    string
	Width  int
	Height int

	// Scale is the display scale in percent. Defaults to 100 when the
	// engine reports an image without an explicit scale.
	Scale int
}

// Table describes the table context enclosing the selection.
// The zero value means "not inside a table" with the BorderCell sentinel.
type Table struct {
	// Inside is true when the selection is anywhere inside a table.
	Inside bool

	// InHeader is true when the selection is inside the thead section.
	InHeader bool

	// InBody is true when the selection is inside the tbody section.
	InBody bool

	// InHeaderCell is true when the selection is inside a header cell.
	InHeaderCell bool

	// Border is the table's border display mode.
	Border Border

	// Rows and Cols are the table dimensions.
	Rows int
	Cols int

	// Row and Col are the zero-based position of the current cell.
	Row int
	Col int
}

// Format holds the independent character-format flags at the selection.
// Any subset may be simultaneously true.
type Format struct {
	Bold      bool
	Italic    bool
	Underline bool
	Strike    bool
	Sub       bool
	Super     bool
	Code      bool
}

// State is the native snapshot of the engine's selection context.
//
// When Valid is false the engine has not reported a live selection and
// every other field is meaningless: optional pointers are nil, strings
// empty, enums at their sentinel.
type State struct {
	// Valid reports whether the engine has a live selection.
	Valid bool

	// Selection is the selected text, empty when the selection is a caret.
	Selection string

	// SelRect is the selection's bounding rectangle. Populated only when
	// Selection is non-empty and the engine supplied geometry.
	SelRect *Rect

	// Link is the enclosing link, nil when the selection is not in a link.
	Link *Link

	// Image is the selected image, nil when the selection is not an image.
	Image *Image

	// Table is the enclosing table context.
	Table Table

	// Style is the paragraph/heading style at the selection.
	Style ParagraphStyle

	// List is the list context at the selection.
	List ListType

	// ListItem is true when the selection is inside a list item.
	ListItem bool

	// Quote is true when the selection is inside a blockquote.
	Quote bool

	// Format holds the active character formats.
	Format Format
}

// Reset replaces the receiver's contents with a copy of from.
// Reset(nil) clears the receiver to the invalid empty state.
// Pointer fields are deep-copied so the two states never alias.
func (s *State) Reset(from *State) {
	if from == nil {
		*s = State{}
		return
	}
	*s = *from
	if from.SelRect != nil {
		r := *from.SelRect
		s.SelRect = &r
	}
	if from.Link != nil {
		l := *from.Link
		s.Link = &l
	}
	if from.Image != nil {
		img := *from.Image
		s.Image = &img
	}
}

// Clone returns an independent copy of the state.
func (s *State) Clone() *State {
	out := &State{}
	out.Reset(s)
	return out
}

// Equal reports field-for-field equality, comparing pointed-to values
// rather than pointer identity.
func (s *State) Equal(other *State) bool {
	if s == nil || other == nil {
		return s == other
	}
	if s.Valid != other.Valid ||
		s.Selection != other.Selection ||
		s.Table != other.Table ||
		s.Style != other.Style ||
		s.List != other.List ||
		s.ListItem != other.ListItem ||
		s.Quote != other.Quote ||
		s.Format != other.Format {
		return false
	}
	if !eqPtr(s.SelRect, other.SelRect) {
		return false
	}
	if !eqPtr(s.Link, other.Link) {
		return false
	}
	return eqPtr(s.Image, other.Image)
}

func eqPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
