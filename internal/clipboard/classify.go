package clipboard

// Kind is the resolved classification of the pasteboard contents.
type Kind int

const (
	// KindNone means the pasteboard holds nothing pasteable.
	KindNone Kind = iota

	// KindText is plain text.
	KindText

	// KindRTF is rich text in RTF form.
	KindRTF

	// KindHTML is an HTML fragment.
	KindHTML

	// KindURL is a bare URL.
	KindURL

	// KindImage is an externally captured raster image.
	KindImage

	// KindLocalImage is a rich image authored inside this editor,
	// identified by the private marker attached on copy.
	KindLocalImage
)

// String returns the classification name.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindRTF:
		return "rtf"
	case KindHTML:
		return "html"
	case KindURL:
		return "url"
	case KindImage:
		return "image"
	case KindLocalImage:
		return "local-image"
	default:
		return "none"
	}
}

// Contents is a snapshot of everything the pasteboard currently exposes.
// Any combination of fields may be populated simultaneously.
type Contents struct {
	// LocalImage is the private marker payload written by this editor
	// when an image is copied from within a document. Empty when absent.
	LocalImage string

	// Image is a raster image payload.
	Image []byte

	// URL is a bare URL entry.
	URL string

	// HTML is an HTML fragment entry.
	HTML string

	// RTF is a rich-text entry.
	RTF []byte

	// Text is the plain-text entry.
	Text string
}

// Classify resolves overlapping pasteboard entries to a single Kind.
// Priority order, first match wins: locally authored rich image,
// externally captured image, bare URL, HTML, RTF, plain text.
func Classify(c Contents) Kind {
	switch {
	case c.LocalImage != "":
		return KindLocalImage
	case len(c.Image) > 0:
		return KindImage
	case c.URL != "":
		return KindURL
	case c.HTML != "":
		return KindHTML
	case len(c.RTF) > 0:
		return KindRTF
	case c.Text != "":
		return KindText
	default:
		return KindNone
	}
}
