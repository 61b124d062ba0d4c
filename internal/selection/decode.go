package selection

import "github.com/tidwall/gjson"

// Wire payload keys reported by the document engine's getSelectionState().
// Booleans coerce with gjson semantics (absent or wrong shape reads false),
// counts read zero, enums fall back to their sentinel.

// Decode parses the engine's serialized selection state into a State.
//
// Decode is a pure function and never fails: an empty, non-JSON, or
// non-object payload yields the invalid empty State. The valid flag is
// taken verbatim from the payload (absent reads false); when it is false
// the remaining fields are ignored so the invalid-state invariant holds
// even against a payload that carries stale field values.
func Decode(payload string) *State {
	st := &State{}
	if payload == "" || !gjson.Valid(payload) {
		return st
	}
	doc := gjson.Parse(payload)
	if !doc.IsObject() {
		return st
	}
	if !doc.Get("valid").Bool() {
		return st
	}
	st.Valid = true

	// A structurally present but empty selection string means no selection;
	// the rectangle is only meaningful for a non-empty span.
	st.Selection = doc.Get("selection").String()
	if st.Selection != "" {
		if rect := doc.Get("selrect"); rect.IsObject() {
			st.SelRect = &Rect{
				X:      rect.Get("x").Float(),
				Y:      rect.Get("y").Float(),
				Width:  rect.Get("width").Float(),
				Height: rect.Get("height").Float(),
			}
		}
	}

	if href := doc.Get("href").String(); href != "" {
		st.Link = &Link{
			HRef: href,
			Text: doc.Get("link").String(),
		}
	}

	if src := doc.Get("src").String(); src != "" {
		img := &Image{
			Src:   src,
			Alt:   doc.Get("alt").String(),
			Scale: 100,
		}
		// Width and height are all-or-nothing.
		w, h := doc.Get("width"), doc.Get("height")
		if w.Exists() && h.Exists() {
			img.Width = int(w.Int())
			img.Height = int(h.Int())
		}
		if scale := doc.Get("scale"); scale.Exists() {
			img.Scale = int(scale.Int())
		}
		st.Image = img
	}

	if doc.Get("table").Bool() {
		st.Table = Table{
			Inside:       true,
			InHeader:     doc.Get("thead").Bool(),
			InBody:       doc.Get("tbody").Bool(),
			InHeaderCell: doc.Get("header").Bool(),
			Border:       ParseBorder(doc.Get("border").String()),
			Rows:         int(doc.Get("rows").Int()),
			Cols:         int(doc.Get("cols").Int()),
			Row:          int(doc.Get("row").Int()),
			Col:          int(doc.Get("col").Int()),
		}
	}

	st.Style = ParseParagraphStyle(doc.Get("style").String())
	st.List = ParseListType(doc.Get("list").String())
	st.ListItem = doc.Get("li").Bool()
	st.Quote = doc.Get("quote").Bool()

	st.Format = Format{
		Bold:      doc.Get("bold").Bool(),
		Italic:    doc.Get("italic").Bool(),
		Underline: doc.Get("underline").Bool(),
		Strike:    doc.Get("strike").Bool(),
		Sub:       doc.Get("sub").Bool(),
		Super:     doc.Get("sup").Bool(),
		Code:      doc.Get("code").Bool(),
	}
	return st
}
