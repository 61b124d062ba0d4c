package selection

import "testing"

func TestState_ResetRoundTrip(t *testing.T) {
	src := &State{
		Valid:     true,
		Selection: "quick brown fox",
		SelRect:   &Rect{X: 10, Y: 20, Width: 120, Height: 18},
		Link:      &Link{HRef: "https://example.com", Text: "example"},
		Image:     &Image{Src: "pic.png", Alt: "pic", Width: 64, Height: 48, Scale: 100},
		Table:     Table{Inside: true, InBody: true, Border: BorderHeader, Rows: 2, Cols: 3, Row: 1, Col: 2},
		Style:     StyleH2,
		List:      ListOrdered,
		ListItem:  true,
		Quote:     true,
		Format:    Format{Bold: true, Code: true},
	}

	dst := &State{}
	dst.Reset(src)

	if !dst.Equal(src) {
		t.Errorf("reset copy differs:\nsrc = %+v\ndst = %+v", src, dst)
	}

	// The copy must not alias the source's pointer fields.
	src.SelRect.X = 999
	src.Link.HRef = "changed"
	src.Image.Src = "changed"
	if dst.SelRect.X == 999 || dst.Link.HRef == "changed" || dst.Image.Src == "changed" {
		t.Error("Reset shared pointer fields with the source")
	}
}

func TestState_ResetNilClears(t *testing.T) {
	st := &State{
		Valid:     true,
		Selection: "text",
		SelRect:   &Rect{X: 1},
		Link:      &Link{HRef: "https://x"},
		Style:     StyleH1,
		Format:    Format{Italic: true},
	}
	st.Reset(nil)
	if st.Valid {
		t.Error("Valid = true after Reset(nil)")
	}
	assertEmpty(t, st)
}

func TestState_Clone(t *testing.T) {
	src := Decode(`{"valid":true,"selection":"abc","selrect":{"x":1,"y":1,"width":1,"height":1},"bold":true}`)
	cp := src.Clone()
	if !cp.Equal(src) {
		t.Errorf("clone differs: %+v vs %+v", cp, src)
	}
	cp.SelRect.X = 7
	if src.SelRect.X == 7 {
		t.Error("Clone aliased SelRect")
	}
}

func TestState_Equal(t *testing.T) {
	base := func() *State {
		return &State{Valid: true, Selection: "a", Link: &Link{HRef: "h"}}
	}

	tests := []struct {
		name   string
		mutate func(*State)
		want   bool
	}{
		{"identical", func(*State) {}, true},
		{"different selection", func(s *State) { s.Selection = "b" }, false},
		{"different link value", func(s *State) { s.Link.HRef = "other" }, false},
		{"nil link", func(s *State) { s.Link = nil }, false},
		{"different format", func(s *State) { s.Format.Bold = true }, false},
		{"equal pointer values", func(s *State) { s.Link = &Link{HRef: "h"} }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := base(), base()
			tt.mutate(b)
			if got := a.Equal(b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEnum_WireRoundTrip(t *testing.T) {
	for _, p := range []ParagraphStyle{StyleP, StyleH1, StyleH2, StyleH3, StyleH4, StyleH5, StyleH6} {
		if got := ParseParagraphStyle(p.String()); got != p {
			t.Errorf("ParseParagraphStyle(%q) = %v, want %v", p.String(), got, p)
		}
	}
	for _, l := range []ListType{ListUnordered, ListOrdered} {
		if got := ParseListType(l.String()); got != l {
			t.Errorf("ParseListType(%q) = %v, want %v", l.String(), got, l)
		}
	}
	for _, b := range []Border{BorderCell, BorderOuter, BorderHeader, BorderNone} {
		if got := ParseBorder(b.String()); got != b {
			t.Errorf("ParseBorder(%q) = %v, want %v", b.String(), got, b)
		}
	}
}
