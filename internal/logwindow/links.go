package logwindow

// Page is the offset/length pair of an adjacent window.
type Page struct {
	Offset int64 `json:"offset"`
	Length int32 `json:"length"`
}

// Links holds the neighbouring windows. A nil entry means there is nothing in
// that direction.
type Links struct {
	Previous *Page
	Next     *Page
}

// ComputeLinks derives the previous and next windows of w for pages of length
// bytes. Previous is absent at the start of the file, Next at the end.
func ComputeLinks(w Window, length int32) Links {
	var links Links
	if w.Start > 0 {
		links.Previous = &Page{Offset: max(w.Start-int64(length), 0), Length: length}
	}
	if w.End < w.Total {
		links.Next = &Page{Offset: w.End, Length: length}
	}
	return links
}
