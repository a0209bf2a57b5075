package api

import "logpage/internal/logwindow"

// FromWindow converts a served window and its links to the API representation.
func FromWindow(req logwindow.Request, w logwindow.Window, links logwindow.Links) LogWindowResponse {
	resp := LogWindowResponse{
		LogType:     req.LogType,
		StartByte:   w.Start,
		EndByte:     w.End,
		TotalLength: w.Total,
		Content:     w.Content,
		Previous:    fromPage(links.Previous),
		Next:        fromPage(links.Next),
	}
	if req.Ref != nil {
		resp.Kind = req.Ref.Kind().String()
	}
	return resp
}

func fromPage(page *logwindow.Page) *PageLink {
	if page == nil {
		return nil
	}
	return &PageLink{Offset: page.Offset, ByteLength: page.Length}
}

// Page converts a link back into the core page type.
func (l *PageLink) Page() *logwindow.Page {
	if l == nil {
		return nil
	}
	return &logwindow.Page{Offset: l.Offset, Length: l.ByteLength}
}
