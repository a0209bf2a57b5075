package api

import (
	"testing"

	"logpage/internal/logwindow"
)

func TestFromWindow(t *testing.T) {
	req := logwindow.Request{Ref: logwindow.DriverRef{DriverID: "d"}, LogType: "stdout"}
	w := logwindow.Window{Start: 10, End: 15, Total: 40, Content: []byte("hello")}
	links := logwindow.Links{
		Previous: &logwindow.Page{Offset: 5, Length: 5},
		Next:     &logwindow.Page{Offset: 15, Length: 5},
	}

	resp := FromWindow(req, w, links)
	if resp.Kind != "driver" || resp.LogType != "stdout" {
		t.Fatalf("unexpected identity fields: %+v", resp)
	}
	if resp.StartByte != 10 || resp.EndByte != 15 || resp.TotalLength != 40 {
		t.Fatalf("unexpected bounds: %+v", resp)
	}
	if string(resp.Content) != "hello" {
		t.Fatalf("unexpected content %q", resp.Content)
	}
	if resp.Previous == nil || resp.Previous.Offset != 5 || resp.Next == nil || resp.Next.Offset != 15 {
		t.Fatalf("unexpected links: %+v %+v", resp.Previous, resp.Next)
	}
	if page := resp.Next.Page(); page == nil || page.Offset != 15 || page.Length != 5 {
		t.Fatalf("unexpected round-tripped page: %+v", page)
	}
}

func TestFromWindowOmitsDisabledLinks(t *testing.T) {
	resp := FromWindow(logwindow.Request{LogType: "stdout"}, logwindow.Window{}, logwindow.Links{})
	if resp.Previous != nil || resp.Next != nil {
		t.Fatalf("expected no links, got %+v %+v", resp.Previous, resp.Next)
	}
	var nilLink *PageLink
	if nilLink.Page() != nil {
		t.Fatal("nil link must convert to nil page")
	}
}
