package markup

import (
	"strings"
	"testing"
)

func TestQueryByClass(t *testing.T) {
	root := New("div", "card").Append(
		New("h2", "card__title"),
		New("div", "card__row").Append(
			New("span", "card__price"),
		),
	)

	if root.Query("card__title") == nil {
		t.Error("Query(card__title) = nil")
	}
	if root.Query("card__price") == nil {
		t.Error("Query(card__price) should find nested element")
	}
	if root.Query("missing") != nil {
		t.Error("Query(missing) should be nil")
	}
}

func TestClickBubbles(t *testing.T) {
	var order []string
	root := New("div", "backdrop")
	content := New("div", "content")
	button := New("button", "buy")
	root.Append(content)
	content.Append(button)

	root.On("click", func(*Event) { order = append(order, "root") })
	button.On("click", func(*Event) { order = append(order, "button") })

	button.Click()

	if got := strings.Join(order, ","); got != "button,root" {
		t.Errorf("dispatch order = %q, want %q", got, "button,root")
	}
}

func TestStopPropagation(t *testing.T) {
	rootClicked := false
	root := New("div")
	content := New("div")
	root.Append(content)

	root.On("click", func(*Event) { rootClicked = true })
	content.On("click", func(ev *Event) { ev.StopPropagation() })

	content.Click()

	if rootClicked {
		t.Error("click reached root despite StopPropagation")
	}
}

func TestDisabledSwallowsClick(t *testing.T) {
	clicked := false
	button := New("button")
	button.On("click", func(*Event) { clicked = true })
	button.SetDisabled(true)

	button.Click()

	if clicked {
		t.Error("disabled element dispatched a click")
	}
}

func TestCloneIsDeepAndInert(t *testing.T) {
	fired := false
	orig := New("div", "card").Append(New("span", "card__title"))
	orig.On("click", func(*Event) { fired = true })
	orig.SetAttr("data-id", "p1")

	dup := orig.Clone()
	dup.Click()
	if fired {
		t.Error("clone carried a listener")
	}
	if dup.Attr("data-id") != "p1" {
		t.Error("clone lost attributes")
	}

	dup.Query("card__title").SetText("changed")
	if orig.Query("card__title").Text() == "changed" {
		t.Error("clone shares children with original")
	}
}

func TestTemplates(t *testing.T) {
	reg := NewTemplates()
	reg.Register("card", New("div", "card"))

	a, err := reg.Clone("card")
	if err != nil {
		t.Fatalf("Clone() error: %v", err)
	}
	b, _ := reg.Clone("card")
	if a == b {
		t.Error("Clone() returned the same instance twice")
	}

	if _, err := reg.Clone("nope"); err == nil {
		t.Error("Clone(nope) expected error")
	}
}

func TestDocumentKeyListeners(t *testing.T) {
	doc := NewDocument(New("body"))
	var got []string
	id := doc.AddKeyListener(func(key string) { got = append(got, key) })

	doc.PressKey("Escape")
	doc.RemoveKeyListener(id)
	doc.PressKey("Escape")

	if len(got) != 1 || got[0] != "Escape" {
		t.Errorf("key presses seen = %v, want one Escape", got)
	}
}

func TestHTMLEscapes(t *testing.T) {
	el := New("span", "note")
	el.SetText(`a < b & "c"`)
	html := el.HTML()
	if strings.Contains(html, "<b") || !strings.Contains(html, "&lt; b") {
		t.Errorf("HTML() did not escape text: %s", html)
	}
}
