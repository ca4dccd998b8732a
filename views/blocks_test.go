package views

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func renderToString(t *testing.T, blocks []ArticleBlock) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Blocks(blocks).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return buf.String()
}

func TestBlocksEmptyState(t *testing.T) {
	got := renderToString(t, nil)
	if !strings.Contains(got, "No content available.") {
		t.Errorf("empty block list should render placeholder, got %q", got)
	}
}

func TestTextBlockRawWithLineBreaks(t *testing.T) {
	got := renderToString(t, []ArticleBlock{
		{BlockType: "text", Content: "First line\nwith <strong>markup</strong>"},
	})
	if !strings.Contains(got, "First line<br>with <strong>markup</strong>") {
		t.Errorf("text block should keep markup and turn newlines into <br>, got %q", got)
	}
}

func TestMapBlockRaw(t *testing.T) {
	embed := `<iframe src="https://maps.google.com/embed"></iframe>`
	got := renderToString(t, []ArticleBlock{{BlockType: "map", MapEmbed: embed}})
	if !strings.Contains(got, embed) {
		t.Errorf("map embed should be emitted raw, got %q", got)
	}
}

func TestCodeBlockEscaped(t *testing.T) {
	got := renderToString(t, []ArticleBlock{
		{BlockType: "code", Content: `if x < 10 { fmt.Println("<ok>") }`},
	})
	if strings.Contains(got, "<ok>") {
		t.Errorf("code content should be escaped, got %q", got)
	}
	if !strings.Contains(got, "&lt;ok&gt;") {
		t.Errorf("code content should contain escaped markup, got %q", got)
	}
	if !strings.Contains(got, "<pre><code>") {
		t.Errorf("code block should use pre/code, got %q", got)
	}
}

func TestQuoteBlockEscaped(t *testing.T) {
	got := renderToString(t, []ArticleBlock{
		{BlockType: "quote", Content: `He said "<i>hi</i>"`},
	})
	if strings.Contains(got, "<i>hi</i>") {
		t.Errorf("quote content should be escaped, got %q", got)
	}
	if !strings.Contains(got, "<blockquote>") {
		t.Errorf("quote block should use blockquote, got %q", got)
	}
}

func TestImageBlockEscapedAttributes(t *testing.T) {
	got := renderToString(t, []ArticleBlock{
		{BlockType: "image", ImageURL: `/public/uploads/media/x.jpg`, ImageAlt: `A "caption"`},
	})
	if !strings.Contains(got, `src="/public/uploads/media/x.jpg"`) {
		t.Errorf("image src missing, got %q", got)
	}
	if !strings.Contains(got, "&#34;caption&#34;") {
		t.Errorf("alt text should be attribute-escaped, got %q", got)
	}
	if !strings.Contains(got, "<figcaption>") {
		t.Errorf("non-empty alt should render a figcaption, got %q", got)
	}
}

func TestBlocksRenderInOrder(t *testing.T) {
	got := renderToString(t, []ArticleBlock{
		{BlockType: "text", Content: "alpha"},
		{BlockType: "quote", Content: "beta"},
	})
	if strings.Index(got, "alpha") > strings.Index(got, "beta") {
		t.Errorf("blocks rendered out of order: %q", got)
	}
}
