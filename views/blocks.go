package views

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Blocks renders an article body as its ordered block list. Text and map
// blocks hold operator-authored markup and are emitted raw; code and quote
// content is escaped.
func Blocks(blocks []ArticleBlock) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		renderBlocks(&buf, blocks)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

func renderBlocks(buf *bytes.Buffer, blocks []ArticleBlock) {
	if len(blocks) == 0 {
		buf.WriteString(`<p class="empty-content">No content available.</p>`)
		return
	}
	for _, b := range blocks {
		renderBlock(buf, b)
	}
}

func renderBlock(buf *bytes.Buffer, b ArticleBlock) {
	switch b.BlockType {
	case "text":
		buf.WriteString(`<div class="block block-text">`)
		buf.WriteString(strings.ReplaceAll(b.Content, "\n", "<br>"))
		buf.WriteString(`</div>`)
	case "image":
		buf.WriteString(`<figure class="block block-image">`)
		if b.ImageURL != "" {
			buf.WriteString(`<img src="`)
			buf.WriteString(esc(b.ImageURL))
			buf.WriteString(`" alt="`)
			buf.WriteString(esc(b.ImageAlt))
			buf.WriteString(`"/>`)
		}
		if b.ImageAlt != "" {
			buf.WriteString(`<figcaption>`)
			buf.WriteString(esc(b.ImageAlt))
			buf.WriteString(`</figcaption>`)
		}
		buf.WriteString(`</figure>`)
	case "map":
		buf.WriteString(`<div class="block block-map">`)
		buf.WriteString(b.MapEmbed)
		buf.WriteString(`</div>`)
	case "code":
		buf.WriteString(`<div class="block block-code"><pre><code>`)
		buf.WriteString(esc(b.Content))
		buf.WriteString(`</code></pre></div>`)
	case "quote":
		buf.WriteString(`<div class="block block-quote"><blockquote>`)
		buf.WriteString(esc(b.Content))
		buf.WriteString(`</blockquote></div>`)
	}
}
