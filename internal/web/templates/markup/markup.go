// Package markup is a small HTML writer used to build templ components.
package markup

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

// Writer writes HTML fragments and keeps the first write error
type Writer struct {
	ctx context.Context
	w   io.Writer
	err error
}

// New wraps w for the render of one component
func New(ctx context.Context, w io.Writer) *Writer {
	return &Writer{ctx: ctx, w: w}
}

// Raw writes s unescaped. Only use with literal markup.
func (b *Writer) Raw(s string) {
	if b.err != nil {
		return
	}
	_, b.err = io.WriteString(b.w, s)
}

// Text writes s HTML-escaped. Safe in element bodies and quoted attributes.
func (b *Writer) Text(s string) {
	b.Raw(templ.EscapeString(s))
}

// Int writes an integer
func (b *Writer) Int(n int) {
	b.Raw(strconv.Itoa(n))
}

// URL writes an attribute URL already passed through templ.URL or ImageURL
func (b *Writer) URL(u templ.SafeURL) {
	b.Text(string(u))
}

// inlineImages are the data URL prefixes accepted in img src
var inlineImages = []string{
	"data:image/png;base64,",
	"data:image/jpeg;base64,",
	"data:image/gif;base64,",
	"data:image/webp;base64,",
	"data:image/bmp;base64,",
	"data:image/x-icon;base64,",
	"data:image/avif;base64,",
}

// ImageURL sanitises an img src. Inline raster images are kept; anything
// else goes through templ.URL, which rejects unsafe schemes.
func ImageURL(s string) templ.SafeURL {
	for _, prefix := range inlineImages {
		if strings.HasPrefix(s, prefix) {
			return templ.SafeURL(s)
		}
	}
	return templ.URL(s)
}

// Element writes <tag>text</tag> with text escaped
func (b *Writer) Element(tag, text string) {
	b.Raw("<" + tag + ">")
	b.Text(text)
	b.Raw("</" + tag + ">")
}

// Component renders a nested component into the same writer
func (b *Writer) Component(c templ.Component) {
	if b.err != nil || c == nil {
		return
	}
	b.err = c.Render(b.ctx, b.w)
}

// Err returns the first error seen
func (b *Writer) Err() error {
	return b.err
}

// Func adapts a function writing through a Writer into a templ.Component
func Func(fn func(b *Writer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := New(ctx, w)
		fn(b)
		return b.Err()
	})
}
