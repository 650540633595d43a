// Package markdown renders the markdown subset used by blog pages as a templ
// component. Documents may open with a YAML front matter block.
package markdown

import (
	"bytes"
	"context"
	"html"
	"io"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

var (
	reBold        = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBoldUnder   = regexp.MustCompile(`__(.+?)__`)
	reItalic      = regexp.MustCompile(`\*([^*]+)\*`)
	reItalicUnder = regexp.MustCompile(`(^|[^\w])_([^_]+)_([^\w]|$)`)
	reInlineCode  = regexp.MustCompile("`([^`]+)`")
	reImage       = regexp.MustCompile(`!\[([^\]]*)\]\(([^)\s]+)\)`)
	reLink        = regexp.MustCompile(`\[([^\]]+)\]\(([^)\s]+)\)`)
	reOrderedItem = regexp.MustCompile(`^\d+\.\s`)
	reSlugStrip   = regexp.MustCompile(`[^a-z0-9]+`)
)

// Markdown returns a component that renders src as HTML. Root-relative link
// and image URLs are prefixed with prefix so pages keep working when the
// site is served below a path prefix.
func Markdown(src, prefix string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		Render(&buf, src, prefix)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

type block int

const (
	blockNone block = iota
	blockPara
	blockList
	blockOrdered
	blockQuote
	blockTable
	blockCode
)

var closeTags = map[block]string{
	blockPara:    "</p>",
	blockList:    "</ul>",
	blockOrdered: "</ol>",
	blockQuote:   "</blockquote>",
	blockCode:    "</code></pre>",
}

type renderer struct {
	buf       *bytes.Buffer
	prefix    string
	open      block
	tableBody bool
}

// Render writes the HTML for md to buf.
func Render(buf *bytes.Buffer, md, prefix string) {
	r := &renderer{buf: buf, prefix: strings.TrimRight(prefix, "/")}
	for _, raw := range strings.Split(md, "\n") {
		r.line(strings.TrimRight(raw, "\r"))
	}
	r.close()
}

// close ends whatever block is open.
func (r *renderer) close() {
	if r.open == blockTable {
		if r.tableBody {
			r.buf.WriteString("</tbody>")
		}
		r.buf.WriteString("</table>")
	} else {
		r.buf.WriteString(closeTags[r.open])
	}
	r.open = blockNone
	r.tableBody = false
}

// enter opens block b with tag unless it is already open, and reports
// whether it opened a new one.
func (r *renderer) enter(b block, tag string) bool {
	if r.open == b {
		return false
	}
	r.close()
	r.buf.WriteString(tag)
	r.open = b
	return true
}

func (r *renderer) line(line string) {
	if strings.HasPrefix(line, "```") {
		if r.open == blockCode {
			r.close()
			return
		}
		lang := strings.TrimSpace(line[3:])
		if lang == "" {
			r.enter(blockCode, `<pre class="code-block"><code>`)
		} else {
			r.enter(blockCode, `<pre class="code-block"><code class="language-`+html.EscapeString(lang)+`">`)
		}
		return
	}
	if r.open == blockCode {
		r.buf.WriteString(html.EscapeString(line))
		r.buf.WriteByte('\n')
		return
	}

	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		r.close()
	case isRule(trimmed):
		r.close()
		r.buf.WriteString("<hr>")
	case headingLevel(line) > 0:
		level := headingLevel(line)
		text := strings.TrimSpace(line[level+1:])
		r.close()
		n := strconv.Itoa(level)
		r.buf.WriteString(`<h` + n + ` id="` + Slug(text) + `">` + r.inline(text) + `</h` + n + `>`)
	case strings.HasPrefix(line, "|"):
		r.tableRow(line)
	case strings.HasPrefix(line, "- "), strings.HasPrefix(line, "* "):
		r.enter(blockList, "<ul>")
		r.buf.WriteString("<li>" + r.inline(strings.TrimSpace(line[2:])) + "</li>")
	case reOrderedItem.MatchString(line):
		r.enter(blockOrdered, "<ol>")
		r.buf.WriteString("<li>" + r.inline(strings.TrimSpace(reOrderedItem.ReplaceAllString(line, ""))) + "</li>")
	case strings.HasPrefix(line, "> "):
		if !r.enter(blockQuote, "<blockquote>") {
			r.buf.WriteByte(' ')
		}
		r.buf.WriteString(r.inline(strings.TrimSpace(line[2:])))
	default:
		if !r.enter(blockPara, "<p>") {
			r.buf.WriteByte('\n')
		}
		r.buf.WriteString(r.inline(trimmed))
	}
}

func (r *renderer) tableRow(line string) {
	cells := tableCells(line)
	if r.enter(blockTable, "<table>") {
		r.buf.WriteString("<thead><tr>")
		for _, c := range cells {
			r.buf.WriteString("<th>" + r.inline(c) + "</th>")
		}
		r.buf.WriteString("</tr></thead>")
		return
	}
	if !r.tableBody {
		r.buf.WriteString("<tbody>")
		r.tableBody = true
	}
	if isSeparatorRow(cells) {
		return
	}
	r.buf.WriteString("<tr>")
	for _, c := range cells {
		r.buf.WriteString("<td>" + r.inline(c) + "</td>")
	}
	r.buf.WriteString("</tr>")
}

// headingLevel returns 1-6 for "# " through "###### ", else 0.
func headingLevel(line string) int {
	n := 0
	for n < len(line) && line[n] == '#' {
		n++
	}
	if n == 0 || n > 6 || n >= len(line) || line[n] != ' ' {
		return 0
	}
	return n
}

func isRule(s string) bool {
	if len(s) < 3 {
		return false
	}
	return strings.Trim(s, "-") == "" || strings.Trim(s, "*") == ""
}

func tableCells(line string) []string {
	parts := strings.Split(strings.Trim(strings.TrimSpace(line), "|"), "|")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

func isSeparatorRow(cells []string) bool {
	for _, c := range cells {
		if strings.Trim(c, "-:") != "" {
			return false
		}
	}
	return true
}

// Slug turns heading text into an anchor id: "Hello, World!" -> "hello-world".
func Slug(s string) string {
	return strings.Trim(reSlugStrip.ReplaceAllString(strings.ToLower(s), "-"), "-")
}

// inline formats code spans, images, links and emphasis within one line.
// The text is escaped first; the generated tags are the only markup.
func (r *renderer) inline(s string) string {
	out := html.EscapeString(s)

	// Code spans are swapped out so nothing else rewrites their contents.
	var spans []string
	out = reInlineCode.ReplaceAllStringFunc(out, func(m string) string {
		spans = append(spans, "<code>"+reInlineCode.FindStringSubmatch(m)[1]+"</code>")
		return placeholder(len(spans) - 1)
	})

	out = reImage.ReplaceAllStringFunc(out, func(m string) string {
		match := reImage.FindStringSubmatch(m)
		src := r.url(match[2])
		if src == "" {
			return match[1]
		}
		return `<img src="` + src + `" alt="` + match[1] + `" loading="lazy" decoding="async">`
	})
	out = reLink.ReplaceAllStringFunc(out, func(m string) string {
		match := reLink.FindStringSubmatch(m)
		href := r.url(match[2])
		if href == "" {
			return match[1]
		}
		attrs := ""
		if isExternal(href) {
			attrs = ` target="_blank" rel="noopener noreferrer"`
		}
		return `<a href="` + href + `"` + attrs + `>` + match[1] + `</a>`
	})

	out = OutsideTags(out, func(seg string) string {
		seg = reBold.ReplaceAllString(seg, "<strong>$1</strong>")
		seg = reBoldUnder.ReplaceAllString(seg, "<strong>$1</strong>")
		seg = reItalic.ReplaceAllString(seg, "<em>$1</em>")
		// Twice, since a match consumes the boundary the next one needs.
		seg = reItalicUnder.ReplaceAllString(seg, "$1<em>$2</em>$3")
		return reItalicUnder.ReplaceAllString(seg, "$1<em>$2</em>$3")
	})

	for i, span := range spans {
		out = strings.Replace(out, placeholder(i), span, 1)
	}
	return out
}

func placeholder(i int) string {
	return "\x00C" + strconv.Itoa(i) + "\x00"
}

// url checks an escaped link target and returns it ready for an attribute,
// or "" when the scheme is not allowed. Root-relative targets get the
// site prefix.
func (r *renderer) url(escaped string) string {
	u := SafeURL(escaped)
	if strings.HasPrefix(u, "/") && !strings.HasPrefix(u, "//") {
		return r.prefix + u
	}
	return u
}

func isExternal(href string) bool {
	return strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://")
}

// OutsideTags applies fn to the text between HTML tags only, leaving tags
// and their attributes untouched.
func OutsideTags(s string, fn func(string) string) string {
	var b strings.Builder
	for s != "" {
		lt := strings.IndexByte(s, '<')
		if lt < 0 {
			b.WriteString(fn(s))
			break
		}
		b.WriteString(fn(s[:lt]))
		gt := strings.IndexByte(s[lt:], '>')
		if gt < 0 {
			b.WriteString(s[lt:])
			break
		}
		b.WriteString(s[lt : lt+gt+1])
		s = s[lt+gt+1:]
	}
	return b.String()
}

// SafeURL returns raw escaped for an HTML attribute when it is a relative
// path, a fragment or an http, https, mailto or tel URL, and "" otherwise.
func SafeURL(raw string) string {
	val := strings.TrimSpace(html.UnescapeString(raw))
	if val == "" || strings.HasPrefix(val, "//") {
		return ""
	}
	if strings.HasPrefix(val, "/") || strings.HasPrefix(val, "#") {
		return html.EscapeString(val)
	}
	parsed, err := url.Parse(val)
	if err != nil || parsed.Scheme == "" {
		return ""
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https", "mailto", "tel":
		return html.EscapeString(val)
	default:
		return ""
	}
}
