package export

import (
	"bytes"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"html/template"
	"sync"
	"time"

	"github.com/preslavrachev/gomjml/mjml"

	"github.com/joeblew999/plat-bionic/pkg/host"
	"github.com/joeblew999/plat-bionic/pkg/log"
)

const emailTemplate = `<mjml>
  <mj-head>
    <mj-title>{{.Title}}</mj-title>
  </mj-head>
  <mj-body background-color="{{.Background}}">
    <mj-section>
      <mj-column>
        {{- if .Title}}
        <mj-text font-size="22px" font-weight="700" padding-bottom="16px">{{.Title}}</mj-text>
        {{- end}}
        {{- range .Paragraphs}}
        <mj-text font-size="{{$.FontSize}}" line-height="1.6">{{.}}</mj-text>
        {{- end}}
      </mj-column>
    </mj-section>
  </mj-body>
</mjml>`

var emailTmpl = template.Must(template.New("email").Parse(emailTemplate))

// EmailOptions configures email rendering.
type EmailOptions struct {
	EnableCache bool   // Cache rendered HTML
	EnableDebug bool   // Add debug attributes to HTML
	Title       string // Heading and <title> of the email
	Background  string // Body background color
	FontSize    string // Font size of the converted text
}

// EmailOption configures the email renderer
type EmailOption func(*EmailOptions)

// WithCache enables caching of rendered HTML
func WithCache(enabled bool) EmailOption {
	return func(opts *EmailOptions) {
		opts.EnableCache = enabled
	}
}

// WithDebug adds debug attributes to generated HTML
func WithDebug(enabled bool) EmailOption {
	return func(opts *EmailOptions) {
		opts.EnableDebug = enabled
	}
}

// WithTitle sets the email title
func WithTitle(title string) EmailOption {
	return func(opts *EmailOptions) {
		opts.Title = title
	}
}

// WithBackground sets the body background color
func WithBackground(color string) EmailOption {
	return func(opts *EmailOptions) {
		opts.Background = color
	}
}

// WithFontSize sets the size of the converted text
func WithFontSize(size string) EmailOption {
	return func(opts *EmailOptions) {
		opts.FontSize = size
	}
}

// EmailRenderer turns documents into responsive email HTML.
type EmailRenderer struct {
	options *EmailOptions

	mu    sync.RWMutex
	cache map[string]string
}

// NewEmailRenderer creates a renderer with the given options
func NewEmailRenderer(opts ...EmailOption) *EmailRenderer {
	options := &EmailOptions{
		Background: "#ffffff",
		FontSize:   "16px",
	}
	for _, opt := range opts {
		opt(options)
	}

	return &EmailRenderer{
		options: options,
		cache:   make(map[string]string),
	}
}

// Email renders docs as a single email with a one-off renderer.
func Email(docs []*host.Document, opts ...EmailOption) (string, error) {
	return NewEmailRenderer(opts...).Render(docs...)
}

// Render renders one paragraph per document.
func (r *EmailRenderer) Render(docs ...*host.Document) (string, error) {
	start := time.Now()
	data := emailData{
		Title:      r.options.Title,
		Background: r.options.Background,
		FontSize:   r.options.FontSize,
	}
	for _, doc := range docs {
		p, err := RenderHTML(doc)
		if err != nil {
			return "", err
		}
		data.Paragraphs = append(data.Paragraphs, template.HTML(p))
	}

	var key string
	if r.options.EnableCache {
		var err error
		if key, err = cacheKey(data); err != nil {
			return "", err
		}
		r.mu.RLock()
		cached, found := r.cache[key]
		r.mu.RUnlock()
		if found {
			renderCacheHits.Inc(formatEmail)
			return cached, nil
		}
		renderCacheMisses.Inc(formatEmail)
	}

	var buf bytes.Buffer
	if err := emailTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute email template: %w", err)
	}

	html, err := r.renderMJML(buf.String())
	if err != nil {
		return "", err
	}
	renderDuration.ObserveFloat(time.Since(start).Seconds(), formatEmail)
	log.Debug("Email rendered", "documents", len(docs), "html_size", len(html))

	if r.options.EnableCache {
		r.mu.Lock()
		r.cache[key] = html
		r.mu.Unlock()
	}
	return html, nil
}

// CacheSize returns the number of cached emails
func (r *EmailRenderer) CacheSize() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.cache)
}

// ClearCache drops every cached email
func (r *EmailRenderer) ClearCache() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache = make(map[string]string)
}

func (r *EmailRenderer) renderMJML(content string) (string, error) {
	var mjmlOpts []mjml.RenderOption
	if r.options.EnableDebug {
		mjmlOpts = append(mjmlOpts, mjml.WithDebugTags(true))
	}
	if r.options.EnableCache {
		mjmlOpts = append(mjmlOpts, mjml.WithCache())
	}

	html, err := mjml.Render(content, mjmlOpts...)
	if err != nil {
		return "", fmt.Errorf("gomjml render failed: %w", err)
	}
	return html, nil
}

type emailData struct {
	Title      string          `json:"title"`
	Background string          `json:"background"`
	FontSize   string          `json:"font_size"`
	Paragraphs []template.HTML `json:"paragraphs"`
}

// cacheKey hashes the template data into a short deterministic key
func cacheKey(data emailData) (string, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("failed to serialize data for caching: %w", err)
	}
	sum := sha256.Sum256(b)
	return fmt.Sprintf("%x", sum[:8]), nil
}
