package blocks

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"time"

	"github.com/xvierd/pomobar/internal/domain"
)

// Theme holds optional foreground colors for the status text. An empty color
// leaves the text in the bar's default color.
type Theme struct {
	Focus  string
	Pause  string
	Paused string
	Ready  string
}

// StatusRecord is one block update sent to the status bar.
type StatusRecord struct {
	FullText string `json:"full_text"`
}

// Renderer turns timer state into status text. It has no side effects.
type Renderer struct {
	theme Theme
}

// NewRenderer creates a renderer using the given colors.
func NewRenderer(theme Theme) Renderer {
	return Renderer{theme: theme}
}

// Text returns the plain status text, e.g. "1/4 12:07 F".
func (r Renderer) Text(t *domain.Timer) string {
	return fmt.Sprintf("%d/%d %s %s",
		t.Index()/2,
		t.Schedule().Cycles(),
		FormatClock(t.Remaining()),
		t.Current().Kind.Abbrev(),
	)
}

// Markup returns the status text wrapped in a Pango span.
func (r Renderer) Markup(t *domain.Timer) string {
	text := html.EscapeString(r.Text(t))
	if color := r.Color(t); color != "" {
		return fmt.Sprintf(`<span foreground="%s">%s</span>`, html.EscapeString(color), text)
	}
	return "<span>" + text + "</span>"
}

// Color picks the theme color for the timer's current condition.
func (r Renderer) Color(t *domain.Timer) string {
	switch t.State() {
	case domain.TimerReady:
		return r.theme.Ready
	case domain.TimerPaused:
		return r.theme.Paused
	}
	if t.Current().Kind == domain.IntervalPause {
		return r.theme.Pause
	}
	return r.theme.Focus
}

// Record builds the status record for the timer.
func (r Renderer) Record(t *domain.Timer) StatusRecord {
	return StatusRecord{FullText: r.Markup(t)}
}

// Encode serializes a status record as a single newline-terminated line.
func Encode(rec StatusRecord) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(rec); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRenderEncoding, err)
	}
	return buf.Bytes(), nil
}

// FormatClock formats a duration as MM:SS. Minutes are not wrapped at an
// hour, so 90 minutes is shown as 90:00.
func FormatClock(d time.Duration) string {
	secs := int64(d / time.Second)
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
