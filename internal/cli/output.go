package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/passa-a-bola/passa-web/internal/api/response"
	"github.com/passa-a-bola/passa-web/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
	errW   io.Writer

	header lipgloss.Style
	muted  lipgloss.Style
}

// NewOutput creates a new Output formatter. Styles are only applied when w
// is a terminal.
func NewOutput(format string, w, errW io.Writer) *Output {
	renderer := lipgloss.NewRenderer(w)
	return &Output{
		format: format,
		w:      w,
		errW:   errW,
		header: renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("#7B2CBF")),
		muted:  renderer.NewStyle().Faint(true),
	}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		_, _ = fmt.Fprintln(o.errW, string(data))
	} else {
		_, _ = fmt.Fprintf(o.errW, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		o.println(string(data))
	} else {
		o.println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.Health:
		o.printf("Status: %s\n", v.Status)
	case response.Login:
		o.printLogin(v)
	case response.Collection[model.Player]:
		o.printPlayers(v)
	case response.Collection[model.Event]:
		o.printEvents(v)
	case response.Collection[model.Tournament]:
		o.printTournaments(v)
	case model.Stats:
		o.printStats(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printLogin(l response.Login) {
	o.printf("Logged in as %s (%s)\n", l.User.DisplayName(), l.User.Role.Label())
	o.printf("Email: %s\n", l.User.Email)
	if !l.ExpiresAt.IsZero() {
		o.printf("Token expires: %s\n", l.ExpiresAt.Format("2006-01-02 15:04 MST"))
	}
}

func (o *Output) printPlayers(c response.Collection[model.Player]) {
	o.printHeader("Players", c.Count, c.Total)
	if c.Count == 0 {
		o.println(o.muted.Render("No players match the filters."))
		return
	}
	for _, p := range c.Items {
		details := joinNonEmpty(", ", p.Position, p.Nationality, p.CurrentClub)
		line := "  " + p.Name
		if details != "" {
			line += " - " + details
		}
		if p.Status != "" {
			line += " [" + p.Status + "]"
		}
		o.println(line)
	}
}

func (o *Output) printEvents(c response.Collection[model.Event]) {
	o.printHeader("Events", c.Count, c.Total)
	if c.Count == 0 {
		o.println(o.muted.Render("No events match the filters."))
		return
	}
	for _, e := range c.Items {
		registration := "closed"
		if e.RegistrationOpen {
			registration = "open"
		}
		o.printf("  %s | %s | %s | %s | registration %s\n",
			e.Type, e.Title, joinNonEmpty(" ", e.Date, e.Time), e.Venue, registration)
	}
}

func (o *Output) printTournaments(c response.Collection[model.Tournament]) {
	o.printHeader("Tournaments", c.Count, c.Total)
	for _, t := range c.Items {
		line := "  " + t.Name
		if t.Status != "" {
			line += " [" + t.Status + "]"
		}
		if t.Venue != "" {
			line += " - " + t.Venue
		}
		if t.RegisteredTeams != nil {
			line += fmt.Sprintf(", %d teams", *t.RegisteredTeams)
		}
		o.println(line)
	}
}

func (o *Output) printStats(s model.Stats) {
	o.printf("Players: %d\n", s.Players)
	o.printf("Events: %d\n", s.Events)
	o.printf("Tournaments: %d\n", s.Tournaments)
}

func (o *Output) printHeader(noun string, count, total int) {
	o.println(o.header.Render(fmt.Sprintf("%s (%d of %d)", noun, count, total)))
}

func (o *Output) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(o.w, format, args...)
}

func (o *Output) println(s string) {
	_, _ = fmt.Fprintln(o.w, s)
}

func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
