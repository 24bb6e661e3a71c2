package itinerary

import (
	"strconv"
	"strings"

	"itinerary/internal/domain/models"
)

const (
	startLine = "Start."
	endLine   = "Last destination reached."
)

type formatter func(t models.Ticket) string

// formatters is keyed by lower-cased transport type name.
var formatters = map[string]formatter{
	"flight": func(t models.Ticket) string {
		var b strings.Builder
		b.WriteString("From " + t.Departure + ", board the flight " + t.TransportNumber + " to " + t.Arrival)
		if t.Gate != "" {
			b.WriteString(" from gate " + t.Gate)
		}
		if t.Seat != "" {
			b.WriteString(", seat " + t.Seat)
		}
		b.WriteString(".")
		if t.LuggageInfo != "" {
			b.WriteString(" " + t.LuggageInfo + ".")
		}
		return b.String()
	},
	"bus": func(t models.Ticket) string {
		line := "Board the airport bus from " + t.Departure + " to " + t.Arrival + "."
		if t.AdditionalInfo != "" {
			line += " " + t.AdditionalInfo + "."
		}
		return line
	},
	"train": railFormatter("the train"),
	"tram":  railFormatter("the tram"),
}

func railFormatter(vehicle string) formatter {
	return func(t models.Ticket) string {
		var b strings.Builder
		b.WriteString("Board " + vehicle + " " + t.TransportNumber)
		if t.AdditionalInfo != "" {
			b.WriteString(", " + t.AdditionalInfo)
		}
		b.WriteString(" from " + t.Departure + " to " + t.Arrival + ".")
		if t.Seat != "" {
			b.WriteString(" Seat number " + t.Seat + ".")
		}
		return b.String()
	}
}

// Describe returns the instruction for a single ticket, without numbering.
// Unknown transport types fall back to a generic sentence.
func Describe(t models.Ticket) string {
	if f, ok := formatters[strings.ToLower(t.TransportType.Name)]; ok {
		return strings.TrimSpace(f(t))
	}
	return strings.TrimSpace("Board " + t.TransportType.Name + " from " + t.Departure + " to " + t.Arrival + ".")
}

// Render turns an ordered trip into numbered instructions, framed by a start
// and a closing line.
func Render(ordered []models.Ticket) []string {
	lines := make([]string, 0, len(ordered)+2)
	lines = append(lines, numbered(0, startLine))
	for i, t := range ordered {
		lines = append(lines, numbered(i+1, Describe(t)))
	}
	return append(lines, numbered(len(ordered)+1, endLine))
}

func numbered(i int, text string) string {
	return strconv.Itoa(i) + ". " + text
}
