package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"itinerary/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// ItineraryPDFService renders the ordered itinerary as a printable PDF.
type ItineraryPDFService struct {
	Tickets   TicketService
	RequestID string
	Now       func() time.Time
}

func (s ItineraryPDFService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Generate returns the PDF bytes and a download filename.
func (s ItineraryPDFService) Generate(ctx context.Context) ([]byte, string, error) {
	lines, err := s.Tickets.OrderedLines(ctx)
	if err != nil {
		return nil, "", err
	}
	if lines == nil {
		lines = []string{EmptyItineraryMessage}
	}

	generatedAt := s.now()
	utils.LogEvent(s.RequestID, "itinerary", "generate_pdf", fmt.Sprintf("lines=%d", len(lines)))
	return buildItineraryPDF(lines, generatedAt)
}

func buildItineraryPDF(lines []string, generatedAt time.Time) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Travel itinerary", false)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "TRAVEL ITINERARY")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, "Generated: "+generatedAt.Format("2006-01-02 15:04"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 12)
	for _, line := range lines {
		pdf.MultiCell(0, 7, tr(line), "", "", false)
		pdf.Ln(1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("itinerary-%s.pdf", generatedAt.Format("20060102"))
	return buf.Bytes(), filename, nil
}
