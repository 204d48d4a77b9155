package passport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"coridor/pkg/types"

	"github.com/go-pdf/fpdf"
	"github.com/goccy/go-json"
)

// exportPayload is the tenant-facing export document. Unlike the viewer
// projection it carries the score: the export is requested by the tenant
// about themselves.
type exportPayload struct {
	ProfileID   string                      `json:"profile_id"`
	GeneratedAt time.Time                   `json:"generated_at"`
	Settings    *types.PassportSettings     `json:"settings,omitempty"`
	BadgeActive bool                        `json:"badge_active"`
	History     []*types.RentalHistoryEntry `json:"rental_history"`
	Score       *types.TrustScore           `json:"score"`
}

// Export produces a one-shot JSON or PDF summary of a tenant's passport:
// settings, badge status, rental history, score.
func (s *Service) Export(ctx context.Context, profileID string, format types.ExportFormat) (*types.ExportDocument, error) {
	payload, err := s.buildExport(ctx, profileID)
	if err != nil {
		return nil, err
	}

	stamp := payload.GeneratedAt.Format("2006-01-02")

	switch format {
	case types.ExportFormatJSON:
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal passport export: %w", err)
		}
		return &types.ExportDocument{
			Bytes:       data,
			ContentType: "application/json",
			Filename:    fmt.Sprintf("passport-%s-%s.json", profileID, stamp),
		}, nil

	case types.ExportFormatPDF:
		data, err := renderPDF(payload)
		if err != nil {
			return nil, fmt.Errorf("render passport pdf: %w", err)
		}
		return &types.ExportDocument{
			Bytes:       data,
			ContentType: "application/pdf",
			Filename:    fmt.Sprintf("passport-%s-%s.pdf", profileID, stamp),
		}, nil

	default:
		return nil, types.NewValidationError("format", "unsupported export format %q", format)
	}
}

func (s *Service) buildExport(ctx context.Context, profileID string) (*exportPayload, error) {
	profile, err := s.profiles.Profile(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("load tenant profile: %w", err)
	}

	settings, err := s.settings.Settings(ctx, profileID)
	if err != nil && !errors.Is(err, types.ErrSettingsNotFound) {
		return nil, fmt.Errorf("load passport settings: %w", err)
	}

	entries, err := s.history.EntriesByProfile(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("load rental history: %w", err)
	}

	score, err := s.Score(ctx, profileID)
	if err != nil {
		return nil, err
	}

	return &exportPayload{
		ProfileID:   profileID,
		GeneratedAt: time.Now().UTC(),
		Settings:    settings,
		BadgeActive: profile.VerifiedMonths >= badgeMinVerifiedMonths,
		History:     entries,
		Score:       score,
	}, nil
}

func renderPDF(payload *exportPayload) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Tenant Passport")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Profile %s - generated %s", payload.ProfileID,
		payload.GeneratedAt.Format("2006-01-02 15:04 MST")))
	pdf.Ln(10)

	writeHeading(pdf, "Payment badge")
	badge := "inactive"
	if payload.BadgeActive {
		badge = "active"
	}
	pdf.Cell(0, 6, fmt.Sprintf("Status: %s", badge))
	pdf.Ln(10)

	writeHeading(pdf, "Trust score")
	pdf.Cell(0, 6, fmt.Sprintf("Global: %d/100 (confidence %s)", payload.Score.Global, payload.Score.Confidence))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Payments %.1f | Tenure %.1f | Reviews %.1f | Completeness %.1f",
		payload.Score.PaymentBadge, payload.Score.Tenure, payload.Score.Reviews, payload.Score.Completeness))
	pdf.Ln(10)

	if payload.Settings != nil {
		writeHeading(pdf, "Sharing settings")
		pdf.Cell(0, 6, fmt.Sprintf("Passport enabled: %t", payload.Settings.IsEnabled))
		pdf.Ln(6)
		pdf.Cell(0, 6, fmt.Sprintf("Badge %t | History %t | Reviews %t | Financial summary %t",
			payload.Settings.ShowPaymentBadge, payload.Settings.ShowRentalHistory,
			payload.Settings.ShowLandlordReviews, payload.Settings.ShowFinancialSummary))
		pdf.Ln(10)
	}

	writeHeading(pdf, "Rental history")
	if len(payload.History) == 0 {
		pdf.Cell(0, 6, "No entries")
		pdf.Ln(6)
	}
	for _, entry := range payload.History {
		end := "ongoing"
		if entry.EndDate != nil {
			end = entry.EndDate.Format("2006-01-02")
		}
		line := fmt.Sprintf("%s, %s  (%s - %s, %s)", entry.Address, entry.City,
			entry.StartDate.Format("2006-01-02"), end, entry.Source)
		if entry.IsHidden {
			line += "  [hidden]"
		}
		pdf.MultiCell(0, 6, line, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeHeading(pdf *fpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, text)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
}
