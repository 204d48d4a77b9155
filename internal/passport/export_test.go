package passport

import (
	"context"
	"strings"
	"testing"
	"time"

	"coridor/pkg/types"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exportFixture() *fakeStore {
	f := newFakeStore()
	f.profiles["profile-1"] = &types.TenantProfile{
		ID: "profile-1", UserID: "tenant-1", VerifiedMonths: 6,
		HasIdentityDocument: true, HasIncomeProof: true,
	}
	f.settings["profile-1"] = &types.PassportSettings{
		ProfileID: "profile-1", IsEnabled: true, ShowPaymentBadge: true,
	}
	entry := seedTenancy(f, 12, types.HistorySourcePlatform)
	f.reviews["review-1"] = &types.LandlordReview{
		ID: "review-1", ProfileID: "profile-1", HistoryEntryID: entry.ID,
		CompositeScore: 3, IsVerified: true, TenantConsented: true,
	}
	return f
}

func TestExportJSON(t *testing.T) {
	service := newTestService(exportFixture())

	document, err := service.Export(context.Background(), "profile-1", types.ExportFormatJSON)
	require.NoError(t, err)

	assert.Equal(t, "application/json", document.ContentType)
	assert.True(t, strings.HasPrefix(document.Filename, "passport-profile-1-"))
	assert.True(t, strings.HasSuffix(document.Filename, ".json"))

	var payload struct {
		ProfileID   string            `json:"profile_id"`
		BadgeActive bool              `json:"badge_active"`
		Score       *types.TrustScore `json:"score"`
		History     []any             `json:"rental_history"`
	}
	require.NoError(t, json.Unmarshal(document.Bytes, &payload))

	assert.Equal(t, "profile-1", payload.ProfileID)
	assert.True(t, payload.BadgeActive)
	require.NotNil(t, payload.Score)
	assert.Equal(t, types.ConfidenceHigh, payload.Score.Confidence)
	assert.Len(t, payload.History, 1)
}

func TestExportPDF(t *testing.T) {
	service := newTestService(exportFixture())

	document, err := service.Export(context.Background(), "profile-1", types.ExportFormatPDF)
	require.NoError(t, err)

	assert.Equal(t, "application/pdf", document.ContentType)
	assert.True(t, strings.HasSuffix(document.Filename, ".pdf"))
	require.NotEmpty(t, document.Bytes)
	assert.Equal(t, "%PDF", string(document.Bytes[:4]))
}

func TestExportUnknownFormat(t *testing.T) {
	service := newTestService(exportFixture())

	_, err := service.Export(context.Background(), "profile-1", types.ExportFormat("xml"))
	require.Error(t, err)
	assert.True(t, types.IsValidation(err))
}

func TestExportMissingProfile(t *testing.T) {
	service := newTestService(newFakeStore())

	_, err := service.Export(context.Background(), "ghost", types.ExportFormatJSON)
	require.ErrorIs(t, err, types.ErrProfileNotFound)
}

func TestExportFilenameCarriesDate(t *testing.T) {
	service := newTestService(exportFixture())

	document, err := service.Export(context.Background(), "profile-1", types.ExportFormatJSON)
	require.NoError(t, err)

	today := time.Now().UTC().Format("2006-01-02")
	assert.Contains(t, document.Filename, today)
}
