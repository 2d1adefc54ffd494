package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/aromabeans/coffee-feedback/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedFeedbacks(t *testing.T, srv *Server) {
	t.Helper()
	ctx := context.Background()
	docs := []models.Feedback{
		{Type: models.TypeText, Category: "Beverages", Sentiment: "Positive"},
		{Type: models.TypeText, Category: "Service", Sentiment: "Negative"},
		{Type: models.TypeVoice, Category: "Beverages", Sentiment: "Positive"},
		{Type: models.TypeEmotion, Emotion: "happy", Rating: 5},
		{Type: models.TypeEmotion, Emotion: "sad", Rating: 2, Sentiment: "Negative"},
	}
	for i := range docs {
		require.NoError(t, srv.store.InsertFeedback(ctx, &docs[i]))
	}
}

func TestDashboardStats(t *testing.T) {
	srv, _, _ := newTestServer(t)
	seedFeedbacks(t, srv)

	w := record(srv.DashboardStatsHandler, httptestGet("/dashboard/stats"))
	require.Equal(t, http.StatusOK, w.Code)

	var stats DashboardStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 2, stats.ByType[models.TypeText])
	assert.Equal(t, 1, stats.ByType[models.TypeVoice])
	assert.Equal(t, 2, stats.ByType[models.TypeEmotion])
	assert.Equal(t, 2, stats.BySentiment["Positive"])
	assert.Equal(t, 2, stats.BySentiment["Negative"])
	assert.Equal(t, 2, stats.ByCategory["Beverages"])
	assert.InDelta(t, 3.5, stats.AverageRating, 0.001)
}

func TestDashboardFeedbacksEmptyIsArray(t *testing.T) {
	srv, _, _ := newTestServer(t)

	w := record(srv.DashboardFeedbacksHandler, httptestGet("/dashboard/feedbacks"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"feedbacks":[]}`, w.Body.String())
}

func TestDashboardExport(t *testing.T) {
	srv, _, _ := newTestServer(t)
	seedFeedbacks(t, srv)

	w := record(srv.DashboardExportHandler, httptestGet("/dashboard/export"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "feedback_export.xlsx")
	// xlsx files are zip archives.
	require.True(t, w.Body.Len() > 4)
	assert.Equal(t, []byte{'P', 'K'}, w.Body.Bytes()[:2])
}
