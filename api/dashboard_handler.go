package api

import (
	"net/http"

	"github.com/aromabeans/coffee-feedback/models"
	"github.com/aromabeans/coffee-feedback/utils"
)

// DashboardStats summarizes the feedbacks collection for the shopkeeper
// dashboard.
type DashboardStats struct {
	Total         int            `json:"total"`
	ByType        map[string]int `json:"by_type"`
	BySentiment   map[string]int `json:"by_sentiment"`
	ByCategory    map[string]int `json:"by_category"`
	AverageRating float64        `json:"average_emotion_rating"`
}

// DashboardStatsHandler returns aggregate feedback metrics.
func (s *Server) DashboardStatsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.RespondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	feedbacks, err := s.store.ListFeedbacks(r.Context())
	if err != nil {
		s.log.WithError(err).Error("failed to list feedbacks")
		utils.RespondError(w, http.StatusInternalServerError, "Failed to load feedbacks")
		return
	}

	stats := DashboardStats{
		Total:       len(feedbacks),
		ByType:      map[string]int{},
		BySentiment: map[string]int{},
		ByCategory:  map[string]int{},
	}
	ratingSum, ratingCount := 0, 0
	for _, f := range feedbacks {
		stats.ByType[f.Type]++
		if f.Sentiment != "" {
			stats.BySentiment[f.Sentiment]++
		}
		if f.Category != "" {
			stats.ByCategory[f.Category]++
		}
		if f.Type == models.TypeEmotion && f.Rating > 0 {
			ratingSum += f.Rating
			ratingCount++
		}
	}
	if ratingCount > 0 {
		stats.AverageRating = float64(ratingSum) / float64(ratingCount)
	}

	utils.RespondJSON(w, http.StatusOK, stats)
}

// DashboardFeedbacksHandler lists all feedback documents, newest first.
func (s *Server) DashboardFeedbacksHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.RespondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	feedbacks, err := s.store.ListFeedbacks(r.Context())
	if err != nil {
		s.log.WithError(err).Error("failed to list feedbacks")
		utils.RespondError(w, http.StatusInternalServerError, "Failed to load feedbacks")
		return
	}
	if feedbacks == nil {
		feedbacks = []models.Feedback{}
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"feedbacks": feedbacks})
}

// DashboardExportHandler streams the feedbacks as an xlsx workbook.
func (s *Server) DashboardExportHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.RespondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	feedbacks, err := s.store.ListFeedbacks(r.Context())
	if err != nil {
		s.log.WithError(err).Error("failed to list feedbacks")
		utils.RespondError(w, http.StatusInternalServerError, "Failed to load feedbacks")
		return
	}

	workbook, err := utils.BuildFeedbackWorkbook(feedbacks)
	if err != nil {
		s.log.WithError(err).Error("failed to build workbook")
		utils.RespondError(w, http.StatusInternalServerError, "Failed to build export")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="feedback_export.xlsx"`)
	if err := workbook.Write(w); err != nil {
		s.log.WithError(err).Error("failed to write workbook")
	}
}
