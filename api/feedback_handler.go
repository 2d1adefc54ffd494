package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/aromabeans/coffee-feedback/models"
	"github.com/aromabeans/coffee-feedback/utils"
)

// AISuggestionHandler returns an AI suggestion without storing anything. The
// kiosk calls it right after a successful text submission.
func (s *Server) AISuggestionHandler(w http.ResponseWriter, r *http.Request) {
	feedback, category, product, ok := s.feedbackForm(w, r, "feedback")
	if !ok {
		return
	}
	suggestion := s.suggestOrFallback(r.Context(), feedback, category, product)
	utils.RespondJSON(w, http.StatusOK, map[string]string{"suggestion": suggestion})
}

// SubmitTextFeedbackHandler stores a typed feedback with AI sentiment and
// suggestion, then notifies the shopkeeper.
func (s *Server) SubmitTextFeedbackHandler(w http.ResponseWriter, r *http.Request) {
	feedback, category, product, ok := s.feedbackForm(w, r, "feedback")
	if !ok {
		return
	}
	ctx := r.Context()
	suggestion := s.suggestOrFallback(ctx, feedback, category, product)
	sentiment := s.sentimentOrFallback(ctx, feedback)

	doc := models.Feedback{
		Type:       models.TypeText,
		Category:   category,
		Product:    product,
		Content:    feedback,
		Sentiment:  sentiment,
		Suggestion: suggestion,
		Timestamp:  time.Now().UTC(),
	}
	if err := s.store.InsertFeedback(ctx, &doc); err != nil {
		s.log.WithError(err).Error("failed to store text feedback")
		utils.RespondError(w, http.StatusInternalServerError, "Failed to save feedback")
		return
	}
	s.log.WithField("feedback_id", doc.ID.Hex()).Info("text feedback stored")

	s.notifyShopkeeper(ctx, fmt.Sprintf(
		"New feedback:\nType: Text\nCategory: %s\nProduct: %s\nFeedback: %s",
		category, product, feedback))

	utils.RespondJSON(w, http.StatusOK, map[string]string{
		"message":       "Text feedback saved successfully",
		"category":      category,
		"product":       product,
		"ai_suggestion": suggestion,
		"sentiment":     sentiment,
	})
}

// SubmitVoiceFeedbackHandler stores a transcribed voice feedback. The form
// field is "text" rather than "feedback", matching the kiosk's voice flow.
func (s *Server) SubmitVoiceFeedbackHandler(w http.ResponseWriter, r *http.Request) {
	text, category, product, ok := s.feedbackForm(w, r, "text")
	if !ok {
		return
	}
	ctx := r.Context()
	suggestion := s.suggestOrFallback(ctx, text, category, product)
	sentiment := s.sentimentOrFallback(ctx, text)

	doc := models.Feedback{
		Type:       models.TypeVoice,
		Category:   category,
		Product:    product,
		Content:    text,
		Sentiment:  sentiment,
		Suggestion: suggestion,
		Timestamp:  time.Now().UTC(),
	}
	if err := s.store.InsertFeedback(ctx, &doc); err != nil {
		s.log.WithError(err).Error("failed to store voice feedback")
		utils.RespondError(w, http.StatusInternalServerError, "Failed to save feedback")
		return
	}
	s.log.WithField("feedback_id", doc.ID.Hex()).Info("voice feedback stored")

	s.notifyShopkeeper(ctx, fmt.Sprintf(
		"New voice feedback:\nCategory: %s\nProduct: %s\nFeedback: %s",
		category, product, text))

	utils.RespondJSON(w, http.StatusOK, map[string]string{
		"message":       "Voice feedback saved successfully",
		"category":      category,
		"product":       product,
		"ai_suggestion": suggestion,
		"sentiment":     sentiment,
	})
}

// SubmitEmotionFeedbackHandler stores an emotion feedback. Category, product
// and the reason are optional; sentiment and suggestion are only generated
// for negative emotions that come with a reason.
func (s *Server) SubmitEmotionFeedbackHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.RespondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	if err := r.ParseForm(); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Error parsing form data")
		return
	}

	emotion := strings.TrimSpace(r.FormValue("emotion"))
	ratingStr := r.FormValue("rating")
	if emotion == "" || ratingStr == "" {
		utils.RespondError(w, http.StatusBadRequest, "Emotion and rating are required")
		return
	}
	rating, err := strconv.Atoi(ratingStr)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid rating")
		return
	}

	ctx := r.Context()
	doc := models.Feedback{
		Type:      models.TypeEmotion,
		Emotion:   emotion,
		Rating:    rating,
		Category:  r.FormValue("category"),
		Product:   r.FormValue("product"),
		Timestamp: time.Now().UTC(),
	}

	reason := r.FormValue("reason_text")
	doc.ReasonType = "text"
	if reason == "" {
		reason = r.FormValue("reason_voice")
		doc.ReasonType = "voice"
	}

	negative := strings.EqualFold(emotion, "angry") || strings.EqualFold(emotion, "sad")
	if negative && reason != "" {
		category := doc.Category
		if category == "" {
			category = "General"
		}
		product := doc.Product
		if product == "" {
			product = "General"
		}
		doc.Content = reason
		doc.Sentiment = s.sentimentOrFallback(ctx, reason)
		doc.Suggestion = s.suggestOrFallback(ctx, reason, category, product)
	} else {
		doc.ReasonType = ""
	}

	if err := s.store.InsertFeedback(ctx, &doc); err != nil {
		s.log.WithError(err).Error("failed to store emotion feedback")
		utils.RespondError(w, http.StatusInternalServerError, "Failed to save feedback")
		return
	}
	s.log.WithFields(map[string]interface{}{
		"feedback_id": doc.ID.Hex(),
		"emotion":     emotion,
		"rating":      rating,
	}).Info("emotion feedback stored")

	message := fmt.Sprintf("New emotion feedback:\nEmotion: %s\nRating: %d", emotion, rating)
	if doc.Category != "" {
		message += "\nCategory: " + doc.Category
	}
	if doc.Product != "" {
		message += "\nProduct: " + doc.Product
	}
	if doc.Content != "" {
		message += "\nReason: " + doc.Content
	}
	s.notifyShopkeeper(ctx, message)

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"message":       "Emotion feedback saved successfully",
		"emotion":       emotion,
		"rating":        rating,
		"stored":        true,
		"ai_suggestion": doc.Suggestion,
		"sentiment":     doc.Sentiment,
	})
}

// feedbackForm enforces POST and the three required url-encoded fields shared
// by the text and voice submission endpoints.
func (s *Server) feedbackForm(w http.ResponseWriter, r *http.Request, contentField string) (content, category, product string, ok bool) {
	if r.Method != http.MethodPost {
		utils.RespondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return "", "", "", false
	}
	if err := r.ParseForm(); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Error parsing form data")
		return "", "", "", false
	}
	content = strings.TrimSpace(r.FormValue(contentField))
	category = strings.TrimSpace(r.FormValue("category"))
	product = strings.TrimSpace(r.FormValue("product"))
	if content == "" || category == "" || product == "" {
		utils.RespondError(w, http.StatusBadRequest,
			fmt.Sprintf("%s, category and product are required", contentField))
		return "", "", "", false
	}
	return content, category, product, true
}
