package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/aromabeans/coffee-feedback/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitTextFeedbackStoresAndNotifies(t *testing.T) {
	srv, st, notifier := newTestServer(t)
	require.NoError(t, st.InsertShopkeeper(context.Background(), &models.Shopkeeper{
		Name: "Asha", Email: "asha@example.com", Phone: "15550001111",
	}))

	w := postForm(srv.SubmitTextFeedbackHandler, "/submit_text_feedback",
		"feedback=too+cold&category=Beverages&product=Latte")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Brew at a lower temperature.", resp["ai_suggestion"])
	assert.Equal(t, "Negative", resp["sentiment"])

	feedbacks, err := st.ListFeedbacks(context.Background())
	require.NoError(t, err)
	require.Len(t, feedbacks, 1)
	f := feedbacks[0]
	assert.Equal(t, models.TypeText, f.Type)
	assert.Equal(t, "Beverages", f.Category)
	assert.Equal(t, "Latte", f.Product)
	assert.Equal(t, "too cold", f.Content)
	assert.Equal(t, "Negative", f.Sentiment)
	assert.Equal(t, "Brew at a lower temperature.", f.Suggestion)
	assert.WithinDuration(t, time.Now().UTC(), f.Timestamp, time.Minute)

	messages := notifier.sent()
	require.Len(t, messages, 1)
	assert.Contains(t, messages[0], "too cold")
	assert.Contains(t, messages[0], "Latte")
}

func TestSubmitTextFeedbackMissingFields(t *testing.T) {
	srv, st, _ := newTestServer(t)

	w := postForm(srv.SubmitTextFeedbackHandler, "/submit_text_feedback",
		"feedback=&category=Beverages&product=Latte")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "feedback, category and product are required")

	feedbacks, _ := st.ListFeedbacks(context.Background())
	assert.Empty(t, feedbacks)
}

func TestSubmitTextFeedbackRejectsGet(t *testing.T) {
	srv, _, _ := newTestServer(t)
	req := httptestGet("/submit_text_feedback")
	w := record(srv.SubmitTextFeedbackHandler, req)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestSubmitVoiceFeedbackUsesTextField(t *testing.T) {
	srv, st, _ := newTestServer(t)

	w := postForm(srv.SubmitVoiceFeedbackHandler, "/submit_voice_feedback",
		"text=great+espresso&category=Beverages&product=Espresso")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Brew at a lower temperature.", resp["ai_suggestion"])

	feedbacks, _ := st.ListFeedbacks(context.Background())
	require.Len(t, feedbacks, 1)
	assert.Equal(t, models.TypeVoice, feedbacks[0].Type)
	assert.Equal(t, "great espresso", feedbacks[0].Content)
}

func TestAISuggestionFallsBackOnError(t *testing.T) {
	srv, _, _ := newTestServer(t)
	srv.ai = &stubAI{err: assert.AnError}

	w := postForm(srv.AISuggestionHandler, "/get_ai_suggestion",
		"feedback=too+cold&category=Beverages&product=Latte")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "AI could not generate suggestions.", resp["suggestion"])
}

func TestSubmitEmotionFeedbackWithoutReason(t *testing.T) {
	srv, st, _ := newTestServer(t)

	w := postForm(srv.SubmitEmotionFeedbackHandler, "/submit_emotion_feedback",
		"emotion=happy&rating=5")
	require.Equal(t, http.StatusOK, w.Code)

	feedbacks, _ := st.ListFeedbacks(context.Background())
	require.Len(t, feedbacks, 1)
	f := feedbacks[0]
	assert.Equal(t, models.TypeEmotion, f.Type)
	assert.Equal(t, "happy", f.Emotion)
	assert.Equal(t, 5, f.Rating)
	assert.Empty(t, f.Content)
	assert.Empty(t, f.Sentiment)
	assert.Empty(t, f.ReasonType)
}

func TestSubmitEmotionFeedbackNegativeWithReason(t *testing.T) {
	srv, st, _ := newTestServer(t)

	w := postForm(srv.SubmitEmotionFeedbackHandler, "/submit_emotion_feedback",
		"emotion=sad&rating=2&reason_voice=the+coffee+was+too+bitter&category=Beverages&product=Latte")
	require.Equal(t, http.StatusOK, w.Code)

	feedbacks, _ := st.ListFeedbacks(context.Background())
	require.Len(t, feedbacks, 1)
	f := feedbacks[0]
	assert.Equal(t, "sad", f.Emotion)
	assert.Equal(t, 2, f.Rating)
	assert.Equal(t, "the coffee was too bitter", f.Content)
	assert.Equal(t, "voice", f.ReasonType)
	assert.Equal(t, "Negative", f.Sentiment)
	assert.Equal(t, "Brew at a lower temperature.", f.Suggestion)
}

func TestSubmitEmotionFeedbackDefaultsCategoryForReason(t *testing.T) {
	srv, st, _ := newTestServer(t)

	// Reason without category/product still produces sentiment + suggestion.
	w := postForm(srv.SubmitEmotionFeedbackHandler, "/submit_emotion_feedback",
		"emotion=angry&rating=1&reason_text=rude+service")
	require.Equal(t, http.StatusOK, w.Code)

	feedbacks, _ := st.ListFeedbacks(context.Background())
	require.Len(t, feedbacks, 1)
	assert.Equal(t, "rude service", feedbacks[0].Content)
	assert.Equal(t, "text", feedbacks[0].ReasonType)
	assert.NotEmpty(t, feedbacks[0].Sentiment)
}

func TestSubmitEmotionFeedbackRequiresEmotionAndRating(t *testing.T) {
	srv, _, _ := newTestServer(t)

	w := postForm(srv.SubmitEmotionFeedbackHandler, "/submit_emotion_feedback", "emotion=happy")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postForm(srv.SubmitEmotionFeedbackHandler, "/submit_emotion_feedback", "emotion=happy&rating=five")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid rating")
}
