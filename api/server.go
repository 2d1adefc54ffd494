package api

import (
	"context"
	"net/http"

	"github.com/aromabeans/coffee-feedback/logger"
	"github.com/aromabeans/coffee-feedback/store"
	"github.com/aromabeans/coffee-feedback/utils"
)

// AI is the generative backend used for suggestions, sentiment, and emotion
// classification. Implemented by utils.Gemini; stubbed in tests.
type AI interface {
	Suggest(ctx context.Context, feedback, category, product string) (string, error)
	Sentiment(ctx context.Context, text string) (string, error)
	DetectEmotion(ctx context.Context, image []byte) (string, error)
}

// Notifier forwards feedback summaries to the shopkeeper.
type Notifier interface {
	SendText(to, body string) (string, error)
}

// FrameStore archives captured emotion frames.
type FrameStore interface {
	SaveFrame(ctx context.Context, objectKey string, data []byte) error
}

// Fallback strings returned when the AI backend is unavailable, carried over
// from the original service.
const (
	fallbackSuggestion = "AI could not generate suggestions."
	fallbackSentiment  = "Unknown"
)

// Server holds the handler dependencies. Notifier and Frames may be nil, in
// which case those side effects are skipped.
type Server struct {
	store    store.Store
	ai       AI
	notifier Notifier
	frames   FrameStore
	log      *logger.Logger
}

func NewServer(st store.Store, ai AI, notifier Notifier, frames FrameStore) *Server {
	return &Server{
		store:    st,
		ai:       ai,
		notifier: notifier,
		frames:   frames,
		log:      logger.New(),
	}
}

// Routes registers every endpoint on the given mux.
func (s *Server) Routes(mux *http.ServeMux) {
	mux.HandleFunc("/healthz", s.HealthHandler)

	mux.HandleFunc("/get_categories", s.GetCategoriesHandler)
	mux.HandleFunc("/add_category", s.AddCategoryHandler)
	mux.HandleFunc("/delete_category", s.DeleteCategoryHandler)
	mux.HandleFunc("/get_products", s.GetProductsHandler)
	mux.HandleFunc("/add_product", s.AddProductHandler)
	mux.HandleFunc("/delete_product", s.DeleteProductHandler)

	mux.HandleFunc("/get_ai_suggestion", s.AISuggestionHandler)
	mux.HandleFunc("/submit_text_feedback", s.SubmitTextFeedbackHandler)
	mux.HandleFunc("/submit_voice_feedback", s.SubmitVoiceFeedbackHandler)
	mux.HandleFunc("/submit_emotion_feedback", s.SubmitEmotionFeedbackHandler)
	mux.HandleFunc("/detect_emotion", s.DetectEmotionHandler)

	mux.HandleFunc("/auth/signup", s.SignupHandler)
	mux.HandleFunc("/auth/login", s.LoginHandler)
	mux.HandleFunc("/auth/forgot-password", s.ForgotPasswordHandler)
	mux.HandleFunc("/auth/reset-password", s.ResetPasswordHandler)

	mux.HandleFunc("/dashboard/stats", s.requireAuth(s.DashboardStatsHandler))
	mux.HandleFunc("/dashboard/feedbacks", s.requireAuth(s.DashboardFeedbacksHandler))
	mux.HandleFunc("/dashboard/export", s.requireAuth(s.DashboardExportHandler))
}

func (s *Server) HealthHandler(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// notifyShopkeeper sends the message to the most recently registered
// shopkeeper. Notification failures are logged, never surfaced to the
// customer.
func (s *Server) notifyShopkeeper(ctx context.Context, message string) {
	if s.notifier == nil {
		return
	}
	sk, err := s.store.LatestShopkeeper(ctx)
	if err != nil {
		s.log.WithError(err).Warn("no shopkeeper to notify")
		return
	}
	if sk.Phone == "" {
		s.log.Warn("latest shopkeeper has no phone number")
		return
	}
	if _, err := s.notifier.SendText(sk.Phone, message); err != nil {
		s.log.WithError(err).Warn("whatsapp notification failed")
	}
}

// suggestOrFallback shields callers from AI outages the way the original
// service did: a failed call degrades to a canned string.
func (s *Server) suggestOrFallback(ctx context.Context, feedback, category, product string) string {
	suggestion, err := s.ai.Suggest(ctx, feedback, category, product)
	if err != nil {
		s.log.WithError(err).Warn("ai suggestion failed")
		return fallbackSuggestion
	}
	return suggestion
}

func (s *Server) sentimentOrFallback(ctx context.Context, text string) string {
	sentiment, err := s.ai.Sentiment(ctx, text)
	if err != nil {
		s.log.WithError(err).Warn("sentiment analysis failed")
		return fallbackSentiment
	}
	return sentiment
}
