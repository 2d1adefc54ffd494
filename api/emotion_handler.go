package api

import (
	"fmt"
	"io"
	"net/http"

	"github.com/aromabeans/coffee-feedback/utils"
	"github.com/google/uuid"
)

const maxFrameBytes = 10 << 20 // 10 MB

// DetectEmotionHandler classifies the uploaded frame and returns the emotion
// label. The frame is archived to S3 when an archive is configured; archive
// failures only log.
func (s *Server) DetectEmotionHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.RespondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	if err := r.ParseMultipartForm(maxFrameBytes); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Error parsing form data")
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Image file is required")
		return
	}
	defer file.Close()

	frame, err := io.ReadAll(file)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Error reading image")
		return
	}
	if len(frame) == 0 {
		utils.RespondError(w, http.StatusBadRequest, "Empty image")
		return
	}

	ctx := r.Context()
	emotion, err := s.ai.DetectEmotion(ctx, frame)
	if err != nil {
		s.log.WithError(err).Error("emotion detection failed")
		utils.RespondError(w, http.StatusInternalServerError, "Failed to detect emotion")
		return
	}

	if s.frames != nil {
		key := fmt.Sprintf("emotions/%s.jpg", uuid.New().String())
		if err := s.frames.SaveFrame(ctx, key, frame); err != nil {
			s.log.WithError(err).Warn("failed to archive frame")
		}
	}

	s.log.WithField("emotion", emotion).Info("emotion detected")
	utils.RespondJSON(w, http.StatusOK, map[string]string{"emotion": emotion})
}
