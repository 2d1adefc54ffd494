package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Feedback types stored in the feedbacks collection.
const (
	TypeText    = "text"
	TypeVoice   = "voice"
	TypeEmotion = "emotion"
)

// Feedback represents one stored customer feedback document. Text and voice
// feedback fill Content/Sentiment/Suggestion; emotion feedback fills
// Emotion/Rating and, for negative emotions with a reason, the content
// fields as well.
type Feedback struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Type       string             `bson:"type" json:"type"`
	Category   string             `bson:"category,omitempty" json:"category,omitempty"`
	Product    string             `bson:"product,omitempty" json:"product,omitempty"`
	Content    string             `bson:"content,omitempty" json:"content,omitempty"`
	Sentiment  string             `bson:"sentiment,omitempty" json:"sentiment,omitempty"`
	Suggestion string             `bson:"suggestion,omitempty" json:"suggestion,omitempty"`
	Emotion    string             `bson:"emotion,omitempty" json:"emotion,omitempty"`
	Rating     int                `bson:"rating,omitempty" json:"rating,omitempty"`
	ReasonType string             `bson:"reason_type,omitempty" json:"reason_type,omitempty"`
	Timestamp  time.Time          `bson:"timestamp" json:"timestamp"`
}
