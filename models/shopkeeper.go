package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Shopkeeper represents a registered shop owner. The most recently
// registered shopkeeper receives WhatsApp notifications for new feedback.
type Shopkeeper struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Phone     string             `bson:"phone_number" json:"phone_number"`
	Password  string             `bson:"password" json:"-"` // bcrypt hash, never returned
	OTP       string             `bson:"otp,omitempty" json:"-"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}
