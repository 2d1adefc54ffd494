package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	MongoURI       string
	Port           string
	GeminiAPIKey   string
	JWTSecret      string
	SendGridAPIKey string

	// WhatsApp Cloud API credentials for shopkeeper notifications.
	WhatsAppToken         string
	WhatsAppPhoneNumberID string

	AWSRegion     string
	AWSBucketName string

	// Kiosk settings. BackendURL is the single backend host; the old frontend
	// hardcoded one host per page.
	BackendURL    string
	TranscribeURL string
	CameraCmd     string
	RecorderCmd   string
)

// LoadConfig loads environment variables from .env file
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values or system environment variables")
	}

	MongoURI = os.Getenv("MONGO_URI")
	if MongoURI == "" {
		MongoURI = "mongodb://localhost:27017/"
	}

	Port = os.Getenv("PORT")
	if Port == "" {
		Port = "8080"
	}

	GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	JWTSecret = os.Getenv("JWT_SECRET")
	SendGridAPIKey = os.Getenv("SENDGRID_API_KEY")

	WhatsAppToken = os.Getenv("WHATSAPP_ACCESS_TOKEN")
	WhatsAppPhoneNumberID = os.Getenv("WHATSAPP_PHONE_NUMBER_ID")

	AWSRegion = os.Getenv("AWS_REGION")
	if AWSRegion == "" {
		AWSRegion = "us-east-1"
	}
	AWSBucketName = os.Getenv("AWS_BUCKET_NAME")

	BackendURL = os.Getenv("BACKEND_URL")
	if BackendURL == "" {
		BackendURL = "http://127.0.0.1:" + Port
	}
	TranscribeURL = os.Getenv("TRANSCRIBE_URL")
	CameraCmd = os.Getenv("CAMERA_CMD")
	RecorderCmd = os.Getenv("RECORDER_CMD")
}
