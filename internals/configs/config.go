package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	// Deux espaces de jetons disjoints : personnel et demandeur.
	JWTSecretPersonnel        string
	JWTSecretDemandeur        string
	JWTRefreshSecretPersonnel string
	JWTRefreshSecretDemandeur string

	GoogleClientID string

	KkiapayAPIKey     string
	KkiapayPrivateKey string
	KkiapaySecretKey  string
	KkiapayBaseURL    string

	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPassword string
	MailFrom     string

	UploadDir string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Pas de fichier .env, utilisation des variables du système")
		} else {
			log.Println("✅ Fichier .env chargé")
		}
	} else {
		log.Println("🚀 Environnement Railway, variables du système")
	}

	JWTSecretPersonnel = GetEnv("JWT_SECRET_PERSONNEL")
	JWTSecretDemandeur = GetEnv("JWT_SECRET_DEMANDEUR")
	JWTRefreshSecretPersonnel = GetEnv("JWT_REFRESH_SECRET_PERSONNEL")
	JWTRefreshSecretDemandeur = GetEnv("JWT_REFRESH_SECRET_DEMANDEUR")

	GoogleClientID = GetEnv("GOOGLE_CLIENT_ID")

	KkiapayAPIKey = GetEnv("KKIAPAY_API_KEY")
	KkiapayPrivateKey = GetEnv("KKIAPAY_PRIVATE_KEY")
	KkiapaySecretKey = GetEnv("KKIAPAY_SECRET_KEY")
	KkiapayBaseURL = GetEnv("KKIAPAY_BASE_URL", "https://api.kkiapay.me")

	SMTPHost = GetEnv("SMTP_HOST")
	SMTPPort = GetEnv("SMTP_PORT", "587")
	SMTPUser = GetEnv("SMTP_USER")
	SMTPPassword = GetEnv("SMTP_PASSWORD")
	MailFrom = GetEnv("MAIL_FROM", "no-reply@ambassade.bj")

	UploadDir = GetEnv("UPLOAD_DIR", "./uploads")

	for name, v := range map[string]string{
		"JWT_SECRET_PERSONNEL":         JWTSecretPersonnel,
		"JWT_SECRET_DEMANDEUR":         JWTSecretDemandeur,
		"JWT_REFRESH_SECRET_PERSONNEL": JWTRefreshSecretPersonnel,
		"JWT_REFRESH_SECRET_DEMANDEUR": JWTRefreshSecretDemandeur,
	} {
		if v == "" {
			log.Printf("❌ %s n'est pas défini !", name)
		}
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
