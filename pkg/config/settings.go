package config

import "time"

// GetAPIPrefix returns the URL prefix all module routes are mounted under
func GetAPIPrefix() string {
	return GetEnv("API_PREFIX", "/api")
}

// GetHost returns the listen host for the HTTP server
func GetHost() string {
	return GetEnv("HOST", "0.0.0.0")
}

// GetJWTSecret returns the token signing secret. Production refuses to
// start without one; development falls back to a fixed value.
func GetJWTSecret() []byte {
	if GetEnv("APP_ENV", "development") == "production" {
		return []byte(MustGetEnv("JWT_SECRET"))
	}
	return []byte(GetEnv("JWT_SECRET", "dev-secret-change-me"))
}

// GetAdminEmail returns the configured operator login e-mail
func GetAdminEmail() string {
	return GetEnv("ADMIN_EMAIL", "")
}

// GetAdminPasswordHash returns the bcrypt hash of the operator password.
// The operator credential is configuration-supplied, never stored in the
// users collection.
func GetAdminPasswordHash() string {
	return GetEnv("ADMIN_PASSWORD_HASH", "")
}

// GetAllowedOrigins returns the CORS allow-list
func GetAllowedOrigins() []string {
	return GetSliceEnv("ALLOWED_ORIGINS", []string{"http://localhost:3000"})
}

// GetORSAPIKey returns the OpenRouteService API key
func GetORSAPIKey() string {
	return GetEnv("ORS_API_KEY", "")
}

// GetORSBaseURL returns the OpenRouteService endpoint base
func GetORSBaseURL() string {
	return GetEnv("ORS_BASE_URL", "https://api.openrouteservice.org")
}

// Token lifetimes. Registration tokens are long-lived so a fresh player
// stays signed in, session tokens last a day, operator tokens an hour.
func GetRegistrationTokenTTL() time.Duration {
	return GetDurationEnv("REGISTRATION_TOKEN_TTL", 7*24*time.Hour)
}

func GetSessionTokenTTL() time.Duration {
	return GetDurationEnv("SESSION_TOKEN_TTL", 24*time.Hour)
}

func GetAdminTokenTTL() time.Duration {
	return GetDurationEnv("ADMIN_TOKEN_TTL", time.Hour)
}

// GetPresenceStaleAfter returns how long a player may stay flagged online
// with no state save before the maintenance sweep flips them offline
func GetPresenceStaleAfter() time.Duration {
	return GetDurationEnv("PRESENCE_STALE_AFTER", 24*time.Hour)
}

// SMTP settings for the welcome mail sender
type SMTPSettings struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// GetSMTPSettings returns the outbound mail configuration. An empty Host
// disables mail delivery entirely.
func GetSMTPSettings() SMTPSettings {
	return SMTPSettings{
		Host:     GetEnv("SMTP_HOST", ""),
		Port:     GetIntEnv("SMTP_PORT", 587),
		User:     GetEnv("SMTP_USER", ""),
		Password: GetEnv("SMTP_PASSWORD", ""),
		From:     GetEnv("SMTP_FROM", "Fog of War <no-reply@fogexplore.app>"),
	}
}
