package services

// Services groups the application services shared by the HTTP and
// WebSocket handlers
type Services struct {
	Projects *ProjectService
	Sessions *SessionManager
	Settings *SettingsService
}
