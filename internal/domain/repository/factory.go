package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Sessions() SessionRepository
	Photos() PhotoRepository
	Orders() OrderRepository
	Settings() SettingsRepository
}
