package dto

import "time"

// SessionCreateResponse is returned when a session is opened.
type SessionCreateResponse struct {
	SessionID  string    `json:"session_id"`
	UploadPath string    `json:"upload_path"`
	ExpiresAt  time.Time `json:"expires_at"`
	CreatedAt  time.Time `json:"created_at"`
}

// PhotoResponse describes one uploaded photo.
type PhotoResponse struct {
	PhotoID   string    `json:"photo_id"`
	SessionID string    `json:"session_id"`
	FileKey   string    `json:"file_key"`
	FileName  string    `json:"file_name"`
	MimeType  string    `json:"mime_type"`
	SizeBytes int64     `json:"size_bytes"`
	URLPath   string    `json:"url_path"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionResponse is a session with its photos.
type SessionResponse struct {
	SessionID      string          `json:"session_id"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
	ExpiresAt      time.Time       `json:"expires_at"`
	PhotosCount    int             `json:"photos_count"`
	LastUploadedAt *time.Time      `json:"last_uploaded_at"`
	Photos         []PhotoResponse `json:"photos"`
}
