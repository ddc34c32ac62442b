package dto

import "time"

// GuestDocumentResponse metadatos de un documento del huésped.
type GuestDocumentResponse struct {
	ID          string    `json:"id"`
	GuestID     string    `json:"guest_id"`
	FileName    string    `json:"file_name"`
	StoragePath string    `json:"storage_path"`
	MimeType    string    `json:"mime_type"`
	SizeBytes   int64     `json:"size_bytes"`
	UploadedBy  string    `json:"uploaded_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// GuestDocumentListResponse documentos de un huésped.
type GuestDocumentListResponse struct {
	Items []GuestDocumentResponse `json:"items"`
}

// SignedURLResponse URL temporal de descarga.
type SignedURLResponse struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}
