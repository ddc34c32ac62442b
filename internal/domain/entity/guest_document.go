package entity

import "time"

// GuestDocument metadatos de un archivo del huésped (pasaporte, INE, comprobantes).
// Existe si y solo si existe el objeto en StoragePath (se mantiene por compensación).
type GuestDocument struct {
	ID          string
	GuestID     string
	FileName    string
	StoragePath string
	MimeType    string
	SizeBytes   int64
	UploadedBy  string
	CreatedAt   time.Time
}
