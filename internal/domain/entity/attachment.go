package entity

import "time"

// Attachment metadatos de un formulario escaneado (PDF) guardado en el BlobStore.
// DateRangeStart/DateRangeEnd son cadenas opacas suministradas por el cliente.
type Attachment struct {
	ID             string
	FileRef        string
	Filename       string
	ContentType    string
	Size           int64
	DateRangeStart string
	DateRangeEnd   string
	UploadedAt     time.Time
}
