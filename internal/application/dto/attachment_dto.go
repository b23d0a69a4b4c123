package dto

import "time"

// AttachmentResponse metadatos de un formulario. FileRef es la referencia al binario como texto.
type AttachmentResponse struct {
	ID             string    `json:"id"`
	FileRef        string    `json:"fileRef"`
	Filename       string    `json:"filename"`
	ContentType    string    `json:"contentType"`
	Size           int64     `json:"size"`
	DateRangeStart string    `json:"dateRangeStart"`
	DateRangeEnd   string    `json:"dateRangeEnd"`
	UploadedAt     time.Time `json:"uploadedAt"`
}

// UploadAttachmentResponse respuesta de POST /attachments.
type UploadAttachmentResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// DeleteAttachmentResponse respuesta de DELETE /attachments/:id.
type DeleteAttachmentResponse struct {
	Success bool `json:"success"`
}
