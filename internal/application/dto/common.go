package dto

// ErrorResponse cuerpo de error HTTP. Error lleva el mensaje descriptivo para el cliente.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// OperationResponse confirmación de operaciones sin entidad de retorno.
type OperationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// DateRangeQuery filtro por días de calendario (AAAA-MM-DD), ambos opcionales.
type DateRangeQuery struct {
	From string `query:"from"`
	To   string `query:"to"`
}
