package dto

import "time"

// EntryRequest body para POST /entry.
type EntryRequest struct {
	Description     string `json:"description"`
	Quantity        int64  `json:"quantity"`
	Unit            string `json:"unit"`
	WarehouseKeeper string `json:"warehouseKeeper"`
	OccurredAtDate  string `json:"occurredAtDate,omitempty"`
}

// ExitRequest body para POST /exit.
type ExitRequest struct {
	ProductRef        string `json:"productRef"`
	Quantity          int64  `json:"quantity"`
	WarehouseKeeper   string `json:"warehouseKeeper"`
	OccurredAtDate    string `json:"occurredAtDate,omitempty"`
	ResponsibleSector string `json:"responsibleSector,omitempty"`
	Recipient         string `json:"recipient,omitempty"`
}

// MovementFilter filtros opcionales del historial (query string).
type MovementFilter struct {
	Product string `query:"product"`
	Type    string `query:"type"`
	From    string `query:"from"`
	To      string `query:"to"`
}

// MovementProductResponse datos del producto unidos al movimiento.
type MovementProductResponse struct {
	ID          string `json:"id"`
	Code        int64  `json:"code"`
	Description string `json:"description"`
}

// MovementResponse salida de un movimiento. Product es null si el producto fue eliminado;
// ProductLabel siempre trae un texto apto para mostrar.
type MovementResponse struct {
	ID                string                   `json:"id"`
	Type              string                   `json:"type"`
	Quantity          int64                    `json:"quantity"`
	WarehouseKeeper   string                   `json:"warehouseKeeper"`
	ResponsibleSector string                   `json:"responsibleSector"`
	Recipient         string                   `json:"recipient"`
	OccurredAt        time.Time                `json:"occurredAt"`
	ProductRef        string                   `json:"productRef"`
	Product           *MovementProductResponse `json:"product"`
	ProductLabel      string                   `json:"productLabel"`
	CreatedAt         time.Time                `json:"createdAt"`
}

// MovementSummaryResponse totales del historial filtrado.
type MovementSummaryResponse struct {
	TotalEntries int64 `json:"totalEntries"`
	TotalExits   int64 `json:"totalExits"`
	Balance      int64 `json:"balance"`
}
