package mongo

import (
	"time"

	"github.com/jhoicas/almoxarifado-api/internal/domain/entity"
	"github.com/jhoicas/almoxarifado-api/internal/domain/inventory"
)

type productDoc struct {
	ID                       string    `bson:"_id"`
	Code                     int64     `bson:"code"`
	Description              string    `bson:"description"`
	DescriptionKey           string    `bson:"description_key"`
	Quantity                 int64     `bson:"quantity"`
	Unit                     string    `bson:"unit"`
	SupplementaryDescription string    `bson:"supplementary_description"`
	Expiry                   string    `bson:"expiry"`
	Supplier                 string    `bson:"supplier"`
	ProcessNumber            string    `bson:"process_number"`
	Notes                    string    `bson:"notes"`
	CreatedAt                time.Time `bson:"created_at"`
	UpdatedAt                time.Time `bson:"updated_at"`
}

func newProductDoc(p *entity.Product) productDoc {
	return productDoc{
		ID:                       p.ID,
		Code:                     p.Code,
		Description:              p.Description,
		DescriptionKey:           inventory.DescriptionKey(p.Description),
		Quantity:                 p.Quantity,
		Unit:                     p.Unit,
		SupplementaryDescription: p.SupplementaryDescription,
		Expiry:                   p.Expiry,
		Supplier:                 p.Supplier,
		ProcessNumber:            p.ProcessNumber,
		Notes:                    p.Notes,
		CreatedAt:                p.CreatedAt,
		UpdatedAt:                p.UpdatedAt,
	}
}

func (d productDoc) toEntity() *entity.Product {
	return &entity.Product{
		ID:                       d.ID,
		Code:                     d.Code,
		Description:              d.Description,
		Quantity:                 d.Quantity,
		Unit:                     d.Unit,
		SupplementaryDescription: d.SupplementaryDescription,
		Expiry:                   d.Expiry,
		Supplier:                 d.Supplier,
		ProcessNumber:            d.ProcessNumber,
		Notes:                    d.Notes,
		CreatedAt:                d.CreatedAt,
		UpdatedAt:                d.UpdatedAt,
	}
}

type movementDoc struct {
	ID                string    `bson:"_id"`
	Type              string    `bson:"type"`
	Quantity          int64     `bson:"quantity"`
	WarehouseKeeper   string    `bson:"warehouse_keeper"`
	ResponsibleSector string    `bson:"responsible_sector,omitempty"`
	Recipient         string    `bson:"recipient,omitempty"`
	OccurredAt        time.Time `bson:"occurred_at"`
	ProductID         string    `bson:"product_id"`
	CreatedAt         time.Time `bson:"created_at"`
}

func newMovementDoc(m *entity.Movement) movementDoc {
	return movementDoc{
		ID:                m.ID,
		Type:              m.Type,
		Quantity:          m.Quantity,
		WarehouseKeeper:   m.WarehouseKeeper,
		ResponsibleSector: m.ResponsibleSector,
		Recipient:         m.Recipient,
		OccurredAt:        m.OccurredAt,
		ProductID:         m.ProductID,
		CreatedAt:         m.CreatedAt,
	}
}

func (d movementDoc) toEntity() entity.Movement {
	return entity.Movement{
		ID:                d.ID,
		Type:              d.Type,
		Quantity:          d.Quantity,
		WarehouseKeeper:   d.WarehouseKeeper,
		ResponsibleSector: d.ResponsibleSector,
		Recipient:         d.Recipient,
		OccurredAt:        d.OccurredAt,
		ProductID:         d.ProductID,
		CreatedAt:         d.CreatedAt,
	}
}

// movementWithProductDoc resultado del $lookup; Product queda nil si no hubo coincidencia.
type movementWithProductDoc struct {
	Movement movementDoc `bson:",inline"`
	Product  *productDoc `bson:"product,omitempty"`
}

type attachmentDoc struct {
	ID             string    `bson:"_id"`
	FileRef        string    `bson:"file_ref"`
	Filename       string    `bson:"filename"`
	ContentType    string    `bson:"content_type"`
	Size           int64     `bson:"size"`
	DateRangeStart string    `bson:"date_range_start"`
	DateRangeEnd   string    `bson:"date_range_end"`
	UploadedAt     time.Time `bson:"uploaded_at"`
}

func newAttachmentDoc(a *entity.Attachment) attachmentDoc {
	return attachmentDoc{
		ID:             a.ID,
		FileRef:        a.FileRef,
		Filename:       a.Filename,
		ContentType:    a.ContentType,
		Size:           a.Size,
		DateRangeStart: a.DateRangeStart,
		DateRangeEnd:   a.DateRangeEnd,
		UploadedAt:     a.UploadedAt,
	}
}

func (d attachmentDoc) toEntity() *entity.Attachment {
	return &entity.Attachment{
		ID:             d.ID,
		FileRef:        d.FileRef,
		Filename:       d.Filename,
		ContentType:    d.ContentType,
		Size:           d.Size,
		DateRangeStart: d.DateRangeStart,
		DateRangeEnd:   d.DateRangeEnd,
		UploadedAt:     d.UploadedAt,
	}
}
