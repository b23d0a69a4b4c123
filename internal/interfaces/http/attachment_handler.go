package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almoxarifado-api/internal/application/attachment"
	"github.com/jhoicas/almoxarifado-api/internal/application/dto"
	"github.com/jhoicas/almoxarifado-api/internal/domain"
)

// AttachmentHandler formularios PDF escaneados.
type AttachmentHandler struct {
	uc *attachment.UseCase
}

// NewAttachmentHandler construye el handler.
func NewAttachmentHandler(uc *attachment.UseCase) *AttachmentHandler {
	return &AttachmentHandler{uc: uc}
}

// Upload godoc
// @Summary      Subir formulario
// @Tags         attachments
// @Accept       mpfd
// @Produce      json
// @Param        file            formData  file    true   "PDF"
// @Param        dateRangeStart  formData  string  false  "Inicio del período"
// @Param        dateRangeEnd    formData  string  false  "Fin del período"
// @Success      200  {object}  dto.UploadAttachmentResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      429  {object}  dto.ErrorResponse
// @Router       /api/attachments [post]
func (h *AttachmentHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return respondError(c, fmt.Errorf("%w: ningún archivo enviado", domain.ErrInvalidInput))
	}
	f, err := fh.Open()
	if err != nil {
		return respondError(c, fmt.Errorf("leer archivo: %w", err))
	}
	defer f.Close()

	id, err := h.uc.Store(c.Context(), attachment.StoreInput{
		Content:          f,
		Size:             fh.Size,
		OriginalFilename: fh.Filename,
		ContentType:      fh.Header.Get(fiber.HeaderContentType),
		DateRangeStart:   c.FormValue("dateRangeStart"),
		DateRangeEnd:     c.FormValue("dateRangeEnd"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.UploadAttachmentResponse{Message: "Formulario guardado con éxito.", ID: id})
}

// List godoc
// @Summary      Listar formularios
// @Tags         attachments
// @Produce      json
// @Param        from  query  string  false  "Día de carga desde (AAAA-MM-DD)"
// @Param        to    query  string  false  "Día de carga hasta (AAAA-MM-DD)"
// @Success      200  {array}   dto.AttachmentResponse
// @Router       /api/attachments [get]
func (h *AttachmentHandler) List(c *fiber.Ctx) error {
	var filter dto.DateRangeQuery
	if err := c.QueryParser(&filter); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.List(c.Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// View godoc
// @Summary      Ver formulario en el navegador
// @Tags         attachments
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del formulario"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/attachments/{id}/view [get]
func (h *AttachmentHandler) View(c *fiber.Ctx) error {
	return h.stream(c, attachment.DispositionInline)
}

// Download godoc
// @Summary      Descargar formulario
// @Tags         attachments
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del formulario"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/attachments/{id}/download [get]
func (h *AttachmentHandler) Download(c *fiber.Ctx) error {
	return h.stream(c, attachment.DispositionAttachment)
}

func (h *AttachmentHandler) stream(c *fiber.Ctx, disposition attachment.Disposition) error {
	d, err := h.uc.Retrieve(c.Context(), c.Params("id"), disposition)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, d.ContentType)
	c.Set(fiber.HeaderContentDisposition, d.ContentDisposition())
	// fasthttp cierra Body al terminar de enviarlo.
	return c.SendStream(d.Body)
}

// Delete godoc
// @Summary      Eliminar formulario
// @Tags         attachments
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del formulario"
// @Success      200  {object}  dto.DeleteAttachmentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/attachments/{id} [delete]
func (h *AttachmentHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.DeleteAttachmentResponse{Success: true})
}
