package usecase

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/almoxarifado-api/internal/application/dto"
	"github.com/jhoicas/almoxarifado-api/internal/domain"
	"github.com/jhoicas/almoxarifado-api/internal/domain/entity"
	"github.com/jhoicas/almoxarifado-api/internal/domain/repository"
)

// ImportOptions opciones de la carga masiva de productos desde CSV.
type ImportOptions struct {
	Latin1 bool // archivo en ISO-8859-1 (exportado por la planilla antigua)
	DryRun bool // valida sin escribir
}

// ImportSkip fila descartada y el motivo.
type ImportSkip struct {
	Line   int
	Reason string
}

// ImportResult resumen de la importación.
type ImportResult struct {
	Created int
	Skipped []ImportSkip
}

// columnas reconocidas; la clave es el encabezado normalizado (minúsculas, sin acentos ni separadores).
var importColumns = map[string]string{
	"code": "code", "codigo": "code", "cod": "code",
	"description": "description", "descricao": "description", "descripcion": "description", "produto": "description", "producto": "description",
	"quantity": "quantity", "quantidade": "quantity", "cantidad": "quantity", "qtd": "quantity", "estoque": "quantity",
	"unit": "unit", "unidade": "unit", "unidad": "unit", "un": "unit",
	"supplementarydescription": "supplementaryDescription", "descricaocomplementar": "supplementaryDescription", "complemento": "supplementaryDescription",
	"expiry": "expiry", "validade": "expiry", "vencimento": "expiry", "vencimiento": "expiry",
	"supplier": "supplier", "fornecedor": "supplier", "proveedor": "supplier",
	"processnumber": "processNumber", "numeroprocesso": "processNumber", "processo": "processNumber", "nprocesso": "processNumber",
	"notes": "notes", "observacoes": "notes", "observacao": "notes", "obs": "notes", "notas": "notes",
}

// Import crea productos a partir de un CSV con encabezado (separador ',' o ';').
// Las filas con código conservan su código; el resto recibe el siguiente de la secuencia.
// Filas cuya descripción ya existe (sin distinguir mayúsculas) se descartan.
func (uc *ProductUseCase) Import(ctx context.Context, r io.Reader, opts ImportOptions) (*ImportResult, error) {
	if opts.Latin1 {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	br := bufio.NewReader(r)
	if b, err := br.Peek(3); err == nil && string(b) == "\xef\xbb\xbf" {
		_, _ = br.Discard(3)
	}
	cr := csv.NewReader(br)
	cr.Comma = detectDelimiter(br)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: encabezado CSV: %v", domain.ErrInvalidInput, err)
	}
	index := make(map[string]int, len(header))
	for i, h := range header {
		if field, ok := importColumns[normalizeHeader(h)]; ok {
			index[field] = i
		}
	}
	if _, ok := index["description"]; !ok {
		return nil, fmt.Errorf("%w: el CSV no tiene columna de descripción", domain.ErrInvalidInput)
	}

	result := &ImportResult{}
	line := 1
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			result.Skipped = append(result.Skipped, ImportSkip{Line: line, Reason: err.Error()})
			continue
		}
		get := func(field string) string {
			if i, ok := index[field]; ok && i < len(record) {
				return strings.TrimSpace(record[i])
			}
			return ""
		}
		if strings.Join(record, "") == "" {
			continue
		}
		if reason := uc.importRow(ctx, get, opts.DryRun); reason != "" {
			result.Skipped = append(result.Skipped, ImportSkip{Line: line, Reason: reason})
			continue
		}
		result.Created++
	}
	return result, nil
}

// importRow devuelve el motivo del descarte o "" si la fila se importó.
func (uc *ProductUseCase) importRow(ctx context.Context, get func(string) string, dryRun bool) string {
	quantity, err := parseImportInt(get("quantity"))
	if err != nil {
		return "cantidad inválida: " + get("quantity")
	}
	code, err := parseImportInt(get("code"))
	if err != nil {
		return "código inválido: " + get("code")
	}
	in := dto.ProductRequest{
		Description:              get("description"),
		Quantity:                 &quantity,
		Unit:                     get("unit"),
		SupplementaryDescription: get("supplementaryDescription"),
		Expiry:                   get("expiry"),
		Supplier:                 get("supplier"),
		ProcessNumber:            get("processNumber"),
		Notes:                    get("notes"),
	}
	if err := validateProduct(&in); err != nil {
		return err.Error()
	}

	now := uc.now()
	err = uc.txRunner.Run(ctx, func(
		ctx context.Context,
		productRepo repository.ProductRepository,
		_ repository.MovementRepository,
	) error {
		existing, err := productRepo.GetByDescription(ctx, in.Description)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("%w: descripción ya registrada (código %d)", domain.ErrDuplicate, existing.Code)
		}
		if dryRun {
			return nil
		}
		product := &entity.Product{ID: uuid.New().String(), Code: code, CreatedAt: now, UpdatedAt: now}
		applyProductFields(product, in)
		if product.Code <= 0 {
			if product.Code, err = productRepo.NextCode(ctx); err != nil {
				return err
			}
		}
		return productRepo.Create(ctx, product)
	})
	if err != nil {
		return err.Error()
	}
	return ""
}

func detectDelimiter(br *bufio.Reader) rune {
	peek, _ := br.Peek(br.Size())
	first := string(peek)
	if i := strings.IndexByte(first, '\n'); i >= 0 {
		first = first[:i]
	}
	if strings.Count(first, ";") > strings.Count(first, ",") {
		return ';'
	}
	return ','
}

func normalizeHeader(h string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	s, _, err := transform.String(t, h)
	if err != nil {
		s = h
	}
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "", "_", "", "-", "", ".", "", "º", "", "°", "").Replace(s)
}

func parseImportInt(s string) (int64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	if s == "" {
		return 0, nil
	}
	return strconv.ParseInt(s, 10, 64)
}
