// Package pdf compone y une los certificados de garantía.
//
// Layout de la página A4 (una página por certificado):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  LOGO (o texto)          │  Adresa / Tel / Email / Web       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Emër Mbiemër / Marka / Afati  │  ██ CERTIFIKATË GARANCIE ██ │
//	│  Aviso de validez (cursiva)                                  │
//	│  KUSHTET E PËRGJITHSHME: • cláusulas                         │
//	│  GARANCIA NUK MBULON:    • exclusiones                       │
//	│  ______________   ______________   ______________            │
//	│  Blerësi           Instaluesi       Shitësi                  │
//	│  ██ KUJDES! ██  texto de aceptación                          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"bytes"
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontfamily"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Garancia-api/internal/domain"
	"github.com/jhoicas/Garancia-api/internal/domain/warranty"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorDark    = &props.Color{Red: 40, Green: 40, Blue: 40}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// Tamaños de letra de las secciones fijas.
const (
	clauseSize    = 7.5
	clauseLineMM  = 3.4
	fieldSize     = 10.0
	fieldValueGap = 36.0
)

// ── Composer ──────────────────────────────────────────────────────────────────

// ContactInfo datos de contacto impresos en la cabecera.
type ContactInfo struct {
	CompanyName string
	Address     string
	Phone       string
	Email       string
	Website     string
}

// ComposerOptions configuración del composer.
type ComposerOptions struct {
	LogoPath string
	Contact  ContactInfo
	Logger   zerolog.Logger
}

// MarotoCertificateComposer implementa certificate.CertificateComposer con Maroto v2.
// Es seguro para uso concurrente: cada Compose construye su propio documento.
type MarotoCertificateComposer struct {
	contact ContactInfo
	logo    *logoAsset
	log     zerolog.Logger
}

// NewMarotoCertificateComposer construye el composer. El logo se lee una sola vez;
// si no existe o no es una imagen válida se usa el texto de respaldo y se registra un aviso.
func NewMarotoCertificateComposer(opts ComposerOptions) *MarotoCertificateComposer {
	c := &MarotoCertificateComposer{contact: opts.Contact, log: opts.Logger}
	logo, err := loadLogo(opts.LogoPath)
	if err != nil {
		c.log.Warn().Err(err).Str("path", opts.LogoPath).Msg("logo no disponible, se usa texto de respaldo")
	} else {
		c.logo = logo
	}
	return c
}

// HasLogo indica si el logo se cargó correctamente.
func (c *MarotoCertificateComposer) HasLogo() bool { return c.logo != nil }

// Compose genera el certificado de una línea.
func (c *MarotoCertificateComposer) Compose(ctx context.Context, req warranty.CertificateRequest) (warranty.RenderedPage, error) {
	if err := ctx.Err(); err != nil {
		return warranty.RenderedPage{}, err
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: fontfamily.Helvetica, Size: 9}).
		WithTitle(documentTitle(req.InvoiceNumber), true).
		WithAuthor(safeText(c.contact.CompanyName), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(c.headerRow())
	m.AddRows(line.NewRow(4, props.Line{Color: colorPrimary, Thickness: 0.5}))

	fields, err := fieldRows(req)
	if err != nil {
		c.log.Warn().Err(err).
			Str("invoice", req.InvoiceNumber).
			Msg("bloque de campos con formato simple")
		fields = plainFieldRows(req)
	}
	m.AddRows(fields...)

	m.AddRows(row.New(3))
	m.AddRows(text.NewRow(12, disclaimerText, props.Text{
		Style: fontstyle.Italic, Size: 7.5, Color: colorGray, Top: 1,
	}))
	m.AddRows(clauseRows(generalTermsTitle, generalTerms)...)
	m.AddRows(clauseRows(exclusionsTitle, exclusionTerms)...)
	m.AddRows(signatureRows()...)
	m.AddRows(row.New(4))
	m.AddRows(attentionRow())

	doc, err := m.Generate()
	if err != nil {
		return warranty.RenderedPage{}, fmt.Errorf("%w: generar documento: %w", domain.ErrRenderFailed, err)
	}
	content := doc.GetBytes()
	pages, err := api.PageCount(bytes.NewReader(content), newPDFConfig())
	if err != nil {
		return warranty.RenderedPage{}, fmt.Errorf("%w: contar páginas: %w", domain.ErrRenderFailed, err)
	}
	return warranty.NewRenderedPage(content, pages), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: logo (izq) y bloque de contacto (der).
func (c *MarotoCertificateComposer) headerRow() core.Row {
	var logo core.Component
	if c.logo != nil {
		logo = image.NewFromBytes(c.logo.data, c.logo.ext, props.Rect{Center: true, Percent: 90})
	} else {
		placeholder := c.contact.CompanyName
		if placeholder == "" {
			placeholder = logoPlaceholder
		}
		logo = text.New(safeText(placeholder), props.Text{
			Style: fontstyle.Bold, Size: 16, Color: colorPrimary, Top: 8,
		})
	}

	contact := col.New(7)
	entries := []struct{ label, value string }{
		{labelAddress, c.contact.Address},
		{labelPhone, c.contact.Phone},
		{labelEmail, c.contact.Email},
		{labelWebsite, c.contact.Website},
	}
	for i, e := range entries {
		top := 2 + float64(i)*5.5
		contact.Add(
			text.New(e.label, props.Text{Style: fontstyle.Bold, Size: 8, Top: top, Left: 20}),
			text.New(safeText(e.value), props.Text{Size: 8, Top: top, Left: 34, Color: colorGray}),
		)
	}

	return row.New(26).Add(col.New(5).Add(logo), contact)
}

// fieldRows: tres pares etiqueta/valor (izq) y el título sobre fondo de color (der).
// Devuelve error si algún valor no se puede representar con las fuentes base.
func fieldRows(req warranty.CertificateRequest) ([]core.Row, error) {
	date := req.InvoiceDate
	if err := checkFields(req.CustomerName, req.ProductName, req.WarrantyLabel(), req.InvoiceNumber, date); err != nil {
		return nil, err
	}

	fields := col.New(7)
	pairs := []struct{ label, value string }{
		{labelCustomer, req.CustomerName},
		{labelProduct, req.ProductName},
		{labelWarranty, req.WarrantyLabel()},
	}
	for i, p := range pairs {
		top := 3 + float64(i)*9
		fields.Add(
			text.New(p.label, props.Text{Style: fontstyle.Bold, Size: fieldSize, Top: top}),
			text.New(p.value, props.Text{Size: fieldSize, Top: top, Left: fieldValueGap}),
		)
	}

	banner := col.New(5).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
	banner.Add(
		text.New(titleLine1, props.Text{Style: fontstyle.Bold, Size: 15, Align: align.Center, Color: colorWhite, Top: 4}),
		text.New(titleLine2, props.Text{Style: fontstyle.Bold, Size: 15, Align: align.Center, Color: colorWhite, Top: 11}),
	)
	if req.InvoiceNumber != "" || date != "" {
		info := labelInvoice + " " + req.InvoiceNumber
		if date != "" {
			info += "   " + labelDate + " " + date
		}
		banner.Add(text.New(info, props.Text{Size: 8, Align: align.Center, Color: colorWhite, Top: 21}))
	}

	return []core.Row{row.New(30).Add(fields, banner)}, nil
}

// plainFieldRows versión mínima del bloque de campos: texto corrido sin columnas,
// con los caracteres no representables reemplazados.
func plainFieldRows(req warranty.CertificateRequest) []core.Row {
	rows := []core.Row{
		text.NewRow(9, titleLine1+" "+titleLine2, props.Text{
			Style: fontstyle.Bold, Size: 13, Align: align.Center, Color: colorPrimary, Top: 1,
		}),
	}
	for _, p := range []struct{ label, value string }{
		{labelCustomer, req.CustomerName},
		{labelProduct, req.ProductName},
		{labelWarranty, req.WarrantyLabel()},
	} {
		rows = append(rows, text.NewRow(9, p.label+" "+safeText(p.value), props.Text{Size: fieldSize, Top: 1}))
	}
	return rows
}

// clauseRows: título de sección y una fila por cláusula con viñeta.
func clauseRows(title string, clauses []clause) []core.Row {
	rows := make([]core.Row, 0, len(clauses)+1)
	rows = append(rows, text.NewRow(7, title, props.Text{
		Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
	}))
	for _, cl := range clauses {
		height := float64(cl.lines)*clauseLineMM + 1
		rows = append(rows, row.New(height).Add(
			col.New(12).Add(text.New("• "+cl.text, props.Text{Size: clauseSize, Left: 2, Top: 0.5})),
		))
	}
	return rows
}

// signatureRows: espacio de firma, línea y rótulos para comprador, instalador y vendedor.
func signatureRows() []core.Row {
	lineProps := props.Line{Color: colorDark, Thickness: 0.3, SizePercent: 80}
	caption := func(s string) core.Col {
		return text.NewCol(4, s, props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Center})
	}
	hint := func(s string) core.Col {
		return text.NewCol(4, s, props.Text{Size: 7, Align: align.Center, Color: colorGray})
	}
	return []core.Row{
		row.New(14),
		row.New(3).Add(line.NewCol(4, lineProps), line.NewCol(4, lineProps), line.NewCol(4, lineProps)),
		row.New(5).Add(caption("Blerësi"), caption("Instaluesi"), caption("Shitësi")),
		row.New(5).Add(hint("(emri dhe nënshkrimi)"), hint("(emri dhe nënshkrimi)"), hint("(vula dhe nënshkrimi)")),
	}
}

// attentionRow: rótulo destacado y texto de aceptación.
func attentionRow() core.Row {
	return row.New(24).Add(
		col.New(3).WithStyle(&props.Cell{BackgroundColor: colorDark}).Add(
			text.New(attentionCaption, props.Text{
				Style: fontstyle.Bold, Size: 13, Align: align.Center, Color: colorWhite, Top: 9,
			}),
		),
		col.New(9).Add(
			text.New(attentionText, props.Text{Size: clauseSize, Left: 3, Top: 3}),
		),
	)
}
