package certificate_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Garancia-api/internal/application/certificate"
	"github.com/jhoicas/Garancia-api/internal/domain"
	"github.com/jhoicas/Garancia-api/internal/domain/entity"
	"github.com/jhoicas/Garancia-api/internal/domain/warranty"
	"github.com/jhoicas/Garancia-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

const (
	testCompanyID = "company-1"
	testInvoiceID = "inv-1"
)

var errBoom = errors.New("fallo de composición")

// fakeComposer devuelve "[producto]" como contenido. Los productos en failOn fallan.
// Con delay, los primeros productos tardan más para desordenar la finalización.
type fakeComposer struct {
	mu     sync.Mutex
	failOn map[string]bool
	empty  map[string]bool
	delay  bool
	calls  []warranty.CertificateRequest
}

func (f *fakeComposer) Compose(_ context.Context, req warranty.CertificateRequest) (warranty.RenderedPage, error) {
	f.mu.Lock()
	idx := len(f.calls)
	f.calls = append(f.calls, req)
	f.mu.Unlock()

	if f.delay {
		time.Sleep(time.Duration(10-idx%10) * time.Millisecond)
	}
	if f.failOn[req.ProductName] {
		return warranty.RenderedPage{}, errBoom
	}
	if f.empty[req.ProductName] {
		return warranty.NewRenderedPage(nil, 0), nil
	}
	return warranty.NewRenderedPage([]byte("["+req.ProductName+"]"), 1), nil
}

func (f *fakeComposer) requests() []warranty.CertificateRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]warranty.CertificateRequest(nil), f.calls...)
}

// fakeMerger concatena el contenido de las páginas en el orden recibido.
type fakeMerger struct {
	err error
}

func (f *fakeMerger) Merge(_ context.Context, pages []warranty.RenderedPage) (warranty.Document, error) {
	if f.err != nil {
		return warranty.Document{}, f.err
	}
	if len(pages) == 0 {
		return warranty.Document{}, domain.ErrNothingToMerge
	}
	var b strings.Builder
	total := 0
	for _, p := range pages {
		b.Write(p.Bytes())
		total += p.PageCount()
	}
	return warranty.NewDocument([]byte(b.String()), total), nil
}

func line(id, productID, name string, w warranty.WarrantyValue) entity.InvoiceLine {
	return entity.InvoiceLine{ID: id, ProductID: productID, ProductName: name, Quantity: decimal.NewFromInt(1), Warranty: w}
}

func invoice(lines ...entity.InvoiceLine) entity.Invoice {
	date := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	return entity.Invoice{
		ID:          testInvoiceID,
		CompanyID:   testCompanyID,
		Name:        "INV/2024/0042",
		Date:        &date,
		PartnerName: "Arben Krasniqi",
		Lines:       lines,
	}
}

type fixture struct {
	uc          *certificate.GenerateUseCase
	composer    *fakeComposer
	attachments *memory.AttachmentStore
	settings    *memory.SettingsStore
}

func newFixture(t *testing.T, inv entity.Invoice, opts ...certificate.Option) *fixture {
	t.Helper()
	f := &fixture{
		composer:    &fakeComposer{},
		attachments: memory.NewAttachmentStore(),
		settings:    memory.NewSettingsStore(),
	}
	clock := func() time.Time { return time.Date(2024, 3, 5, 14, 30, 15, 0, time.UTC) }
	opts = append([]certificate.Option{certificate.WithClock(clock)}, opts...)
	f.uc = certificate.NewGenerateUseCase(
		memory.NewInvoiceStore(inv),
		f.settings,
		f.attachments,
		f.composer,
		&fakeMerger{},
		opts...,
	)
	return f
}

func generate(t *testing.T, f *fixture, confirmed bool) (*certificate.GenerationResult, error) {
	t.Helper()
	return f.uc.Generate(context.Background(), certificate.GenerateInput{
		CompanyID: testCompanyID,
		InvoiceID: testInvoiceID,
		Confirmed: confirmed,
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenarios
// ──────────────────────────────────────────────────────────────────────────────

func TestGenerate_EntregaUnCertificadoPorLineaElegible(t *testing.T) {
	f := newFixture(t, invoice(
		line("l1", "100", "TV LG", warranty.Provided("24 muaj")),
		line("l2", "7884", "Transporti", warranty.Provided("1")),
		line("l3", "200", "Frigorifer Samsung", warranty.Provided("12")),
	))

	res, err := generate(t, f, false)
	require.NoError(t, err)

	assert.Equal(t, certificate.StatusDelivered, res.Status)
	assert.Equal(t, "[TV LG][Frigorifer Samsung]", string(res.Document.Bytes()))
	assert.Equal(t, 2, res.Document.PageCount())
	assert.Empty(t, res.Failures)

	reqs := f.composer.requests()
	require.Len(t, reqs, 2)
	assert.Equal(t, "24", reqs[0].WarrantyMonths)
	assert.Equal(t, "Arben Krasniqi", reqs[0].CustomerName)
	assert.Equal(t, "INV/2024/0042", reqs[0].InvoiceNumber)

	stored := f.attachments.All()
	require.Len(t, stored, 1)
	assert.Equal(t, "certificate_INV_2024_0042_20240305_143015.pdf", stored[0].Name)
	assert.Equal(t, entity.AttachmentResModelInvoice, stored[0].ResModel)
	assert.Equal(t, testInvoiceID, stored[0].ResID)
	assert.Equal(t, entity.MimeTypePDF, stored[0].MimeType)
	assert.Equal(t, res.Attachment.ID, stored[0].ID)
}

func TestGenerate_SinLineasElegiblesEsVacio(t *testing.T) {
	f := newFixture(t, invoice(
		line("l1", "7884", "Transporti", warranty.Provided("1")),
		line("l2", "7884", "Transporti", warranty.ExplicitNone()),
	))

	res, err := generate(t, f, false)
	require.NoError(t, err)

	assert.Equal(t, certificate.StatusEmpty, res.Status)
	assert.Empty(t, f.composer.requests(), "no debe componerse nada")
	assert.Empty(t, f.attachments.All(), "no debe guardarse ningún adjunto")
}

func TestGenerate_LineaSinGarantiaPideConfirmacion(t *testing.T) {
	f := newFixture(t, invoice(
		line("l1", "100", "TV LG", warranty.Provided("24")),
		line("l2", "400", "Mikrovalë", warranty.ExplicitNone()),
	))

	res, err := generate(t, f, false)
	require.NoError(t, err)

	assert.Equal(t, certificate.StatusConfirmationRequired, res.Status)
	require.Len(t, res.PendingLines, 1)
	assert.Equal(t, "l2", res.PendingLines[0].LineID)
	assert.Empty(t, f.composer.requests())
	assert.Empty(t, f.attachments.All())

	// Reenvío confirmado: ambas líneas, la marcada sin garantía con el período por defecto.
	res, err = generate(t, f, true)
	require.NoError(t, err)

	assert.Equal(t, certificate.StatusDelivered, res.Status)
	reqs := f.composer.requests()
	require.Len(t, reqs, 2)
	assert.Equal(t, "24", reqs[0].WarrantyMonths)
	assert.Equal(t, "1", reqs[1].WarrantyMonths)
}

func TestGenerate_UsaPeriodoConfigurado(t *testing.T) {
	f := newFixture(t, invoice(line("l1", "400", "Mikrovalë", warranty.Unset())))
	require.NoError(t, f.settings.Save(context.Background(), testCompanyID, &entity.WarrantySettings{
		ExcludeProductIDs:     []string{"7884"},
		DefaultWarrantyPeriod: "6",
	}))

	res, err := generate(t, f, false)
	require.NoError(t, err)

	assert.Equal(t, certificate.StatusDelivered, res.Status)
	assert.Equal(t, "6", f.composer.requests()[0].WarrantyMonths)
}

func TestGenerate_ExclusionPorSubcadena(t *testing.T) {
	f := newFixture(t, invoice(
		line("l1", "100", "TV LG", warranty.Provided("24")),
		line("l2", "500", "Shërbim Montimi", warranty.Provided("1")),
	))
	require.NoError(t, f.settings.Save(context.Background(), testCompanyID, &entity.WarrantySettings{
		ExcludeProductIDs:     []string{"7884"},
		ExcludeNameSubstrings: []string{"Shërbim"},
		DefaultWarrantyPeriod: "1",
	}))

	res, err := generate(t, f, false)
	require.NoError(t, err)
	assert.Equal(t, "[TV LG]", string(res.Document.Bytes()))
}

func TestGenerate_ConservaOrdenConVariosWorkers(t *testing.T) {
	var lines []entity.InvoiceLine
	var want strings.Builder
	for i := 0; i < 12; i++ {
		name := "Produkt " + string(rune('A'+i))
		lines = append(lines, line("l"+name, "p"+name, name, warranty.Provided("12")))
		want.WriteString("[" + name + "]")
	}
	f := newFixture(t, invoice(lines...), certificate.WithWorkers(4))
	f.composer.delay = true

	res, err := generate(t, f, false)
	require.NoError(t, err)

	assert.Equal(t, want.String(), string(res.Document.Bytes()))
	assert.Equal(t, 12, res.Document.PageCount())
}

func TestGenerate_FalloParcialOmiteLaLinea(t *testing.T) {
	f := newFixture(t, invoice(
		line("l1", "100", "TV LG", warranty.Provided("24")),
		line("l2", "200", "Frigorifer Samsung", warranty.Provided("12")),
		line("l3", "300", "Lavatriçe Beko", warranty.Provided("24")),
	))
	f.composer.failOn = map[string]bool{"Frigorifer Samsung": true}

	res, err := generate(t, f, false)
	require.NoError(t, err)

	assert.Equal(t, certificate.StatusDelivered, res.Status)
	assert.Equal(t, "[TV LG][Lavatriçe Beko]", string(res.Document.Bytes()))
	require.Len(t, res.Failures, 1)
	assert.Equal(t, "l2", res.Failures[0].LineID)
	assert.ErrorIs(t, res.Failures[0].Err, errBoom)
}

func TestGenerate_PaginaVaciaCuentaComoFallo(t *testing.T) {
	f := newFixture(t, invoice(
		line("l1", "100", "TV LG", warranty.Provided("24")),
		line("l2", "200", "Frigorifer Samsung", warranty.Provided("12")),
	))
	f.composer.empty = map[string]bool{"TV LG": true}

	res, err := generate(t, f, false)
	require.NoError(t, err)

	require.Len(t, res.Failures, 1)
	assert.ErrorIs(t, res.Failures[0].Err, domain.ErrRenderFailed)
	assert.Equal(t, "[Frigorifer Samsung]", string(res.Document.Bytes()))
}

func TestGenerate_FalloTotalNoGuardaAdjunto(t *testing.T) {
	f := newFixture(t, invoice(line("l1", "100", "TV LG", warranty.Provided("24"))))
	f.composer.failOn = map[string]bool{"TV LG": true}

	_, err := generate(t, f, false)

	assert.ErrorIs(t, err, domain.ErrGenerationFailed)
	assert.ErrorIs(t, err, errBoom)
	assert.Empty(t, f.attachments.All())
}

func TestGenerate_FalloDeUnion(t *testing.T) {
	mergeErr := errors.New("pdf corrupto")
	uc := certificate.NewGenerateUseCase(
		memory.NewInvoiceStore(invoice(line("l1", "100", "TV LG", warranty.Provided("24")))),
		memory.NewSettingsStore(),
		memory.NewAttachmentStore(),
		&fakeComposer{},
		&fakeMerger{err: mergeErr},
	)

	_, err := uc.Generate(context.Background(), certificate.GenerateInput{CompanyID: testCompanyID, InvoiceID: testInvoiceID})

	assert.ErrorIs(t, err, domain.ErrGenerationFailed)
	assert.ErrorIs(t, err, mergeErr)
}

func TestGenerate_FacturaInexistente(t *testing.T) {
	f := newFixture(t, invoice())

	_, err := f.uc.Generate(context.Background(), certificate.GenerateInput{CompanyID: testCompanyID, InvoiceID: "otra"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGenerate_FacturaDeOtraEmpresa(t *testing.T) {
	f := newFixture(t, invoice(line("l1", "100", "TV LG", warranty.Provided("24"))))

	_, err := f.uc.Generate(context.Background(), certificate.GenerateInput{CompanyID: "company-2", InvoiceID: testInvoiceID})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, f.composer.requests())
}

func TestGenerate_EntradaIncompleta(t *testing.T) {
	f := newFixture(t, invoice())

	_, err := f.uc.Generate(context.Background(), certificate.GenerateInput{CompanyID: testCompanyID})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFilename(t *testing.T) {
	at := time.Date(2024, 12, 31, 23, 59, 58, 0, time.UTC)
	tests := []struct {
		name, invoice, want string
	}{
		{"barras", "INV/2024/0001", "certificate_INV_2024_0001_20241231_235958.pdf"},
		{"espacios", "FAT 12", "certificate_FAT_12_20241231_235958.pdf"},
		{"vacío", "  ", "certificate_factura_20241231_235958.pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, certificate.Filename(tt.invoice, at))
		})
	}
}
