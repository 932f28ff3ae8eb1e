// render_sample genera el PDF de certificados de garantía de una factura descrita en JSON,
// sin base de datos. Útil para revisar el diseño del certificado.
//
// Uso: go run ./cmd/render_sample [factura.json] [salida.pdf] [--confirm]
// Por defecto lee sample_invoice.json y escribe certificates.pdf en el directorio actual.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"

	"github.com/jhoicas/Garancia-api/internal/application/certificate"
	"github.com/jhoicas/Garancia-api/internal/domain/entity"
	"github.com/jhoicas/Garancia-api/internal/domain/warranty"
	"github.com/jhoicas/Garancia-api/internal/infrastructure/memory"
	"github.com/jhoicas/Garancia-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Garancia-api/pkg/config"
	"github.com/jhoicas/Garancia-api/pkg/logger"
)

type invoiceFile struct {
	ID          string     `json:"id"`
	CompanyID   string     `json:"company_id"`
	Name        string     `json:"name"`
	Date        string     `json:"date"` // YYYY-MM-DD, opcional
	PartnerName string     `json:"partner_name"`
	Lines       []lineFile `json:"lines"`
}

type lineFile struct {
	ID          string                 `json:"id"`
	ProductID   string                 `json:"product_id"`
	ProductName string                 `json:"product_name"`
	Quantity    decimal.Decimal        `json:"quantity"`
	Warranty    warranty.WarrantyValue `json:"warranty"` // null | "24 muaj" | false
}

func main() {
	confirm := pflag.Bool("confirm", false, "incluir productos marcados sin garantía")
	workers := pflag.Int("workers", 2, "certificados compuestos en paralelo")
	pflag.Parse()

	inPath, outPath := "sample_invoice.json", "certificates.pdf"
	if pflag.NArg() > 0 {
		inPath = pflag.Arg(0)
	}
	if pflag.NArg() > 1 {
		outPath = pflag.Arg(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: "development", Level: cfg.Log.Level, Output: os.Stderr})

	inv, err := readInvoice(inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer factura: %v\n", err)
		os.Exit(1)
	}

	composer := pdf.NewMarotoCertificateComposer(pdf.ComposerOptions{
		LogoPath: cfg.Warranty.LogoPath,
		Contact: pdf.ContactInfo{
			CompanyName: cfg.Warranty.CompanyName,
			Address:     cfg.Warranty.Address,
			Phone:       cfg.Warranty.Phone,
			Email:       cfg.Warranty.Email,
			Website:     cfg.Warranty.Website,
		},
		Logger: log.Component("pdf"),
	})
	uc := certificate.NewGenerateUseCase(
		memory.NewInvoiceStore(*inv),
		memory.NewSettingsStore(),
		memory.NewAttachmentStore(),
		composer,
		pdf.NewPDFCPUMerger(),
		certificate.WithWorkers(*workers),
		certificate.WithLogger(log.Component("certificate")),
	)

	res, err := uc.Generate(context.Background(), certificate.GenerateInput{
		CompanyID: inv.CompanyID,
		InvoiceID: inv.ID,
		Confirmed: *confirm,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generar certificados: %v\n", err)
		os.Exit(1)
	}

	switch res.Status {
	case certificate.StatusEmpty:
		fmt.Printf("La factura %s no tiene líneas que requieran certificado.\n", res.InvoiceName)
	case certificate.StatusConfirmationRequired:
		fmt.Println("Productos sin garantía definida (reejecutar con --confirm):")
		for _, l := range res.PendingLines {
			fmt.Printf("  - línea %s: %s (producto %s)\n", l.LineID, l.DisplayName, l.ProductID)
		}
	default:
		if err := os.WriteFile(outPath, res.Document.Bytes(), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Escribir %s: %v\n", outPath, err)
			os.Exit(1)
		}
		fmt.Printf("OK: %s (%d páginas, adjunto %s)\n", outPath, res.Document.PageCount(), res.Attachment.Name)
		for _, f := range res.Failures {
			fmt.Printf("  omitida línea %s: %v\n", f.LineID, f.Err)
		}
	}
}

func readInvoice(path string) (*entity.Invoice, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f invoiceFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("json: %w", err)
	}
	if f.ID == "" {
		return nil, errors.New("falta id de factura")
	}
	if f.CompanyID == "" {
		f.CompanyID = "local"
	}

	inv := &entity.Invoice{ID: f.ID, CompanyID: f.CompanyID, Name: f.Name, PartnerName: f.PartnerName}
	if f.Date != "" {
		d, err := time.Parse("2006-01-02", f.Date)
		if err != nil {
			return nil, fmt.Errorf("fecha %q: %w", f.Date, err)
		}
		inv.Date = &d
	}
	for _, l := range f.Lines {
		inv.Lines = append(inv.Lines, entity.InvoiceLine{
			ID:          l.ID,
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			Warranty:    l.Warranty,
		})
	}
	return inv, nil
}
