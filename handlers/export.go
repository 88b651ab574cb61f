package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"svppbilling/services"
)

// parseVariant maps the path segment to an invoice variant.
func parseVariant(s string) (services.Variant, bool) {
	switch s {
	case "customer":
		return services.CustomerCopy, true
	case "internal":
		return services.InternalCopy, true
	}
	return 0, false
}

// composeFromSession snapshots the session and composes the requested
// invoice variant.
func composeFromSession(e *core.RequestEvent, session *services.Session) (services.InvoiceData, error) {
	variant, ok := parseVariant(e.Request.PathValue("variant"))
	if !ok {
		return services.InvoiceData{}, fmt.Errorf("unknown invoice variant %q", e.Request.PathValue("variant"))
	}
	return services.Compose(variant, session.Cart(), session.Customer())
}

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}

// HandleInvoiceExportPDF generates and downloads the invoice PDF for the
// requested variant.
func HandleInvoiceExportPDF(app *pocketbase.PocketBase, session *services.Session) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data, err := composeFromSession(e, session)
		if errors.Is(err, services.ErrMissingCustomerName) {
			return e.String(http.StatusBadRequest, "Please enter customer name before downloading PDF")
		}
		if err != nil {
			log.Printf("export_pdf: %v", err)
			return e.String(http.StatusBadRequest, "Unknown invoice type")
		}

		pdfBytes, err := services.GenerateInvoicePDF(data)
		if err != nil {
			log.Printf("export_pdf: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF file")
		}

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition",
			fmt.Sprintf(`attachment; filename="%s"`, sanitizeFilename(data.FileName)))
		e.Response.Write(pdfBytes)
		return nil
	}
}

// HandleInvoiceExportExcel generates and downloads the invoice workbook for
// the requested variant.
func HandleInvoiceExportExcel(app *pocketbase.PocketBase, session *services.Session) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data, err := composeFromSession(e, session)
		if errors.Is(err, services.ErrMissingCustomerName) {
			return e.String(http.StatusBadRequest, "Please enter customer name before downloading the invoice")
		}
		if err != nil {
			log.Printf("export_excel: %v", err)
			return e.String(http.StatusBadRequest, "Unknown invoice type")
		}

		xlsxBytes, err := services.GenerateInvoiceExcel(data)
		if err != nil {
			log.Printf("export_excel: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate Excel file")
		}

		filename := strings.TrimSuffix(data.FileName, ".pdf") + ".xlsx"

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition",
			fmt.Sprintf(`attachment; filename="%s"`, sanitizeFilename(filename)))
		e.Response.Write(xlsxBytes)
		return nil
	}
}
