// Package invoice derives a printable payment summary from a booking. An
// invoice is never persisted; it is recomputed from the booking on every
// render.
package invoice

import (
	"fmt"
	"net/url"
	"strings"

	"garage/config"
	"garage/internal/domains/booking/model"
	"garage/shared/constant"
	"garage/shared/timezone"
)

// TaxRate is the PPN rate applied on top of the service cost.
const TaxRate = 0.11

type Invoice struct {
	Number        string  `json:"number"`
	IssuedAt      string  `json:"issued_at"`
	BookingID     string  `json:"booking_id"`
	CustomerName  string  `json:"customer_name"`
	CustomerPhone string  `json:"customer_phone"`
	CustomerEmail string  `json:"customer_email"`
	VehicleNumber string  `json:"vehicle_number"`
	VehicleType   string  `json:"vehicle_type"`
	ServiceType   string  `json:"service_type"`
	ServiceDate   string  `json:"service_date"`
	Status        string  `json:"status"`
	StatusLabel   string  `json:"status_label"`
	Notes         string  `json:"notes"`
	Subtotal      float64 `json:"subtotal"`
	Tax           float64 `json:"tax"`
	Total         float64 `json:"total"`
	Payable       bool    `json:"payable"`
}

// Compute derives the invoice for a booking. Missing optional fields render
// as placeholders rather than erroring.
func Compute(booking model.Booking) Invoice {
	subtotal := booking.EstimatedCost
	tax := subtotal * TaxRate

	serviceDate := constant.NotAvailable
	if !booking.BookingDate.IsZero() {
		serviceDate = booking.BookingDate.Format(constant.DateOnlyFormat)
	}

	return Invoice{
		Number:        invoiceNumber(booking.ID),
		IssuedAt:      timezone.Format(timezone.Now(), constant.DateOnlyFormat),
		BookingID:     booking.ID,
		CustomerName:  orPlaceholder(booking.CustomerName),
		CustomerPhone: orPlaceholder(booking.Phone),
		CustomerEmail: orPlaceholder(booking.Email),
		VehicleNumber: orPlaceholder(booking.VehicleNumber),
		VehicleType:   orPlaceholder(booking.VehicleType),
		ServiceType:   booking.ServiceType,
		ServiceDate:   serviceDate,
		Status:        booking.Status.String(),
		StatusLabel:   booking.Status.Label(),
		Notes:         booking.Notes,
		Subtotal:      subtotal,
		Tax:           tax,
		Total:         subtotal + tax,
		Payable:       booking.Status.Payable(),
	}
}

// VehicleInfo renders "number (type)" the way the booking list shows it.
func (i Invoice) VehicleInfo() string {
	return fmt.Sprintf("%s (%s)", i.VehicleNumber, i.VehicleType)
}

// Document renders the invoice as a standalone printable text document with
// the workshop letterhead.
func (i Invoice) Document(garage *config.Config) string {
	g := garage.Garage

	var b strings.Builder

	line := strings.Repeat("=", 62)
	rule := strings.Repeat("-", 62)

	fmt.Fprintf(&b, "%s\n%s\n%s\n%s | Telp: %s | Email: %s\n%s\n\n", line, g.Name, g.Tagline, g.Address, g.Phone, g.Email, line)
	fmt.Fprintf(&b, "INVOICE %s\n", i.Number)
	fmt.Fprintf(&b, "Tanggal : %s\n", i.IssuedAt)
	fmt.Fprintf(&b, "Status  : %s\n\n", i.StatusLabel)

	fmt.Fprintf(&b, "Informasi Pelanggan\n%s\n", rule)
	fmt.Fprintf(&b, "Nama Pelanggan  : %s\n", i.CustomerName)
	fmt.Fprintf(&b, "No. Telepon     : %s\n", i.CustomerPhone)
	fmt.Fprintf(&b, "Email           : %s\n", i.CustomerEmail)
	fmt.Fprintf(&b, "Jenis Kendaraan : %s\n", i.VehicleType)
	fmt.Fprintf(&b, "Plat Nomor      : %s\n\n", i.VehicleNumber)

	fmt.Fprintf(&b, "Detail Layanan\n%s\n", rule)
	fmt.Fprintf(&b, "Layanan         : %s\n", i.ServiceType)
	fmt.Fprintf(&b, "Tanggal Service : %s\n", i.ServiceDate)
	if i.Notes != "" {
		fmt.Fprintf(&b, "Catatan         : %s\n", i.Notes)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "%s\n", rule)
	fmt.Fprintf(&b, "Subtotal  : %s\n", FormatRupiah(i.Subtotal))
	fmt.Fprintf(&b, "PPN (11%%) : %s\n", FormatRupiah(i.Tax))
	fmt.Fprintf(&b, "Total     : %s\n", FormatRupiah(i.Total))
	fmt.Fprintf(&b, "%s\n\n", rule)

	fmt.Fprintf(&b, "Terima kasih atas kepercayaan Anda menggunakan layanan %s\n", g.Name)
	b.WriteString("Invoice ini adalah bukti sah pembayaran yang dicetak secara otomatis\n")

	return b.String()
}

// WhatsAppMessage builds the plain-text payment message handed off to the
// admin channel.
func (i Invoice) WhatsAppMessage(garage *config.Config) string {
	notes := i.Notes
	if notes == "" {
		notes = "Tidak ada catatan khusus"
	}

	return fmt.Sprintf(`*INVOICE PEMBAYARAN - %s*

*Detail Booking:*
- ID Booking: %s
- Nama Customer: %s
- Kendaraan: %s
- Jenis Service: %s
- Tanggal Service: %s
- Status: %s

*Detail Pembayaran:*
- Biaya Service: %s
- PPN (11%%): %s
- Total Pembayaran: %s

*Catatan:*
%s

Saya ingin melakukan pembayaran untuk service di atas. Mohon informasi metode pembayaran yang tersedia.

Terima kasih!`,
		strings.ToUpper(garage.Garage.Name),
		i.Number,
		i.CustomerName,
		i.VehicleInfo(),
		i.ServiceType,
		i.ServiceDate,
		i.StatusLabel,
		FormatRupiah(i.Subtotal),
		FormatRupiah(i.Tax),
		FormatRupiah(i.Total),
		notes,
	)
}

// WhatsAppURL builds the wa.me deep link that opens the admin chat with the
// payment message prefilled.
func (i Invoice) WhatsAppURL(garage *config.Config) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", garage.Garage.AdminWhatsApp, url.QueryEscape(i.WhatsAppMessage(garage)))
}

// FormatRupiah renders an amount as "Rp 1.234.567" with id-ID digit
// grouping. Fractions are dropped; service prices are whole rupiah.
func FormatRupiah(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := fmt.Sprintf("%.0f", amount)

	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	formatted := "Rp " + strings.Join(groups, ".")
	if negative {
		formatted = "-" + formatted
	}

	return formatted
}

// invoiceNumber derives a stable short invoice number from the booking ID.
func invoiceNumber(bookingID string) string {
	compact := strings.ReplaceAll(bookingID, "-", "")
	if len(compact) > 8 {
		compact = compact[:8]
	}

	return "#" + strings.ToUpper(compact)
}

// orPlaceholder substitutes the placeholder for missing optional fields.
func orPlaceholder(value string) string {
	if strings.TrimSpace(value) == "" {
		return constant.NotAvailable
	}

	return value
}
