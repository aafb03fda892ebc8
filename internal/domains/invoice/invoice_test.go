package invoice_test

import (
	"strings"
	"testing"
	"time"

	"garage/config"
	"garage/internal/domains/booking/model"
	"garage/internal/domains/invoice"

	"github.com/stretchr/testify/assert"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Garage.Name = "Mitra Garage"
	cfg.Garage.Tagline = "Sistem Manajemen Bengkel Terpadu"
	cfg.Garage.Address = "Jl. Contoh No. 123, Jakarta"
	cfg.Garage.Phone = "(021) 1234-5678"
	cfg.Garage.Email = "info@mitragarage.com"
	cfg.Garage.AdminWhatsApp = "6281234567890"

	return cfg
}

func testBooking() model.Booking {
	return model.Booking{
		ID:            "7b0c3c54-1111-4222-8333-944445555666",
		CustomerName:  "Budi Santoso",
		VehicleNumber: "B 1234 CD",
		VehicleType:   "Mobil",
		ServiceType:   "Ganti Ban",
		BookingDate:   time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		BookingTime:   "09:00",
		Status:        model.StatusDone,
		Phone:         "6281111111111",
		Email:         "budi@example.com",
		EstimatedCost: 800000,
		Notes:         "Ganti keempat ban",
	}
}

func TestCompute(t *testing.T) {
	inv := invoice.Compute(testBooking())

	assert.Equal(t, float64(800000), inv.Subtotal)
	assert.InDelta(t, 88000, inv.Tax, 0.0001)
	assert.InDelta(t, 888000, inv.Total, 0.0001)
	assert.True(t, inv.Payable)
	assert.Equal(t, "#7B0C3C54", inv.Number)
	assert.Equal(t, "2026-09-01", inv.ServiceDate)
	assert.Equal(t, "Selesai", inv.StatusLabel)
	assert.Equal(t, "B 1234 CD (Mobil)", inv.VehicleInfo())
}

func TestCompute_MissingOptionalFields(t *testing.T) {
	booking := testBooking()
	booking.VehicleNumber = ""
	booking.VehicleType = "   "
	booking.Phone = ""
	booking.Email = ""
	booking.Status = model.StatusInProgress

	inv := invoice.Compute(booking)

	assert.Equal(t, "N/A", inv.VehicleNumber)
	assert.Equal(t, "N/A", inv.VehicleType)
	assert.Equal(t, "N/A", inv.CustomerPhone)
	assert.Equal(t, "N/A", inv.CustomerEmail)
	assert.False(t, inv.Payable)
}

func TestCompute_SameBookingSameInvoice(t *testing.T) {
	booking := testBooking()

	first := invoice.Compute(booking)
	second := invoice.Compute(booking)

	assert.Equal(t, first.Number, second.Number)
	assert.Equal(t, first.Total, second.Total)
}

func TestInvoice_Document(t *testing.T) {
	cfg := testConfig()
	doc := invoice.Compute(testBooking()).Document(cfg)

	assert.Contains(t, doc, "Mitra Garage")
	assert.Contains(t, doc, "Budi Santoso")
	assert.Contains(t, doc, "Ganti Ban")
	assert.Contains(t, doc, "Subtotal  : Rp 800.000")
	assert.Contains(t, doc, "PPN (11%) : Rp 88.000")
	assert.Contains(t, doc, "Total     : Rp 888.000")
	assert.Contains(t, doc, "Catatan         : Ganti keempat ban")
}

func TestInvoice_WhatsAppURL(t *testing.T) {
	cfg := testConfig()
	url := invoice.Compute(testBooking()).WhatsAppURL(cfg)

	assert.True(t, strings.HasPrefix(url, "https://wa.me/6281234567890?text="))
	assert.Contains(t, url, "Budi%20Santoso")
	assert.NotContains(t, url[len("https://wa.me/6281234567890?text="):], " ", "query must be escaped")
}

func TestInvoice_WhatsAppMessage_NoNotes(t *testing.T) {
	booking := testBooking()
	booking.Notes = ""

	msg := invoice.Compute(booking).WhatsAppMessage(testConfig())

	assert.Contains(t, msg, "Tidak ada catatan khusus")
	assert.Contains(t, msg, "MITRA GARAGE")
}

func TestFormatRupiah(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "Rp 0"},
		{500, "Rp 500"},
		{1500, "Rp 1.500"},
		{800000, "Rp 800.000"},
		{888000, "Rp 888.000"},
		{1234567, "Rp 1.234.567"},
		{-2500, "-Rp 2.500"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, invoice.FormatRupiah(tt.amount))
		})
	}
}
