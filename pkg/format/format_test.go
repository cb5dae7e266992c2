package format_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/erp-pro/erp-pro-api/pkg/format"
)

func TestPhoneNumber_NumeroCompleto(t *testing.T) {
	assert.Equal(t, "+998 (90) 123-45-67", format.PhoneNumber("998901234567"))
}

func TestPhoneNumber_NumeroLocal(t *testing.T) {
	assert.Equal(t, "+998 (90) 123-45-67", format.PhoneNumber("901234567"))
}

func TestPhoneNumber_IgnoraSeparadores(t *testing.T) {
	// Los no-dígitos se descartan antes de formatear
	assert.Equal(t, "+998 (90) 123-45-67", format.PhoneNumber("+998 90 123 45 67"))
}

func TestPhoneNumber_FallbackSinPatron(t *testing.T) {
	assert.Equal(t, "12345", format.PhoneNumber("12345"))
	assert.Equal(t, "", format.PhoneNumber(""))
}

func TestDate_Y_Time(t *testing.T) {
	ts := time.Date(2026, 8, 31, 9, 5, 0, 0, time.UTC)
	assert.Equal(t, "31.08.2026", format.Date(ts))
	assert.Equal(t, "09:05", format.Time(ts))

	assert.Equal(t, "", format.Date(time.Time{}))
	assert.Equal(t, "", format.Time(time.Time{}))
}
