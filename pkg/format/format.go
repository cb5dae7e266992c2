// Package format contiene helpers de presentación compartidos entre las
// respuestas HTTP y el PDF de recibo (teléfonos de Uzbekistán, fechas DD.MM.YYYY).
package format

import (
	"strings"
	"time"
	"unicode"
)

// PhoneNumber formatea un número de teléfono a formato legible.
// Espera dígitos, ej. "998901234567" -> "+998 (90) 123-45-67".
// Si el número no coincide con los patrones conocidos, se devuelve tal cual.
func PhoneNumber(phone string) string {
	if phone == "" {
		return ""
	}

	var b strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()

	// Número de Uzbekistán completo (12 dígitos con prefijo 998)
	if len(cleaned) == 12 && strings.HasPrefix(cleaned, "998") {
		return "+" + cleaned[0:3] + " (" + cleaned[3:5] + ") " +
			cleaned[5:8] + "-" + cleaned[8:10] + "-" + cleaned[10:12]
	}

	// Número local de 9 dígitos (sin el 998)
	if len(cleaned) == 9 {
		return "+998 (" + cleaned[0:2] + ") " +
			cleaned[2:5] + "-" + cleaned[5:7] + "-" + cleaned[7:9]
	}

	return phone
}

// Date formatea una fecha a DD.MM.YYYY.
func Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02.01.2006")
}

// Time formatea la hora a HH:MM.
func Time(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("15:04")
}
