package validation

import (
	"fmt"
	"regexp"
)

var (
	// PasswordHashPattern - SHA-1 в hex (40 символов, нижний регистр)
	PasswordHashPattern = regexp.MustCompile(`^[0-9a-f]{40}$`)

	// ClientIDPattern - идентификатор клиента в заголовке X-Client-ID
	ClientIDPattern = regexp.MustCompile(`^[A-Za-z0-9._:-]{1,64}$`)
)

// MaxBarcodeLen максимальная длина штрихкода
const MaxBarcodeLen = 64

// ValidatePasswordHash проверяет формат хеша пароля
func ValidatePasswordHash(hash string) error {
	if hash == "" {
		return fmt.Errorf("password hash cannot be empty")
	}

	if !PasswordHashPattern.MatchString(hash) {
		return fmt.Errorf("password hash must be 40 lowercase hex characters")
	}

	return nil
}

// ValidateBarcode проверяет штрихкод товара: непустой, без пробельных и управляющих символов
func ValidateBarcode(barcode string) error {
	if barcode == "" {
		return fmt.Errorf("barcode cannot be empty")
	}

	if len(barcode) > MaxBarcodeLen {
		return fmt.Errorf("barcode must not exceed %d characters", MaxBarcodeLen)
	}

	for _, r := range barcode {
		if r <= ' ' || r == 0x7f {
			return fmt.Errorf("barcode contains whitespace or control characters")
		}
	}

	return nil
}

// ValidateClientID проверяет идентификатор клиента
func ValidateClientID(clientID string) error {
	if !ClientIDPattern.MatchString(clientID) {
		return fmt.Errorf("client id must be 1-%d characters of letters, digits, '.', '_', ':' or '-'", 64)
	}

	return nil
}
