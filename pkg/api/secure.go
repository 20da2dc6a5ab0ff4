package api

import "math/big"

// Заголовки и тексты протокола защищенного канала
const (
	// ClientIDHeader - заголовок с идентификатором клиента, к которому привязан ключ сессии
	ClientIDHeader = "X-Client-ID"

	// ErrNoSessionMessage - текст ответа 404, когда ключ сессии не установлен
	ErrNoSessionMessage = "Unauthorized: Symmetric key not established"

	// ErrBadEnvelopeMessage - текст ответа 400 на нерасшифровываемый конверт
	ErrBadEnvelopeMessage = "Invalid or improperly encrypted data"
)

// Envelope - конверт защищенного канала: base64(IV || AES-CBC(payload))
type Envelope struct {
	Data string `json:"Data"`
}

// PublicKeyResponse - ответ GET /connect: открытый ключ в виде [e, n]
type PublicKeyResponse struct {
	PublicKey [2]*big.Int `json:"public_key"`
}

// HandshakeRequest - тело POST /connect: RSA-шифротекст ключа сессии как целое число
type HandshakeRequest struct {
	Data *big.Int `json:"Data"`
}

// Тексты ответов рукопожатия
const (
	HandshakeEstablishedMessage = "Symmetric key established"
	InvalidKeyLengthMessage     = "Invalid Symmetric Key Length"
	InvalidCiphertextMessage    = "Invalid Ciphertext Provided"
)
