// Package envelope упаковывает полезную нагрузку в зашифрованный конверт {"Data": base64(IV||AES(payload))}.
package envelope

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/iudanet/stockle/internal/crypto"
	"github.com/iudanet/stockle/pkg/api"
)

// ErrMalformed означает, что конверт не удалось разобрать или расшифровать
var ErrMalformed = errors.New("malformed envelope")

// Marshal сериализует полезную нагрузку: строки и байты передаются как есть,
// структурированные значения кодируются в JSON
func Marshal(payload any) ([]byte, error) {
	switch v := payload.(type) {
	case nil:
		return []byte{}, nil
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	case json.RawMessage:
		return v, nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal payload: %w", err)
		}
		return data, nil
	}
}

// Seal сериализует и шифрует полезную нагрузку ключом сессии
func Seal(payload any, key []byte) (api.Envelope, error) {
	plaintext, err := Marshal(payload)
	if err != nil {
		return api.Envelope{}, err
	}

	data, err := crypto.EncryptToBase64(plaintext, key)
	if err != nil {
		return api.Envelope{}, fmt.Errorf("failed to encrypt payload: %w", err)
	}

	return api.Envelope{Data: data}, nil
}

// Open расшифровывает конверт и возвращает открытый текст
func Open(env api.Envelope, key []byte) ([]byte, error) {
	if env.Data == "" {
		return nil, fmt.Errorf("%w: empty Data field", ErrMalformed)
	}

	plaintext, err := crypto.DecryptFromBase64(env.Data, key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	return plaintext, nil
}

// OpenBytes разбирает JSON-тело с конвертом и расшифровывает его
func OpenBytes(body []byte, key []byte) ([]byte, error) {
	var env api.Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return Open(env, key)
}

// Decode возвращает разобранный JSON, если открытый текст им является, иначе строку
func Decode(plaintext []byte) any {
	var v any
	if err := json.Unmarshal(plaintext, &v); err == nil {
		return v
	}
	return string(plaintext)
}
