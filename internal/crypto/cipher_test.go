package crypto

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncrypt(t *testing.T) {
	// Генерируем валидный ключ (32 bytes)
	validKey := make([]byte, 32)
	_, _ = rand.Read(validKey)

	tests := []struct {
		name      string
		plaintext []byte
		key       []byte
		wantLen   int
		wantErr   error
	}{
		{
			name:      "short plaintext fits into one block",
			plaintext: []byte("Hello, World!"),
			key:       validKey,
			wantLen:   IVSize + 16,
		},
		{
			name:      "full block gets an extra padding block",
			plaintext: []byte("0123456789abcdef"),
			key:       validKey,
			wantLen:   IVSize + 32,
		},
		{
			name:      "empty plaintext is allowed",
			plaintext: []byte{},
			key:       validKey,
			wantLen:   IVSize + 16,
		},
		{
			name:      "invalid key length - too short",
			plaintext: []byte("test"),
			key:       make([]byte, 16),
			wantErr:   ErrInvalidKeyLength,
		},
		{
			name:      "invalid key length - too long",
			plaintext: []byte("test"),
			key:       make([]byte, 64),
			wantErr:   ErrInvalidKeyLength,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encrypted, err := Encrypt(tt.plaintext, tt.key)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, encrypted)
				return
			}

			require.NoError(t, err)
			assert.Len(t, encrypted, tt.wantLen)
		})
	}
}

func TestDecrypt(t *testing.T) {
	validKey := make([]byte, 32)
	_, _ = rand.Read(validKey)

	plaintext := []byte("test message")
	validEncrypted, err := Encrypt(plaintext, validKey)
	require.NoError(t, err)

	// Портим последний байт паддинга через IV: для однобочного сообщения
	// XOR последнего байта IV напрямую меняет последний байт открытого текста.
	badPadding := append([]byte{}, validEncrypted...)
	padByte := byte(16 - len(plaintext))
	badPadding[IVSize-1] ^= padByte

	tests := []struct {
		name      string
		encrypted []byte
		key       []byte
		wantErr   error
	}{
		{
			name:      "successful decryption",
			encrypted: validEncrypted,
			key:       validKey,
		},
		{
			name:      "encrypted data too short",
			encrypted: make([]byte, 5),
			key:       validKey,
			wantErr:   ErrCiphertextTooShort,
		},
		{
			name:      "invalid key length",
			encrypted: validEncrypted,
			key:       make([]byte, 16),
			wantErr:   ErrInvalidKeyLength,
		},
		{
			name:      "truncated ciphertext",
			encrypted: append([]byte{}, validEncrypted[:len(validEncrypted)-1]...),
			key:       validKey,
			wantErr:   ErrCiphertextTooShort,
		},
		{
			name:      "ciphertext is not a multiple of block size",
			encrypted: append(append([]byte{}, validEncrypted...), 0x00),
			key:       validKey,
			wantErr:   ErrInvalidPadding,
		},
		{
			name:      "zero padding byte",
			encrypted: badPadding,
			key:       validKey,
			wantErr:   ErrInvalidPadding,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decrypted, err := Decrypt(tt.encrypted, tt.key)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, decrypted)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, plaintext, decrypted)
		})
	}
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	key := make([]byte, 32)
	_, _ = rand.Read(key)

	random := make([]byte, 1024)
	_, _ = rand.Read(random)

	testCases := map[string][]byte{
		"ascii":   []byte("Hello, World!"),
		"unicode": []byte("Привет, мир! 🌍"),
		"json":    []byte(`{"query": "widget"}`),
		"empty":   {},
		"block":   []byte("0123456789abcdef"),
		"random":  random,
	}

	for name, plaintext := range testCases {
		t.Run(name, func(t *testing.T) {
			encrypted, err := Encrypt(plaintext, key)
			require.NoError(t, err)

			decrypted, err := Decrypt(encrypted, key)
			require.NoError(t, err)

			assert.Equal(t, len(plaintext), len(decrypted))
			if len(plaintext) > 0 {
				assert.Equal(t, plaintext, decrypted)
			}
		})
	}
}

func TestEncrypt_Randomness(t *testing.T) {
	// Одинаковые данные шифруются по-разному из-за случайного IV
	key := make([]byte, 32)
	_, _ = rand.Read(key)
	plaintext := []byte("same data")

	encrypted1, err := Encrypt(plaintext, key)
	require.NoError(t, err)
	encrypted2, err := Encrypt(plaintext, key)
	require.NoError(t, err)

	assert.NotEqual(t, encrypted1, encrypted2)
	assert.NotEqual(t, encrypted1[:IVSize], encrypted2[:IVSize])
}

func TestEncryptToBase64_DecryptFromBase64(t *testing.T) {
	key, err := GenerateSessionKey()
	require.NoError(t, err)
	require.Len(t, key, KeySize)

	encoded, err := EncryptToBase64([]byte("payload"), key)
	require.NoError(t, err)

	decoded, err := DecryptFromBase64(encoded, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), decoded)

	_, err = DecryptFromBase64("%%%not-base64", key)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode base64")
}
