package crypto

import "errors"

var (
	// ErrInvalidKeyLength indicates that a symmetric key is not 32 bytes long
	ErrInvalidKeyLength = errors.New("encryption key must be 32 bytes")

	// ErrInvalidPadding indicates malformed PKCS#7 padding after CBC decryption
	ErrInvalidPadding = errors.New("invalid padding")

	// ErrCiphertextTooShort indicates that the input is shorter than IV plus one block
	ErrCiphertextTooShort = errors.New("ciphertext too short")

	// ErrMessageTooLong indicates that an RSA plaintext does not fit into the padded block
	ErrMessageTooLong = errors.New("message too long for RSA key size")

	// ErrDecryption indicates that the RSA padding could not be decoded (no 0x01 delimiter)
	ErrDecryption = errors.New("rsa decryption error")

	// ErrInvalidKeySize indicates that the requested RSA key size is unusable
	ErrInvalidKeySize = errors.New("invalid rsa key size")
)
