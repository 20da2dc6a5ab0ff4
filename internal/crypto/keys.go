package crypto

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math/big"
	"os"
	"path/filepath"
)

// ErrInvalidKeyFile означает, что сохраненный ключ поврежден или не согласован
var ErrInvalidKeyFile = errors.New("invalid rsa key file")

// keyFileVersion - версия формата файла ключа
const keyFileVersion = 1

// keyFile - сериализованная ключевая пара (числа в hex)
type keyFile struct {
	N       string `json:"n"`
	D       string `json:"d"`
	E       int    `json:"e"`
	Version int    `json:"version"`
}

// MarshalPrivateKey сериализует ключевую пару в JSON
func MarshalPrivateKey(priv *PrivateKey) ([]byte, error) {
	if priv == nil || priv.N == nil || priv.D == nil {
		return nil, fmt.Errorf("%w: incomplete key", ErrInvalidKeyFile)
	}
	return json.Marshal(keyFile{
		Version: keyFileVersion,
		N:       priv.N.Text(16),
		E:       priv.E,
		D:       priv.D.Text(16),
	})
}

// ParsePrivateKey разбирает ключ, сохраненный MarshalPrivateKey.
// Согласованность (e, d, n) проверяется пробным шифрованием.
func ParsePrivateKey(data []byte) (*PrivateKey, error) {
	var kf keyFile
	if err := json.Unmarshal(data, &kf); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKeyFile, err)
	}
	if kf.Version != keyFileVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidKeyFile, kf.Version)
	}

	n, okN := new(big.Int).SetString(kf.N, 16)
	d, okD := new(big.Int).SetString(kf.D, 16)
	if !okN || !okD || kf.E < 3 || n.BitLen() < MinRSABits {
		return nil, fmt.Errorf("%w: malformed numbers", ErrInvalidKeyFile)
	}

	priv := &PrivateKey{PublicKey: PublicKey{N: n, E: kf.E}, D: d}

	probe := big.NewInt(2)
	c := new(big.Int).Exp(probe, big.NewInt(int64(priv.E)), n)
	if new(big.Int).Exp(c, d, n).Cmp(probe) != 0 {
		return nil, fmt.Errorf("%w: exponents do not match modulus", ErrInvalidKeyFile)
	}

	return priv, nil
}

// Fingerprint возвращает SHA-1 hex от (n, e): короткий идентификатор открытого ключа
func (pub *PublicKey) Fingerprint() string {
	data := append(pub.N.Bytes(), big.NewInt(int64(pub.E)).Bytes()...)
	return SHA1Hex(data)
}

// LoadOrGenerateKey читает ключ из path; если файла нет, генерирует новый длиной bits и сохраняет его.
// Пустой path означает ключ только в памяти.
func LoadOrGenerateKey(path string, bits int) (priv *PrivateKey, generated bool, err error) {
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			priv, err := ParsePrivateKey(data)
			if err != nil {
				return nil, false, fmt.Errorf("failed to load rsa key from %s: %w", path, err)
			}
			return priv, false, nil
		case !errors.Is(err, fs.ErrNotExist):
			return nil, false, fmt.Errorf("failed to read rsa key: %w", err)
		}
	}

	priv, err = GenerateKey(rand.Reader, bits)
	if err != nil {
		return nil, false, err
	}

	if path != "" {
		data, err := MarshalPrivateKey(priv)
		if err != nil {
			return nil, false, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, false, fmt.Errorf("failed to create key directory: %w", err)
		}
		if err := os.WriteFile(path, data, 0o600); err != nil {
			return nil, false, fmt.Errorf("failed to save rsa key: %w", err)
		}
	}

	return priv, true, nil
}
