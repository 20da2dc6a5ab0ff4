package crypto

import (
	"crypto/rand"
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalParsePrivateKey(t *testing.T) {
	priv, err := GenerateKey(rand.Reader, 512)
	require.NoError(t, err)

	data, err := MarshalPrivateKey(priv)
	require.NoError(t, err)

	parsed, err := ParsePrivateKey(data)
	require.NoError(t, err)
	assert.Equal(t, 0, priv.N.Cmp(parsed.N))
	assert.Equal(t, 0, priv.D.Cmp(parsed.D))
	assert.Equal(t, priv.E, parsed.E)
	assert.Equal(t, priv.Fingerprint(), parsed.Fingerprint())

	// Разобранный ключ расшифровывает то, что зашифровано исходным открытым ключом
	c, err := EncryptOAEP(rand.Reader, &priv.PublicKey, []byte("session"))
	require.NoError(t, err)
	plain, err := parsed.DecryptOAEP(c)
	require.NoError(t, err)
	assert.Equal(t, "session", string(plain))
}

func TestParsePrivateKey_Invalid(t *testing.T) {
	priv, err := GenerateKey(rand.Reader, 512)
	require.NoError(t, err)

	tampered := *priv
	tampered.D = new(big.Int).Add(priv.D, big.NewInt(2))
	mismatched, err := MarshalPrivateKey(&tampered)
	require.NoError(t, err)

	tests := []struct {
		name string
		data []byte
	}{
		{name: "not json", data: []byte("-----BEGIN")},
		{name: "wrong version", data: []byte(`{"version":7,"n":"ff","e":65537,"d":"ff"}`)},
		{name: "bad hex", data: []byte(`{"version":1,"n":"zz","e":65537,"d":"ff"}`)},
		{name: "short modulus", data: []byte(`{"version":1,"n":"ff","e":65537,"d":"ff"}`)},
		{name: "mismatched exponent", data: mismatched},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePrivateKey(tt.data)
			assert.ErrorIs(t, err, ErrInvalidKeyFile)
		})
	}

	_, err = MarshalPrivateKey(&PrivateKey{})
	assert.ErrorIs(t, err, ErrInvalidKeyFile)
}

func TestFingerprint(t *testing.T) {
	a, err := GenerateKey(rand.Reader, 512)
	require.NoError(t, err)
	b, err := GenerateKey(rand.Reader, 512)
	require.NoError(t, err)

	assert.Len(t, a.Fingerprint(), 40)
	assert.Equal(t, a.Fingerprint(), a.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
}

func TestLoadOrGenerateKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys", "server.key")

	first, generated, err := LoadOrGenerateKey(path, 512)
	require.NoError(t, err)
	assert.True(t, generated)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	second, generated, err := LoadOrGenerateKey(path, 512)
	require.NoError(t, err)
	assert.False(t, generated)
	assert.Equal(t, first.Fingerprint(), second.Fingerprint())

	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o600))
	_, _, err = LoadOrGenerateKey(path, 512)
	assert.ErrorIs(t, err, ErrInvalidKeyFile)

	ephemeral, generated, err := LoadOrGenerateKey("", 512)
	require.NoError(t, err)
	assert.True(t, generated)
	assert.NotNil(t, ephemeral.D)
}
