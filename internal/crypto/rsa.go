package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

const (
	// DefaultRSABits - длина ключа RSA по умолчанию
	DefaultRSABits = 2048

	// MinRSABits - минимальная длина, при которой в блок помещается seed, разделитель и хотя бы 1 байт сообщения
	MinRSABits = 256

	// PublicExponent - фиксированная открытая экспонента
	PublicExponent = 65537

	// seedSize - размер случайного seed в OAEP-подобной схеме (длина дайджеста SHA-1)
	seedSize = SHA1Size

	// primeRounds - число раундов Miller-Rabin в ProbablyPrime
	primeRounds = 20
)

// PublicKey - открытая часть ключа RSA. Передается в открытом виде как пара (e, n).
type PublicKey struct {
	N *big.Int
	E int
}

// PrivateKey - ключевая пара RSA. D никогда не покидает процесс.
type PrivateKey struct {
	PublicKey
	D *big.Int
}

// Size возвращает длину модуля в байтах (k)
func (pub *PublicKey) Size() int {
	return (pub.N.BitLen() + 7) / 8
}

// MaxMessageSize возвращает максимальную длину сообщения, которую вмещает блок:
// k - 1 (EM) - 20 (seed) - 1 (разделитель 0x01)
func (pub *PublicKey) MaxMessageSize() int {
	return pub.Size() - 1 - seedSize - 1
}

// GenerateKey генерирует ключевую пару RSA длиной bits.
// p и q выбираются случайным поиском с вероятностной проверкой простоты,
// пока p != q, gcd(e, φ) = 1 и n содержит не меньше bits бит.
func GenerateKey(random io.Reader, bits int) (*PrivateKey, error) {
	if bits < MinRSABits || bits%16 != 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidKeySize, bits)
	}
	if random == nil {
		random = rand.Reader
	}

	e := big.NewInt(PublicExponent)
	one := big.NewInt(1)

	for {
		p, err := randomPrime(random, bits/2)
		if err != nil {
			return nil, err
		}
		q, err := randomPrime(random, bits/2)
		if err != nil {
			return nil, err
		}
		if p.Cmp(q) == 0 {
			continue
		}

		n := new(big.Int).Mul(p, q)
		if n.BitLen() < bits {
			continue
		}

		phi := new(big.Int).Mul(
			new(big.Int).Sub(p, one),
			new(big.Int).Sub(q, one),
		)
		if new(big.Int).GCD(nil, nil, e, phi).Cmp(one) != 0 {
			continue
		}

		d, ok := modInverse(e, phi)
		if !ok {
			continue
		}

		return &PrivateKey{
			PublicKey: PublicKey{N: n, E: PublicExponent},
			D:         d,
		}, nil
	}
}

// randomPrime ищет случайное простое число длиной bits бит.
// Старшие два бита выставляются, чтобы произведение двух таких чисел имело ровно 2*bits бит.
func randomPrime(random io.Reader, bits int) (*big.Int, error) {
	buf := make([]byte, (bits+7)/8)
	extra := uint(len(buf)*8 - bits)

	for {
		if _, err := io.ReadFull(random, buf); err != nil {
			return nil, fmt.Errorf("failed to read random bytes: %w", err)
		}

		// Отбрасываем лишние старшие биты
		buf[0] &= byte(0xFF >> extra)
		// Два старших бита
		if extra <= 6 {
			buf[0] |= 0xC0 >> extra
		} else {
			buf[0] |= 0x01
			buf[1] |= 0x80
		}
		// Нечетное
		buf[len(buf)-1] |= 0x01

		candidate := new(big.Int).SetBytes(buf)
		if candidate.ProbablyPrime(primeRounds) {
			return candidate, nil
		}
	}
}

// modInverse вычисляет a^-1 mod m итеративным расширенным алгоритмом Евклида.
// Результат нормализуется в диапазон [0, m).
func modInverse(a, m *big.Int) (*big.Int, bool) {
	oldR, r := new(big.Int).Set(a), new(big.Int).Set(m)
	oldS, s := big.NewInt(1), big.NewInt(0)

	quotient := new(big.Int)
	tmp := new(big.Int)
	for r.Sign() != 0 {
		quotient.Div(oldR, r)

		tmp.Mul(quotient, r)
		oldR, r = r, new(big.Int).Sub(oldR, tmp)

		tmp.Mul(quotient, s)
		oldS, s = s, new(big.Int).Sub(oldS, tmp)
	}

	if oldR.Cmp(big.NewInt(1)) != 0 {
		return nil, false
	}

	return oldS.Mod(oldS, m), true
}

// EncryptOAEP кодирует msg OAEP-подобной схемой и шифрует открытым ключом:
// DB = 0x00..00 || 0x01 || msg, maskedDB = DB ^ MGF(seed), maskedSeed = seed ^ MGF(maskedDB),
// c = int(maskedSeed || maskedDB)^e mod n
func EncryptOAEP(random io.Reader, pub *PublicKey, msg []byte) (*big.Int, error) {
	if pub == nil || pub.N == nil || pub.N.Sign() <= 0 {
		return nil, fmt.Errorf("%w: empty public key", ErrInvalidKeySize)
	}
	if random == nil {
		random = rand.Reader
	}

	dbLen := pub.Size() - 1 - seedSize
	if len(msg) > pub.MaxMessageSize() {
		return nil, fmt.Errorf("%w: %d bytes, max %d", ErrMessageTooLong, len(msg), pub.MaxMessageSize())
	}

	db := make([]byte, dbLen)
	db[dbLen-len(msg)-1] = 0x01
	copy(db[dbLen-len(msg):], msg)

	seed := make([]byte, seedSize)
	if _, err := io.ReadFull(random, seed); err != nil {
		return nil, fmt.Errorf("failed to generate seed: %w", err)
	}

	maskedDB := xorBytes(db, MGF1(seed, dbLen))
	maskedSeed := xorBytes(seed, MGF1(maskedDB, seedSize))

	em := make([]byte, 0, seedSize+dbLen)
	em = append(em, maskedSeed...)
	em = append(em, maskedDB...)

	m := new(big.Int).SetBytes(em)
	return new(big.Int).Exp(m, big.NewInt(int64(pub.E)), pub.N), nil
}

// DecryptOAEP расшифровывает c и снимает OAEP-подобное кодирование.
// EM восстанавливается до фиксированной длины k-1 байт, поэтому ведущие нулевые
// байты maskedSeed не теряются.
func (priv *PrivateKey) DecryptOAEP(c *big.Int) ([]byte, error) {
	if c == nil || c.Sign() < 0 || c.Cmp(priv.N) >= 0 {
		return nil, ErrDecryption
	}

	emLen := priv.Size() - 1
	m := new(big.Int).Exp(c, priv.D, priv.N)
	raw := m.Bytes()
	if len(raw) > emLen {
		return nil, ErrDecryption
	}

	em := make([]byte, emLen)
	copy(em[emLen-len(raw):], raw)

	maskedSeed := em[:seedSize]
	maskedDB := em[seedSize:]

	seed := xorBytes(maskedSeed, MGF1(maskedDB, seedSize))
	db := xorBytes(maskedDB, MGF1(seed, len(maskedDB)))

	// Пропускаем нулевой префикс, затем обязателен разделитель 0x01
	i := 0
	for i < len(db) && db[i] == 0x00 {
		i++
	}
	if i == len(db) || db[i] != 0x01 {
		return nil, ErrDecryption
	}

	return db[i+1:], nil
}
