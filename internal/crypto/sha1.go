package crypto

import (
	"encoding/binary"
	"encoding/hex"
	"math/bits"
)

// SHA1Size - размер дайджеста SHA-1 в байтах
const SHA1Size = 20

const sha1BlockSize = 64

// Начальные значения регистров (FIPS 180-1)
var sha1Init = [5]uint32{0x67452301, 0xEFCDAB89, 0x98BADCFE, 0x10325476, 0xC3D2E1F0}

// SHA1Sum вычисляет SHA-1 дайджест сообщения.
// Собственная реализация: используется для дайджестов, в MGF1 и для хеширования паролей.
func SHA1Sum(data []byte) [SHA1Size]byte {
	h := sha1Init

	// Паддинг: 0x80, нули до 56 mod 64, затем длина в битах (big-endian, 8 байт)
	msgLen := len(data)
	padLen := sha1BlockSize - (msgLen+9)%sha1BlockSize
	if padLen == sha1BlockSize {
		padLen = 0
	}
	padded := make([]byte, msgLen+1+padLen+8)
	copy(padded, data)
	padded[msgLen] = 0x80
	binary.BigEndian.PutUint64(padded[len(padded)-8:], uint64(msgLen)*8)

	var w [80]uint32
	for off := 0; off < len(padded); off += sha1BlockSize {
		block := padded[off : off+sha1BlockSize]
		for i := 0; i < 16; i++ {
			w[i] = binary.BigEndian.Uint32(block[i*4:])
		}
		for i := 16; i < 80; i++ {
			w[i] = bits.RotateLeft32(w[i-3]^w[i-8]^w[i-14]^w[i-16], 1)
		}

		a, b, c, d, e := h[0], h[1], h[2], h[3], h[4]
		for i := 0; i < 80; i++ {
			var f, k uint32
			switch {
			case i < 20:
				f = (b & c) | (^b & d)
				k = 0x5A827999
			case i < 40:
				f = b ^ c ^ d
				k = 0x6ED9EBA1
			case i < 60:
				f = (b & c) | (b & d) | (c & d)
				k = 0x8F1BBCDC
			default:
				f = b ^ c ^ d
				k = 0xCA62C1D6
			}
			tmp := bits.RotateLeft32(a, 5) + f + e + k + w[i]
			e = d
			d = c
			c = bits.RotateLeft32(b, 30)
			b = a
			a = tmp
		}

		h[0] += a
		h[1] += b
		h[2] += c
		h[3] += d
		h[4] += e
	}

	var digest [SHA1Size]byte
	for i, v := range h {
		binary.BigEndian.PutUint32(digest[i*4:], v)
	}
	return digest
}

// SHA1Hex возвращает SHA-1 дайджест в виде hex-строки (40 символов, нижний регистр)
func SHA1Hex(data []byte) string {
	sum := SHA1Sum(data)
	return hex.EncodeToString(sum[:])
}
