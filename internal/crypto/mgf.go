package crypto

import "encoding/binary"

// MGF1 генерирует маску длины length из seed на основе SHA-1:
// SHA1(seed || counter) для counter = 0, 1, ... (4 байта big-endian), результат обрезается до length.
func MGF1(seed []byte, length int) []byte {
	if length <= 0 {
		return []byte{}
	}

	mask := make([]byte, 0, length+SHA1Size)
	buf := make([]byte, len(seed)+4)
	copy(buf, seed)

	for counter := uint32(0); len(mask) < length; counter++ {
		binary.BigEndian.PutUint32(buf[len(seed):], counter)
		sum := SHA1Sum(buf)
		mask = append(mask, sum[:]...)
	}

	return mask[:length]
}

// xorBytes возвращает a XOR b; длины должны совпадать
func xorBytes(a, b []byte) []byte {
	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out
}
