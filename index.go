package blooms

// chunkIndex interprets up to four member bytes as a little-endian unsigned
// integer. A short final chunk uses only its available bytes, consistent
// with the little-endian reading of however many bytes remain.
func chunkIndex(chunk []byte) uint64 {
	var index uint64
	for i, b := range chunk {
		index |= uint64(b) << (8 * i)
	}
	return index
}

// cellBit maps a derived index to a cell position and a bit offset within
// that cell. Cell addressing wraps modulo the cell count.
func cellBit(index uint64, cells int) (cell int, bit uint8) {
	cell = int((index / 8) % uint64(cells))
	bit = uint8(index % 8)
	return cell, bit
}
