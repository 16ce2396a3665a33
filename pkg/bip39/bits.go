package bip39

// 按大端位序读写字节切片中的单个 bit

func getBit(buf []byte, i int) int {
	return int(buf[i/8]>>(7-uint(i%8))) & 1
}

func setBit(buf []byte, i int) {
	buf[i/8] |= 1 << (7 - uint(i%8))
}

// readIndex 从 pos 开始读取 11 bit 的单词索引
func readIndex(buf []byte, pos int) int {
	idx := 0
	for b := 0; b < bitsPerWord; b++ {
		idx = idx<<1 | getBit(buf, pos+b)
	}
	return idx
}

// writeIndex 把 11 bit 的单词索引写到 pos 处，buf 对应位置需为 0
func writeIndex(buf []byte, pos, idx int) {
	for b := 0; b < bitsPerWord; b++ {
		if idx>>(bitsPerWord-1-b)&1 == 1 {
			setBit(buf, pos+b)
		}
	}
}
