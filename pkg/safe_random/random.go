package safe_random

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// Reader 全局随机源，默认为 crypto/rand.Reader，测试中可替换
var Reader io.Reader = rand.Reader

// GenerateRandomBytes 生成指定长度的安全随机字节切片。
func GenerateRandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(Reader, b); err != nil {
		return nil, fmt.Errorf("生成随机字节失败: %w", err)
	}
	return b, nil
}

// GenerateRandomInt 生成一个 [0, max) 范围内的均匀随机值。
func GenerateRandomInt(max *big.Int) (*big.Int, error) {
	if max == nil || max.Sign() <= 0 {
		return nil, fmt.Errorf("最大值必须为正数")
	}
	return rand.Int(Reader, max)
}

// GenerateScalar 生成 [1, order) 范围内的随机数，按 size 字节大端编码
func GenerateScalar(order *big.Int, size int) ([]byte, error) {
	if order == nil || order.Cmp(big.NewInt(1)) <= 0 {
		return nil, fmt.Errorf("阶必须大于 1")
	}
	if (order.BitLen()+7)/8 > size {
		return nil, fmt.Errorf("阶超出 %d 字节", size)
	}

	// [0, order-1) + 1
	k, err := GenerateRandomInt(new(big.Int).Sub(order, big.NewInt(1)))
	if err != nil {
		return nil, err
	}
	k.Add(k, big.NewInt(1))
	return k.FillBytes(make([]byte, size)), nil
}
