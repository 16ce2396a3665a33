package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Size 每个词表的单词数 (2^11)
const Size = 2048

var (
	ErrUnknownLanguage      = errors.New("未知的词表语言")
	ErrWordlistUnavailable  = errors.New("词表未加载")
	ErrInvalidWordlist      = errors.New("无效的词表")
	ErrWordIndexOutOfBounds = errors.New("单词索引越界")
)

// Wordlist 一份不可变的 BIP-39 词表，带反向索引
type Wordlist struct {
	lang  Language
	words []string
	index map[string]int
}

// New 校验并构造词表。单词统一做 NFKD 归一化，和 BIP-39 官方词表的存储形式一致。
func New(lang Language, words []string) (*Wordlist, error) {
	if !lang.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLanguage, int(lang))
	}
	if len(words) != Size {
		return nil, fmt.Errorf("%w: %s 需要 %d 个单词, 实际 %d", ErrInvalidWordlist, lang, Size, len(words))
	}

	w := &Wordlist{
		lang:  lang,
		words: make([]string, Size),
		index: make(map[string]int, Size),
	}
	for i, word := range words {
		word = norm.NFKD.String(strings.TrimSpace(word))
		if word == "" || strings.ContainsAny(word, " \t\r\n") {
			return nil, fmt.Errorf("%w: %s 第 %d 个单词 %q 不合法", ErrInvalidWordlist, lang, i, word)
		}
		if _, dup := w.index[word]; dup {
			return nil, fmt.Errorf("%w: %s 单词 %q 重复", ErrInvalidWordlist, lang, word)
		}
		w.words[i] = word
		w.index[word] = i
	}
	return w, nil
}

// LoadFile 从每行一个单词的文本文件读取词表 (官方 bips/bip-0039/*.txt 格式)
func LoadFile(lang Language, path string) (*Wordlist, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("打开词表文件失败: %w", err)
	}
	defer f.Close()

	return Parse(lang, f)
}

// Parse 读取每行一个单词的词表，忽略空行
func Parse(lang Language, r io.Reader) (*Wordlist, error) {
	s := bufio.NewScanner(r)
	var words []string
	for s.Scan() {
		word := strings.TrimSpace(s.Text())
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("读取词表文件失败: %w", err)
	}
	return New(lang, words)
}

func (w *Wordlist) Language() Language { return w.lang }

func (w *Wordlist) Len() int { return len(w.words) }

// Word 返回索引 i 处的单词
func (w *Wordlist) Word(i int) (string, error) {
	if i < 0 || i >= len(w.words) {
		return "", fmt.Errorf("%w: %d", ErrWordIndexOutOfBounds, i)
	}
	return w.words[i], nil
}

// Index 返回单词在词表中的位置。单词需已做 NFKD 归一化。
func (w *Wordlist) Index(word string) (int, bool) {
	i, ok := w.index[word]
	return i, ok
}

func (w *Wordlist) Contains(word string) bool {
	_, ok := w.index[word]
	return ok
}

// Words 返回词表副本
func (w *Wordlist) Words() []string {
	out := make([]string, len(w.words))
	copy(out, w.words)
	return out
}
