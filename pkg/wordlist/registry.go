package wordlist

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/tyler-smith/go-bip39/wordlists"
)

// Registry 按语言保存词表，构造完成后只读，可在多个 goroutine 间共享
type Registry struct {
	lists [numLanguages]*Wordlist
}

// Option 构造 Registry 时的可选项
type Option func(*Registry) error

// WithWordlist 注册或替换某个语言的词表
func WithWordlist(w *Wordlist) Option {
	return func(r *Registry) error {
		if w == nil {
			return fmt.Errorf("%w: nil", ErrInvalidWordlist)
		}
		r.lists[w.Language()] = w
		return nil
	}
}

// WithFile 从文件加载某个语言的词表，path 为空时忽略
func WithFile(lang Language, path string) Option {
	return func(r *Registry) error {
		if path == "" {
			return nil
		}
		w, err := LoadFile(lang, path)
		if err != nil {
			return fmt.Errorf("加载 %s 词表失败: %w", lang, err)
		}
		r.lists[lang] = w
		return nil
	}
}

// go-bip39 自带的词表，不含葡萄牙语
var builtinSources = map[Language][]string{
	English:            wordlists.English,
	Spanish:            wordlists.Spanish,
	French:             wordlists.French,
	Italian:            wordlists.Italian,
	Japanese:           wordlists.Japanese,
	Korean:             wordlists.Korean,
	ChineseSimplified:  wordlists.ChineseSimplified,
	ChineseTraditional: wordlists.ChineseTraditional,
}

// 葡萄牙语词表随包嵌入，可用 WithFile 覆盖
//
//go:embed portuguese.txt
var portugueseTxt string

var (
	builtinOnce sync.Once
	builtin     [numLanguages]*Wordlist
	builtinErr  error
)

func loadBuiltin() ([numLanguages]*Wordlist, error) {
	builtinOnce.Do(func() {
		for lang, words := range builtinSources {
			w, err := New(lang, words)
			if err != nil {
				builtinErr = err
				return
			}
			builtin[lang] = w
		}
		pt, err := Parse(Portuguese, strings.NewReader(portugueseTxt))
		if err != nil {
			builtinErr = err
			return
		}
		builtin[Portuguese] = pt
	})
	return builtin, builtinErr
}

// NewRegistry 以内置词表为基础构造 Registry，再依次应用 opts
func NewRegistry(opts ...Option) (*Registry, error) {
	lists, err := loadBuiltin()
	if err != nil {
		return nil, err
	}
	r := &Registry{lists: lists}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default 只包含内置词表的共享 Registry
func Default() *Registry {
	defaultOnce.Do(func() {
		r, err := NewRegistry()
		if err != nil {
			panic(fmt.Sprintf("内置词表损坏: %v", err))
		}
		defaultRegistry = r
	})
	return defaultRegistry
}

// Get 返回指定语言的词表
func (r *Registry) Get(lang Language) (*Wordlist, error) {
	if !lang.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLanguage, int(lang))
	}
	w := r.lists[lang]
	if w == nil {
		return nil, fmt.Errorf("%w: %s", ErrWordlistUnavailable, lang)
	}
	return w, nil
}

// Available 按优先级返回已加载的语言
func (r *Registry) Available() []Language {
	var langs []Language
	for _, l := range Priority() {
		if r.lists[l] != nil {
			langs = append(langs, l)
		}
	}
	return langs
}

// Detect 按优先级返回第一个包含全部单词的词表。
// 调用方负责先做 NFKD 归一化；空文本或无匹配时返回 false。
func (r *Registry) Detect(text string) (*Wordlist, bool) {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil, false
	}

	for _, l := range Priority() {
		w := r.lists[l]
		if w == nil {
			continue
		}
		if containsAll(w, words) {
			return w, true
		}
	}
	return nil, false
}

func containsAll(w *Wordlist, words []string) bool {
	for _, word := range words {
		if !w.Contains(word) {
			return false
		}
	}
	return true
}
