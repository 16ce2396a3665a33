package wordlist

import (
	"fmt"
	"strings"
)

// Language BIP-39 词表语言
type Language int

// 常量顺序即探测优先级，出现同形词时靠前的语言胜出
const (
	English Language = iota
	Spanish
	French
	Italian
	Japanese
	Korean
	Portuguese
	ChineseSimplified
	ChineseTraditional

	numLanguages
)

var languageNames = [numLanguages]string{
	English:            "english",
	Spanish:            "spanish",
	French:             "french",
	Italian:            "italian",
	Japanese:           "japanese",
	Korean:             "korean",
	Portuguese:         "portuguese",
	ChineseSimplified:  "chinese_simplified",
	ChineseTraditional: "chinese_traditional",
}

// Priority 返回探测顺序的副本
func Priority() []Language {
	langs := make([]Language, 0, numLanguages)
	for l := Language(0); l < numLanguages; l++ {
		langs = append(langs, l)
	}
	return langs
}

func (l Language) String() string {
	if !l.Valid() {
		return fmt.Sprintf("language(%d)", int(l))
	}
	return languageNames[l]
}

// Valid 是否为已知语言
func (l Language) Valid() bool {
	return l >= 0 && l < numLanguages
}

// ParseLanguage 解析语言名，支持 "chinese-simplified" / "zh" 等常用写法
func ParseLanguage(s string) (Language, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.ReplaceAll(name, "-", "_")

	switch name {
	case "en":
		return English, nil
	case "es":
		return Spanish, nil
	case "fr":
		return French, nil
	case "it":
		return Italian, nil
	case "ja", "jp":
		return Japanese, nil
	case "ko", "kr":
		return Korean, nil
	case "pt":
		return Portuguese, nil
	case "zh", "zh_cn", "zh_hans":
		return ChineseSimplified, nil
	case "zh_tw", "zh_hant":
		return ChineseTraditional, nil
	}

	for i, n := range languageNames {
		if n == name {
			return Language(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLanguage, s)
}
