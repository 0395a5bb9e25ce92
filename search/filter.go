package search

import (
	"regexp"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultMinTokenLen 长度按码点计算，单个汉字同样会被过滤
const DefaultMinTokenLen = 2

var digitsPattern = regexp.MustCompile(`^[0-9]+$`)

// 使用语言无关的小写映射，对汉字没有影响
func foldCase(token string) string {
	return cases.Lower(language.Und).String(token)
}

// Filter 对分词结果做大小写折叠、停用词、纯数字和长度过滤
type Filter struct {
	stopwords   *StopwordSet
	minTokenLen int
}

// NewFilter minTokenLen 小于 1 时使用默认值
func NewFilter(stopwords *StopwordSet, minTokenLen int) *Filter {
	if minTokenLen < 1 {
		minTokenLen = DefaultMinTokenLen
	}
	return &Filter{stopwords: stopwords, minTokenLen: minTokenLen}
}

// DefaultFilter 只使用固定停用词表
func DefaultFilter() *Filter {
	return NewFilter(nil, DefaultMinTokenLen)
}

// Keep 判断单个 token 是否保留，返回折叠后的 token
func (f *Filter) Keep(token string) (string, bool) {
	word := foldCase(token)
	if f.stopwords.Contains(word) {
		return "", false
	}
	if digitsPattern.MatchString(word) {
		return "", false
	}
	if utf8.RuneCountInString(word) < f.minTokenLen {
		return "", false
	}
	return word, true
}

// Apply 过滤是纯函数且保持原有顺序
func (f *Filter) Apply(tokens []string) []string {
	kept := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if word, ok := f.Keep(token); ok {
			kept = append(kept, word)
		}
	}
	return kept
}
