package search

import (
	"sort"
	"strings"
	"sync"
)

var (
	stopWordsOnce sync.Once
	stopWords     map[string]struct{}
)

// 常见的中文虚词
var chineseStopWords = []string{
	"的", "了", "在", "是", "我", "有", "和", "就", "不", "人", "都", "一", "一个", "上",
	"也", "很", "到", "说", "要", "去", "你", "会", "着", "没有", "看", "好", "自己", "这",
}

// ASCII 标点和符号
var asciiStopWords = []string{
	",", ".", "!", "?", ";", ":", "'", "\"", "`", "~", "@", "#", "$", "%", "^", "&",
	"*", "(", ")", "-", "=", "+", "[", "]", "{", "}", "|", "/", "<", ">",
}

// 全角 / 中文标点
var cjkStopWords = []string{
	"。", "，", "！", "？", "、", "；", "：", "（", "）", "【", "】", "《", "》",
}

func loadStopWords() {
	stopWords = make(map[string]struct{}, len(chineseStopWords)+len(asciiStopWords)+len(cjkStopWords))
	for _, list := range [][]string{chineseStopWords, asciiStopWords, cjkStopWords} {
		for _, w := range list {
			if w == "" {
				continue
			}
			stopWords[w] = struct{}{}
		}
	}
}

// IsStopword 判断 token 是否在停用词表中，调用方需要先做大小写折叠
func IsStopword(token string) bool {
	stopWordsOnce.Do(loadStopWords)
	_, ok := stopWords[token]
	return ok
}

// Stopwords 返回停用词表的有序拷贝
func Stopwords() []string {
	stopWordsOnce.Do(loadStopWords)
	words := make([]string, 0, len(stopWords))
	for w := range stopWords {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// StopwordSet 固定停用词表加上配置中追加的停用词，构建完成后只读
type StopwordSet struct {
	extra map[string]struct{}
}

// NewStopwordSet 追加的停用词会先做大小写折叠，空串会被忽略
func NewStopwordSet(extra ...string) *StopwordSet {
	set := &StopwordSet{extra: make(map[string]struct{}, len(extra))}
	for _, w := range extra {
		w = foldCase(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		set.extra[w] = struct{}{}
	}
	return set
}

// Contains 先查固定表，再查追加表
func (s *StopwordSet) Contains(token string) bool {
	if IsStopword(token) {
		return true
	}
	if s == nil {
		return false
	}
	_, ok := s.extra[token]
	return ok
}

// Len 追加停用词的数量
func (s *StopwordSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.extra)
}
