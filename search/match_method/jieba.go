package match_method

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/yanyiwu/gojieba" // GoJieba 分词库
)

var ErrDictionaryNotFound = errors.New("jieba dictionary not found")

// JiebaDicts 自定义词典路径，全部为空时使用 gojieba 自带的词典
type JiebaDicts struct {
	DictPath      string
	HMMPath       string
	UserDictPath  string
	IdfPath       string
	StopWordsPath string
}

// paths 按 gojieba.NewJieba 的参数顺序返回，未配置的使用默认词典
func (d JiebaDicts) paths() []string {
	pick := func(custom, fallback string) string {
		if custom == "" {
			return fallback
		}
		return custom
	}
	return []string{
		pick(d.DictPath, gojieba.DICT_PATH),
		pick(d.HMMPath, gojieba.HMM_PATH),
		pick(d.UserDictPath, gojieba.USER_DICT_PATH),
		pick(d.IdfPath, gojieba.IDF_PATH),
		pick(d.StopWordsPath, gojieba.STOP_WORDS_PATH),
	}
}

// JiebaSegmenter 基于 GoJieba 的中文分词器
type JiebaSegmenter struct {
	jieba  *gojieba.Jieba // GoJieba 分词器
	useHMM bool           // 是否使用 HMM 识别未登录词
}

// NewJiebaSegmenter 词典文件在交给 C 库之前先校验，避免加载失败直接崩溃。
// 默认词典路径来自 gojieba 的源码目录，换一台机器运行时同样可能不存在。
func NewJiebaSegmenter(dicts JiebaDicts, useHMM bool) (*JiebaSegmenter, error) {
	paths := dicts.paths()
	for _, p := range paths {
		stat, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrDictionaryNotFound, p, err)
		}
		if !stat.Mode().IsRegular() {
			return nil, fmt.Errorf("%w: %s is not a regular file", ErrDictionaryNotFound, p)
		}
	}
	return &JiebaSegmenter{jieba: gojieba.NewJieba(paths...), useHMM: useHMM}, nil
}

// Cut 精确模式分词，空白字符不会作为 token 输出。
// 非法 UTF-8 字节替换为 U+FFFD，与读取文件时的处理一致。
func (s *JiebaSegmenter) Cut(text string) []string {
	text = strings.ToValidUTF8(text, "\uFFFD")
	words := s.jieba.Cut(text, s.useHMM)
	tokens := words[:0]
	for _, w := range words {
		if strings.TrimSpace(w) == "" {
			continue
		}
		tokens = append(tokens, w)
	}
	return tokens
}

// Close 释放 C 库持有的词典内存
func (s *JiebaSegmenter) Close() {
	if s.jieba != nil {
		s.jieba.Free()
		s.jieba = nil
	}
}
