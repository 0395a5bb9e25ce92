package PaperCheck

import (
	"fmt"

	"PaperCheck/search"
)

type Options struct {
	Segmenter      string   `yaml:"segmenter"`       // 分词器: jieba | whitespace
	UseHMM         bool     `yaml:"use_hmm"`         // 是否使用 HMM 识别未登录词
	MinTokenLen    int      `yaml:"min_token_len"`   // 保留词的最小码点数
	ExtraStopwords []string `yaml:"extra_stopwords"` // 追加的停用词
	StopwordFile   string   `yaml:"stopword_file"`   // 追加停用词文件，每行一个
	TopTerms       int      `yaml:"top_terms"`       // 输出贡献最大的共同词数量，0 表示不输出

	// jieba 词典路径，留空使用 gojieba 自带词典
	DictPath      string `yaml:"dict_path"`
	HMMPath       string `yaml:"hmm_path"`
	UserDictPath  string `yaml:"user_dict_path"`
	IdfPath       string `yaml:"idf_path"`
	StopWordsPath string `yaml:"stop_words_path"`
}

// DefaultOptions 一个默认的options
var DefaultOptions = Options{
	Segmenter:   "jieba",
	UseHMM:      true,
	MinTokenLen: search.DefaultMinTokenLen,
	TopTerms:    0,
}

func checkOptions(options Options) error {
	if options.MinTokenLen < 1 {
		return fmt.Errorf("%w: min_token_len must be at least 1, got %d", ErrInvalidOptions, options.MinTokenLen)
	}
	if options.TopTerms < 0 {
		return fmt.Errorf("%w: top_terms must not be negative, got %d", ErrInvalidOptions, options.TopTerms)
	}
	if _, err := search.ParseSegmenterType(options.Segmenter); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}
	return nil
}
