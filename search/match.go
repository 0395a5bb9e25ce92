package search

import (
	"fmt"

	"PaperCheck/search/match_method"
)

type SegmenterType int8

const (
	Jieba      SegmenterType = iota // GoJieba 精确模式
	Whitespace                      // 按空白切分
)

// Segmenter 分词接口，相同输入必须得到相同输出
type Segmenter interface {
	Cut(text string) []string // 分词，不输出空白
	Close()                   // 释放资源
}

// SegmentOptions 分词器配置
type SegmentOptions struct {
	UseHMM bool
	Dicts  match_method.JiebaDicts
}

func NewSegmenter(segType SegmenterType, opts SegmentOptions) (Segmenter, error) {
	switch segType {
	case Jieba:
		seg, err := match_method.NewJiebaSegmenter(opts.Dicts, opts.UseHMM)
		if err != nil {
			return nil, err
		}
		return seg, nil
	case Whitespace:
		return match_method.NewWhitespaceSegmenter(), nil
	default:
		return nil, fmt.Errorf("unsupported segmenter type: %d", segType)
	}
}

// ParseSegmenterType 解析配置文件中的分词器名称
func ParseSegmenterType(name string) (SegmenterType, error) {
	switch name {
	case "", "jieba":
		return Jieba, nil
	case "whitespace":
		return Whitespace, nil
	default:
		return 0, fmt.Errorf("unknown segmenter %q", name)
	}
}
