package match_method

import "strings"

// WhitespaceSegmenter 按空白切分，用于已经分好词的文本
type WhitespaceSegmenter struct{}

func NewWhitespaceSegmenter() *WhitespaceSegmenter {
	return &WhitespaceSegmenter{}
}

func (s *WhitespaceSegmenter) Cut(text string) []string {
	return strings.Fields(text)
}

func (s *WhitespaceSegmenter) Close() {}
