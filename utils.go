package PaperCheck

import (
	"fmt"
	"strings"

	"PaperCheck/fio"
)

// loadStopwordFile 每行一个停用词，空行和 # 开头的行会被忽略
func loadStopwordFile(path string) ([]string, error) {
	content, err := fio.ReadDocument(path)
	if err != nil {
		return nil, fmt.Errorf("%w: stopword file: %w", ErrConfigLoad, err)
	}
	var words []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	return words, nil
}
