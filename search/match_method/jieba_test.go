package match_method

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yanyiwu/gojieba"
)

func TestNewJiebaSegmenter_MissingDict(t *testing.T) {
	dicts := JiebaDicts{DictPath: filepath.Join(t.TempDir(), "missing.dict.utf8")}
	seg, err := NewJiebaSegmenter(dicts, true)
	assert.Nil(t, seg)
	assert.True(t, errors.Is(err, ErrDictionaryNotFound))
}

func TestNewJiebaSegmenter_DirAsDict(t *testing.T) {
	dicts := JiebaDicts{HMMPath: t.TempDir()}
	_, err := NewJiebaSegmenter(dicts, true)
	assert.True(t, errors.Is(err, ErrDictionaryNotFound))
}

func TestNewJiebaSegmenter_MissingDefaultDict(t *testing.T) {
	defaultDict := gojieba.DICT_PATH
	defer func() { gojieba.DICT_PATH = defaultDict }()
	gojieba.DICT_PATH = filepath.Join(t.TempDir(), "jieba.dict.utf8")

	seg, err := NewJiebaSegmenter(JiebaDicts{}, true)
	assert.Nil(t, seg)
	assert.True(t, errors.Is(err, ErrDictionaryNotFound))
}

func TestJiebaSegmenter_InvalidUTF8(t *testing.T) {
	seg, err := NewJiebaSegmenter(JiebaDicts{}, true)
	assert.Nil(t, err)
	defer seg.Close()

	words := seg.Cut("今天天气\xff很好")
	assert.Contains(t, words, "今天天气")
	assert.Equal(t, seg.Cut("今天天气\uFFFD很好"), words)
}

func TestJiebaSegmenter_Cut(t *testing.T) {
	seg, err := NewJiebaSegmenter(JiebaDicts{}, true)
	assert.Nil(t, err)
	defer seg.Close()

	text := "2024 年 A B 中国"
	words := seg.Cut(text)
	assert.Equal(t, []string{"2024", "年", "A", "B", "中国"}, words)
	// 相同输入得到相同输出
	assert.Equal(t, words, seg.Cut(text))
	assert.Empty(t, seg.Cut("  \n\t "))
}

func TestWhitespaceSegmenter_Cut(t *testing.T) {
	seg := NewWhitespaceSegmenter()
	defer seg.Close()
	assert.Equal(t, []string{"今天", "天气", "Go"}, seg.Cut(" 今天\t天气\n Go "))
	assert.Empty(t, seg.Cut(""))
}
