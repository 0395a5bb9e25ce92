package search

import (
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

var (
	jiebaOnce     sync.Once
	jiebaPipeline *Pipeline
)

// 词典加载较慢，整个包的测试共用一个分词器
func newJiebaPipeline(t *testing.T) *Pipeline {
	jiebaOnce.Do(func() {
		seg, err := NewSegmenter(Jieba, SegmentOptions{UseHMM: true})
		require.NoError(t, err)
		jiebaPipeline = NewPipeline(seg, nil)
	})
	return jiebaPipeline
}

var corpus = []string{
	"今天是星期天，天气晴，今天晚上我要去看电影。",
	"今天天气很好我们去公园",
	"今天天气不错我们去爬山",
	"我喜欢吃苹果",
	"Go 语言的并发模型基于 goroutine 和 channel，调度器负责把 goroutine 映射到线程上。",
	"论文查重系统使用余弦相似度计算两篇文章的重复率",
}

func TestPipeline_Scenarios(t *testing.T) {
	p := newJiebaPipeline(t)

	t.Run("identical", func(t *testing.T) {
		s := corpus[0]
		assert.InDelta(t, 1.0, p.Similarity(s, s), 1e-9)
		assert.Equal(t, "100.00", FormatPercent(p.Similarity(s, s)))
	})

	t.Run("empty candidate", func(t *testing.T) {
		assert.Equal(t, 0.0, p.Similarity(corpus[0], ""))
		assert.Equal(t, "0.00", FormatPercent(p.Similarity(corpus[0], "")))
	})

	t.Run("disjoint", func(t *testing.T) {
		assert.Equal(t, 0.0, p.Similarity("今天是星期天", "我喜欢吃苹果"))
	})

	t.Run("partial overlap", func(t *testing.T) {
		first := p.Similarity(corpus[1], corpus[2])
		assert.Greater(t, first, 0.0)
		assert.Less(t, first, 1.0)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, p.Similarity(corpus[1], corpus[2]))
		}
		// jieba 词典收录了“今天天气”，不会再切成“今天”和“天气”
		assert.Equal(t, []string{"今天天气", "我们", "公园"}, p.Tokens(corpus[1]))
		assert.Equal(t, []string{"今天天气", "不错", "我们", "爬山"}, p.Tokens(corpus[2]))

		shared := TopSharedTerms(p.Vectorize(corpus[1]), p.Vectorize(corpus[2]), 0)
		words := make([]string, 0, len(shared))
		for _, term := range shared {
			words = append(words, term.Word)
		}
		assert.Equal(t, []string{"今天天气", "我们"}, words)
		assert.InDelta(t, 1/math.Sqrt(3), first, 1e-12)
	})

	t.Run("invalid utf8", func(t *testing.T) {
		s := "今天天气很好\xff我们去公园"
		assert.InDelta(t, 1.0, p.Similarity(s, s), 1e-9)
		assert.Equal(t, p.Tokens("今天天气很好\uFFFD我们去公园"), p.Tokens(s))
	})

	t.Run("punctuation only", func(t *testing.T) {
		assert.Empty(t, p.Tokens("，。！？"))
		assert.Equal(t, 0.0, p.Similarity(corpus[0], "，。！？"))
	})

	t.Run("digits and single characters", func(t *testing.T) {
		assert.Equal(t, FrequencyMap{"中国": 1}, p.Vectorize("2024 年 A B 中国"))
	})
}

func TestPipeline_NoWhitespaceTokens(t *testing.T) {
	p := newJiebaPipeline(t)
	seg := p.segmenter
	for _, tok := range seg.Cut("今天 天气\t很好\n\n我们  去 公园 ") {
		assert.NotEmpty(t, strings.TrimSpace(tok))
	}
}

func TestPipeline_Properties(t *testing.T) {
	p := newJiebaPipeline(t)
	for _, a := range corpus {
		fa := p.Vectorize(a)
		if len(fa) > 0 {
			assert.InDelta(t, 1.0, Cosine(fa, fa), 1e-9, a)
		}
		assert.Equal(t, 0.0, p.Similarity(a, ""))
		assert.Equal(t, 0.0, p.Similarity("", a))
		for word := range fa {
			assert.False(t, IsStopword(word), word)
			assert.False(t, digitsPattern.MatchString(word), word)
		}
		for _, b := range corpus {
			ab := p.Similarity(a, b)
			assert.Equal(t, ab, p.Similarity(b, a))
			assert.GreaterOrEqual(t, ab, 0.0)
			assert.LessOrEqual(t, ab, 1.0)
		}
	}
}

func TestPipeline_PermutationInvariance(t *testing.T) {
	seg, err := NewSegmenter(Whitespace, SegmentOptions{})
	require.NoError(t, err)
	defer seg.Close()
	p := NewPipeline(seg, nil)

	r := rand.New(rand.NewSource(42))
	tokens := []string{"论文", "查重", "系统", "余弦", "相似度", "论文", "的", "2024", "文章"}
	reference := "论文 相似度 文章 重复率 系统"
	want := p.Similarity(strings.Join(tokens, " "), reference)
	for i := 0; i < 20; i++ {
		r.Shuffle(len(tokens), func(i, j int) { tokens[i], tokens[j] = tokens[j], tokens[i] })
		assert.InDelta(t, want, p.Similarity(strings.Join(tokens, " "), reference), 1e-9)
	}
}

func TestNewSegmenter(t *testing.T) {
	_, err := NewSegmenter(SegmenterType(99), SegmentOptions{})
	assert.Error(t, err)

	_, err = ParseSegmenterType("hanlp")
	assert.Error(t, err)

	segType, err := ParseSegmenterType("")
	assert.NoError(t, err)
	assert.Equal(t, Jieba, segType)

	segType, err = ParseSegmenterType("whitespace")
	assert.NoError(t, err)
	assert.Equal(t, Whitespace, segType)
}
