package search

// Pipeline 分词 -> 过滤 -> 词频 的预处理流程
type Pipeline struct {
	segmenter Segmenter
	filter    *Filter
}

// NewPipeline filter 为空时使用默认过滤器
func NewPipeline(segmenter Segmenter, filter *Filter) *Pipeline {
	if filter == nil {
		filter = DefaultFilter()
	}
	return &Pipeline{segmenter: segmenter, filter: filter}
}

// Tokens 返回过滤后的词序列
func (p *Pipeline) Tokens(text string) []string {
	return p.filter.Apply(p.segmenter.Cut(text))
}

// Vectorize 返回文本的词频向量
func (p *Pipeline) Vectorize(text string) FrequencyMap {
	return BuildFrequency(p.Tokens(text))
}

// Similarity 计算两段文本的余弦相似度
func (p *Pipeline) Similarity(paper, reference string) float64 {
	return Cosine(p.Vectorize(paper), p.Vectorize(reference))
}
