package PaperCheck

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// LoadConfig 使用 yaml.v2 解析 YAML 文件，未出现的字段保留默认值
func LoadConfig(configPath string) (Options, error) {
	options := DefaultOptions
	if configPath == "" {
		return options, nil
	}

	// 读取 YAML 文件内容
	data, err := os.ReadFile(configPath)
	if err != nil {
		return options, fmt.Errorf("%w: %w", ErrConfigLoad, err)
	}

	// 解析 YAML 数据到结构体
	if err := yaml.UnmarshalStrict(data, &options); err != nil {
		return options, fmt.Errorf("%w: %s: %w", ErrConfigLoad, configPath, err)
	}

	if err := checkOptions(options); err != nil {
		return options, err
	}
	return options, nil
}
