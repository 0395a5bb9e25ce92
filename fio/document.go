package fio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var ErrNotRegularFile = errors.New("not a regular file")

// CheckRegularFile 路径必须存在且是普通文件
func CheckRegularFile(path string) error {
	stat, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !stat.Mode().IsRegular() {
		return fmt.Errorf("%s: %w", path, ErrNotRegularFile)
	}
	return nil
}

// ReadDocument 以 UTF-8 读取整个文档，去掉 BOM 并把换行统一为 \n
func ReadDocument(path string) (string, error) {
	if err := CheckRegularFile(path); err != nil {
		return "", err
	}
	ioManager, err := NewIOManager(path, ReadFIO)
	if err != nil {
		return "", err
	}
	defer ioManager.Close()

	size, err := ioManager.Size()
	if err != nil {
		return "", err
	}
	buf := make([]byte, size)
	n, err := ioManager.Read(buf, 0)
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}

	decoded, _, err := transform.Bytes(unicode.UTF8BOM.NewDecoder(), buf[:n])
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", path, err)
	}
	return normalizeNewlines(string(decoded)), nil
}

func normalizeNewlines(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}
