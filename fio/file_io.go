package fio

import (
	"os"
	"path/filepath"
)

// OpenFileIO 只读打开文件
func OpenFileIO(fileName string) (*FileIo, error) {
	fd, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	return &FileIo{fd: fd}, nil
}

// NewTempFileIO 在 target 所在目录创建临时文件，保证之后的 rename 不跨文件系统
func NewTempFileIO(target string) (*FileIo, error) {
	dir, base := filepath.Split(target)
	if dir == "" {
		dir = "."
	}
	fd, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return nil, err
	}
	if err := fd.Chmod(DataFilePerm); err != nil {
		_ = fd.Close()
		_ = os.Remove(fd.Name())
		return nil, err
	}
	return &FileIo{fd: fd}, nil
}

// FileIo 标准系统文件
type FileIo struct {
	fd *os.File // 系统文件描述符
}

// Read 从文件中读取数据
func (fio *FileIo) Read(b []byte, offset int64) (int, error) {
	return fio.fd.ReadAt(b, offset)
}

// Write 写入字节数据到文件中
func (fio *FileIo) Write(b []byte) (int, error) {
	return fio.fd.Write(b)
}

// Sync 持久化数据
func (fio *FileIo) Sync() error {
	return fio.fd.Sync()
}

// Close 关闭文件
func (fio *FileIo) Close() error {
	return fio.fd.Close()
}

func (fio *FileIo) Size() (int64, error) {
	stat, err := fio.fd.Stat()
	if err != nil {
		return 0, err
	}
	return stat.Size(), nil
}

func (fio *FileIo) Name() string {
	return fio.fd.Name()
}
