package fio

import (
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// EnsureParentDir 结果文件的父目录不存在时逐级创建
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if stat, err := os.Stat(dir); err == nil {
		if !stat.IsDir() {
			return &os.PathError{Op: "mkdir", Path: dir, Err: os.ErrExist}
		}
		return nil
	}
	return os.MkdirAll(dir, DirPerm)
}

// LockPath 结果文件对应的锁文件
func LockPath(path string) string {
	return path + ".lock"
}

// WriteFileAtomic 先写临时文件再重命名，失败时不会留下不完整的结果文件。
// 写入期间持有 <path>.lock，同一结果路径上的并发写入会被串行化。
// 锁文件不删除，删除后新进程会锁到另一个 inode，与仍在等待旧文件的进程同时持锁。
func WriteFileAtomic(path string, data []byte) (err error) {
	lock := flock.New(LockPath(path))
	if err := lock.Lock(); err != nil {
		return err
	}
	defer lock.Unlock()

	ioManager, err := NewIOManager(path, TempFIO)
	if err != nil {
		return err
	}
	tmpName := ioManager.Name()
	closed := false
	defer func() {
		if err != nil {
			if !closed {
				_ = ioManager.Close()
			}
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = ioManager.Write(data); err != nil {
		return err
	}
	if err = ioManager.Sync(); err != nil {
		return err
	}
	closed = true
	if err = ioManager.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
