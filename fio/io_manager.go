package fio

const DataFilePerm = 0644

const DirPerm = 0755

type FileIOType = byte

const (
	// ReadFIO 只读打开已有文件
	ReadFIO FileIOType = iota

	// TempFIO 在目标目录下创建临时文件，写完后再重命名
	TempFIO
)

// IOManager 抽象IO管理器，文档读取和结果写入都通过它完成
type IOManager interface {
	// Read 从文件中读取数据
	Read([]byte, int64) (int, error)
	// Write 写入字节数据到文件中
	Write([]byte) (int, error)
	// Sync 持久化数据
	Sync() error
	// Close 关闭文件
	Close() error
	// Size 获取文件大小
	Size() (int64, error)
	// Name 文件路径
	Name() string
}

// NewIOManager 对于 TempFIO，fileName 是最终的目标路径
func NewIOManager(fileName string, ioType FileIOType) (IOManager, error) {
	switch ioType {
	case ReadFIO:
		fio, err := OpenFileIO(fileName)
		if err != nil {
			return nil, err
		}
		return fio, nil
	case TempFIO:
		fio, err := NewTempFileIO(fileName)
		if err != nil {
			return nil, err
		}
		return fio, nil
	default:
		panic("unsupported io type")
	}
}
