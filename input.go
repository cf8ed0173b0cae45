package wordfreq

import (
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
)

// ReadFile memory-maps path read-only, returning the mapped bytes and a
// closer that releases the mapping. Zero-length files skip the mmap, which
// cannot map an empty region.
func ReadFile(path string) (*[]byte, func() error, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening `%s`: %w", path, err)
	}
	info, statErr := file.Stat()
	if statErr != nil {
		file.Close()
		return nil, nil, fmt.Errorf("stat `%s`: %w", path, statErr)
	}
	if info.Size() == 0 {
		empty := make([]byte, 0)
		return &empty, file.Close, nil
	}
	fileMmap, mmapErr := mmap.Map(file, mmap.RDONLY, 0)
	if mmapErr != nil {
		file.Close()
		return nil, nil, fmt.Errorf("mapping `%s`: %w", path, mmapErr)
	}
	mmapBytes := (*[]byte)(&fileMmap)
	closer := func() error {
		unmapErr := fileMmap.Unmap()
		if closeErr := file.Close(); unmapErr == nil {
			unmapErr = closeErr
		}
		return unmapErr
	}
	return mmapBytes, closer, nil
}
