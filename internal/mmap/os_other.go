//go:build !unix

package mmap

// Without fork there is no peer that could inherit the mapping.
func osMapShared(size int) ([]byte, func([]byte) error, error) {
	_ = size
	return nil, nil, ErrUnsupported
}

func osAdvise(data []byte, pattern AccessPattern) error {
	_ = data
	_ = pattern
	return nil
}
