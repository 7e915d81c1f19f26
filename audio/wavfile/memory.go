package wavfile

import (
	"errors"
	"io"

	"github.com/cwbudde/algo-sfx/sfx/synth"
)

// Bytes encodes buf into memory, for destinations that cannot seek.
func Bytes(buf synth.Buffer, bitDepth int) ([]byte, error) {
	var w seekBuffer
	if err := Encode(&w, buf, bitDepth); err != nil {
		return nil, err
	}

	return w.data, nil
}

// seekBuffer is an in-memory io.WriteSeeker. The encoder seeks back to patch
// chunk sizes once the data length is known.
type seekBuffer struct {
	data []byte
	pos  int
}

func (b *seekBuffer) Write(p []byte) (int, error) {
	if end := b.pos + len(p); end > len(b.data) {
		b.data = append(b.data, make([]byte, end-len(b.data))...)
	}

	n := copy(b.data[b.pos:], p)
	b.pos += n

	return n, nil
}

func (b *seekBuffer) Seek(offset int64, whence int) (int64, error) {
	var abs int64

	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = int64(b.pos) + offset
	case io.SeekEnd:
		abs = int64(len(b.data)) + offset
	default:
		return 0, errors.New("wavfile: invalid whence")
	}

	if abs < 0 {
		return 0, errors.New("wavfile: negative position")
	}

	b.pos = int(abs)

	return abs, nil
}
