package stream

import (
	"io"
)

// maxZeroProgress bounds how many consecutive zero-byte transfers the
// helpers tolerate before giving up.
const maxZeroProgress = 100

// ReadFull reads exactly len(p) bytes from in, looping over short reads.
// It returns io.EOF if no bytes were read before end of data,
// io.ErrUnexpectedEOF if end of data came after a partial read, and
// io.ErrNoProgress if in keeps returning zero bytes without an error.
func ReadFull(in InputStream, p []byte) (int, error) {
	total := 0
	zeros := 0
	for total < len(p) {
		n, err := in.Read(p[total:])
		if n < 0 || n > len(p)-total {
			return total, ErrInvalidCount
		}
		total += n

		if err == io.EOF {
			switch {
			case total == len(p):
				return total, nil
			case total > 0:
				return total, io.ErrUnexpectedEOF
			}
			return total, io.EOF
		}
		if err != nil {
			return total, err
		}

		if n == 0 {
			zeros++
			if zeros >= maxZeroProgress {
				return total, io.ErrNoProgress
			}
			continue
		}
		zeros = 0
	}
	return total, nil
}

// WriteAll writes all of p to out, resubmitting the unwritten remainder
// after every short write. It returns io.ErrShortWrite if out keeps
// accepting zero bytes without an error.
func WriteAll(out OutputStream, p []byte) (int, error) {
	total := 0
	zeros := 0
	for total < len(p) {
		n, err := out.Write(p[total:])
		if n < 0 || n > len(p)-total {
			return total, ErrInvalidCount
		}
		total += n

		if err != nil {
			return total, err
		}

		if n == 0 {
			zeros++
			if zeros >= maxZeroProgress {
				return total, io.ErrShortWrite
			}
			continue
		}
		zeros = 0
	}
	return total, nil
}

// Copy moves data from src to dst through buf until src reports io.EOF.
// Every chunk read is delivered completely with WriteAll. It returns the
// number of bytes delivered; reaching io.EOF is not an error.
func Copy(dst OutputStream, src InputStream, buf []byte) (int64, error) {
	if len(buf) == 0 {
		buf = make([]byte, 32*1024)
	}

	var written int64
	zeros := 0
	for {
		n, rerr := src.Read(buf)
		if n < 0 || n > len(buf) {
			return written, ErrInvalidCount
		}
		if n > 0 {
			zeros = 0
			w, werr := WriteAll(dst, buf[:n])
			written += int64(w)
			if werr != nil {
				return written, werr
			}
		}

		if rerr == io.EOF {
			return written, nil
		}
		if rerr != nil {
			return written, rerr
		}

		if n == 0 {
			zeros++
			if zeros >= maxZeroProgress {
				return written, io.ErrNoProgress
			}
		}
	}
}
