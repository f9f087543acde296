package gdcmatrix

import (
	"bufio"
	"compress/bzip2"
	"compress/gzip"
	"compress/zlib"
	"io"

	"github.com/krolaw/zipstream"
	"github.com/xi2/xz"
)

type DataType byte

const (
	DataTypeNoCompression DataType = iota
	DataTypeGzip
	DataTypeZip
	DataTypeXZ
	DataTypeZ
	DataTypeBZip2
)

// Byte code signatures from https://stackoverflow.com/a/19127748/199475
var byteCodeSigs = map[DataType][]byte{
	DataTypeGzip:  {0x1f, 0x8b, 0x08},
	DataTypeZip:   {0x50, 0x4b, 0x03, 0x04},
	DataTypeXZ:    {0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00},
	DataTypeZ:     {0x1f, 0x9d},
	DataTypeBZip2: {0x42, 0x5a, 0x68},
}

// MaybeDecompress sniffs the leading bytes of r against known compression
// signatures and, on a match, wraps r in the corresponding decompressor. A
// stream with no recognized signature is passed through untouched. Sniffing
// uses Peek rather than Read+Seek because Google Storage readers cannot seek
// back to the start.
func MaybeDecompress(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)

	buff, err := br.Peek(6)
	if err != nil && err != io.EOF {
		return nil, err
	}

	switch detectDataType(buff) {
	case DataTypeGzip:
		return gzip.NewReader(br)
	case DataTypeZip:
		return zipstream.NewReader(br), nil
	case DataTypeBZip2:
		return bzip2.NewReader(br), nil
	case DataTypeXZ:
		return xz.NewReader(br, 0)
	case DataTypeZ:
		return zlib.NewReader(br)
	}

	return br, nil
}

func detectDataType(buff []byte) DataType {
Outer:
	for dt, sig := range byteCodeSigs {
		if len(buff) < len(sig) {
			continue
		}
		for position := range sig {
			if buff[position] != sig[position] {
				continue Outer
			}
		}
		return dt
	}

	return DataTypeNoCompression
}
