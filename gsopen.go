package gdcmatrix

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
)

// MaybeOpenFromGoogleStorage opens path for forward-only reading. If path has
// a gs:// prefix and a non-nil client is passed, it is treated as a Google
// Storage object; otherwise it is opened from the local filesystem. Every
// input in this pipeline is consumed exactly once, front to back, so unlike a
// local file the returned reader makes no promise of seekability.
func MaybeOpenFromGoogleStorage(path string, client *storage.Client) (io.ReadCloser, error) {
	if client != nil && strings.HasPrefix(path, "gs://") {
		pathParts := strings.SplitN(strings.TrimPrefix(path, "gs://"), "/", 2)
		if len(pathParts) != 2 {
			return nil, pfx.Err(fmt.Errorf("expected gs://bucket/path, but got %s", path))
		}
		bucketName := pathParts[0]
		pathName := pathParts[1]

		rdr, err := client.Bucket(bucketName).Object(pathName).NewReader(context.Background())
		if err != nil {
			return nil, pfx.Err(fmt.Errorf("%s: %s", path, err))
		}

		return rdr, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}

	return f, nil
}
