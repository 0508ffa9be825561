package export

import (
	"context"
	"os"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"
)

// PutParquet writes rows to a snappy-compressed parquet file and uploads it.
// The row type's parquet struct tags define the file schema, so an empty
// result set still produces a valid file with the full schema (schema-on-write).
//
// parquet-go writes through its own file abstraction, so rows are staged in a
// temp file and streamed to storage from there.
func PutParquet[T any](ctx context.Context, p ObjectPutter, key string, rows []T) error {
	tmp, err := os.CreateTemp("", "export-*.parquet")
	if err != nil {
		return &SerializationError{Key: key, Err: err}
	}
	tmpName := tmp.Name()
	_ = tmp.Close()
	defer os.Remove(tmpName)

	fw, err := local.NewLocalFileWriter(tmpName)
	if err != nil {
		return &SerializationError{Key: key, Err: err}
	}

	pw, err := writer.NewParquetWriter(fw, new(T), 4)
	if err != nil {
		_ = fw.Close()
		return &SerializationError{Key: key, Err: err}
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY

	for _, row := range rows {
		if err := pw.Write(row); err != nil {
			_ = fw.Close()
			return &SerializationError{Key: key, Err: err}
		}
	}
	if err := pw.WriteStop(); err != nil {
		_ = fw.Close()
		return &SerializationError{Key: key, Err: err}
	}
	if err := fw.Close(); err != nil {
		return &SerializationError{Key: key, Err: err}
	}

	f, err := os.Open(tmpName)
	if err != nil {
		return &SerializationError{Key: key, Err: err}
	}
	defer f.Close()

	return p.Put(ctx, key, "application/octet-stream", f)
}
