package blob_test

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/aussiebroadwan/disclosure/internal/disclosure/blob"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	minioImage  = "minio/minio:RELEASE.2025-04-22T22-12-26Z"
	minioUser   = "disclosure"
	minioSecret = "disclosure-secret"
)

func setupMinio(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        minioImage,
		ExposedPorts: []string{"9000/tcp"},
		Cmd:          []string{"server", "/data"},
		Env: map[string]string{
			"MINIO_ROOT_USER":     minioUser,
			"MINIO_ROOT_PASSWORD": minioSecret,
		},
		WaitingFor: wait.ForHTTP("/minio/health/live").WithPort("9000/tcp"),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "9000")
	require.NoError(t, err)

	return fmt.Sprintf("%s:%s", host, port.Port())
}

func TestS3Gateway(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping minio integration test in short mode")
	}

	ctx := context.Background()
	endpoint := setupMinio(t)

	gw, err := blob.NewS3(blob.S3Config{
		Endpoint:  endpoint,
		AccessKey: minioUser,
		SecretKey: minioSecret,
		Bucket:    "disclosure-test",
	})
	require.NoError(t, err)

	require.NoError(t, gw.EnsureBucket(ctx))
	require.NoError(t, gw.EnsureBucket(ctx), "ensuring twice is a no-op")
	require.NoError(t, gw.Ping(ctx))

	t.Run("put and get", func(t *testing.T) {
		body := "%PDF-1.7 test"
		require.NoError(t, gw.Put(ctx, "p1/form2/1.pdf", strings.NewReader(body), int64(len(body)), "application/pdf"))

		obj, err := gw.Get(ctx, "p1/form2/1.pdf")
		require.NoError(t, err)
		defer obj.Body.Close()

		data, err := io.ReadAll(obj.Body)
		require.NoError(t, err)
		require.Equal(t, body, string(data))
		require.Equal(t, "application/pdf", obj.ContentType)
	})

	t.Run("missing key", func(t *testing.T) {
		_, err := gw.Get(ctx, "p1/nope")
		require.ErrorIs(t, err, blob.ErrNotFound)
	})

	t.Run("delete batch", func(t *testing.T) {
		var keys []string
		for i := range 5 {
			key := fmt.Sprintf("p2/%d.pdf", i)
			keys = append(keys, key)
			require.NoError(t, gw.Put(ctx, key, strings.NewReader("x"), 1, "application/pdf"))
		}

		for _, batch := range blob.Chunk(append(keys, "p2/never-existed"), 2) {
			require.NoError(t, gw.DeleteBatch(ctx, batch))
		}

		for _, key := range keys {
			_, err := gw.Get(ctx, key)
			require.ErrorIs(t, err, blob.ErrNotFound)
		}
	})
}
