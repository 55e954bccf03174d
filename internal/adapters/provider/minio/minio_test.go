package minio_test

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/Charlelielataste/escoffier-gallery/internal/adapters/provider/minio"
	"github.com/Charlelielataste/escoffier-gallery/internal/config"
	"github.com/Charlelielataste/escoffier-gallery/internal/core/domain"
	miniogo "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testAccessKey = "minioadmin"
	testSecretKey = "minioadmin"
	testBucket    = "test-bucket"
	testFolder    = "escoffier-event"
)

func setupContainer(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "minio/minio:latest",
		ExposedPorts: []string{"9000/tcp"},
		Env: map[string]string{
			"MINIO_ROOT_USER":     testAccessKey,
			"MINIO_ROOT_PASSWORD": testSecretKey,
		},
		Cmd:        []string{"server", "/data"},
		WaitingFor: wait.ForHTTP("/minio/health/live").WithPort("9000"),
	}
	minioContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := minioContainer.Host(ctx)
	require.NoError(t, err)

	port, err := minioContainer.MappedPort(ctx, "9000")
	require.NoError(t, err)

	endpoint := fmt.Sprintf("%s:%s", host, port.Port())

	cleanup := func() {
		if err := minioContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	}
	time.Sleep(500 * time.Millisecond) // wait for container to be up
	return endpoint, cleanup
}

func createAdapter(t *testing.T, endpoint string, ctx context.Context) *minio.Adapter {
	t.Helper()
	cfg := config.MinioConfig{
		Endpoint:                  endpoint,
		AccessKey:                 testAccessKey,
		SecretKey:                 testSecretKey,
		BucketName:                testBucket,
		UseSSL:                    false,
		UploadPresignedDuration:   15 * time.Minute,
		DownloadSignedURLDuration: 15 * time.Minute,
		StorageLimit:              1 << 30,
	}

	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	adapter, err := minio.NewAdapter(ctx, cfg, testFolder, discardLogger)

	require.NoError(t, err)
	require.NotNil(t, adapter)

	return adapter
}

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestUploadAndSearch_NewestFirst(t *testing.T) {
	// Arrange
	endpoint, cleanup := setupContainer(t)
	defer cleanup()
	ctx := context.Background()
	adapter := createAdapter(t, endpoint, ctx)

	uploaded := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		content := pngBytes(t, 640, 480)
		res, err := adapter.Upload(ctx, testFolder, domain.UploadRequest{
			Filename: fmt.Sprintf("dish-%d.png", i),
			Kind:     domain.MediaKindImage,
			Size:     int64(len(content)),
			Body:     bytes.NewReader(content),
		})
		require.NoError(t, err)
		assert.NotEmpty(t, res.Asset.GridURL)
		uploaded = append(uploaded, res.Asset.PublicID)
		time.Sleep(10 * time.Millisecond)
	}

	// Act
	first, err := adapter.Search(ctx, domain.SearchQuery{Folder: testFolder, Kind: domain.MediaKindImage, MaxResults: 2})
	require.NoError(t, err)
	second, err := adapter.Search(ctx, domain.SearchQuery{Folder: testFolder, Kind: domain.MediaKindImage, MaxResults: 2, Cursor: first.NextCursor})
	require.NoError(t, err)

	// Assert
	require.Len(t, first.Assets, 2)
	assert.Equal(t, uploaded[2], first.Assets[0].PublicID)
	assert.Equal(t, uploaded[1], first.Assets[1].PublicID)
	assert.NotEmpty(t, first.NextCursor)

	require.Len(t, second.Assets, 1)
	assert.Equal(t, uploaded[0], second.Assets[0].PublicID)
	assert.Empty(t, second.NextCursor)

	for _, asset := range append(first.Assets, second.Assets...) {
		assert.True(t, strings.HasPrefix(asset.PublicID, testFolder+"/"))
		assert.Equal(t, "png", asset.Format)
		assert.False(t, adapter.IsThumbnailKey(asset.PublicID))
	}
}

func TestPresignUpload_ThenRenderThumbnail(t *testing.T) {
	// Arrange
	endpoint, cleanup := setupContainer(t)
	defer cleanup()
	ctx := context.Background()
	adapter := createAdapter(t, endpoint, ctx)
	content := pngBytes(t, 800, 600)

	// Act
	direct, err := adapter.PresignUpload(ctx, testFolder, domain.MediaKindImage, "plate.png")

	// Assert
	require.NoError(t, err)
	assert.True(t, direct.ExpiresAt.After(time.Now()))
	assert.Equal(t, "image/png", direct.Headers["Content-Type"])

	// Act
	req, err := http.NewRequest(http.MethodPut, direct.URL, bytes.NewReader(content))
	require.NoError(t, err)
	for key, value := range direct.Headers {
		req.Header.Set(key, value)
	}
	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	// Assert
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Act
	thumbKey, err := adapter.RenderThumbnail(ctx, direct.PublicID)

	// Assert
	require.NoError(t, err)
	assert.True(t, adapter.IsThumbnailKey(thumbKey))
	assert.True(t, strings.HasSuffix(thumbKey, ".jpg"))

	usage, err := adapter.Usage(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), usage.Resources)
	assert.Equal(t, int64(1), usage.DerivedResources)
	assert.Greater(t, usage.Storage.Used, float64(0))
	assert.Equal(t, float64(1<<30), usage.Storage.Limit)
}

func TestUsage_OnlyCountsGalleryFolder(t *testing.T) {
	// Arrange
	endpoint, cleanup := setupContainer(t)
	defer cleanup()
	ctx := context.Background()
	adapter := createAdapter(t, endpoint, ctx)

	client, err := miniogo.New(endpoint, &miniogo.Options{
		Creds: credentials.NewStaticV4(testAccessKey, testSecretKey, ""),
	})
	require.NoError(t, err)
	put := func(key, content string) {
		_, err := client.PutObject(ctx, testBucket, key, strings.NewReader(content), int64(len(content)), miniogo.PutObjectOptions{})
		require.NoError(t, err)
	}
	put(testFolder+"/video/clip.mp4", "gallery bytes")
	put("other-event/image/x.jpg", "another tenant")
	put(testFolder+"-archive/image/y.jpg", "sibling prefix")

	// Act
	usage, err := adapter.Usage(ctx)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(1), usage.Resources)
	assert.Equal(t, float64(len("gallery bytes")), usage.Storage.Used)
}

func TestSearch_EmptyFolder(t *testing.T) {
	// Arrange
	endpoint, cleanup := setupContainer(t)
	defer cleanup()
	ctx := context.Background()
	adapter := createAdapter(t, endpoint, ctx)

	// Act
	res, err := adapter.Search(ctx, domain.SearchQuery{Folder: testFolder, Kind: domain.MediaKindVideo, MaxResults: 4})

	// Assert
	require.NoError(t, err)
	assert.Empty(t, res.Assets)
	assert.Empty(t, res.NextCursor)
}

func TestSignParameters_Unsupported(t *testing.T) {
	// Arrange
	endpoint, cleanup := setupContainer(t)
	defer cleanup()
	ctx := context.Background()
	adapter := createAdapter(t, endpoint, ctx)

	// Act
	_, err := adapter.SignParameters(ctx, map[string]string{"timestamp": "1"})

	// Assert
	assert.ErrorIs(t, err, domain.ErrUnsupported)
	assert.Equal(t, "minio", adapter.Name())
}
