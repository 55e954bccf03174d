package upload_test

import (
	"bytes"
	"io"
	"log/slog"
	"mime/multipart"
	httpgo "net/http"
	"net/http/httptest"
	"testing"

	"github.com/Charlelielataste/escoffier-gallery/internal/adapters/handlers/http/chi"
	"github.com/Charlelielataste/escoffier-gallery/internal/adapters/handlers/http/chi/v1/upload"
	"github.com/Charlelielataste/escoffier-gallery/internal/config"
	"github.com/Charlelielataste/escoffier-gallery/internal/core/domain"
	uploadservice "github.com/Charlelielataste/escoffier-gallery/internal/core/service/upload"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

var uploadConfig = config.UploadConfig{MaxRequestBodyBytes: 1 << 20}

func newRouter(service *uploadservice.MockUploadService) httpgo.Handler {
	handler := upload.NewUploadHandlerV1(service, uploadConfig, discardLogger)
	return chi.NewRouter(discardLogger, nil, nil, chi.Handlers{Upload: handler}, config.ServerConfig{}, config.Env{Env: "test"})
}

type formFile struct {
	field   string
	name    string
	content []byte
}

func multipartRequest(t *testing.T, target, kind string, files ...formFile) *httpgo.Request {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if kind != "" {
		require.NoError(t, writer.WriteField("type", kind))
	}
	for _, f := range files {
		part, err := writer.CreateFormFile(f.field, f.name)
		require.NoError(t, err)
		_, err = part.Write(f.content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(httpgo.MethodPost, target, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func uploaded(publicID, filename string, size int64) domain.UploadResult {
	return domain.UploadResult{
		Asset: domain.MediaAsset{
			PublicID:  publicID,
			Kind:      domain.MediaKindImage,
			Format:    "jpg",
			SecureURL: "https://cdn/" + publicID + ".jpg",
		},
		Bytes:            size,
		OriginalFilename: filename,
	}
}
