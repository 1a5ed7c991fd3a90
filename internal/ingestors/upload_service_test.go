package ingestors_test

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"log-insights/internal/ingestors"
	"log-insights/internal/logstores"
	"log-insights/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "test-upload-key"

func newTestService(t *testing.T) (ingestors.UploadService, logstores.LogStore) {
	t.Helper()

	store, err := logstores.NewLogStore(filepath.Join(t.TempDir(), "monitoring.jsonl"))
	require.NoError(t, err)
	return ingestors.NewUploadService(store, testAPIKey), store
}

func TestUploadLog_MissingCredential(t *testing.T) {
	t.Parallel()

	service, store := newTestService(t)

	result, err := service.UploadLog(context.Background(), "", strings.NewReader(`{"path":"/"}`))

	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "ING_1100", svcErr.Code)
	assert.Equal(t, "unauthorized", svcErr.Category)
	assert.Equal(t, 401, svcErr.HttpStatusCode)
	assert.Nil(t, result)

	// No partial write performed.
	assert.False(t, store.Stat(context.Background()).Exists)
}

func TestUploadLog_WrongCredential(t *testing.T) {
	t.Parallel()

	service, _ := newTestService(t)

	_, err := service.UploadLog(context.Background(), "wrong-key", strings.NewReader(`{"path":"/"}`))

	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "ING_1100", svcErr.Code)
}

func TestUploadLog_EmptyBody(t *testing.T) {
	t.Parallel()

	service, _ := newTestService(t)

	_, err := service.UploadLog(context.Background(), testAPIKey, strings.NewReader(""))

	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "ING_1000", svcErr.Code)
	assert.Equal(t, "invalid_argument", svcErr.Category)
}

func TestUploadLog_NilBody(t *testing.T) {
	t.Parallel()

	service, _ := newTestService(t)

	_, err := service.UploadLog(context.Background(), testAPIKey, nil)

	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "ING_1000", svcErr.Code)
}

func TestUploadLog_PayloadTooLarge(t *testing.T) {
	t.Parallel()

	service, _ := newTestService(t)

	large := bytes.NewReader(make([]byte, 8*1024*1024+1))
	_, err := service.UploadLog(context.Background(), testAPIKey, large)

	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "ING_1000", svcErr.Code)
	assert.Contains(t, svcErr.Message, "too large")
}

func TestUploadLog_ScalarPayload(t *testing.T) {
	t.Parallel()

	service, _ := newTestService(t)

	_, err := service.UploadLog(context.Background(), testAPIKey, strings.NewReader(`42`))

	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "ING_1000", svcErr.Code)
}

func TestUploadLog_CountsAcceptedAndRejected(t *testing.T) {
	t.Parallel()

	service, store := newTestService(t)

	payload := `{"timestamp":"2025-12-28T18:00:00Z","path":"/a"}
garbage line
{"timestamp":"2025-12-28T18:01:00Z","path":"/b"}`

	result, err := service.UploadLog(context.Background(), testAPIKey, strings.NewReader(payload))
	require.NoError(t, err)
	assert.Equal(t, 2, result.AcceptedCount)
	assert.Equal(t, 1, result.RejectedCount)
	assert.Equal(t, store.Path(), result.Path)

	stat := store.Stat(context.Background())
	assert.Equal(t, 2, stat.TotalLines)
}

func TestUploadLog_AppendsAcrossUploads(t *testing.T) {
	t.Parallel()

	service, store := newTestService(t)
	ctx := context.Background()

	_, err := service.UploadLog(ctx, testAPIKey, strings.NewReader(`[{"path":"/a"},{"path":"/b"}]`))
	require.NoError(t, err)
	_, err = service.UploadLog(ctx, testAPIKey, strings.NewReader(`{"path":"/c"}`))
	require.NoError(t, err)

	assert.Equal(t, 3, store.Stat(ctx).TotalLines)
}
