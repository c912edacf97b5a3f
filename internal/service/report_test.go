package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"waste-management-api-server/internal/apperr"
)

type fakeUploader struct {
	key         string
	contentType string
	body        []byte
	err         error
}

func (f *fakeUploader) UploadFile(_ context.Context, body io.Reader, key, contentType string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.key, f.contentType = key, contentType
	f.body, _ = io.ReadAll(body)
	return "https://cdn.example.com/" + key, nil
}

func TestReportService_ExportMonthly(t *testing.T) {
	ctx := context.Background()
	deps := newTestDeps(t)
	collections := NewCollectionService(deps)
	recordAt(t, collections, "USER1", "BIN1", time.Date(2024, time.May, 2, 9, 0, 0, 0, time.UTC))
	up := &fakeUploader{}

	report, err := NewReportService(deps, collections, up).ExportMonthly(ctx, "BIN1")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(up.key, "reports/bins/BIN1/"))
	assert.True(t, strings.HasSuffix(up.key, ".json"))
	assert.Equal(t, "application/json", up.contentType)
	assert.Equal(t, "https://cdn.example.com/"+up.key, report.URL)
	assert.Equal(t, map[string]int64{"May": 1, "Total": 1}, report.Counts)

	var uploaded map[string]any
	require.NoError(t, json.Unmarshal(up.body, &uploaded))
	assert.Equal(t, "BIN1", uploaded["binId"])
	assert.NotContains(t, uploaded, "url")
}

func TestReportService_UploadFailure(t *testing.T) {
	deps := newTestDeps(t)
	up := &fakeUploader{err: errors.New("access denied")}

	_, err := NewReportService(deps, NewCollectionService(deps), up).ExportMonthly(context.Background(), "BIN1")
	assert.Equal(t, apperr.KindInternal, apperr.KindOf(err))
}
