package settings

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"jsonplaceholder/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStore_FileBackend(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "app_settings.pb")
	s := NewStore(NewFileBackend(path), nil)

	t.Run("DefaultsWhenAbsent", func(t *testing.T) {
		got, err := s.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, Default(), got)
	})

	t.Run("UpdatePersists", func(t *testing.T) {
		got, err := s.SetRefreshPeriod(ctx, 45)
		require.NoError(t, err)
		assert.Equal(t, int32(45), got.RefreshPeriodMinutes)

		reopened := NewStore(NewFileBackend(path), nil)
		loaded, err := reopened.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, int32(45), loaded.RefreshPeriodMinutes)
	})

	t.Run("RejectsInvalid", func(t *testing.T) {
		got, err := s.SetRefreshPeriod(ctx, 0)
		assert.Error(t, err)
		assert.Equal(t, int32(45), got.RefreshPeriodMinutes)
	})

	t.Run("CorruptFallsBackToDefault", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte{0xff, 0xff}, 0o644))
		got, err := s.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, Default(), got)
	})

	t.Run("Reset", func(t *testing.T) {
		_, err := s.SetRefreshPeriod(ctx, 90)
		require.NoError(t, err)
		require.NoError(t, s.Reset(ctx))
		require.NoError(t, s.Reset(ctx))

		got, err := s.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, Default(), got)
		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr))
	})
}

func TestStore_ObjectBackend(t *testing.T) {
	ctx := context.Background()

	t.Run("MissingKeyIsDefault", func(t *testing.T) {
		m := mocks.NewClient(t)
		m.On("GetObject", ctx, "bucket", "app_settings.pb", minio.GetObjectOptions{}).
			Return(nil, mocks.NotFound(minio.NoSuchKey))

		got, err := NewStore(NewObjectBackend(m, "bucket", "app_settings.pb"), nil).Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, Default(), got)
	})

	t.Run("ReadsStoredDocument", func(t *testing.T) {
		data, err := Marshal(Settings{RefreshPeriodMinutes: 5})
		require.NoError(t, err)

		m := mocks.NewClient(t)
		m.On("GetObject", ctx, "bucket", "app_settings.pb", minio.GetObjectOptions{}).
			Return(mocks.Object(data), nil)

		got, err := NewStore(NewObjectBackend(m, "bucket", "app_settings.pb"), nil).Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, int32(5), got.RefreshPeriodMinutes)
	})

	t.Run("UpdateWritesObject", func(t *testing.T) {
		m := mocks.NewClient(t)
		m.On("GetObject", ctx, "bucket", "app_settings.pb", minio.GetObjectOptions{}).
			Return(nil, mocks.NotFound(minio.NoSuchBucket))
		m.On("BucketExists", ctx, "bucket").Return(false, nil)
		m.On("MakeBucket", ctx, "bucket", minio.MakeBucketOptions{}).Return(nil)
		m.On("PutObject", ctx, "bucket", "app_settings.pb", mock.Anything, int64(2), mock.Anything).
			Return(minio.UploadInfo{}, nil)

		got, err := NewStore(NewObjectBackend(m, "bucket", "app_settings.pb"), nil).SetRefreshPeriod(ctx, 30)
		require.NoError(t, err)
		assert.Equal(t, int32(30), got.RefreshPeriodMinutes)
	})

	t.Run("BackendFailure", func(t *testing.T) {
		m := mocks.NewClient(t)
		m.On("GetObject", ctx, "bucket", "app_settings.pb", minio.GetObjectOptions{}).
			Return(nil, errors.New("connection refused"))

		_, err := NewStore(NewObjectBackend(m, "bucket", "app_settings.pb"), nil).Load(ctx)
		assert.ErrorContains(t, err, "connection refused")
	})

	t.Run("RemoveIgnoresMissing", func(t *testing.T) {
		m := mocks.NewClient(t)
		m.On("RemoveObject", ctx, "bucket", "app_settings.pb", minio.RemoveObjectOptions{}).
			Return(mocks.NotFound(minio.NoSuchKey))

		assert.NoError(t, NewStore(NewObjectBackend(m, "bucket", "app_settings.pb"), nil).Reset(ctx))
	})
}
