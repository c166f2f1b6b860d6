package publication_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/popeskul/pnba-gateway/internal/models"
	"github.com/popeskul/pnba-gateway/internal/publication"
	"github.com/popeskul/pnba-gateway/internal/repository/mocks"
)

var published = models.PublicationEntry{
	PlatformName: "telegram",
	Source:       models.PublicationSourcePlatforms,
	Status:       models.PublicationStatusPublished,
}

func TestRecorder_StartStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := publication.NewRecorder(mocks.NewMockPublicationRepository(ctrl), 4, zap.NewNop())

	assert.Equal(t, publication.ErrRecorderNotRunning, r.Stop(context.Background()))
	require.NoError(t, r.Start())
	assert.Equal(t, publication.ErrRecorderAlreadyRunning, r.Start())
	require.NoError(t, r.Stop(context.Background()))

	// Restart after a clean stop.
	require.NoError(t, r.Start())
	require.NoError(t, r.Stop(context.Background()))
}

func TestRecorder_WritesBufferedEntriesBeforeStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockPublicationRepository(ctrl)
	repo.EXPECT().Create(gomock.Any(), published).Return(nil).Times(3)

	r := publication.NewRecorder(repo, 8, zap.NewNop())
	require.NoError(t, r.Start())

	for i := 0; i < 3; i++ {
		r.Record(published)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, r.Stop(ctx))
}

func TestRecorder_StorageErrorDoesNotStopWorker(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockPublicationRepository(ctrl)
	gomock.InOrder(
		repo.EXPECT().Create(gomock.Any(), published).Return(errors.New("connection refused")),
		repo.EXPECT().Create(gomock.Any(), published).Return(nil),
	)

	r := publication.NewRecorder(repo, 8, zap.NewNop())
	require.NoError(t, r.Start())
	r.Record(published)
	r.Record(published)
	require.NoError(t, r.Stop(context.Background()))
}

func TestRecorder_DropsWhenFull(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockPublicationRepository(ctrl)

	release := make(chan struct{})
	writing := make(chan struct{}, 1)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, entry models.PublicationEntry) error {
			select {
			case writing <- struct{}{}:
			default:
			}
			<-release
			return nil
		},
	).Times(2)

	core, logs := observer.New(zap.WarnLevel)
	r := publication.NewRecorder(repo, 1, zap.New(core))
	require.NoError(t, r.Start())

	// First entry occupies the worker, second fills the buffer.
	r.Record(published)
	<-writing
	r.Record(published)

	done := make(chan struct{})
	go func() {
		r.Record(published)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Record blocked on a full buffer")
	}

	assert.Equal(t, 1, logs.FilterMessage("Publication dropped, buffer full").Len())

	close(release)
	require.NoError(t, r.Stop(context.Background()))
}

func TestRecorder_DropsWhenStopped(t *testing.T) {
	ctrl := gomock.NewController(t)
	core, logs := observer.New(zap.WarnLevel)
	r := publication.NewRecorder(mocks.NewMockPublicationRepository(ctrl), 1, zap.New(core))

	r.Record(published)

	assert.Equal(t, 1, logs.FilterMessage("Publication dropped, recorder not running").Len())
}
