package jetstream

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subvault/subvault-api/internal/messaging"
	"github.com/subvault/subvault-api/internal/mocks"
)

func testConfig() Config {
	return Config{
		URL:            "nats://localhost:4222",
		StreamName:     "SUBVAULT",
		SubjectPrefix:  "subvault.events",
		ConnectionName: "subvault-api-test",
		PublishTimeout: time.Second,
		Workers:        2,
		QueueSize:      10,
	}
}

func TestNewPublisher_EnsuresStream(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	nc := mocks.NewMockNatsConn(ctrl)
	js := mocks.NewMockJetStream(ctrl)
	natsJS := mocks.NewMockNatsJetStream(ctrl)

	cfg := testConfig()
	natsJS.EXPECT().Connect(cfg.URL, gomock.Any()).Return(nc, js, nil)
	js.EXPECT().EnsureStream(gomock.Any(), "SUBVAULT", []string{"subvault.events.>"}).Return(nil)
	nc.EXPECT().Drain().Return(nil)

	pub, err := NewPublisher(context.Background(), cfg, natsJS)
	require.NoError(t, err)
	pub.Close()
}

func TestNewPublisher_StreamFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	nc := mocks.NewMockNatsConn(ctrl)
	js := mocks.NewMockJetStream(ctrl)
	natsJS := mocks.NewMockNatsJetStream(ctrl)

	cfg := testConfig()
	natsJS.EXPECT().Connect(cfg.URL, gomock.Any()).Return(nc, js, nil)
	js.EXPECT().EnsureStream(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("not authorized"))
	nc.EXPECT().Close()

	_, err := NewPublisher(context.Background(), cfg, natsJS)
	assert.Error(t, err)
}

func TestNewPublisher_ConnectFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	natsJS := mocks.NewMockNatsJetStream(ctrl)
	natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(nil, nil, errors.New("no servers available"))

	_, err := NewPublisher(context.Background(), testConfig(), natsJS)
	assert.Error(t, err)
}

func TestPublisher_Publish(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	nc := mocks.NewMockNatsConn(ctrl)
	js := mocks.NewMockJetStream(ctrl)

	ownerID := uuid.NewString()
	vaultID := uuid.NewString()
	event := messaging.NewEvent(messaging.EventVaultCreated, ownerID, vaultID,
		time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC), map[string]interface{}{"handle": "rent"})

	var (
		mu       sync.Mutex
		received []byte
	)
	js.EXPECT().Publish(gomock.Any(), "subvault.events.vault.created", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, data []byte, _ ...jetstream.PublishOpt) (*jetstream.PubAck, error) {
			mu.Lock()
			defer mu.Unlock()
			received = data
			return &jetstream.PubAck{Stream: "SUBVAULT", Sequence: 1}, nil
		})
	nc.EXPECT().Drain().Return(nil)

	pub := newPublisher(nc, js, testConfig())
	require.NoError(t, pub.Publish(context.Background(), event))
	pub.Close()

	mu.Lock()
	defer mu.Unlock()
	require.NotNil(t, received)

	var decoded messaging.Event
	require.NoError(t, json.Unmarshal(received, &decoded))
	assert.Equal(t, event.ID, decoded.ID)
	assert.Equal(t, messaging.EventVaultCreated, decoded.Type)
	assert.Equal(t, ownerID, decoded.OwnerID)
	assert.Equal(t, vaultID, decoded.SubjectID)
	assert.Equal(t, "rent", decoded.Data["handle"])
}

func TestPublisher_PublishFailureIsLogged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	nc := mocks.NewMockNatsConn(ctrl)
	js := mocks.NewMockJetStream(ctrl)

	js.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))
	nc.EXPECT().Drain().Return(errors.New("already closed"))
	nc.EXPECT().Close()

	pub := newPublisher(nc, js, testConfig())
	event := messaging.NewEvent(messaging.EventPaymentDeleted, uuid.NewString(), uuid.NewString(), time.Now(), nil)

	// delivery errors do not surface to the caller
	assert.NoError(t, pub.Publish(context.Background(), event))
	pub.Close()
}
