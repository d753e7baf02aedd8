package database

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"emogo/internal/domain/model"
)

const (
	TestUsername = "testuser"
	TestPassword = "testpass"
	TestDBName   = "testdb"
)

func setupMongo(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "mongo:latest",
		ExposedPorts: []string{"27017/tcp"},
		Env: map[string]string{
			"MONGO_INITDB_ROOT_USERNAME": TestUsername,
			"MONGO_INITDB_ROOT_PASSWORD": TestPassword,
		},
		WaitingFor: wait.ForLog("Waiting for connections").WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatal("Failed to start MongoDB container:", err)
	}
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatal("Failed to get container host:", err)
	}

	port, err := container.MappedPort(ctx, "27017")
	if err != nil {
		t.Fatal("Failed to get mapped port:", err)
	}

	hostPort := net.JoinHostPort(host, port.Port())
	uri := fmt.Sprintf("mongodb://%s:%s@%s", TestUsername, TestPassword, hostPort)

	clientOpts := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		t.Fatal("Failed to create MongoDB client:", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		t.Fatal("Failed to ping MongoDB:", err)
	}

	return uri
}

func connectTestDB(t *testing.T, uri string) *Database {
	t.Helper()

	db, err := Connect(Config{
		URI:               uri,
		DBName:            TestDBName,
		ConnectionTimeout: 30000,
		QueryTimeout:      30000,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Stop()
	})

	return db
}

func ptrFloat(f float64) *float64 { return &f }
func ptrString(s string) *string  { return &s }

func TestCreateVlog(t *testing.T) {
	t.Parallel()
	db := connectTestDB(t, setupMongo(t))

	writer := NewRecordWriter(db)

	baseVlog := model.Vlog{
		UserID:    "user1",
		VideoURL:  "https://example.com/videos/a.mp4",
		Title:     ptrString("morning walk"),
		Timestamp: time.Now().UTC(),
	}

	tests := []struct {
		name        string
		modify      func(v *model.Vlog)
		expectError string
	}{
		{
			name:        "valid vlog",
			modify:      func(_ *model.Vlog) {},
			expectError: "",
		},
		{
			name: "missing required user_id",
			modify: func(v *model.Vlog) {
				v.UserID = ""
			},
			expectError: "Document failed validation",
		},
		{
			name: "missing required video_url",
			modify: func(v *model.Vlog) {
				v.VideoURL = ""
			},
			expectError: "Document failed validation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			copyVlog := baseVlog
			tt.modify(&copyVlog)

			id, err := writer.CreateVlog(context.Background(), &copyVlog)

			if tt.expectError == "" {
				require.NoError(t, err)

				// The returned id must be a well-formed ObjectID in hex.
				_, err := primitive.ObjectIDFromHex(id)
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.Contains(t, err.Error(), tt.expectError)
			}
		})
	}
}

func TestCreateSentimentSchemaBounds(t *testing.T) {
	t.Parallel()
	db := connectTestDB(t, setupMongo(t))

	writer := NewRecordWriter(db)

	baseSentiment := model.Sentiment{
		UserID:    "user1",
		Emotion:   "happy",
		Intensity: ptrFloat(0.8),
		Timestamp: time.Now().UTC(),
	}

	tests := []struct {
		name        string
		modify      func(s *model.Sentiment)
		expectError string
	}{
		{
			name:        "valid sentiment",
			modify:      func(_ *model.Sentiment) {},
			expectError: "",
		},
		{
			name: "intensity above schema maximum",
			modify: func(s *model.Sentiment) {
				s.Intensity = ptrFloat(1.5)
			},
			expectError: "Document failed validation",
		},
		{
			name: "missing required emotion",
			modify: func(s *model.Sentiment) {
				s.Emotion = ""
			},
			expectError: "Document failed validation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			copySentiment := baseSentiment
			tt.modify(&copySentiment)

			_, err := writer.CreateSentiment(context.Background(), &copySentiment)

			if tt.expectError == "" {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.Contains(t, err.Error(), tt.expectError)
			}
		})
	}
}

func TestCreateGPSSchemaBounds(t *testing.T) {
	t.Parallel()
	db := connectTestDB(t, setupMongo(t))

	writer := NewRecordWriter(db)

	valid := model.GPSCoordinate{
		UserID:    "user1",
		Latitude:  ptrFloat(35.6762),
		Longitude: ptrFloat(139.6503),
		Altitude:  ptrFloat(40.0),
		Timestamp: time.Now().UTC(),
	}

	_, err := writer.CreateGPS(context.Background(), &valid)
	require.NoError(t, err)

	outOfRange := valid
	outOfRange.Latitude = ptrFloat(95.0)

	_, err = writer.CreateGPS(context.Background(), &outOfRange)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Document failed validation")
}
