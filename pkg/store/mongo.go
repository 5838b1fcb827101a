package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/PancyStudios/PancySuggestGo/pkg/logger"
	"github.com/PancyStudios/PancySuggestGo/pkg/models"
)

// guildDocument is the MongoDB shape of a guild scope: one document per
// guild in the "guilds" collection, keyed by guild id.
type guildDocument struct {
	GuildID string              `bson:"_id"`
	Config  *models.GuildConfig `bson:"config"`
}

// MongoWriter persists guild scopes to MongoDB, one upsert per mutation.
// Unlike the file backend it only touches the changed scope.
type MongoWriter struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewMongoWriter connects to MongoDB and verifies the connection. A failed
// connection is an error here (unlike the file backend, there is no sane
// empty-state fallback for a configured remote store).
func NewMongoWriter(mongoURL, dbName string) (*MongoWriter, error) {
	logger.System("Conectando a MongoDB para el almacén de sugerencias...", "MongoWriter")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	clientOpts := options.Client().
		ApplyURI(mongoURL).
		SetServerSelectionTimeout(5 * time.Second)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}

	logger.Success("Conectado exitosamente a MongoDB.", "MongoWriter")
	return &MongoWriter{
		client:     client,
		collection: client.Database(dbName).Collection("guilds"),
	}, nil
}

// Load reads every guild document. An empty collection is an empty store.
func (w *MongoWriter) Load() (map[string]*models.GuildConfig, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := w.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = cursor.Close(ctx) }()

	guilds := make(map[string]*models.GuildConfig)
	for cursor.Next(ctx) {
		var doc guildDocument
		if err := cursor.Decode(&doc); err != nil {
			logger.Warn(fmt.Sprintf("Documento de servidor inválido, ignorado: %v", err), "MongoWriter")
			continue
		}
		if doc.Config == nil {
			continue
		}
		if doc.Config.Pending == nil {
			doc.Config.Pending = make(map[string]*models.SuggestionRecord)
		}
		if doc.Config.NextID < 1 {
			doc.Config.NextID = 1
		}
		guilds[doc.GuildID] = doc.Config
	}
	return guilds, cursor.Err()
}

// Persist upserts the changed guild's document. No offline write queue: a
// failed persist is fatal to the operation in progress and never retried.
func (w *MongoWriter) Persist(guilds map[string]*models.GuildConfig, guildID string) error {
	g, ok := guilds[guildID]
	if !ok {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Update().SetUpsert(true)
	_, err := w.collection.UpdateOne(ctx,
		bson.M{"_id": guildID},
		bson.M{"$set": bson.M{"config": g}},
		opts,
	)
	return err
}

// Ping measures the database response time, used by /utils status.
func (w *MongoWriter) Ping() (time.Duration, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	start := time.Now()
	err := w.client.Ping(ctx, readpref.Primary())
	return time.Since(start), err
}

// Disconnect closes the MongoDB connection.
func (w *MongoWriter) Disconnect() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return w.client.Disconnect(ctx)
}
