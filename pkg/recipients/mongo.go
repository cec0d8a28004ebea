package recipients

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/meridianpm/labelpress/pkg/label"
)

// MongoConfig locates the address collection in the practice-management
// database.
type MongoConfig struct {
	URI        string
	Database   string
	Collection string
}

// MongoProvider reads recipient addresses from MongoDB. The documents are
// expected to carry the label.Data field names (contact, address1, ...);
// extra fields are ignored.
type MongoProvider struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoProvider connects to MongoDB and verifies the connection.
func NewMongoProvider(ctx context.Context, cfg MongoConfig) (*MongoProvider, error) {
	if cfg.Collection == "" {
		cfg.Collection = "referral_sources"
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.URI, err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping %s: %w", cfg.URI, err)
	}
	return &MongoProvider{
		client: client,
		coll:   client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

// List fetches every address document in the collection.
func (p *MongoProvider) List(ctx context.Context) ([]label.Data, error) {
	cur, err := p.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find: %w", err)
	}
	defer cur.Close(ctx)

	var recs []label.Data
	if err := cur.All(ctx, &recs); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return filter(recs), nil
}

// Close disconnects from MongoDB.
func (p *MongoProvider) Close(ctx context.Context) error {
	return p.client.Disconnect(ctx)
}

var _ Provider = (*MongoProvider)(nil)
