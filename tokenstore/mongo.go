package tokenstore

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CollectionClientState holds one document per persisted key.
const CollectionClientState = "client_state"

type stateDoc struct {
	Key       string        `bson:"_id"`
	Value     bson.RawValue `bson:"value"`
	UpdatedAt time.Time     `bson:"updated_at"`
}

// Mongo stores each key as its own document in the client_state collection.
type Mongo struct {
	mu  sync.RWMutex
	col *mongo.Collection
}

func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{col: db.Collection(CollectionClientState)}
}

func (m *Mongo) Load(ctx context.Context) (Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cur, err := m.col.Find(ctx, bson.M{"_id": bson.M{"$in": bson.A{KeyToken, KeyAuthenticated}}})
	if err != nil {
		return Session{}, err
	}
	defer cur.Close(ctx)

	var s Session
	for cur.Next(ctx) {
		var doc stateDoc
		if err := cur.Decode(&doc); err != nil {
			return Session{}, err
		}
		switch doc.Key {
		case KeyToken:
			s.Token, _ = doc.Value.StringValueOK()
		case KeyAuthenticated:
			s.Authenticated, _ = doc.Value.BooleanOK()
		}
	}
	return s, cur.Err()
}

func (m *Mongo) Save(ctx context.Context, s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	models := []mongo.WriteModel{
		mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": KeyToken}).
			SetUpdate(bson.M{"$set": bson.M{"value": s.Token, "updated_at": now}}).
			SetUpsert(true),
		mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": KeyAuthenticated}).
			SetUpdate(bson.M{"$set": bson.M{"value": s.Authenticated, "updated_at": now}}).
			SetUpsert(true),
	}
	_, err := m.col.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(true))
	return err
}

func (m *Mongo) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, err := m.col.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": bson.A{KeyToken, KeyAuthenticated}}})
	return err
}
