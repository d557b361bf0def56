package repository

import (
	"context"
	"errors"

	"github.com/daehokang/roomcast/internal/domain"
	"github.com/daehokang/roomcast/internal/persistence/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type roomRepository struct {
	db *mongo.Database
}

func NewRoomRepository(database *mongo.Database) domain.RoomRepository {
	return &roomRepository{
		db: database,
	}
}

func (r *roomRepository) Create(ctx context.Context, room *domain.Room) error {
	collection := r.db.Collection(db.RoomsCollection)

	_, err := collection.InsertOne(ctx, room)
	return err
}

func (r *roomRepository) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	collection := r.db.Collection(db.RoomsCollection)

	var room domain.Room
	err := collection.FindOne(ctx, bson.M{"_id": id}).Decode(&room)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrRoomNotFound
	}
	if err != nil {
		return nil, err
	}

	return &room, nil
}

func (r *roomRepository) FindAll(ctx context.Context) ([]domain.Room, error) {
	collection := r.db.Collection(db.RoomsCollection)

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rooms []domain.Room
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, err
	}

	return rooms, nil
}

// FindOccupied returns the room whose member set contains userID, or
// (nil, nil) when there is none. A second match means the one-room-per-user
// invariant was violated upstream; the oldest room is returned along with
// domain.ErrPresenceConflict so the caller can log the anomaly and move on.
func (r *roomRepository) FindOccupied(ctx context.Context, userID string) (*domain.Room, error) {
	collection := r.db.Collection(db.RoomsCollection)

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}}).
		SetLimit(2)

	cursor, err := collection.Find(ctx, bson.M{"members": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rooms []domain.Room
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, err
	}

	switch len(rooms) {
	case 0:
		return nil, nil
	case 1:
		return &rooms[0], nil
	default:
		return &rooms[0], domain.ErrPresenceConflict
	}
}

func (r *roomRepository) Join(ctx context.Context, roomID, userID string) (*domain.Room, error) {
	return r.updateMembers(ctx, roomID, bson.M{"$addToSet": bson.M{"members": userID}})
}

func (r *roomRepository) Leave(ctx context.Context, roomID, userID string) (*domain.Room, error) {
	return r.updateMembers(ctx, roomID, bson.M{"$pull": bson.M{"members": userID}})
}

func (r *roomRepository) updateMembers(ctx context.Context, roomID string, update bson.M) (*domain.Room, error) {
	collection := r.db.Collection(db.RoomsCollection)

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var room domain.Room
	err := collection.FindOneAndUpdate(ctx, bson.M{"_id": roomID}, update, opts).Decode(&room)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrRoomNotFound
	}
	if err != nil {
		return nil, err
	}

	return &room, nil
}

func (r *roomRepository) Delete(ctx context.Context, roomID string) error {
	collection := r.db.Collection(db.RoomsCollection)

	res, err := collection.DeleteOne(ctx, bson.M{"_id": roomID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrRoomNotFound
	}

	return nil
}

func (r *roomRepository) EnsureIndexes(ctx context.Context) error {
	collection := r.db.Collection(db.RoomsCollection)

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "members", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "owner", Value: 1}},
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
