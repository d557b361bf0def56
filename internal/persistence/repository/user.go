package repository

import (
	"context"
	"errors"

	"github.com/daehokang/roomcast/internal/domain"
	"github.com/daehokang/roomcast/internal/infrastructure/password"
	"github.com/daehokang/roomcast/internal/persistence/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// excludePassword keeps password digests out of every read path.
var excludePassword = bson.M{"password": 0}

type userRepository struct {
	db     *mongo.Database
	hasher *password.Hasher
}

func NewUserRepository(database *mongo.Database, hasher *password.Hasher) domain.UserRepository {
	return &userRepository{
		db:     database,
		hasher: hasher,
	}
}

// Insert stores the user, hashing the password first when one is set.
func (r *userRepository) Insert(ctx context.Context, user *domain.User) error {
	collection := r.db.Collection(db.UsersCollection)

	doc := *user
	if doc.Password != "" {
		digest, err := r.hasher.Hash(doc.Password)
		if err != nil {
			return err
		}
		doc.Password = digest
	}

	_, err := collection.InsertOne(ctx, &doc)
	return err
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *userRepository) FindByUserID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"user_id": userID})
}

func (r *userRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	collection := r.db.Collection(db.UsersCollection)

	opts := options.FindOne().SetProjection(excludePassword)

	var user domain.User
	err := collection.FindOne(ctx, filter, opts).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	collection := r.db.Collection(db.UsersCollection)

	opts := options.Find().SetProjection(excludePassword)
	cursor, err := collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []domain.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}

	return users, nil
}
