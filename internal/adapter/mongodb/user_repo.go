package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/quanganhdev/teacher-management/internal/entity"
	"github.com/quanganhdev/teacher-management/internal/port/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const userCollectionName = "users"

type userDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Email       string             `bson:"email"`
	PhoneNumber string             `bson:"phoneNumber"`
	Address     string             `bson:"address"`
	Identity    string             `bson:"identity"`
	DOB         time.Time          `bson:"dob"`
	Role        string             `bson:"role"`
	IsDeleted   bool               `bson:"isDeleted"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func (d *userDocument) toEntity() *entity.User {
	return &entity.User{
		ID:          d.ID,
		Name:        d.Name,
		Email:       d.Email,
		PhoneNumber: d.PhoneNumber,
		Address:     d.Address,
		Identity:    d.Identity,
		DOB:         d.DOB,
		Role:        d.Role,
		IsDeleted:   d.IsDeleted,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func fromUserEntity(e *entity.User) *userDocument {
	return &userDocument{
		ID:          e.ID,
		Name:        e.Name,
		Email:       e.Email,
		PhoneNumber: e.PhoneNumber,
		Address:     e.Address,
		Identity:    e.Identity,
		DOB:         e.DOB,
		Role:        e.Role,
		IsDeleted:   e.IsDeleted,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

type UserMongoRepository struct {
	db     *mongo.Database
	logger *zap.Logger
}

func NewUserMongoRepository(db *mongo.Database, logger *zap.Logger) *UserMongoRepository {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Ensure indexes (idempotent operation)
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := db.Collection(userCollectionName).Indexes().CreateMany(ctx, indexes); err != nil {
		logger.Warn("Failed to create indexes for users collection (may already exist)", zap.Error(err))
	}

	return &UserMongoRepository{
		db:     db,
		logger: logger.Named("UserRepository"),
	}
}

func (r *UserMongoRepository) Create(ctx context.Context, user *entity.User) (primitive.ObjectID, error) {
	doc := fromUserEntity(user)
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}
	now := time.Now()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	_, err := r.db.Collection(userCollectionName).InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			r.logger.Warn("Duplicate email during user creation", zap.String("email", user.Email))
			return primitive.NilObjectID, repository.ErrDuplicateEmail
		}
		r.logger.Error("Database error during user creation", zap.String("email", user.Email), zap.Error(err))
		return primitive.NilObjectID, fmt.Errorf("failed to create user in mongo: %w", err)
	}
	r.logger.Info("User created", zap.String("userID", doc.ID.Hex()))
	return doc.ID, nil
}

func (r *UserMongoRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error) {
	var doc userDocument
	err := r.db.Collection(userCollectionName).FindOne(ctx, bson.M{"_id": id, "isDeleted": false}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by id from mongo: %w", err)
	}
	return doc.toEntity(), nil
}

func (r *UserMongoRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	count, err := r.db.Collection(userCollectionName).CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return false, fmt.Errorf("failed to count users by email in mongo: %w", err)
	}
	return count > 0, nil
}

func (r *UserMongoRepository) HardDelete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.db.Collection(userCollectionName).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete user from mongo: %w", err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	r.logger.Info("User hard deleted", zap.String("userID", id.Hex()))
	return nil
}

func (r *UserMongoRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Collection(userCollectionName).DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to clear users collection: %w", err)
	}
	return nil
}

func (r *UserMongoRepository) InsertMany(ctx context.Context, users []entity.User) error {
	if len(users) == 0 {
		return nil
	}
	docs := make([]interface{}, len(users))
	for i := range users {
		docs[i] = fromUserEntity(&users[i])
	}
	if _, err := r.db.Collection(userCollectionName).InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to bulk insert users: %w", err)
	}
	return nil
}
