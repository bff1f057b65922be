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

const positionCollectionName = "teacherpositions"

type positionDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Code        string             `bson:"code"`
	Description string             `bson:"des"`
	IsActive    bool               `bson:"isActive"`
	IsDeleted   bool               `bson:"isDeleted"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func (d *positionDocument) toEntity() entity.TeacherPosition {
	return entity.TeacherPosition{
		ID:          d.ID,
		Name:        d.Name,
		Code:        d.Code,
		Description: d.Description,
		IsActive:    d.IsActive,
		IsDeleted:   d.IsDeleted,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func fromPositionEntity(e *entity.TeacherPosition) *positionDocument {
	return &positionDocument{
		ID:          e.ID,
		Name:        e.Name,
		Code:        e.Code,
		Description: e.Description,
		IsActive:    e.IsActive,
		IsDeleted:   e.IsDeleted,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

type PositionMongoRepository struct {
	db     *mongo.Database
	logger *zap.Logger
}

func NewPositionMongoRepository(db *mongo.Database, logger *zap.Logger) *PositionMongoRepository {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "code", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := db.Collection(positionCollectionName).Indexes().CreateMany(ctx, indexes); err != nil {
		logger.Warn("Failed to create indexes for positions collection (may already exist)", zap.Error(err))
	}

	return &PositionMongoRepository{
		db:     db,
		logger: logger.Named("PositionRepository"),
	}
}

func (r *PositionMongoRepository) List(ctx context.Context) ([]entity.TeacherPosition, error) {
	cursor, err := r.db.Collection(positionCollectionName).Find(ctx, bson.M{"isDeleted": false})
	if err != nil {
		return nil, fmt.Errorf("failed to list positions from mongo: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []positionDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode position list from mongo: %w", err)
	}

	positions := make([]entity.TeacherPosition, len(docs))
	for i := range docs {
		positions[i] = docs[i].toEntity()
	}
	return positions, nil
}

func (r *PositionMongoRepository) GetByID(ctx context.Context, id string) (*entity.TeacherPosition, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}

	var doc positionDocument
	err = r.db.Collection(positionCollectionName).FindOne(ctx, bson.M{"_id": objID, "isDeleted": false}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get position by id from mongo: %w", err)
	}
	pos := doc.toEntity()
	return &pos, nil
}

func (r *PositionMongoRepository) Create(ctx context.Context, position *entity.TeacherPosition) (primitive.ObjectID, error) {
	doc := fromPositionEntity(position)
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}
	now := time.Now()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	_, err := r.db.Collection(positionCollectionName).InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			r.logger.Warn("Duplicate code during position creation", zap.String("code", position.Code))
			return primitive.NilObjectID, repository.ErrDuplicateCode
		}
		return primitive.NilObjectID, fmt.Errorf("failed to create position in mongo: %w", err)
	}
	r.logger.Info("Position created", zap.String("positionID", doc.ID.Hex()), zap.String("code", doc.Code))
	return doc.ID, nil
}

func (r *PositionMongoRepository) SoftDelete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrNotFound
	}

	update := bson.M{"$set": bson.M{"isDeleted": true, "updatedAt": time.Now()}}
	res, err := r.db.Collection(positionCollectionName).UpdateOne(ctx, bson.M{"_id": objID, "isDeleted": false}, update)
	if err != nil {
		return fmt.Errorf("failed to soft delete position in mongo: %w", err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PositionMongoRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	count, err := r.db.Collection(positionCollectionName).CountDocuments(ctx, bson.M{"code": code})
	if err != nil {
		return false, fmt.Errorf("failed to count positions by code in mongo: %w", err)
	}
	return count > 0, nil
}

func (r *PositionMongoRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Collection(positionCollectionName).DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to clear positions collection: %w", err)
	}
	return nil
}

func (r *PositionMongoRepository) InsertMany(ctx context.Context, positions []entity.TeacherPosition) error {
	if len(positions) == 0 {
		return nil
	}
	docs := make([]interface{}, len(positions))
	for i := range positions {
		docs[i] = fromPositionEntity(&positions[i])
	}
	if _, err := r.db.Collection(positionCollectionName).InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to bulk insert positions: %w", err)
	}
	return nil
}
