package mongodb

import (
	"context"
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

const teacherCollectionName = "teachers"

type degreeDocument struct {
	Name           string `bson:"name"`
	Institution    string `bson:"institution"`
	GraduationYear int    `bson:"graduationYear"`
}

type teacherDocument struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty"`
	UserID    primitive.ObjectID   `bson:"userId"`
	Code      string               `bson:"code"`
	IsActive  bool                 `bson:"isActive"`
	IsDeleted bool                 `bson:"isDeleted"`
	StartDate time.Time            `bson:"startDate"`
	EndDate   *time.Time           `bson:"endDate,omitempty"`
	Positions []primitive.ObjectID `bson:"teacherPositions"`
	Degrees   []degreeDocument     `bson:"degrees"`
	CreatedAt time.Time            `bson:"createdAt"`
	UpdatedAt time.Time            `bson:"updatedAt"`
}

// populatedTeacherDocument carries the lookup results alongside the teacher
// fields. The raw position id list keeps its own bson key, so there is no
// clash with the resolved documents.
type populatedTeacherDocument struct {
	teacherDocument `bson:",inline"`
	User            *userDocument      `bson:"user"`
	PositionDocs    []positionDocument `bson:"positions"`
}

func (d *teacherDocument) toEntity() entity.Teacher {
	degrees := make([]entity.Degree, len(d.Degrees))
	for i, deg := range d.Degrees {
		degrees[i] = entity.Degree{
			Name:           deg.Name,
			Institution:    deg.Institution,
			GraduationYear: deg.GraduationYear,
		}
	}
	return entity.Teacher{
		ID:        d.ID,
		UserID:    d.UserID,
		Code:      d.Code,
		IsActive:  d.IsActive,
		IsDeleted: d.IsDeleted,
		StartDate: d.StartDate,
		EndDate:   d.EndDate,
		Positions: d.Positions,
		Degrees:   degrees,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func fromTeacherEntity(e *entity.Teacher) *teacherDocument {
	degrees := make([]degreeDocument, len(e.Degrees))
	for i, deg := range e.Degrees {
		degrees[i] = degreeDocument{
			Name:           deg.Name,
			Institution:    deg.Institution,
			GraduationYear: deg.GraduationYear,
		}
	}
	positions := e.Positions
	if positions == nil {
		positions = []primitive.ObjectID{}
	}
	return &teacherDocument{
		ID:        e.ID,
		UserID:    e.UserID,
		Code:      e.Code,
		IsActive:  e.IsActive,
		IsDeleted: e.IsDeleted,
		StartDate: e.StartDate,
		EndDate:   e.EndDate,
		Positions: positions,
		Degrees:   degrees,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

type TeacherMongoRepository struct {
	db     *mongo.Database
	logger *zap.Logger
}

func NewTeacherMongoRepository(db *mongo.Database, logger *zap.Logger) *TeacherMongoRepository {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "code", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := db.Collection(teacherCollectionName).Indexes().CreateMany(ctx, indexes); err != nil {
		logger.Warn("Failed to create indexes for teachers collection (may already exist)", zap.Error(err))
	}

	return &TeacherMongoRepository{
		db:     db,
		logger: logger.Named("TeacherRepository"),
	}
}

func lookupStage(from, localField, as string) bson.D {
	return bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: from},
		{Key: "localField", Value: localField},
		{Key: "foreignField", Value: "_id"},
		{Key: "as", Value: as},
		{Key: "pipeline", Value: bson.A{
			bson.D{{Key: "$match", Value: bson.D{{Key: "isDeleted", Value: false}}}},
		}},
	}}}
}

func unwindStage(path string) bson.D {
	return bson.D{{Key: "$unwind", Value: bson.D{
		{Key: "path", Value: path},
		{Key: "preserveNullAndEmptyArrays", Value: true},
	}}}
}

func (r *TeacherMongoRepository) List(ctx context.Context, page, limit int) ([]repository.PopulatedTeacher, int64, error) {
	filter := bson.M{"isDeleted": false}

	total, err := r.db.Collection(teacherCollectionName).CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count teachers in mongo: %w", err)
	}

	skip := int64((page - 1) * limit)
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "isDeleted", Value: false}}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		bson.D{{Key: "$skip", Value: skip}},
		bson.D{{Key: "$limit", Value: int64(limit)}},
		lookupStage(userCollectionName, "userId", "user"),
		unwindStage("$user"),
		lookupStage(positionCollectionName, "teacherPositions", "positions"),
	}

	cursor, err := r.db.Collection(teacherCollectionName).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list teachers from mongo: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []populatedTeacherDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("failed to decode teacher list from mongo: %w", err)
	}

	teachers := make([]repository.PopulatedTeacher, len(docs))
	for i := range docs {
		populated := repository.PopulatedTeacher{Teacher: docs[i].teacherDocument.toEntity()}
		if docs[i].User != nil {
			populated.User = docs[i].User.toEntity()
		}
		positions := make([]entity.TeacherPosition, len(docs[i].PositionDocs))
		for j := range docs[i].PositionDocs {
			positions[j] = docs[i].PositionDocs[j].toEntity()
		}
		populated.Positions = positions
		teachers[i] = populated
	}
	return teachers, total, nil
}

func (r *TeacherMongoRepository) GetRawByID(ctx context.Context, id string) (map[string]interface{}, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}

	// Resolved references replace the stored ids under the original field
	// names, mirroring what a populated document looks like.
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "_id", Value: objID},
			{Key: "isDeleted", Value: false},
		}}},
		lookupStage(userCollectionName, "userId", "userId"),
		unwindStage("$userId"),
		lookupStage(positionCollectionName, "teacherPositions", "teacherPositions"),
	}

	cursor, err := r.db.Collection(teacherCollectionName).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to get teacher by id from mongo: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode teacher document from mongo: %w", err)
	}
	if len(docs) == 0 {
		return nil, repository.ErrNotFound
	}
	return docs[0], nil
}

func (r *TeacherMongoRepository) Create(ctx context.Context, teacher *entity.Teacher) (primitive.ObjectID, error) {
	doc := fromTeacherEntity(teacher)
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}
	now := time.Now()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	_, err := r.db.Collection(teacherCollectionName).InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			r.logger.Warn("Duplicate code during teacher creation", zap.String("code", teacher.Code))
			return primitive.NilObjectID, repository.ErrDuplicateCode
		}
		return primitive.NilObjectID, fmt.Errorf("failed to create teacher in mongo: %w", err)
	}
	r.logger.Info("Teacher created", zap.String("teacherID", doc.ID.Hex()), zap.String("code", doc.Code))
	return doc.ID, nil
}

func (r *TeacherMongoRepository) SoftDelete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrNotFound
	}

	update := bson.M{"$set": bson.M{"isDeleted": true, "updatedAt": time.Now()}}
	res, err := r.db.Collection(teacherCollectionName).UpdateOne(ctx, bson.M{"_id": objID, "isDeleted": false}, update)
	if err != nil {
		return fmt.Errorf("failed to soft delete teacher in mongo: %w", err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	r.logger.Info("Teacher soft deleted", zap.String("teacherID", id))
	return nil
}

func (r *TeacherMongoRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	count, err := r.db.Collection(teacherCollectionName).CountDocuments(ctx, bson.M{"code": code})
	if err != nil {
		return false, fmt.Errorf("failed to count teachers by code in mongo: %w", err)
	}
	return count > 0, nil
}

func (r *TeacherMongoRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Collection(teacherCollectionName).DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to clear teachers collection: %w", err)
	}
	return nil
}

func (r *TeacherMongoRepository) InsertMany(ctx context.Context, teachers []entity.Teacher) error {
	if len(teachers) == 0 {
		return nil
	}
	docs := make([]interface{}, len(teachers))
	for i := range teachers {
		docs[i] = fromTeacherEntity(&teachers[i])
	}
	if _, err := r.db.Collection(teacherCollectionName).InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to bulk insert teachers: %w", err)
	}
	return nil
}
