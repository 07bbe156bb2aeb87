package technicianRepo

import (
	"context"
	"fmt"
	"time"

	"zeefreeze/database"
	"zeefreeze/models"
	"zeefreeze/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MongoTechnicianRepo implements TechnicianRepository using MongoDB.
type MongoTechnicianRepo struct {
	coll *mongo.Collection
}

// NewMongoTechnicianRepo creates a new instance of TechnicianRepository using MongoDB.
func NewMongoTechnicianRepo() TechnicianRepository {
	coll := database.MongoClient.Database(database.Name).Collection("technicians")
	repo := &MongoTechnicianRepo{coll: coll}
	if err := repo.EnsureIndexes(); err != nil {
		utils.GetLogger().Warn("Failed to ensure technician indexes", zap.Error(err))
	}
	return repo
}

func (r *MongoTechnicianRepo) GetByID(id string) (*models.Technician, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var tech models.Technician
	filter := bson.M{"id": id}
	if err := r.coll.FindOne(ctx, filter).Decode(&tech); err != nil {
		return nil, fmt.Errorf("failed to fetch technician with id %s: %w", id, err)
	}
	return &tech, nil
}

func (r *MongoTechnicianRepo) GetAll() ([]models.Technician, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve technicians: %w", err)
	}
	defer cursor.Close(ctx)
	var technicians []models.Technician
	if err := cursor.All(ctx, &technicians); err != nil {
		return nil, fmt.Errorf("failed to decode technicians: %w", err)
	}
	return technicians, nil
}

func (r *MongoTechnicianRepo) GetByEmail(email string) (*models.Technician, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var tech models.Technician
	filter := bson.M{"profile.email": email}
	if err := r.coll.FindOne(ctx, filter).Decode(&tech); err != nil {
		return nil, fmt.Errorf("failed to fetch technician with email %s: %w", email, err)
	}
	return &tech, nil
}

func (r *MongoTechnicianRepo) Create(technician *models.Technician) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := r.coll.InsertOne(ctx, technician)
	if err != nil {
		return fmt.Errorf("failed to create technician: %w", err)
	}
	return nil
}

func (r *MongoTechnicianRepo) Update(technician *models.Technician) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	filter := bson.M{"id": technician.ID}
	update := bson.M{"$set": technician}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update technician with id %s: %w", technician.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("technician with id %s not found", technician.ID)
	}
	return nil
}

func (r *MongoTechnicianRepo) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	filter := bson.M{"id": id}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete technician with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("technician with id %s not found", id)
	}
	return nil
}

func (r *MongoTechnicianRepo) GetByIDWithProjection(id string, projection bson.M) (*models.Technician, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.FindOne()
	if projection != nil {
		opts.SetProjection(projection)
	}
	var tech models.Technician
	if err := r.coll.FindOne(ctx, bson.M{"id": id}, opts).Decode(&tech); err != nil {
		return nil, fmt.Errorf("failed to fetch technician with id %s: %w", id, err)
	}
	return &tech, nil
}

func (r *MongoTechnicianRepo) GetByTokenHash(tokenHash string) (*models.Technician, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var tech models.Technician
	filter := bson.M{"security.tokenHash": tokenHash}
	if err := r.coll.FindOne(ctx, filter).Decode(&tech); err != nil {
		return nil, fmt.Errorf("failed to fetch technician by token hash: %w", err)
	}
	return &tech, nil
}

func (r *MongoTechnicianRepo) GetBySkill(skill string) ([]models.Technician, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	filter := bson.M{
		"profile.skills": skill,
		"profile.status": "active",
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find technicians for skill %s: %w", skill, err)
	}
	defer cursor.Close(ctx)
	var technicians []models.Technician
	if err := cursor.All(ctx, &technicians); err != nil {
		return nil, fmt.Errorf("failed to decode technicians: %w", err)
	}
	return technicians, nil
}

func (r *MongoTechnicianRepo) UpdateWithDocument(id string, updateDoc bson.M) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	filter := bson.M{"id": id}
	result, err := r.coll.UpdateOne(ctx, filter, updateDoc)
	if err != nil {
		return fmt.Errorf("failed to update technician with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("technician with id %s not found", id)
	}
	return nil
}
