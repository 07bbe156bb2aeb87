// File: database/db.go
package database

import (
	"context"
	"log"
	"time"

	"zeefreeze/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Name is the MongoDB database holding every platform collection
// (availability, technicians, users, interventions, installations, invoices,
// notifications, messages, scheduled_events).
const Name = "zeefreeze"

// MongoClient is the shared client the repositories build their collection
// handles from. InitDB must run before any repository constructor.
var MongoClient *mongo.Client

// InitDB connects to MongoDB using the configured URL and verifies the
// connection with a ping before any repository touches it.
func InitDB() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(config.AppConfig.DatabaseURL)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("failed to ping MongoDB: %v", err)
	}
	MongoClient = client
	log.Println("Connected to MongoDB successfully!")
}
