package db

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	UserCollection              *mongo.Collection
	MoviesCollection            *mongo.Collection
	AdminCollection             *mongo.Collection
	CustomersCollection         *mongo.Collection
	ProductsCollection          *mongo.Collection
	ManufacturersCollection     *mongo.Collection
	SalesCollection             *mongo.Collection
	CreditSalesCollection       *mongo.Collection
	ExpensesCollection          *mongo.Collection
	ExpenseCategoriesCollection *mongo.Collection
	CalendarEventsCollection    *mongo.Collection
	RemindersCollection         *mongo.Collection
	NotesCollection             *mongo.Collection
	NoteCategoriesCollection    *mongo.Collection
	SMSLogsCollection           *mongo.Collection
	Client                      *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	var err error
	Client, err = mongo.Connect(context.TODO(), options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	dbName := os.Getenv("MONGODB_DB")
	if dbName == "" {
		dbName = "pharmadb"
	}

	UserCollection = Client.Database(dbName).Collection("users")
	MoviesCollection = Client.Database(dbName).Collection("movies")
	AdminCollection = Client.Database(dbName).Collection("admin")
	CustomersCollection = Client.Database(dbName).Collection("customers")
	ProductsCollection = Client.Database(dbName).Collection("products")
	ManufacturersCollection = Client.Database(dbName).Collection("manufacturers")
	SalesCollection = Client.Database(dbName).Collection("sales")
	CreditSalesCollection = Client.Database(dbName).Collection("credit_sales")
	ExpensesCollection = Client.Database(dbName).Collection("expenses")
	ExpenseCategoriesCollection = Client.Database(dbName).Collection("expense_categories")
	CalendarEventsCollection = Client.Database(dbName).Collection("calendar_events")
	RemindersCollection = Client.Database(dbName).Collection("reminders")
	NotesCollection = Client.Database(dbName).Collection("notes")
	NoteCategoriesCollection = Client.Database(dbName).Collection("note_categories")
	SMSLogsCollection = Client.Database(dbName).Collection("sms_logs")
}
