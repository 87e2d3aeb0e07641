package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ConversionHistory is the persisted document layout for one conversion.
// The collection name follows the original application's model name.
type ConversionHistory struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	FromCurrency    string             `bson:"fromCurrency"`
	ToCurrency      string             `bson:"toCurrency"`
	Amount          float64            `bson:"amount"`
	ExchangeRate    float64            `bson:"exchangeRate"`
	ConvertedAmount float64            `bson:"convertedAmount"`
	Timestamp       time.Time          `bson:"timestamp"`
}

// ConversionHistoryCollection is the MongoDB collection holding
// ConversionHistory documents.
const ConversionHistoryCollection = "conversionhistories"
