package repositories

import (
	"CampusTour/models"
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoManager struct {
	client    *mongo.Client
	users     *MongoUserRepository
	feedbacks *MongoFeedbackRepository
}

func NewMongoManager(client *mongo.Client, database string) *MongoManager {
	db := client.Database(database)
	return &MongoManager{
		client:    client,
		users:     &MongoUserRepository{collection: db.Collection(UsersCollection), now: time.Now},
		feedbacks: &MongoFeedbackRepository{collection: db.Collection(FeedbacksCollection), now: time.Now},
	}
}

func (m *MongoManager) Users() UserRepository         { return m.users }
func (m *MongoManager) Feedbacks() FeedbackRepository { return m.feedbacks }

func (m *MongoManager) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

type userDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Username  string             `bson:"username"`
	Password  string             `bson:"password"`
	LoginTime time.Time          `bson:"loginTime"`
}

type feedbackDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Email       string             `bson:"email"`
	Message     string             `bson:"message"`
	ImageURL    *string            `bson:"imageUrl"`
	SubmittedAt time.Time          `bson:"submittedAt"`
}

type MongoUserRepository struct {
	collection *mongo.Collection
	now        func() time.Time
}

func (r *MongoUserRepository) Create(ctx context.Context, user *models.User) error {
	user.LoginTime = stampTime(user.LoginTime, r.now, mongoTimePrecision)

	doc := userDocument{
		ID:        primitive.NewObjectID(),
		Username:  user.Username,
		Password:  user.Password,
		LoginTime: user.LoginTime,
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return mongoError("create user", err)
	}
	user.ID = doc.ID.Hex()
	return nil
}

func (r *MongoUserRepository) ListByLoginTime(ctx context.Context) ([]models.User, error) {
	var docs []userDocument
	if err := findSorted(ctx, r.collection, "loginTime", &docs); err != nil {
		return nil, err
	}

	users := make([]models.User, 0, len(docs))
	for _, d := range docs {
		users = append(users, models.User{
			ID:        d.ID.Hex(),
			Username:  d.Username,
			Password:  d.Password,
			LoginTime: d.LoginTime,
		})
	}
	return users, nil
}

type MongoFeedbackRepository struct {
	collection *mongo.Collection
	now        func() time.Time
}

func (r *MongoFeedbackRepository) Create(ctx context.Context, feedback *models.Feedback) error {
	feedback.SubmittedAt = stampTime(feedback.SubmittedAt, r.now, mongoTimePrecision)

	doc := feedbackDocument{
		ID:          primitive.NewObjectID(),
		Name:        feedback.Name,
		Email:       feedback.Email,
		Message:     feedback.Message,
		ImageURL:    feedback.ImageURL,
		SubmittedAt: feedback.SubmittedAt,
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return mongoError("create feedback", err)
	}
	feedback.ID = doc.ID.Hex()
	return nil
}

func (r *MongoFeedbackRepository) ListBySubmittedAt(ctx context.Context) ([]models.Feedback, error) {
	var docs []feedbackDocument
	if err := findSorted(ctx, r.collection, "submittedAt", &docs); err != nil {
		return nil, err
	}

	feedbacks := make([]models.Feedback, 0, len(docs))
	for _, d := range docs {
		feedbacks = append(feedbacks, models.Feedback{
			ID:          d.ID.Hex(),
			Name:        d.Name,
			Email:       d.Email,
			Message:     d.Message,
			ImageURL:    d.ImageURL,
			SubmittedAt: d.SubmittedAt,
		})
	}
	return feedbacks, nil
}

// findSorted loads the whole collection ordered by field, newest first.
func findSorted(ctx context.Context, collection *mongo.Collection, field string, out any) error {
	opts := options.Find().SetSort(bson.D{{Key: field, Value: -1}})
	cursor, err := collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return mongoError("find "+collection.Name(), err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, out); err != nil {
		return mongoError("decode "+collection.Name(), err)
	}
	return nil
}

func mongoError(op string, err error) error {
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) {
		return fmt.Errorf("%s: %w: %v", op, ErrUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
