package database

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/mbolis/survei-haji/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultMongoDatabase = "survei"

// Unauthorized server error code
const mongoUnauthorized = 13

type mongoStore struct {
	client  *mongo.Client
	surveys *mongo.Collection
	config  *mongo.Collection
	tokens  *mongo.Collection
}

type surveyDocument struct {
	ID              string                    `bson:"_id"`
	CreatedAt       time.Time                 `bson:"createdAt"`
	Respondent      respondentDocument        `bson:"respondent"`
	Answers         map[string]map[string]int `bson:"answers"`
	Suggestions     map[string]string         `bson:"suggestions,omitempty"`
	SelfDeclaration bool                      `bson:"selfDeclaration"`
	Improvements    []string                  `bson:"improvements"`
	Signature       string                    `bson:"signature"`
	QuestionCounts  map[string]int            `bson:"questionCounts,omitempty"`
}

type respondentDocument struct {
	Name       string `bson:"name,omitempty"`
	Phone      string `bson:"phone,omitempty"`
	Occupation string `bson:"occupation"`
	AgeBracket string `bson:"ageBracket"`
	Gender     string `bson:"gender"`
	Education  string `bson:"education"`
}

type configDocument struct {
	ID           string          `bson:"_id"`
	Version      int             `bson:"version"`
	Sections     []model.Section `bson:"sections"`
	Improvements []model.Option  `bson:"improvements"`
}

type tokenDocument struct {
	Username       string    `bson:"username"`
	TokenID        string    `bson:"tokenId"`
	RefreshTokenID string    `bson:"refreshTokenId"`
	Expiration     time.Time `bson:"expiration"`
}

// OpenMongo connects to the given MongoDB URL. The database name is taken
// from the URL path, defaulting to "survei".
func OpenMongo(ctx context.Context, uri string) (Store, error) {
	dbName := defaultMongoDatabase
	if u, err := url.Parse(uri); err == nil {
		if name := strings.Trim(u.Path, "/"); name != "" {
			dbName = name
		}
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(context.Background())
		return nil, mongoErr(err)
	}

	db := client.Database(dbName)
	return &mongoStore{
		client:  client,
		surveys: db.Collection("surveys"),
		config:  db.Collection("config"),
		tokens:  db.Collection("tokens"),
	}, nil
}

func (s *mongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

func (s *mongoStore) CreateSubmission(ctx context.Context, sub *model.Submission) error {
	sub.ID = newSubmissionID()
	sub.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)

	_, err := s.surveys.InsertOne(ctx, toSurveyDocument(*sub))
	return mongoErr(err)
}

func (s *mongoStore) ListSubmissions(ctx context.Context) ([]model.Submission, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := s.surveys.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, mongoErr(err)
	}

	var docs []surveyDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, mongoErr(err)
	}

	subs := make([]model.Submission, 0, len(docs))
	for _, doc := range docs {
		subs = append(subs, doc.submission())
	}
	return subs, nil
}

func (s *mongoStore) GetSubmission(ctx context.Context, id string) (model.Submission, error) {
	var doc surveyDocument
	err := s.surveys.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		return model.Submission{}, mongoErr(err)
	}
	return doc.submission(), nil
}

func (s *mongoStore) DeleteSubmission(ctx context.Context, id string) error {
	res, err := s.surveys.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return mongoErr(err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *mongoStore) ReadConfig(ctx context.Context) (model.QuestionConfig, int, error) {
	var doc configDocument
	err := s.config.FindOne(ctx, bson.M{"_id": configID}).Decode(&doc)
	if err != nil {
		return model.QuestionConfig{}, 0, mongoErr(err)
	}
	return model.QuestionConfig{Sections: doc.Sections, Improvements: doc.Improvements}, doc.Version, nil
}

func (s *mongoStore) WriteConfig(ctx context.Context, cfg model.QuestionConfig, version int) (int, error) {
	filter := bson.M{"_id": configID}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	if version == 0 {
		opts.SetUpsert(true)
	} else {
		filter["version"] = version
	}

	update := bson.M{
		"$set": bson.M{"sections": cfg.Sections, "improvements": cfg.Improvements},
		"$inc": bson.M{"version": 1},
	}

	var doc configDocument
	err := s.config.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, ErrConflict
	}
	if err != nil {
		return 0, mongoErr(err)
	}
	return doc.Version, nil
}

func (s *mongoStore) SaveToken(ctx context.Context, credential, tokenID, refreshTokenID string, expiration time.Time) error {
	_, err := s.tokens.InsertOne(ctx, tokenDocument{
		Username:       credential,
		TokenID:        tokenID,
		RefreshTokenID: refreshTokenID,
		Expiration:     expiration.UTC(),
	})
	return mongoErr(err)
}

func (s *mongoStore) ConsumeToken(ctx context.Context, credential, tokenID, refreshTokenID string) (time.Time, error) {
	var doc tokenDocument
	err := s.tokens.FindOneAndDelete(ctx, bson.M{
		"username":       credential,
		"tokenId":        tokenID,
		"refreshTokenId": refreshTokenID,
	}).Decode(&doc)
	if err != nil {
		return time.Time{}, mongoErr(err)
	}
	return doc.Expiration, nil
}

func toSurveyDocument(sub model.Submission) surveyDocument {
	answers := make(map[string]map[string]int, len(sub.Answers))
	for section, group := range sub.Answers {
		answers[section] = group
	}

	r := sub.Respondent
	return surveyDocument{
		ID:        sub.ID,
		CreatedAt: sub.CreatedAt,
		Respondent: respondentDocument{
			Name:       r.Name,
			Phone:      r.Phone,
			Occupation: r.Occupation,
			AgeBracket: r.AgeBracket,
			Gender:     r.Gender,
			Education:  r.Education,
		},
		Answers:         answers,
		Suggestions:     sub.Suggestions,
		SelfDeclaration: sub.SelfDeclaration,
		Improvements:    sub.Improvements.Keys(),
		Signature:       sub.Signature,
		QuestionCounts:  sub.QuestionCounts,
	}
}

func (doc surveyDocument) submission() model.Submission {
	answers := make(map[string]model.AnswerGroup, len(doc.Answers))
	for section, group := range doc.Answers {
		answers[section] = group
	}

	var improvements model.Improvements
	for _, key := range doc.Improvements {
		improvements = improvements.Select(key)
	}

	r := doc.Respondent
	return model.Submission{
		ID:        doc.ID,
		CreatedAt: doc.CreatedAt.UTC(),
		Respondent: model.Respondent{
			Name:       r.Name,
			Phone:      r.Phone,
			Occupation: r.Occupation,
			AgeBracket: r.AgeBracket,
			Gender:     r.Gender,
			Education:  r.Education,
		},
		Answers:         answers,
		Suggestions:     doc.Suggestions,
		SelfDeclaration: doc.SelfDeclaration,
		Improvements:    improvements,
		Signature:       doc.Signature,
		QuestionCounts:  doc.QuestionCounts,
	}
}

func mongoErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}

	var serr mongo.ServerError
	if errors.As(err, &serr) && serr.HasErrorCode(mongoUnauthorized) {
		return errors.Join(ErrPermission, err)
	}
	return err
}
