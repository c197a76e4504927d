package repository

import (
	"context"
	"regexp"

	"cs_chatbot_backend/internal/config"
	"cs_chatbot_backend/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PastQuestionRepository struct {
	Coll *mongo.Collection
}

func NewPastQuestionRepository(client *mongo.Client, cfg *config.MongoConfig) *PastQuestionRepository {
	return &PastQuestionRepository{
		Coll: client.Database(cfg.Database).Collection(cfg.Collection),
	}
}

// CourseFilter builds a case-insensitive literal substring match on the
// course field. Metacharacters in the query are quoted so "CSC 4.1" can
// never turn into a pattern.
func CourseFilter(courseQuery string) bson.M {
	return bson.M{
		"course": primitive.Regex{
			Pattern: regexp.QuoteMeta(courseQuery),
			Options: "i",
		},
	}
}

// FindByCourse returns every paper whose course name contains the query,
// newest year first. Zero matches is a normal empty result.
func (r *PastQuestionRepository) FindByCourse(ctx context.Context, courseQuery string) ([]model.PastQuestion, error) {
	opts := options.Find().SetSort(bson.D{{Key: "year", Value: -1}})

	cur, err := r.Coll.Find(ctx, CourseFilter(courseQuery), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var papers []model.PastQuestion
	if err := cur.All(ctx, &papers); err != nil {
		return nil, err
	}
	return papers, nil
}

// Upsert replaces the paper keyed by course/year/session, inserting it if
// absent. Existing papers are never deleted through this path.
func (r *PastQuestionRepository) Upsert(ctx context.Context, paper *model.PastQuestion) error {
	filter := bson.M{
		"course":      paper.Course,
		"year":        paper.Year,
		"examSession": paper.ExamSession,
	}

	_, err := r.Coll.ReplaceOne(ctx, filter, paper, options.Replace().SetUpsert(true))
	return err
}
