package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"cs_chatbot_backend/internal/model"
	"cs_chatbot_backend/internal/util"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	resultCacheTTL        = 10 * time.Minute
	resultCacheKeyPrefix  = "pastq:result:"
	resultCacheVersionKey = "pastq:version"
)

// PastQuestionFinder is the document-store lookup the service depends on.
type PastQuestionFinder interface {
	FindByCourse(ctx context.Context, courseQuery string) ([]model.PastQuestion, error)
	Upsert(ctx context.Context, paper *model.PastQuestion) error
}

// ResultCache is the subset of redis commands the aggregate cache needs;
// *redis.Client satisfies it.
type ResultCache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
}

type PastQuestionService struct {
	Repo  PastQuestionFinder
	Cache ResultCache
	Log   *zap.Logger
}

func NewPastQuestionService(repo PastQuestionFinder, cache ResultCache, log *zap.Logger) *PastQuestionService {
	return &PastQuestionService{Repo: repo, Cache: cache, Log: log}
}

// Aggregate flattens matched papers (already sorted newest year first)
// into a single ordered answer. Malformed entries, missing a number or
// text, are dropped. The same input always yields the same output.
func Aggregate(courseQuery string, papers []model.PastQuestion) *model.PastQuestionsResult {
	if len(papers) == 0 {
		return &model.PastQuestionsResult{
			Course:    strings.ToUpper(courseQuery),
			Questions: []model.QuestionView{},
			Message:   fmt.Sprintf("No past questions found for %s.", courseQuery),
		}
	}

	courseTitle := strings.ToUpper(strings.TrimSpace(papers[0].Course))
	if courseTitle == "" {
		courseTitle = strings.ToUpper(courseQuery)
	}

	questions := []model.QuestionView{}
	rawCourses := make([]string, 0, len(papers))
	for _, paper := range papers {
		rawCourses = append(rawCourses, paper.Course)
		for _, q := range paper.Questions {
			number := strings.TrimSpace(q.Number)
			text := strings.TrimSpace(q.Text)
			if q.Number == "" || q.Text == "" {
				continue
			}
			questions = append(questions, model.QuestionView{Number: number, Text: text})
		}
	}

	return &model.PastQuestionsResult{
		Course:         courseTitle,
		Questions:      questions,
		YearsFound:     len(papers),
		TotalQuestions: len(questions),
		RawCourseData:  rawCourses,
	}
}

// FormatText renders an aggregate as the single text block sent over
// WhatsApp. Empty results fall back to the aggregate's own message.
func FormatText(result *model.PastQuestionsResult) string {
	if len(result.Questions) == 0 {
		return result.Message
	}

	lines := make([]string, 0, len(result.Questions))
	for _, q := range result.Questions {
		lines = append(lines, fmt.Sprintf("%s. %s", q.Number, q.Text))
	}

	return fmt.Sprintf("📘 Past Questions for %s:\n\n%s\n\n✅ Total Questions: %d from %d year(s)",
		result.Course,
		strings.Join(lines, "\n"),
		result.TotalQuestions,
		result.YearsFound,
	)
}

// Lookup resolves a course query to an aggregated result, consulting the
// Redis cache first. Cache failures degrade to a direct lookup.
func (s *PastQuestionService) Lookup(ctx context.Context, courseQuery string) (*model.PastQuestionsResult, error) {
	key := s.cacheKey(ctx, courseQuery)

	if s.Cache != nil && key != "" {
		if val, err := s.Cache.Get(ctx, key).Result(); err == nil {
			var cached model.PastQuestionsResult
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return &cached, nil
			}
		} else if err != redis.Nil {
			s.Log.Debug("result cache read failed", zap.Error(err))
		}
	}

	papers, err := s.Repo.FindByCourse(ctx, courseQuery)
	if err != nil {
		return nil, err
	}
	result := Aggregate(courseQuery, papers)

	if s.Cache != nil && key != "" {
		if data, err := json.Marshal(result); err == nil {
			if err := s.Cache.Set(ctx, key, data, resultCacheTTL).Err(); err != nil {
				s.Log.Debug("result cache write failed", zap.Error(err))
			}
		}
	}

	return result, nil
}

// Upsert stores a paper, generating question ids where absent, and bumps
// the cache version so stale aggregates stop being served.
func (s *PastQuestionService) Upsert(ctx context.Context, paper *model.PastQuestion) error {
	if len(paper.Questions) == 0 {
		return fmt.Errorf("%w: %s", util.ErrEmptyQuestions, paper.Course)
	}
	for i := range paper.Questions {
		if paper.Questions[i].ID == "" {
			paper.Questions[i].ID = uuid.NewString()
		}
	}

	if err := s.Repo.Upsert(ctx, paper); err != nil {
		return err
	}

	if s.Cache != nil {
		if err := s.Cache.Incr(ctx, resultCacheVersionKey).Err(); err != nil {
			s.Log.Warn("cache version bump failed", zap.Error(err))
		}
	}
	return nil
}

// cacheKey namespaces cached results by a version counter; bumping the
// counter on upsert invalidates every cached aggregate at once.
func (s *PastQuestionService) cacheKey(ctx context.Context, courseQuery string) string {
	if s.Cache == nil {
		return ""
	}
	version, err := s.Cache.Get(ctx, resultCacheVersionKey).Result()
	if err == redis.Nil {
		version = "0"
	} else if err != nil {
		return ""
	}
	normalized := strings.ToLower(strings.TrimSpace(courseQuery))
	return resultCacheKeyPrefix + version + ":" + normalized
}
