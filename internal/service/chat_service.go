package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"cs_chatbot_backend/internal/model"
	"cs_chatbot_backend/internal/util"
	"cs_chatbot_backend/pkg/monitoring"

	"go.uber.org/zap"
)

const (
	mobileUser = "mobile_user"

	feedbackThanks     = "Thank you for your feedback!"
	mobileCoursePrompt = `Please specify a course (e.g., "past questions for Computer Networks" or "CSC 101").`
	textCoursePrompt   = `Please specify a course (e.g., "past questions for Computer Networks").`
	aiApology          = "Sorry, an error occurred with the AI service. Please try again."
	aiTextApology      = "Sorry, there was an issue with the AI service."
	aiModelUnavailable = "Model temporarily unavailable. Try again later."

	responseTypePastQuestions = "past_questions"
	responseTypeGeneral       = "general"
)

// Completer is the LLM gateway.
type Completer interface {
	Chat(ctx context.Context, prompt string) (string, error)
}

// MessageSender is the outbound messaging gateway.
type MessageSender interface {
	SendText(ctx context.Context, to, body string) error
}

// AnalyticsSink is the append-only analytics/feedback log.
type AnalyticsSink interface {
	LogQuery(ctx context.Context, entry *model.AnalyticsEntry) error
	LogFeedback(ctx context.Context, entry *model.FeedbackEntry) error
}

// QuestionLookup resolves a course query to an aggregated result.
type QuestionLookup interface {
	Lookup(ctx context.Context, courseQuery string) (*model.PastQuestionsResult, error)
}

// ChatService routes queries from both channels through the same
// classification and branches, differing only in reply shape.
type ChatService struct {
	Lookup    QuestionLookup
	AI        Completer
	Sender    MessageSender
	Analytics AnalyticsSink
	Log       *zap.Logger
}

func NewChatService(lookup QuestionLookup, ai Completer, sender MessageSender, analytics AnalyticsSink, log *zap.Logger) *ChatService {
	return &ChatService{
		Lookup:    lookup,
		AI:        ai,
		Sender:    sender,
		Analytics: analytics,
		Log:       log,
	}
}

// MobileChatRequest is the mobile client's query body.
type MobileChatRequest struct {
	Query      string `json:"query" binding:"required"`
	CourseCode string `json:"courseCode"`
	Year       *int   `json:"year"`
}

// MobileChatResponse keeps the flat wire format the mobile client expects:
// response is either a plain string or a structured aggregate.
type MobileChatResponse struct {
	Response        interface{} `json:"response"`
	IsPastQuestions bool        `json:"isPastQuestions,omitempty"`
}

// HandleMobileQuery runs one mobile request end to end. LLM failures
// degrade to a fixed apology inside a successful response; every request
// writes one analytics row.
func (s *ChatService) HandleMobileQuery(ctx context.Context, req MobileChatRequest) (*MobileChatResponse, error) {
	cls := Classify(req.Query, req.CourseCode)
	monitoring.QueryCounter.WithLabelValues(cls.Intent.String(), "mobile").Inc()
	resp := &MobileChatResponse{}

	switch cls.Intent {
	case IntentFeedback:
		entry := &model.FeedbackEntry{
			User:      mobileUser,
			Feedback:  cls.Feedback,
			Timestamp: time.Now(),
		}
		if err := s.Analytics.LogFeedback(ctx, entry); err != nil {
			return nil, err
		}
		resp.Response = feedbackThanks

	case IntentPastQuestions:
		result, err := s.Lookup.Lookup(ctx, cls.Course)
		if err != nil {
			return nil, err
		}
		resp.Response = result
		resp.IsPastQuestions = true

	case IntentUnresolved:
		resp.Response = mobileCoursePrompt

	default:
		answer, err := s.AI.Chat(ctx, req.Query)
		if err != nil {
			s.Log.Error("AI completion failed", zap.Error(err))
			answer = aiApology
		}
		resp.Response = answer
	}

	entry := &model.AnalyticsEntry{
		User:         mobileUser,
		Query:        req.Query,
		CourseCode:   req.CourseCode,
		Year:         req.Year,
		ResponseType: responseTypeFor(cls.Intent),
		Response:     analyticsResponseText(resp.Response),
		Timestamp:    time.Now(),
	}
	if err := s.Analytics.LogQuery(ctx, entry); err != nil {
		return nil, err
	}

	return resp, nil
}

// HandleTextMessage runs one webhook message: same branches as the mobile
// path, but the reply is a flat text block delivered through the
// messaging gateway, with the sender id as destination.
func (s *ChatService) HandleTextMessage(ctx context.Context, from, query string) error {
	cls := Classify(query, "")
	monitoring.QueryCounter.WithLabelValues(cls.Intent.String(), "whatsapp").Inc()
	var responseText string

	switch cls.Intent {
	case IntentFeedback:
		entry := &model.FeedbackEntry{
			User:      from,
			Feedback:  cls.Feedback,
			Timestamp: time.Now(),
		}
		if err := s.Analytics.LogFeedback(ctx, entry); err != nil {
			return err
		}
		responseText = feedbackThanks

	case IntentPastQuestions:
		result, err := s.Lookup.Lookup(ctx, cls.Course)
		if err != nil {
			return err
		}
		responseText = FormatText(result)

	case IntentUnresolved:
		responseText = textCoursePrompt

	default:
		answer, err := s.AI.Chat(ctx, query)
		switch {
		case err == nil:
			responseText = answer
		case errors.Is(err, util.ErrModelNotFound):
			responseText = aiModelUnavailable
		default:
			s.Log.Error("AI completion failed", zap.Error(err))
			responseText = aiTextApology
		}
	}

	entry := &model.AnalyticsEntry{
		User:         from,
		Query:        query,
		ResponseType: responseTypeFor(cls.Intent),
		Response:     responseText,
		Timestamp:    time.Now(),
	}
	if err := s.Analytics.LogQuery(ctx, entry); err != nil {
		return err
	}

	return s.Sender.SendText(ctx, from, responseText)
}

func responseTypeFor(intent Intent) string {
	if intent == IntentPastQuestions || intent == IntentUnresolved {
		return responseTypePastQuestions
	}
	return responseTypeGeneral
}

// analyticsResponseText flattens a reply for the analytics row; structured
// aggregates are stored as JSON.
func analyticsResponseText(response interface{}) string {
	if text, ok := response.(string); ok {
		return text
	}
	data, err := json.Marshal(response)
	if err != nil {
		return ""
	}
	return string(data)
}
