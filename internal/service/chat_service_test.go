package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"cs_chatbot_backend/internal/model"
	"cs_chatbot_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeLookup struct {
	result  *model.PastQuestionsResult
	err     error
	queries []string
}

func (f *fakeLookup) Lookup(_ context.Context, courseQuery string) (*model.PastQuestionsResult, error) {
	f.queries = append(f.queries, courseQuery)
	return f.result, f.err
}

type fakeCompleter struct {
	answer  string
	err     error
	prompts []string
}

func (f *fakeCompleter) Chat(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.answer, f.err
}

type fakeSender struct {
	to     []string
	bodies []string
	err    error
}

func (f *fakeSender) SendText(_ context.Context, to, body string) error {
	f.to = append(f.to, to)
	f.bodies = append(f.bodies, body)
	return f.err
}

type fakeAnalytics struct {
	queries  []*model.AnalyticsEntry
	feedback []*model.FeedbackEntry
	err      error
}

func (f *fakeAnalytics) LogQuery(_ context.Context, entry *model.AnalyticsEntry) error {
	f.queries = append(f.queries, entry)
	return f.err
}

func (f *fakeAnalytics) LogFeedback(_ context.Context, entry *model.FeedbackEntry) error {
	f.feedback = append(f.feedback, entry)
	return f.err
}

type chatFixture struct {
	svc       *ChatService
	lookup    *fakeLookup
	ai        *fakeCompleter
	sender    *fakeSender
	analytics *fakeAnalytics
}

func newChatFixture() *chatFixture {
	f := &chatFixture{
		lookup:    &fakeLookup{},
		ai:        &fakeCompleter{},
		sender:    &fakeSender{},
		analytics: &fakeAnalytics{},
	}
	f.svc = NewChatService(f.lookup, f.ai, f.sender, f.analytics, zap.NewNop())
	return f
}

func csc451Result() *model.PastQuestionsResult {
	questions := make([]model.QuestionView, 6)
	for i := range questions {
		questions[i] = model.QuestionView{Number: fmt.Sprintf("%d", i+1), Text: "question text"}
	}
	return &model.PastQuestionsResult{
		Course:         "CSC 451: COMPUTER NETWORKS AND COMMUNICATIONS",
		Questions:      questions,
		YearsFound:     1,
		TotalQuestions: 6,
	}
}

func TestMobileFeedback(t *testing.T) {
	f := newChatFixture()

	resp, err := f.svc.HandleMobileQuery(context.Background(), MobileChatRequest{Query: "feedback: great app!"})
	require.NoError(t, err)

	assert.Equal(t, "Thank you for your feedback!", resp.Response)
	assert.False(t, resp.IsPastQuestions)

	// Feedback row written; no question lookup performed.
	require.Len(t, f.analytics.feedback, 1)
	assert.Equal(t, "great app!", f.analytics.feedback[0].Feedback)
	assert.NotZero(t, f.analytics.feedback[0].Timestamp)
	assert.Empty(t, f.lookup.queries)

	// Still exactly one analytics row, tagged general.
	require.Len(t, f.analytics.queries, 1)
	assert.Equal(t, "general", f.analytics.queries[0].ResponseType)
}

func TestMobilePastQuestions(t *testing.T) {
	f := newChatFixture()
	f.lookup.result = csc451Result()

	resp, err := f.svc.HandleMobileQuery(context.Background(), MobileChatRequest{Query: "past questions for CSC 451"})
	require.NoError(t, err)

	assert.True(t, resp.IsPastQuestions)
	result, ok := resp.Response.(*model.PastQuestionsResult)
	require.True(t, ok)
	assert.Equal(t, "CSC 451: COMPUTER NETWORKS AND COMMUNICATIONS", result.Course)
	assert.Equal(t, 6, result.TotalQuestions)
	assert.Equal(t, 1, result.YearsFound)

	assert.Equal(t, []string{"CSC 451"}, f.lookup.queries)
	require.Len(t, f.analytics.queries, 1)
	assert.Equal(t, "past_questions", f.analytics.queries[0].ResponseType)
}

func TestMobileExplicitCourseCode(t *testing.T) {
	f := newChatFixture()
	f.lookup.result = csc451Result()

	_, err := f.svc.HandleMobileQuery(context.Background(), MobileChatRequest{
		Query:      "what came out last year?",
		CourseCode: "CSC 451",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"CSC 451"}, f.lookup.queries)
	require.Len(t, f.analytics.queries, 1)
	assert.Equal(t, "CSC 451", f.analytics.queries[0].CourseCode)
	assert.Equal(t, "past_questions", f.analytics.queries[0].ResponseType)
}

func TestMobileUnresolvedCourse(t *testing.T) {
	f := newChatFixture()

	resp, err := f.svc.HandleMobileQuery(context.Background(), MobileChatRequest{Query: "send me past questions"})
	require.NoError(t, err)

	assert.Equal(t, mobileCoursePrompt, resp.Response)
	assert.False(t, resp.IsPastQuestions)
	assert.Empty(t, f.lookup.queries)
	require.Len(t, f.analytics.queries, 1)
	assert.Equal(t, "past_questions", f.analytics.queries[0].ResponseType)
}

func TestMobileGeneralQuery(t *testing.T) {
	f := newChatFixture()
	f.ai.answer = "The department offers 12 courses."

	resp, err := f.svc.HandleMobileQuery(context.Background(), MobileChatRequest{Query: "how many courses are there?"})
	require.NoError(t, err)

	assert.Equal(t, "The department offers 12 courses.", resp.Response)
	assert.Equal(t, []string{"how many courses are there?"}, f.ai.prompts)
	require.Len(t, f.analytics.queries, 1)
	assert.Equal(t, "general", f.analytics.queries[0].ResponseType)
	assert.Equal(t, "The department offers 12 courses.", f.analytics.queries[0].Response)
}

func TestMobileGeneralQueryAIFailure(t *testing.T) {
	f := newChatFixture()
	f.ai.err = errors.New("rate limited")

	resp, err := f.svc.HandleMobileQuery(context.Background(), MobileChatRequest{Query: "how many courses are there?"})
	require.NoError(t, err)

	// Gateway failure degrades to the fixed apology, never an error.
	assert.Equal(t, aiApology, resp.Response)
	require.Len(t, f.analytics.queries, 1)
	assert.Equal(t, "general", f.analytics.queries[0].ResponseType)
}

func TestMobileLookupFailurePropagates(t *testing.T) {
	f := newChatFixture()
	f.lookup.err = errors.New("mongo down")

	_, err := f.svc.HandleMobileQuery(context.Background(), MobileChatRequest{Query: "past questions for CSC 451"})
	assert.Error(t, err)
	assert.Empty(t, f.analytics.queries)
}

func TestTextMessagePastQuestions(t *testing.T) {
	f := newChatFixture()
	f.lookup.result = csc451Result()

	err := f.svc.HandleTextMessage(context.Background(), "2348012345678", "past questions for CSC 451")
	require.NoError(t, err)

	require.Len(t, f.sender.to, 1)
	assert.Equal(t, "2348012345678", f.sender.to[0])
	assert.Contains(t, f.sender.bodies[0], "📘 Past Questions for CSC 451: COMPUTER NETWORKS AND COMMUNICATIONS:")
	assert.Contains(t, f.sender.bodies[0], "✅ Total Questions: 6 from 1 year(s)")

	require.Len(t, f.analytics.queries, 1)
	assert.Equal(t, "2348012345678", f.analytics.queries[0].User)
	assert.Equal(t, "past_questions", f.analytics.queries[0].ResponseType)
}

func TestTextMessageNoResults(t *testing.T) {
	f := newChatFixture()
	f.lookup.result = &model.PastQuestionsResult{
		Course:  "CSC 999",
		Message: "No past questions found for CSC 999.",
	}

	err := f.svc.HandleTextMessage(context.Background(), "2348012345678", "past questions for CSC 999")
	require.NoError(t, err)

	require.Len(t, f.sender.bodies, 1)
	assert.Equal(t, "No past questions found for CSC 999.", f.sender.bodies[0])
}

func TestTextMessageFeedback(t *testing.T) {
	f := newChatFixture()

	err := f.svc.HandleTextMessage(context.Background(), "2348012345678", "feedback: love the bot")
	require.NoError(t, err)

	require.Len(t, f.analytics.feedback, 1)
	assert.Equal(t, "2348012345678", f.analytics.feedback[0].User)
	assert.Equal(t, "love the bot", f.analytics.feedback[0].Feedback)
	assert.Equal(t, []string{"Thank you for your feedback!"}, f.sender.bodies)
}

func TestTextMessageModelNotFound(t *testing.T) {
	f := newChatFixture()
	f.ai.err = fmt.Errorf("%w: llama-3.1-8b-instant", util.ErrModelNotFound)

	err := f.svc.HandleTextMessage(context.Background(), "2348012345678", "hello there")
	require.NoError(t, err)

	assert.Equal(t, []string{aiModelUnavailable}, f.sender.bodies)
}

func TestTextMessageAIFailure(t *testing.T) {
	f := newChatFixture()
	f.ai.err = errors.New("network error")

	err := f.svc.HandleTextMessage(context.Background(), "2348012345678", "hello there")
	require.NoError(t, err)

	assert.Equal(t, []string{aiTextApology}, f.sender.bodies)
}

func TestTextMessageSendFailurePropagates(t *testing.T) {
	f := newChatFixture()
	f.ai.answer = "hi"
	f.sender.err = errors.New("gateway 500")

	err := f.svc.HandleTextMessage(context.Background(), "2348012345678", "hello there")
	assert.Error(t, err)
}
