package service

import (
	"regexp"
	"strings"
)

type Intent int

const (
	// IntentFeedback routes "feedback: ..." messages to the feedback sink.
	IntentFeedback Intent = iota
	// IntentPastQuestions routes to the exam-paper lookup.
	IntentPastQuestions
	// IntentUnresolved is a past-questions request with no resolvable
	// course; the reply asks the user to specify one.
	IntentUnresolved
	// IntentGeneral routes the full query to the LLM.
	IntentGeneral
)

func (i Intent) String() string {
	switch i {
	case IntentFeedback:
		return "feedback"
	case IntentPastQuestions:
		return "past_questions"
	case IntentUnresolved:
		return "unresolved"
	default:
		return "general"
	}
}

// Classification is the routing decision for one inbound query.
type Classification struct {
	Intent   Intent
	Feedback string // trimmed payload, IntentFeedback only
	Course   string // resolved course, IntentPastQuestions only
}

const feedbackPrefix = "feedback:"

var (
	pastQuestionsMarker = regexp.MustCompile(`(?i)past questions`)
	coursePhrasePattern = regexp.MustCompile(`(?i)past questions for ([\w\s&]+)`)
	// Known department prefixes followed by a 3-digit course number.
	deptCodePattern = regexp.MustCompile(`(?i)(CSC|MTH|PHY|CHM|BIO|STA|GES)\s*(\d{3})`)
)

// classificationRule pairs a predicate with its extractor. Rules are
// evaluated in order; the first match wins.
type classificationRule func(query, courseCode string) (Classification, bool)

var classificationRules = []classificationRule{
	matchFeedback,
	matchPastQuestions,
}

// Classify decides which branch handles a query. Precedence is fixed:
// feedback before past questions before general, so a query carrying both
// a feedback prefix and a past-questions phrase is treated as feedback.
func Classify(query, courseCode string) Classification {
	for _, rule := range classificationRules {
		if cls, ok := rule(query, courseCode); ok {
			return cls
		}
	}
	return Classification{Intent: IntentGeneral}
}

func matchFeedback(query, _ string) (Classification, bool) {
	if !strings.HasPrefix(strings.ToLower(query), feedbackPrefix) {
		return Classification{}, false
	}
	return Classification{
		Intent:   IntentFeedback,
		Feedback: strings.TrimSpace(query[len(feedbackPrefix):]),
	}, true
}

func matchPastQuestions(query, courseCode string) (Classification, bool) {
	if courseCode == "" && !pastQuestionsMarker.MatchString(query) {
		return Classification{}, false
	}

	course := courseCode
	if course == "" {
		if m := coursePhrasePattern.FindStringSubmatch(query); m != nil {
			course = strings.TrimSpace(m[1])
		}
	}
	if course == "" {
		if m := deptCodePattern.FindStringSubmatch(query); m != nil {
			course = m[1] + " " + m[2]
		}
	}

	if course == "" {
		return Classification{Intent: IntentUnresolved}, true
	}
	return Classification{Intent: IntentPastQuestions, Course: course}, true
}
