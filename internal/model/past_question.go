package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Question is one numbered question inside a stored exam paper.
// IDs are generated at insert time when the source data carries none;
// uniqueness is only meaningful within a single paper.
type Question struct {
	ID     string `bson:"id,omitempty" json:"id,omitempty"`
	Number string `bson:"number" json:"number"`
	Text   string `bson:"text" json:"text"`
}

// PastQuestion is one exam paper for a course offering in a given session.
// Papers are written by the admin upsert path (keyed by course/year/session)
// and read-only everywhere else.
type PastQuestion struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Course      string             `bson:"course" json:"course"`
	Semester    string             `bson:"semester,omitempty" json:"semester,omitempty"`
	Year        int                `bson:"year" json:"year"`
	ExamSession string             `bson:"examSession,omitempty" json:"examSession,omitempty"`
	Questions   []Question         `bson:"questions" json:"questions"`
}

// QuestionView is a flattened question entry in an aggregated answer.
type QuestionView struct {
	Number string `json:"number"`
	Text   string `json:"text"`
}

// PastQuestionsResult is the aggregate built from all papers matching a
// course query. YearsFound counts matched papers, not distinct years: a
// course with two sessions in one year counts twice.
type PastQuestionsResult struct {
	Course         string         `json:"course"`
	Questions      []QuestionView `json:"questions"`
	Message        string         `json:"message,omitempty"`
	YearsFound     int            `json:"yearsFound"`
	TotalQuestions int            `json:"totalQuestions"`
	RawCourseData  []string       `json:"rawCourseData,omitempty"`
}
