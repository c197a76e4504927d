// Seeds the past-question store with the CSC 451 (2024/2025) paper.
//
// The admin upsert endpoint is the normal way papers get in; this script
// exists for first deployments and local development.
//
// Usage: go run scripts/seed_past_questions.go

package main

import (
	"context"
	"log"
	"os"
	"time"

	"cs_chatbot_backend/internal/config"
	"cs_chatbot_backend/internal/model"
	"cs_chatbot_backend/internal/repository"
	"cs_chatbot_backend/internal/service"
	"cs_chatbot_backend/pkg/database"
	"cs_chatbot_backend/pkg/logger"

	"gopkg.in/yaml.v3"
)

func main() {
	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to read config file: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("Failed to parse config file: %v", err)
	}
	if cfg.Mongo.Collection == "" {
		cfg.Mongo.Collection = "pastquestions"
	}

	logger.InitLogger(&cfg)

	mongoClient, err := database.InitMongo(&cfg.Mongo)
	if err != nil {
		log.Fatalf("MongoDB connection failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	defer mongoClient.Disconnect(ctx)

	repo := repository.NewPastQuestionRepository(mongoClient, &cfg.Mongo)
	pastQuestions := service.NewPastQuestionService(repo, nil, logger.Log)

	paper := &model.PastQuestion{
		Course:      "CSC 451: Computer Networks and Communications",
		Semester:    "First",
		Year:        2024,
		ExamSession: "2024/2025",
		Questions: []model.Question{
			{Number: "1", Text: "What are the input strings for the following languages:\n(i) S → aASBb/€, A → a/€, B → bcd\n(ii) S → ASBBC, A → e/€, B → bbc/€, C → €\n(iii) S → aAb, aA → aaAb, A → €"},
			{Number: "2", Text: "(i) What is a token?\n(ii) Give four types of token with their valid examples.\n(iii) Discuss the analysis and synthesis phases of a typical compiler."},
			{Number: "3", Text: "(i) Why is symbol table called a book keeper?\n(ii) In symbol table entries, appropriately classify the following expressions:\n(a) int x = 10;\n(b) System.out.println(\"ABSU Students are wonderful\");\n(c) Float pie = 3.142;"},
			{Number: "4", Text: "T is the set of terminals, V is the set of non-terminals, P is the productions and S is the starting symbol. In a tabular form, determine the T, V, P and S of the following grammars:\n(a) S → ABSe/€\n(b) aA → E + e/E + E\n(c) AB → E/€"},
			{Number: "5", Text: "Construct a top-down parser for the following:\n(a) S → cAd, A → ab/a, w(input string = cad)\n(b) S → aBC, B → cd, C → ad/e/. Input string = acde"},
			{Number: "6", Text: "Construct a bottom-up parser using the input string abcde for the following grammar:\n(a) A → ab, B → de, C → bc, S → ACB\n(b) S → bb, C → a, E → cd, D → e, S → CED"},
		},
	}

	log.Printf("Seeding %s (%d)...", paper.Course, paper.Year)
	if err := pastQuestions.Upsert(ctx, paper); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Println("Done.")
}
