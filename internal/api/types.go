// Package api provides the HTTP client and payload types for the external
// assessment backend. The backend returns two distinct shapes: a live
// analysis result from the process endpoints, and a persisted history record
// from the chat-histories endpoints.
package api

import (
	"encoding/json"
	"fmt"
)

// AnalysisResult is the live-analysis payload returned by ProcessText and
// ProcessSpeech. Analysis fields are ordered [label, value] pairs; the
// backend occasionally emits null pair slots, which decode to nil elements.
type AnalysisResult struct {
	LanguageAnalysis    [][]string   `json:"language_analysis,omitempty"`
	PerformanceAnalysis [][]string   `json:"performance_analysis,omitempty"`
	InterviewQuestions  QuestionList `json:"interview_questions,omitempty"`
	TranscribedText     string       `json:"transcribed_text,omitempty"`
	Report              string       `json:"report,omitempty"`
	Charts              *Charts      `json:"charts,omitempty"`
}

// HistorySummary is one row of the backend's session directory listing.
type HistorySummary struct {
	ID        string `json:"_id"`
	Title     string `json:"title,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

// HistoryRecord is the persisted-history payload for a single past session.
// Field names follow the stored documents, including the literal
// "Follow-up Questions" key.
type HistoryRecord struct {
	ID                string       `json:"_id,omitempty"`
	Title             string       `json:"title,omitempty"`
	Timestamp         string       `json:"timestamp,omitempty"`
	InputText         string       `json:"input_text,omitempty"`
	TranscribedText   string       `json:"transcribed_text,omitempty"`
	Scores            string       `json:"scores,omitempty"`
	Suggestions       string       `json:"Suggestions,omitempty"`
	FollowUpQuestions QuestionList `json:"Follow-up Questions,omitempty"`
	Report            string       `json:"report,omitempty"`
	Charts            *Charts      `json:"charts,omitempty"`
}

// Charts holds base64-encoded PNG chart images.
type Charts struct {
	Radar      string `json:"radar,omitempty"`
	Vocabulary string `json:"vocabulary,omitempty"`
}

// QuestionList accepts either a JSON array of strings or a single string.
// The single-string form may be a numbered list ("1. ... 2. ...") or the
// backend's "No questions generated" sentinel; splitting is left to the
// transcript normalizer.
type QuestionList struct {
	Items []string
	Raw   string
}

// IsZero reports whether no questions field was present at all.
func (q QuestionList) IsZero() bool {
	return q.Items == nil && q.Raw == ""
}

func (q *QuestionList) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) > 0 && data[0] == '[' {
		return json.Unmarshal(data, &q.Items)
	}
	if err := json.Unmarshal(data, &q.Raw); err != nil {
		return fmt.Errorf("questions: expected string or array: %w", err)
	}
	return nil
}

func (q QuestionList) MarshalJSON() ([]byte, error) {
	if q.Items != nil {
		return json.Marshal(q.Items)
	}
	return json.Marshal(q.Raw)
}

// errorBody is the backend's JSON error envelope.
type errorBody struct {
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}
