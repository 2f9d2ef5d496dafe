package api

import (
	"encoding/json"
	"testing"
)

func TestAnalysisResultDecodesNullPairs(t *testing.T) {
	raw := `{
		"language_analysis": [["Grammar Analysis:", "1 issue found"]],
		"performance_analysis": [["Scores", "Fluency: 80"], null, ["Tips", "Use varied vocabulary"]]
	}`

	var result AnalysisResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if len(result.PerformanceAnalysis) != 3 {
		t.Fatalf("performance pairs = %d, want 3", len(result.PerformanceAnalysis))
	}
	if result.PerformanceAnalysis[1] != nil {
		t.Errorf("pair[1] = %v, want nil for JSON null", result.PerformanceAnalysis[1])
	}
	if result.PerformanceAnalysis[2][1] != "Use varied vocabulary" {
		t.Errorf("pair[2] value = %q", result.PerformanceAnalysis[2][1])
	}
}

func TestQuestionListFromArray(t *testing.T) {
	var q QuestionList
	if err := json.Unmarshal([]byte(`["What do you do?", "Why English?"]`), &q); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(q.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(q.Items))
	}
	if q.Raw != "" {
		t.Errorf("raw = %q, want empty", q.Raw)
	}
}

func TestQuestionListFromString(t *testing.T) {
	var q QuestionList
	if err := json.Unmarshal([]byte(`"1. What? 2. Why?"`), &q); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if q.Items != nil {
		t.Errorf("items = %v, want nil", q.Items)
	}
	if q.Raw != "1. What? 2. Why?" {
		t.Errorf("raw = %q", q.Raw)
	}
}

func TestQuestionListNull(t *testing.T) {
	var q QuestionList
	if err := json.Unmarshal([]byte(`null`), &q); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !q.IsZero() {
		t.Errorf("q = %+v, want zero", q)
	}
}

func TestQuestionListRejectsObject(t *testing.T) {
	var q QuestionList
	if err := json.Unmarshal([]byte(`{"q": 1}`), &q); err == nil {
		t.Error("expected error for object form")
	}
}

func TestHistoryRecordFieldKeys(t *testing.T) {
	raw := `{
		"_id": "65a1",
		"input_text": "hello",
		"Suggestions": "- shorter sentences",
		"Follow-up Questions": "No questions generated"
	}`

	var rec HistoryRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if rec.ID != "65a1" {
		t.Errorf("id = %q", rec.ID)
	}
	if rec.Suggestions != "- shorter sentences" {
		t.Errorf("Suggestions = %q", rec.Suggestions)
	}
	if rec.FollowUpQuestions.Raw != "No questions generated" {
		t.Errorf("follow-up raw = %q", rec.FollowUpQuestions.Raw)
	}
}
