package models

import "time"

// OverallKey is the map key holding whole-attempt values in percentage and
// percentile maps.
const OverallKey = "overall"

// DetailedScore is the scaled SAT-style score for one attempt.
type DetailedScore struct {
	TotalScore           int                `json:"total_score"`
	EvidenceBasedReading int                `json:"evidence_based_reading"`
	MathScore            int                `json:"math_score"`
	RawScores            map[ModuleType]int `json:"raw_scores"`
	Percentages          map[string]float64 `json:"percentages"`
	Percentiles          map[string]int     `json:"percentiles"`
}

// QuestionAnalysis is the display projection of one answered question.
type QuestionAnalysis struct {
	QuestionID     string          `json:"question_id"`
	QuestionNumber int             `json:"question_number"`
	ModuleType     ModuleType      `json:"module_type"`
	UserAnswer     *string         `json:"user_answer"`
	CorrectAnswer  CorrectAnswer   `json:"correct_answer"`
	IsCorrect      bool            `json:"is_correct"`
	TimeSpent      int             `json:"time_spent"`
	Difficulty     DifficultyLevel `json:"difficulty"`
	TopicTags      []string        `json:"topic_tags"`
	Explanation    *string         `json:"explanation,omitempty"`
}

type DifficultyStats struct {
	Attempted  int     `json:"attempted"`
	Correct    int     `json:"correct"`
	Percentage float64 `json:"percentage"`
}

type TopicPerformance struct {
	Topic      string  `json:"topic"`
	Attempted  int     `json:"attempted"`
	Correct    int     `json:"correct"`
	Percentage float64 `json:"percentage"`
}

type PerformanceAnalytics struct {
	TotalQuestions         int                                 `json:"total_questions"`
	CorrectAnswers         int                                 `json:"correct_answers"`
	AccuracyRate           float64                             `json:"accuracy_rate"`
	AverageTimePerQuestion float64                             `json:"average_time_per_question"`
	TotalTimeSpent         int                                 `json:"total_time_spent"`
	StrengthAreas          []string                            `json:"strength_areas"`
	WeaknessAreas          []string                            `json:"weakness_areas"`
	DifficultyBreakdown    map[DifficultyLevel]DifficultyStats `json:"difficulty_breakdown"`
	TopicPerformance       []TopicPerformance                  `json:"topic_performance"`
}

// ProgressComparison compares an attempt with the user's most recent prior
// completed attempt.
type ProgressComparison struct {
	PreviousAttempts    int     `json:"previous_attempts"`
	PreviousAttemptID   string  `json:"previous_attempt_id"`
	ScoreImprovement    int     `json:"score_improvement"`
	AccuracyImprovement float64 `json:"accuracy_improvement"`
}

type RecommendationType string

const (
	RecommendationTopic      RecommendationType = "topic"
	RecommendationDifficulty RecommendationType = "difficulty"
)

type RecommendationPriority string

const (
	PriorityHigh   RecommendationPriority = "high"
	PriorityMedium RecommendationPriority = "medium"
)

type Recommendation struct {
	Type     RecommendationType     `json:"type"`
	Target   string                 `json:"target"`
	Accuracy float64                `json:"accuracy"`
	Priority RecommendationPriority `json:"priority"`
	Message  string                 `json:"message"`
}

// ComprehensiveResults merges every analytic view of one attempt.
type ComprehensiveResults struct {
	AttemptID            string                `json:"attempt_id"`
	UserID               string                `json:"user_id,omitempty"`
	DetailedScore        *DetailedScore        `json:"detailed_score"`
	QuestionAnalysis     []QuestionAnalysis    `json:"question_analysis"`
	PerformanceAnalytics *PerformanceAnalytics `json:"performance_analytics"`
	Progress             *ProgressComparison   `json:"progress"`
	Recommendations      []Recommendation      `json:"recommendations"`
	GeneratedAt          time.Time             `json:"generated_at"`
}
