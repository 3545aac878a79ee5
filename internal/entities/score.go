package entities

import "time"

// CriterionScore is one rubric line of a judging score.
type CriterionScore struct {
	Name     string  `json:"name" validate:"required,max=80"`
	Score    float64 `json:"score" validate:"min=0"`
	MaxScore float64 `json:"maxScore" validate:"gt=0"`
}

// JudgingScore is one judge's evaluation of one event submission.
type JudgingScore struct {
	ID           string           `json:"id"`
	EventID      string           `json:"eventId"`
	SubmissionID string           `json:"submissionId"`
	JudgeID      string           `json:"judgeId" validate:"required"`
	Criteria     []CriterionScore `json:"criteria" validate:"required,min=1,dive"`
	TotalScore   float64          `json:"totalScore"`
	Feedback     string           `json:"feedback,omitempty" validate:"max=5000"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

// SumCriteria returns the total of all criterion scores.
func SumCriteria(criteria []CriterionScore) float64 {
	var total float64
	for _, c := range criteria {
		total += c.Score
	}
	return total
}

// ScorePatch is a partial score update.
type ScorePatch struct {
	Criteria *[]CriterionScore `json:"criteria" validate:"omitempty,min=1,dive"`
	Feedback *string           `json:"feedback" validate:"omitempty,max=5000"`
}

// Apply copies set fields onto s and recomputes TotalScore.
func (p ScorePatch) Apply(s *JudgingScore) {
	setIf(&s.Criteria, p.Criteria)
	setIf(&s.Feedback, p.Feedback)
	s.TotalScore = SumCriteria(s.Criteria)
}
