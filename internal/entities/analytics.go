package entities

// StatusCount is a count grouped by a status-like key.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// TrackCount is a submission count grouped by track.
type TrackCount struct {
	Track string `json:"track"`
	Count int    `json:"count"`
}

// EventRank is an event ordered by participant count.
type EventRank struct {
	EventID          string `json:"eventId"`
	Title            string `json:"title"`
	ParticipantCount int    `json:"participantCount"`
	SubmissionCount  int    `json:"submissionCount"`
}

// PlatformAnalytics aggregates totals across every entity.
type PlatformAnalytics struct {
	TotalUsers       int           `json:"totalUsers"`
	TotalEvents      int           `json:"totalEvents"`
	TotalTeams       int           `json:"totalTeams"`
	TotalSubmissions int           `json:"totalSubmissions"`
	ActiveJudges     int           `json:"activeJudges"`
	ActiveSponsors   int           `json:"activeSponsors"`
	OpenLFGPosts     int           `json:"openLfgPosts"`
	Participants     int           `json:"participants"`
	EventsByStatus   []StatusCount `json:"eventsByStatus"`
	TopEvents        []EventRank   `json:"topEvents"`
}

// EventAnalytics aggregates one event.
type EventAnalytics struct {
	EventID                string        `json:"eventId"`
	ParticipantCount       int           `json:"participantCount"`
	TeamCount              int           `json:"teamCount"`
	SubmissionCount        int           `json:"submissionCount"`
	ParticipantsByStatus   []StatusCount `json:"participantsByStatus"`
	SubmissionsByTrack     []TrackCount  `json:"submissionsByTrack"`
	SubmissionsByStatus    []StatusCount `json:"submissionsByStatus"`
	ScoredSubmissions      int           `json:"scoredSubmissions"`
	TotalScores            int           `json:"totalScores"`
	AverageScore           float64       `json:"averageScore"`
	ActiveJudges           int           `json:"activeJudges"`
	ActiveSponsors         int           `json:"activeSponsors"`
	PublishedContent       int           `json:"publishedContent"`
	TeamsLookingForMembers int           `json:"teamsLookingForMembers"`
}

// LeaderboardEntry is one ranked event submission.
type LeaderboardEntry struct {
	Rank         int     `json:"rank"`
	SubmissionID string  `json:"submissionId"`
	TeamID       string  `json:"teamId"`
	Title        string  `json:"title"`
	Track        string  `json:"track,omitempty"`
	AverageScore float64 `json:"averageScore"`
	ScoreCount   int     `json:"scoreCount"`
}
