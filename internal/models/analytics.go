package models

import "time"

type Analytics struct {
	TotalTokensGenerated int `json:"totalTokensGenerated"`
	TokensServed         int `json:"tokensServed"`
	AverageWaitingTime   int `json:"averageWaitingTime"` // whole minutes
}

type Timings struct {
	AverageTime float64 `json:"averageTime"`
	MinTime     float64 `json:"minTime"`
	MaxTime     float64 `json:"maxTime"`
	MedianTime  float64 `json:"medianTime"`
	TotalServed int     `json:"totalServed"`
}

// ServedEntry is one row of the recent-served table on the admin dashboard.
type ServedEntry struct {
	TokenNumber         int64      `json:"tokenNumber"`
	ServiceType         string     `json:"serviceType"`
	Duration            float64    `json:"duration"` // minutes, 2dp
	ServedAt            *time.Time `json:"servedAt"`
	AssignedServiceTime *float64   `json:"assignedServiceTime,omitempty"`
}
