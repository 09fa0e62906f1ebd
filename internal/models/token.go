package models

import "time"

const (
	StatusWaiting = "waiting"
	StatusServing = "serving"
	StatusServed  = "served"
)

type Token struct {
	ID                  int64      `json:"-"`
	TokenNumber         int64      `json:"tokenNumber"`
	ServiceType         string     `json:"serviceType"`
	Status              string     `json:"status"` // waiting, serving, served
	AssignedServiceTime *float64   `json:"assignedServiceTime,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
	ServedAt            *time.Time `json:"servedAt,omitempty"`
}

// WaitingToken is the trimmed shape returned by the waiting list endpoint.
type WaitingToken struct {
	TokenNumber int64     `json:"tokenNumber"`
	ServiceType string    `json:"serviceType"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (t Token) ToWaiting() WaitingToken {
	return WaitingToken{
		TokenNumber: t.TokenNumber,
		ServiceType: t.ServiceType,
		CreatedAt:   t.CreatedAt,
	}
}
