package models

// ServiceTime is a per-category default duration used by the admin dashboard.
type ServiceTime struct {
	ServiceType      string  `json:"serviceType"`
	EstimatedMinutes float64 `json:"estimatedMinutes"`
}
