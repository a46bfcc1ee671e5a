package utils

import (
	"time"
)

// HealthStatus is the payload of the health endpoint.
type HealthStatus struct {
	Status    string    `json:"status"`
	Env       string    `json:"env"`
	StartedAt time.Time `json:"startedAt"`
	Uptime    string    `json:"uptime"`
}

// HealthMonitor reports process liveness since it was created.
type HealthMonitor struct {
	env       string
	startedAt time.Time
	now       func() time.Time
}

func NewHealthMonitor(env string) *HealthMonitor {
	return &HealthMonitor{env: env, startedAt: time.Now(), now: time.Now}
}

// Status returns the current health snapshot.
func (m *HealthMonitor) Status() HealthStatus {
	return HealthStatus{
		Status:    "ok",
		Env:       m.env,
		StartedAt: m.startedAt,
		Uptime:    m.now().Sub(m.startedAt).Truncate(time.Second).String(),
	}
}
