package inbound

// isoMillis renders UTC instants the way JavaScript's toISOString does.
const isoMillis = "2006-01-02T15:04:05.000Z"

type HealthResponse struct {
	Status      string  `json:"status" example:"ok"`
	Timestamp   string  `json:"timestamp" example:"2025-01-02T03:04:05.678Z"`
	Uptime      float64 `json:"uptime" example:"12.345"`
	Environment string  `json:"environment" example:"development"`
}
