package dto

type HealthBasic struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type HealthServices struct {
	Database string `json:"database"`
	Redis    string `json:"redis,omitempty"`
}

type HealthReport struct {
	AppName    string         `json:"appName"`
	AppVersion string         `json:"appVersion"`
	Timestamp  string         `json:"timestamp"`
	Language   string         `json:"language"`
	Status     HealthServices `json:"status"`
}
