package domain

import "time"

// Snapshot is a full export of both persisted collections.
type Snapshot struct {
	ExportedAt time.Time  `json:"exportedAt"`
	Exercises  []Exercise `json:"exercises"`
	Workouts   []Workout  `json:"workouts"`
}

// Backup stores metadata about a snapshot uploaded to object storage.
// The actual file resides in S3.
type Backup struct {
	ObjectKey   string    `json:"objectKey"`
	Size        int64     `json:"size"`
	UploadedAt  time.Time `json:"uploadedAt"`
	DownloadURL string    `json:"downloadUrl,omitempty"` // presigned, temporary
}
