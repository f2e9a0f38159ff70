package model

// ActivityLog is an audit fact emitted after privileged reads and session
// closes. Written fire-and-forget; the audit sink reads the table, nothing
// in this service does.
type ActivityLog struct {
	UUIDBase
	ActorID     uint   `gorm:"index;not null" json:"actorId"`
	Action      string `gorm:"size:50;not null" json:"action"`
	Category    string `gorm:"size:50" json:"category"`
	Description string `gorm:"type:text" json:"description"`
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}
