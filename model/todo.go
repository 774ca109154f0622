package model

type Todo struct {
	ID string `gorm:"primaryKey" json:"id"`
	// Creator of the todo. Not exposed since todos are only ever
	// served to their owner
	UserID string `gorm:"index" json:"-"`

	Text      string `gorm:"not null" json:"text"`
	Completed bool   `gorm:"default:false" json:"completed"`
	// Unix millisecond timestamps. CompletedAt is only set while
	// the todo is completed
	CompletedAt *int64 `json:"completedAt"`
	CreatedAt   int64  `gorm:"not null" json:"createdAt"`
}
