package model

// Token is a single live session of a user. The autoincrement ID keeps
// the rows in append order, so a user's token list reads back in the
// order the sessions were opened.
type Token struct {
	ID     int    `gorm:"primaryKey;autoIncrement"`
	UserID string `gorm:"index"`
	Access string `gorm:"not null"`
	Token  string `gorm:"uniqueIndex"`
}
