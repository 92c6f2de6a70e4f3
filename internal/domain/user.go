package domain

// User represents a registered account that can be wrapped by a participant
type User struct {
	BaseModel
	Name  string `gorm:"type:varchar(255);not null" json:"name"`
	Email string `gorm:"type:varchar(255);not null;uniqueIndex:uq_users_email" json:"email"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
