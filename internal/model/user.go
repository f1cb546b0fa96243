package model

// User identity shared by every profile (table users)
type User struct {
	ID           uint   `gorm:"primaryKey"                                     json:"id"`
	FirstName    string `gorm:"type:varchar(150);not null"                     json:"first_name"`
	LastName     string `gorm:"type:varchar(150);not null"                     json:"last_name"`
	Email        string `gorm:"type:varchar(254);not null;uniqueIndex:idx_users_email" json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null"                     json:"-"`
	BaseModel
}

// TableName table name
func (User) TableName() string { return "users" }

// FullName "<first_name> <last_name>"
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
