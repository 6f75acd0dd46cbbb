package models

// User is a registered account. Password carries the bcrypt digest and is
// never serialized. Pending marks an outstanding admin-privilege request.
type User struct {
	ID       uint   `json:"id" gorm:"primarykey"`
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Name     string `json:"name" gorm:"not null"`
	Password string `json:"-" gorm:"not null"`
	Admin    bool   `json:"admin" gorm:"not null;default:false"`
	Pending  bool   `json:"pending" gorm:"not null;default:false"`
}
