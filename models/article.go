package models

// Article references its author by id and its topic by name.
type Article struct {
	ID     uint   `json:"id" gorm:"primarykey"`
	UserID uint   `json:"userid" gorm:"column:userid;not null"`
	User   User   `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Topic  string `json:"topic" gorm:"not null"`
	Title  string `json:"title" gorm:"not null"`
	Body   string `json:"article" gorm:"column:article;not null"`
}
