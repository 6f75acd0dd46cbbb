package models

type Comment struct {
	ID        uint    `json:"id" gorm:"primarykey"`
	UserID    uint    `json:"userid" gorm:"column:userid;not null"`
	User      User    `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	ArticleID uint    `json:"articleid" gorm:"column:articleid;not null"`
	Article   Article `json:"-" gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE"`
	Title     string  `json:"title" gorm:"not null"`
	Body      string  `json:"comment" gorm:"column:comment;not null"`
}

func (Comment) TableName() string { return "comments" }
