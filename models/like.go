package models

// ArticleLike is one user's vote on one article. The composite primary key
// makes the upsert collapse repeated votes into a single row.
type ArticleLike struct {
	UserID    uint    `json:"userid" gorm:"column:userid;primaryKey;autoIncrement:false"`
	User      User    `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	ArticleID uint    `json:"articleid" gorm:"column:articleid;primaryKey;autoIncrement:false"`
	Article   Article `json:"-" gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE"`
	IsLike    bool    `json:"islike" gorm:"column:islike;not null"`
}

func (ArticleLike) TableName() string { return "article_likes" }

// CommentLike is one user's vote on one comment.
type CommentLike struct {
	UserID    uint    `json:"userid" gorm:"column:userid;primaryKey;autoIncrement:false"`
	User      User    `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CommentID uint    `json:"commentid" gorm:"column:commentid;primaryKey;autoIncrement:false"`
	Comment   Comment `json:"-" gorm:"foreignKey:CommentID;constraint:OnDelete:CASCADE"`
	IsLike    bool    `json:"islike" gorm:"column:islike;not null"`
}

func (CommentLike) TableName() string { return "comment_likes" }
