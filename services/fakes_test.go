package services

import (
	"forum-api/models"

	"gorm.io/gorm"
)

// In-memory repository fakes shared by the service tests.

type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint
	// extraMatches is appended to GetByUsername results to simulate the
	// never-expected duplicate-username case.
	extraMatches []models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]*models.User{}, nextID: 1}
}

func (r *fakeUserRepo) Create(user *models.User) error {
	for _, existing := range r.users {
		if existing.Username == user.Username {
			return gorm.ErrDuplicatedKey
		}
	}
	user.ID = r.nextID
	r.nextID++
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) GetByID(id uint) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByUsername(username string) ([]models.User, error) {
	var out []models.User
	for _, user := range r.users {
		if user.Username == username {
			out = append(out, *user)
		}
	}
	out = append(out, r.extraMatches...)
	return out, nil
}

func (r *fakeUserRepo) Update(user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) Delete(id uint) error {
	if _, ok := r.users[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) List(params models.ListParams) ([]models.User, error) {
	var out []models.User
	for id := uint(1); id < r.nextID; id++ {
		if user, ok := r.users[id]; ok {
			out = append(out, *user)
		}
	}
	start := params.Offset
	if start > len(out) {
		start = len(out)
	}
	end := start + params.Limit
	if end > len(out) {
		end = len(out)
	}
	return out[start:end], nil
}

func (r *fakeUserRepo) Search(params models.ListParams) ([]models.User, error) {
	return r.List(params)
}

type fakeTopicRepo struct {
	topics map[uint]*models.Topic
	nextID uint
}

func newFakeTopicRepo(names ...string) *fakeTopicRepo {
	r := &fakeTopicRepo{topics: map[uint]*models.Topic{}, nextID: 1}
	for _, name := range names {
		r.Create(&models.Topic{Name: name})
	}
	return r
}

func (r *fakeTopicRepo) Create(topic *models.Topic) error {
	for _, existing := range r.topics {
		if existing.Name == topic.Name {
			return gorm.ErrDuplicatedKey
		}
	}
	topic.ID = r.nextID
	r.nextID++
	stored := *topic
	r.topics[topic.ID] = &stored
	return nil
}

func (r *fakeTopicRepo) GetByID(id uint) (*models.Topic, error) {
	topic, ok := r.topics[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *topic
	return &copied, nil
}

func (r *fakeTopicRepo) ExistsByName(name string) (bool, error) {
	for _, topic := range r.topics {
		if topic.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeTopicRepo) Update(topic *models.Topic) error {
	if _, ok := r.topics[topic.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *topic
	r.topics[topic.ID] = &stored
	return nil
}

func (r *fakeTopicRepo) Delete(id uint) error {
	if _, ok := r.topics[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.topics, id)
	return nil
}

func (r *fakeTopicRepo) List(params models.ListParams) ([]models.Topic, error) {
	var out []models.Topic
	for id := uint(1); id < r.nextID; id++ {
		if topic, ok := r.topics[id]; ok {
			out = append(out, *topic)
		}
	}
	return out, nil
}

type fakeArticleRepo struct {
	articles map[uint]*models.Article
	nextID   uint
}

func newFakeArticleRepo() *fakeArticleRepo {
	return &fakeArticleRepo{articles: map[uint]*models.Article{}, nextID: 1}
}

func (r *fakeArticleRepo) Create(article *models.Article) error {
	article.ID = r.nextID
	r.nextID++
	stored := *article
	r.articles[article.ID] = &stored
	return nil
}

func (r *fakeArticleRepo) GetByID(id uint) (*models.Article, error) {
	article, ok := r.articles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *article
	return &copied, nil
}

func (r *fakeArticleRepo) Update(article *models.Article) error {
	if _, ok := r.articles[article.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *article
	r.articles[article.ID] = &stored
	return nil
}

func (r *fakeArticleRepo) Delete(id uint) error {
	if _, ok := r.articles[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.articles, id)
	return nil
}

func (r *fakeArticleRepo) List(params models.ListParams) ([]models.Article, error) {
	var out []models.Article
	for id := uint(1); id < r.nextID; id++ {
		if article, ok := r.articles[id]; ok {
			out = append(out, *article)
		}
	}
	return out, nil
}

func (r *fakeArticleRepo) Search(params models.ListParams) ([]models.Article, error) {
	return r.List(params)
}

func (r *fakeArticleRepo) ListByUser(userID uint) ([]models.Article, error) {
	var out []models.Article
	for id := uint(1); id < r.nextID; id++ {
		if article, ok := r.articles[id]; ok && article.UserID == userID {
			out = append(out, *article)
		}
	}
	return out, nil
}

type fakeCommentRepo struct {
	comments map[uint]*models.Comment
	nextID   uint
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: map[uint]*models.Comment{}, nextID: 1}
}

func (r *fakeCommentRepo) Create(comment *models.Comment) error {
	comment.ID = r.nextID
	r.nextID++
	stored := *comment
	r.comments[comment.ID] = &stored
	return nil
}

func (r *fakeCommentRepo) GetByID(id uint) (*models.Comment, error) {
	comment, ok := r.comments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *comment
	return &copied, nil
}

func (r *fakeCommentRepo) Update(comment *models.Comment) error {
	if _, ok := r.comments[comment.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *comment
	r.comments[comment.ID] = &stored
	return nil
}

func (r *fakeCommentRepo) Delete(id uint) error {
	if _, ok := r.comments[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.comments, id)
	return nil
}

func (r *fakeCommentRepo) ListByArticle(articleID uint) ([]models.Comment, error) {
	var out []models.Comment
	for id := uint(1); id < r.nextID; id++ {
		if comment, ok := r.comments[id]; ok && comment.ArticleID == articleID {
			out = append(out, *comment)
		}
	}
	return out, nil
}

func (r *fakeCommentRepo) ListByUser(userID uint) ([]models.Comment, error) {
	var out []models.Comment
	for id := uint(1); id < r.nextID; id++ {
		if comment, ok := r.comments[id]; ok && comment.UserID == userID {
			out = append(out, *comment)
		}
	}
	return out, nil
}

// fakeLikeRepo enforces the foreign-key semantics of the real tables: a vote
// on a missing target fails the same way postgres would.
type fakeLikeRepo struct {
	articleRepo  *fakeArticleRepo
	commentRepo  *fakeCommentRepo
	articleVotes map[[2]uint]*models.ArticleLike
	commentVotes map[[2]uint]*models.CommentLike
}

func newFakeLikeRepo(articleRepo *fakeArticleRepo, commentRepo *fakeCommentRepo) *fakeLikeRepo {
	return &fakeLikeRepo{
		articleRepo:  articleRepo,
		commentRepo:  commentRepo,
		articleVotes: map[[2]uint]*models.ArticleLike{},
		commentVotes: map[[2]uint]*models.CommentLike{},
	}
}

func (r *fakeLikeRepo) UpsertArticleLike(like *models.ArticleLike) error {
	if _, ok := r.articleRepo.articles[like.ArticleID]; !ok {
		return gorm.ErrForeignKeyViolated
	}
	stored := *like
	r.articleVotes[[2]uint{like.UserID, like.ArticleID}] = &stored
	return nil
}

func (r *fakeLikeRepo) ListByArticle(articleID uint) ([]models.ArticleLike, error) {
	var out []models.ArticleLike
	for key, like := range r.articleVotes {
		if key[1] == articleID {
			out = append(out, *like)
		}
	}
	return out, nil
}

func (r *fakeLikeRepo) UpsertCommentLike(like *models.CommentLike) error {
	if _, ok := r.commentRepo.comments[like.CommentID]; !ok {
		return gorm.ErrForeignKeyViolated
	}
	stored := *like
	r.commentVotes[[2]uint{like.UserID, like.CommentID}] = &stored
	return nil
}

func (r *fakeLikeRepo) ListByComment(commentID uint) ([]models.CommentLike, error) {
	var out []models.CommentLike
	for key, like := range r.commentVotes {
		if key[1] == commentID {
			out = append(out, *like)
		}
	}
	return out, nil
}
