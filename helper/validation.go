package helper

import (
	"forum-api/models"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	validator "gopkg.in/go-playground/validator.v9"
	entranslations "gopkg.in/go-playground/validator.v9/translations/en"
)

// Validator runs per-entity field validation and collects every violation
// into field-level messages. It never short-circuits on the first failure.
type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

func NewValidator() (*Validator, error) {
	locale := en.New()
	uni := ut.New(locale, locale)
	translator, _ := uni.GetTranslator("en")

	validate := validator.New()
	if err := entranslations.RegisterDefaultTranslations(validate, translator); err != nil {
		return nil, err
	}

	return &Validator{validate: validate, translator: translator}, nil
}

type userRules struct {
	Username string `validate:"min=3,max=15"`
	Name     string `validate:"min=1,max=40"`
	Password string `validate:"min=5,max=25"`
}

type articleRules struct {
	Topic string `validate:"min=2,max=30"`
	Title string `validate:"min=1,max=50"`
	Body  string `validate:"min=1,max=500"`
}

type commentRules struct {
	Title string `validate:"min=1,max=25"`
	Body  string `validate:"min=1,max=200"`
}

type topicRules struct {
	Topic string `validate:"min=2,max=30"`
}

var userMessages = map[string]models.FieldError{
	"Username": {Field: "username", Message: "Username must be a string of length 3 to 15 characters"},
	"Name":     {Field: "name", Message: "Name must be a string of length 1 to 40 characters"},
	"Password": {Field: "password", Message: "Password must be a string of length 5 to 25 characters"},
}

var articleMessages = map[string]models.FieldError{
	"Topic": {Field: "topic", Message: "Topic must be a string of length 2 to 30 characters"},
	"Title": {Field: "title", Message: "Title must be a string of length 1 to 50 characters"},
	"Body":  {Field: "article", Message: "Article must be a string of length 1 to 500 characters"},
}

var commentMessages = map[string]models.FieldError{
	"Title": {Field: "title", Message: "Title must be a string of length 1 to 25 characters"},
	"Body":  {Field: "comment", Message: "Comment must be a string of length 1 to 200 characters"},
}

var topicMessages = map[string]models.FieldError{
	"Topic": {Field: "topic", Message: "Topic must be a string of length 2 to 30 characters"},
}

func (v *Validator) ValidateUser(username, name, password string) []models.FieldError {
	return v.collect(userRules{Username: username, Name: name, Password: password}, userMessages)
}

func (v *Validator) ValidateArticle(topic, title, body string) []models.FieldError {
	return v.collect(articleRules{Topic: topic, Title: title, Body: body}, articleMessages)
}

func (v *Validator) ValidateComment(title, body string) []models.FieldError {
	return v.collect(commentRules{Title: title, Body: body}, commentMessages)
}

func (v *Validator) ValidateTopic(topic string) []models.FieldError {
	return v.collect(topicRules{Topic: topic}, topicMessages)
}

func (v *Validator) collect(rules interface{}, messages map[string]models.FieldError) []models.FieldError {
	err := v.validate.Struct(rules)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []models.FieldError{{Field: "unknown", Message: err.Error()}}
	}

	translated := verrs.Translate(v.translator)

	var out []models.FieldError
	for _, fe := range verrs {
		if msg, found := messages[fe.StructField()]; found {
			out = append(out, msg)
			continue
		}
		out = append(out, models.FieldError{
			Field:   fe.StructField(),
			Message: translated[fe.Namespace()],
		})
	}

	return out
}
