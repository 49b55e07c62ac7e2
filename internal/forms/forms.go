package forms

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// JoinForm is a membership interest submission.
type JoinForm struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	AgeGroup string `json:"age_group"`
	Message  string `json:"message"`
}

// DonateForm records a donation pledge; no payment is processed.
type DonateForm struct {
	Name    string  `json:"name" binding:"required"`
	Email   string  `json:"email" binding:"required,email"`
	Amount  float64 `json:"amount" binding:"required"`
	Message string  `json:"message"`
}

// ContactForm is a general inquiry submission.
type ContactForm struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
	Topic     string `json:"topic"`
	Relation  string `json:"relation"`
	City      string `json:"city"`
	Message   string `json:"message" binding:"required"`
}

func (f JoinForm) document() bson.M {
	return bson.M{
		"name":      f.Name,
		"email":     f.Email,
		"age_group": f.AgeGroup,
		"message":   f.Message,
	}
}

func (f DonateForm) document() bson.M {
	return bson.M{
		"name":    f.Name,
		"email":   f.Email,
		"amount":  f.Amount,
		"message": f.Message,
	}
}

func (f ContactForm) document() bson.M {
	return bson.M{
		"first_name": f.FirstName,
		"last_name":  f.LastName,
		"email":      f.Email,
		"phone":      f.Phone,
		"topic":      f.Topic,
		"relation":   f.Relation,
		"city":       f.City,
		"message":    f.Message,
	}
}

// stamp finalizes a submission document before persistence.
func stamp(doc bson.M, id string, now time.Time) bson.M {
	doc["_id"] = id
	doc["created_at"] = now.UTC()
	return doc
}
