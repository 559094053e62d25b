package meetings

import (
	"strings"
	"unicode/utf8"
)

const MaxCommentLength = 500

const (
	MsgMissingFields = "Missing required fields."
	MsgCommentsLong  = "Comments must be 500 characters or less."
)

// ValidationError carries the message returned to the requester as-is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Request is a meeting request in flight. It is never stored.
type Request struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	BusinessName  string `json:"businessName,omitempty"`
	AddressLine1  string `json:"addressLine1"`
	City          string `json:"city"`
	State         string `json:"state"`
	Zip           string `json:"zip"`
	PreferredDate string `json:"preferredDate"`
	PreferredTime string `json:"preferredTime"`
	Comments      string `json:"comments,omitempty"`
	PhotoURL      string `json:"photoUrl,omitempty"`
}

// requiredKeys lists the body keys that must be non-blank strings.
var requiredKeys = []string{
	"firstName",
	"lastName",
	"email",
	"phone",
	"addressLine1",
	"city",
	"state",
	"zip",
	"preferredDate",
	"preferredTime",
}

// FromBody validates a decoded JSON object. A required key that is absent,
// not a string, or blank fails with MsgMissingFields; over-long comments fail
// with MsgCommentsLong. Optional keys of the wrong type read as empty.
func FromBody(body map[string]any) (Request, error) {
	for _, k := range requiredKeys {
		s, ok := body[k].(string)
		if !ok || strings.TrimSpace(s) == "" {
			return Request{}, &ValidationError{Message: MsgMissingFields}
		}
	}

	str := func(k string) string {
		s, _ := body[k].(string)
		return s
	}

	req := Request{
		FirstName:     str("firstName"),
		LastName:      str("lastName"),
		Email:         str("email"),
		Phone:         str("phone"),
		BusinessName:  str("businessName"),
		AddressLine1:  str("addressLine1"),
		City:          str("city"),
		State:         str("state"),
		Zip:           str("zip"),
		PreferredDate: str("preferredDate"),
		PreferredTime: str("preferredTime"),
		Comments:      str("comments"),
		PhotoURL:      str("photoUrl"),
	}

	if CommentsTooLong(req.Comments) {
		return Request{}, &ValidationError{Message: MsgCommentsLong}
	}
	return req, nil
}

// MissingRequired reports whether any required field is blank after trimming.
func (r Request) MissingRequired() bool {
	for _, v := range []string{
		r.FirstName, r.LastName, r.Email, r.Phone, r.AddressLine1,
		r.City, r.State, r.Zip, r.PreferredDate, r.PreferredTime,
	} {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}

func CommentsTooLong(comments string) bool {
	return utf8.RuneCountInString(comments) > MaxCommentLength
}
