package response

import (
	"net/url"
	"strings"
	"time"
)

// Query parameters carried by survey links.
const (
	ParamScore    = "score"
	ParamCustomer = "customer"
	ParamEmail    = "email"
	ParamRecord   = "record"
)

// Response is one recorded survey answer.
type Response struct {
	CreatedAt  time.Time
	CustomerID string
	Email      string
	RecordID   string // optional CRM record reference
	Category   Category
	Score      int
}

// Link holds the raw survey link parameters.
type Link struct {
	Score    string
	Customer string
	Email    string
	Record   string
}

// LinkFromQuery extracts link parameters, trimming surrounding spaces.
func LinkFromQuery(q url.Values) Link {
	return Link{
		Score:    strings.TrimSpace(q.Get(ParamScore)),
		Customer: strings.TrimSpace(q.Get(ParamCustomer)),
		Email:    strings.TrimSpace(q.Get(ParamEmail)),
		Record:   strings.TrimSpace(q.Get(ParamRecord)),
	}
}

// Complete reports whether score, customer and email are all present.
func (l Link) Complete() bool {
	return l.Score != "" && l.Customer != "" && l.Email != ""
}

// Query encodes the link back into query values. Record is omitted when empty.
func (l Link) Query() url.Values {
	q := url.Values{}
	q.Set(ParamScore, l.Score)
	q.Set(ParamCustomer, l.Customer)
	q.Set(ParamEmail, l.Email)
	if l.Record != "" {
		q.Set(ParamRecord, l.Record)
	}
	return q
}

// Parse validates the link and builds the response recorded at now.
func (l Link) Parse(now time.Time) (Response, error) {
	if !l.Complete() {
		return Response{}, ErrMissingParams
	}
	score, err := ParseScore(l.Score)
	if err != nil {
		return Response{}, err
	}
	return Response{
		CreatedAt:  now.UTC(),
		CustomerID: l.Customer,
		Email:      l.Email,
		RecordID:   l.Record,
		Category:   CategoryOf(score),
		Score:      score,
	}, nil
}
