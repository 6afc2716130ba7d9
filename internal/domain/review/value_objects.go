package review

import (
	"errors"
	"strings"
)

var (
	ErrRatingOutOfRange  = errors.New("rating must be between 1 and 5")
	ErrCommentTooLong    = errors.New("comment exceeds maximum length")
	ErrEmptyCustomerName = errors.New("customer name cannot be empty")
)

const (
	MinRating        = 1
	MaxRating        = 5
	MaxCommentLength = 2000
)

type Rating struct {
	value int
}

func NewRating(value int) (Rating, error) {
	if value < MinRating || value > MaxRating {
		return Rating{}, ErrRatingOutOfRange
	}
	return Rating{value: value}, nil
}

func (r Rating) Value() int { return r.value }

type Comment struct {
	value string
}

func NewComment(value string) (Comment, error) {
	value = strings.TrimSpace(value)
	if len(value) > MaxCommentLength {
		return Comment{}, ErrCommentTooLong
	}
	return Comment{value: value}, nil
}

func (c Comment) Value() string { return c.value }

type CustomerName struct {
	value string
}

func NewCustomerName(value string) (CustomerName, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return CustomerName{}, ErrEmptyCustomerName
	}
	return CustomerName{value: value}, nil
}

func (n CustomerName) Value() string { return n.value }
