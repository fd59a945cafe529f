package entities

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
)

// MaxOrderSequence is the last sequence that fits the four digit format.
const MaxOrderSequence = 9999

var orderNumberPattern = regexp.MustCompile(`^\d{4}\/\d{4}$`)

var ErrInvalidOrderNumber = NewError(ErrValidation, "order number must match NNNN/YYYY")

// OrderNumber is the yearly sequential number of an order, rendered as NNNN/YYYY.
// The sequence restarts at 1 on the first approval of each year.
type OrderNumber struct {
	Sequence int
	Year     int
}

func (n OrderNumber) String() string {
	if n.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d/%04d", n.Sequence, n.Year)
}

func (n OrderNumber) IsZero() bool {
	return n.Sequence == 0 && n.Year == 0
}

func (n OrderNumber) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.String())
}

func (n *OrderNumber) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		*n = OrderNumber{}
		return nil
	}
	parsed, err := ParseOrderNumber(s)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// ParseOrderNumber validates external input against NNNN/YYYY. Sequence 0000 is rejected.
func ParseOrderNumber(s string) (OrderNumber, error) {
	if !orderNumberPattern.MatchString(s) {
		return OrderNumber{}, ErrInvalidOrderNumber
	}
	seq, _ := strconv.Atoi(s[:4])
	year, _ := strconv.Atoi(s[5:])
	if seq == 0 {
		return OrderNumber{}, ErrInvalidOrderNumber
	}
	return OrderNumber{Sequence: seq, Year: year}, nil
}
