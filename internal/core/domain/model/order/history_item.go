package order

import (
	"fmt"
	"strings"
	"time"

	"bakery/internal/core/domain/model/identity"
	"bakery/internal/pkg/errs"
)

var (
	ErrHistoryAuthorIsRequired  = errs.NewValueIsRequiredError("history author")
	ErrHistoryMessageIsRequired = errs.NewValueIsRequiredError("history message")
)

// HistoryItem is one immutable ledger entry: who did what, the state the
// order was left in, and when.
type HistoryItem struct {
	author    *identity.User
	message   string
	state     State
	timestamp time.Time
}

func NewHistoryItem(author *identity.User, message string, state State, timestamp time.Time) (HistoryItem, error) {
	if author == nil || author.Validate() != nil {
		return HistoryItem{}, ErrHistoryAuthorIsRequired
	}
	if strings.TrimSpace(message) == "" {
		return HistoryItem{}, ErrHistoryMessageIsRequired
	}
	if err := state.Validate(); err != nil {
		return HistoryItem{}, err
	}
	if timestamp.IsZero() {
		return HistoryItem{}, errs.NewValueIsRequiredError("history timestamp")
	}
	return HistoryItem{author: author, message: message, state: state, timestamp: timestamp}, nil
}

func (h HistoryItem) Author() *identity.User { return h.author }
func (h HistoryItem) Message() string        { return h.message }
func (h HistoryItem) State() State           { return h.state }
func (h HistoryItem) Timestamp() time.Time   { return h.timestamp }

func (h HistoryItem) String() string {
	return fmt.Sprintf("%s %s %q by %s", h.timestamp.Format(time.DateTime), h.state, h.message, h.author.Email())
}
