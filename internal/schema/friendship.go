package schema

import (
	"errors"
	"time"

	"github.com/oretally/oretally/internal/errs"
	"github.com/oretally/oretally/internal/validation"
)

// Friendship is the response shape for one side of a friendship link.
// UserName and FriendName are never read from stored columns; they are
// projected from the related user records so renames show up immediately.
type Friendship struct {
	UserID     int64      `json:"user_id"`
	UserName   string     `json:"user_name"`
	FriendID   int64      `json:"friend_id"`
	FriendName string     `json:"friend_name"`
	Created    time.Time  `json:"created"`
	Confirmed  *time.Time `json:"confirmed"`
}

// FriendshipList groups a user's friendships by direction.
type FriendshipList struct {
	FriendsOutgoing []Friendship `json:"friends_outgoing"`
	FriendsIncoming []Friendship `json:"friends_incoming"`
}

// FriendshipRecord is the persisted friendship shape, with both user
// relations already resolved.
type FriendshipRecord struct {
	UserID    int64
	FriendID  int64
	User      *UserRecord
	Friend    *UserRecord
	Created   time.Time
	Confirmed *time.Time
}

// FriendshipFromRecord projects a persisted friendship. Both related users
// are required; a missing one is a data-integrity error.
func FriendshipFromRecord(rec FriendshipRecord) (Friendship, error) {
	if rec.User == nil {
		return Friendship{}, errs.NewIntegrityError("friendship", "user")
	}
	if rec.Friend == nil {
		return Friendship{}, errs.NewIntegrityError("friendship", "friend")
	}

	return Friendship{
		UserID:     rec.UserID,
		UserName:   rec.User.Name,
		FriendID:   rec.FriendID,
		FriendName: rec.Friend.Name,
		Created:    rec.Created,
		Confirmed:  rec.Confirmed,
	}, nil
}

// FriendshipListFromRecords projects both directions of a user's
// friendships.
func FriendshipListFromRecords(outgoing, incoming []FriendshipRecord) (FriendshipList, error) {
	list := FriendshipList{
		FriendsOutgoing: make([]Friendship, 0, len(outgoing)),
		FriendsIncoming: make([]Friendship, 0, len(incoming)),
	}

	for _, rec := range outgoing {
		f, err := FriendshipFromRecord(rec)
		if err != nil {
			return FriendshipList{}, err
		}
		list.FriendsOutgoing = append(list.FriendsOutgoing, f)
	}
	for _, rec := range incoming {
		f, err := FriendshipFromRecord(rec)
		if err != nil {
			return FriendshipList{}, err
		}
		list.FriendsIncoming = append(list.FriendsIncoming, f)
	}

	return list, nil
}

// FriendshipUpdate is the request shape for modifying one friendship link.
type FriendshipUpdate struct {
	UserID     int64               `json:"user_id" validate:"required"`
	UserName   Optional[string]    `json:"user_name,omitzero"`
	FriendID   int64               `json:"friend_id" validate:"required"`
	FriendName Optional[string]    `json:"friend_name,omitzero"`
	Confirmed  Optional[time.Time] `json:"confirmed,omitzero"`
	Name       Optional[string]    `json:"name,omitzero"`
}

func (r *FriendshipUpdate) Validate() error {
	var custom validation.CustomValidationErrors
	checkMaxLength(&custom, "user_name", r.UserName, maxNameLength)
	checkMaxLength(&custom, "friend_name", r.FriendName, maxNameLength)
	checkMaxLength(&custom, "name", r.Name, maxNameLength)
	return errors.Join(validation.Struct(r), customOrNil(custom))
}

// FriendshipListUpdate is the request shape for modifying both directions of
// a user's friendships at once. An absent direction is left untouched.
type FriendshipListUpdate struct {
	FriendsOutgoing Optional[[]FriendshipUpdate] `json:"friends_outgoing,omitzero"`
	FriendsIncoming Optional[[]FriendshipUpdate] `json:"friends_incoming,omitzero"`
}

func (r *FriendshipListUpdate) Validate() error {
	var errList []error

	if updates, ok := r.FriendsOutgoing.Value(); ok {
		for i := range updates {
			errList = append(errList, updates[i].Validate())
		}
	}
	if updates, ok := r.FriendsIncoming.Value(); ok {
		for i := range updates {
			errList = append(errList, updates[i].Validate())
		}
	}

	return errors.Join(errList...)
}
