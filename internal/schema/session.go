package schema

import (
	"time"

	"github.com/oretally/oretally/internal/errs"
	"github.com/oretally/oretally/internal/validation"
)

// MiningSession is the response shape for a mining session.
type MiningSession struct {
	ID      int64     `json:"id"`
	Creator Related   `json:"creator"`
	Name    string    `json:"name"`
	Created time.Time `json:"created"`
	Updated time.Time `json:"updated"`

	// Archived is set once the session is closed for editing.
	Archived *time.Time `json:"archived"`

	// YieldSCU and YieldUEC are the session totals computed upstream; nil
	// until the session has been evaluated.
	YieldSCU *float64 `json:"yield_scu"`
	YieldUEC *float64 `json:"yield_uec"`
}

// MiningSessionListItem is the list-endpoint variant of MiningSession with
// aggregate counts. The counts are computed by the query layer, not here.
type MiningSessionListItem struct {
	ID                int64      `json:"id"`
	Creator           Related    `json:"creator"`
	Name              string     `json:"name"`
	Created           time.Time  `json:"created"`
	Updated           time.Time  `json:"updated"`
	Archived          *time.Time `json:"archived"`
	YieldSCU          *float64   `json:"yield_scu"`
	YieldUEC          *float64   `json:"yield_uec"`
	EntriesCount      int64      `json:"entries_count"`
	UsersInvitedCount int64      `json:"users_invited_count"`
}

// MiningSessionEntry is the response shape for one haul logged within a
// session. All four relations are reduced to {id, name} references.
type MiningSessionEntry struct {
	ID       int64     `json:"id"`
	User     Related   `json:"user"`
	Station  Related   `json:"station"`
	Ore      Related   `json:"ore"`
	Method   Related   `json:"method"`
	Created  time.Time `json:"created"`
	Updated  time.Time `json:"updated"`
	Quantity float64   `json:"quantity"`
	Duration float64   `json:"duration"`
}

// MiningSessionRecord is the persisted session shape with the creator
// relation resolved.
type MiningSessionRecord struct {
	ID       int64
	Creator  *UserRecord
	Name     string
	Created  time.Time
	Updated  time.Time
	Archived *time.Time
	YieldSCU *float64
	YieldUEC *float64
}

// MiningSessionListItemRecord adds the aggregate counts the query layer
// computes for list pages.
type MiningSessionListItemRecord struct {
	MiningSessionRecord
	EntriesCount      int64
	UsersInvitedCount int64
}

// MiningSessionEntryRecord is the persisted haul shape with all four
// relations resolved.
type MiningSessionEntryRecord struct {
	ID       int64
	User     *UserRecord
	Station  *StationRecord
	Ore      *OreRecord
	Method   *MethodRecord
	Created  time.Time
	Updated  time.Time
	Quantity float64
	Duration float64
}

// MiningSessionFromRecord projects a persisted session. The creator relation
// is required.
func MiningSessionFromRecord(rec MiningSessionRecord) (MiningSession, error) {
	if rec.Creator == nil {
		return MiningSession{}, errs.NewIntegrityError("mining session", "creator")
	}

	return MiningSession{
		ID:       rec.ID,
		Creator:  rec.Creator.related(),
		Name:     rec.Name,
		Created:  rec.Created,
		Updated:  rec.Updated,
		Archived: rec.Archived,
		YieldSCU: rec.YieldSCU,
		YieldUEC: rec.YieldUEC,
	}, nil
}

// MiningSessionListItemFromRecord projects a session list row.
func MiningSessionListItemFromRecord(rec MiningSessionListItemRecord) (MiningSessionListItem, error) {
	session, err := MiningSessionFromRecord(rec.MiningSessionRecord)
	if err != nil {
		return MiningSessionListItem{}, err
	}

	return MiningSessionListItem{
		ID:                session.ID,
		Creator:           session.Creator,
		Name:              session.Name,
		Created:           session.Created,
		Updated:           session.Updated,
		Archived:          session.Archived,
		YieldSCU:          session.YieldSCU,
		YieldUEC:          session.YieldUEC,
		EntriesCount:      rec.EntriesCount,
		UsersInvitedCount: rec.UsersInvitedCount,
	}, nil
}

// MiningSessionEntryFromRecord projects a persisted haul. Every relation is
// required; a missing one is a data-integrity error.
func MiningSessionEntryFromRecord(rec MiningSessionEntryRecord) (MiningSessionEntry, error) {
	if rec.User == nil {
		return MiningSessionEntry{}, errs.NewIntegrityError("mining session entry", "user")
	}
	if rec.Station == nil {
		return MiningSessionEntry{}, errs.NewIntegrityError("mining session entry", "station")
	}
	if rec.Ore == nil {
		return MiningSessionEntry{}, errs.NewIntegrityError("mining session entry", "ore")
	}
	if rec.Method == nil {
		return MiningSessionEntry{}, errs.NewIntegrityError("mining session entry", "method")
	}

	return MiningSessionEntry{
		ID:       rec.ID,
		User:     rec.User.related(),
		Station:  rec.Station.related(),
		Ore:      rec.Ore.related(),
		Method:   rec.Method.related(),
		Created:  rec.Created,
		Updated:  rec.Updated,
		Quantity: rec.Quantity,
		Duration: rec.Duration,
	}, nil
}

// MiningSessionCreate is the request shape for opening a session.
type MiningSessionCreate struct {
	CreatorID int64  `json:"creator_id" validate:"required"`
	Name      string `json:"name" validate:"required,max=50"`
}

func (r *MiningSessionCreate) Validate() error {
	return validation.Struct(r)
}

// MiningSessionUpdate is the request shape for modifying a session. Setting
// archived to null reopens the session; setting a yield to null clears the
// evaluation.
type MiningSessionUpdate struct {
	Name         Optional[string]    `json:"name,omitzero"`
	Archived     Optional[time.Time] `json:"archived,omitzero"`
	YieldSCU     Optional[float64]   `json:"yield_scu,omitzero"`
	YieldUEC     Optional[float64]   `json:"yield_uec,omitzero"`
	UsersInvited Optional[[]Related] `json:"users_invited,omitzero"`
}

func (r *MiningSessionUpdate) Validate() error {
	var custom validation.CustomValidationErrors
	checkMaxLength(&custom, "name", r.Name, maxNameLength)
	return customOrNil(custom)
}
