package persistence

import (
	"bytes"
	"encoding/json"
	"fmt"

	apperrors "finledger/internal/errors"
	"finledger/internal/ledger"
)

// currentVersions is the schema version each collection is written at.
var currentVersions = map[ledger.Collection]int{
	ledger.CollectionAccounts:     2,
	ledger.CollectionTransactions: 4,
	ledger.CollectionBudgets:      2,
	ledger.CollectionDebts:        1,
	ledger.CollectionPayments:     1,
	ledger.CollectionGuarantees:   1,
	ledger.CollectionSelection:    1,
}

// legacyKey is a storage key written by older releases. Its payload is a
// bare JSON array at the given schema version.
type legacyKey struct {
	key     string
	version int
}

// legacyKeys are tried in order when a canonical key is absent.
var legacyKeys = map[ledger.Collection][]legacyKey{
	ledger.CollectionTransactions: {{"pf_transactions_v2", 2}, {"pf_transactions_v1", 1}},
	ledger.CollectionBudgets:      {{"pf_budgets_v2", 2}, {"pf_budgets_v1", 1}},
	ledger.CollectionDebts:        {{"pf_debts_v1", 1}},
	ledger.CollectionPayments:     {{"pf_payments_v1", 1}},
	ledger.CollectionGuarantees:   {{"pf_guarantees_v1", 1}},
}

// CurrentVersion returns the schema version coll is written at.
func CurrentVersion(coll ledger.Collection) int {
	return currentVersions[coll]
}

// Key returns the canonical storage key of coll.
func Key(coll ledger.Collection) string {
	return string(coll)
}

type envelope struct {
	Version int             `json:"version"`
	Items   json.RawMessage `json:"items"`
}

// Encode wraps items in an envelope at the current version of coll.
func Encode(coll ledger.Collection, items any) ([]byte, error) {
	raw, err := json.Marshal(items)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrPersistence, err)
	}
	out, err := json.Marshal(envelope{Version: CurrentVersion(coll), Items: raw})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrPersistence, err)
	}
	return out, nil
}

// Decode reads a stored value of coll and migrates its items to the current
// version. A bare JSON array is read as bareVersion. It reports the version
// the value was stored at.
func Decode(coll ledger.Collection, value []byte, bareVersion int) (items json.RawMessage, storedVersion int, err error) {
	current, known := currentVersions[coll]
	if !known {
		return nil, 0, apperrors.WithMessage(apperrors.ErrPersistence, fmt.Sprintf("unknown collection %q", coll))
	}

	trimmed := bytes.TrimSpace(value)
	if len(trimmed) == 0 {
		return json.RawMessage("[]"), current, nil
	}

	var env envelope
	switch trimmed[0] {
	case '[':
		env = envelope{Version: bareVersion, Items: trimmed}
	case '{':
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return nil, 0, apperrors.Wrap(apperrors.ErrPersistence, err)
		}
	default:
		return nil, 0, apperrors.WithMessage(apperrors.ErrPersistence, fmt.Sprintf("%s: value is neither an envelope nor an array", coll))
	}

	switch {
	case env.Version < 1:
		return nil, 0, apperrors.WithMessage(apperrors.ErrPersistence, fmt.Sprintf("%s: invalid schema version %d", coll, env.Version))
	case env.Version > current:
		return nil, env.Version, apperrors.WithMessage(apperrors.ErrUnsupportedSchema,
			fmt.Sprintf("%s: stored version %d is newer than supported version %d", coll, env.Version, current))
	}

	if len(env.Items) == 0 || bytes.Equal(bytes.TrimSpace(env.Items), []byte("null")) {
		return json.RawMessage("[]"), env.Version, nil
	}
	if env.Version == current {
		return env.Items, env.Version, nil
	}

	migrated, err := migrate(coll, env.Items, env.Version, current)
	if err != nil {
		return nil, env.Version, err
	}
	return migrated, env.Version, nil
}
