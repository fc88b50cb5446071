package persistence

import (
	"context"
	"encoding/json"
	"errors"

	apperrors "finledger/internal/errors"
	"finledger/internal/ledger"
	"finledger/internal/logger"
)

// LoadResult is a snapshot read from storage together with what the caller
// should do about the stored form.
type LoadResult struct {
	Snapshot ledger.Snapshot
	// Stale lists collections read from an older version or a legacy key.
	// They should be rewritten under their canonical key.
	Stale []ledger.Collection
	// Locked lists collections stored at a newer, unsupported version. They
	// loaded empty and must not be overwritten.
	Locked []ledger.Collection
	// Raw holds the canonical-key values as read, for echo detection.
	Raw map[string][]byte
}

// Load reads every collection from kv. Persistence errors never escape: a
// collection that cannot be read is logged and loads empty.
func Load(ctx context.Context, kv KV) LoadResult {
	res := LoadResult{
		Snapshot: ledger.Snapshot{}.Clone(),
		Raw:      make(map[string][]byte),
	}
	log := logger.Get()

	for _, coll := range ledger.Collections {
		items, stale, raw, err := loadCollection(ctx, kv, coll)
		if raw != nil {
			res.Raw[Key(coll)] = raw
		}
		if err == nil {
			err = assign(&res.Snapshot, coll, items)
		}
		if err != nil {
			log.Errorw("Failed to load collection, using empty collection",
				"collection", string(coll),
				"error", err,
			)
			if errors.Is(err, apperrors.ErrUnsupportedSchema) {
				res.Locked = append(res.Locked, coll)
			}
			continue
		}
		if stale {
			res.Stale = append(res.Stale, coll)
		}
	}
	return res
}

func loadCollection(ctx context.Context, kv KV, coll ledger.Collection) (items json.RawMessage, stale bool, raw []byte, err error) {
	value, ok, err := kv.Load(ctx, Key(coll))
	if err != nil {
		return nil, false, nil, apperrors.Wrap(apperrors.ErrPersistence, err)
	}
	if ok {
		items, version, err := Decode(coll, value, 1)
		return items, err == nil && version < CurrentVersion(coll), value, err
	}

	for _, legacy := range legacyKeys[coll] {
		value, ok, err := kv.Load(ctx, legacy.key)
		if err != nil {
			return nil, false, nil, apperrors.Wrap(apperrors.ErrPersistence, err)
		}
		if !ok {
			continue
		}
		items, _, err := Decode(coll, value, legacy.version)
		return items, err == nil, nil, err
	}
	return json.RawMessage("[]"), false, nil, nil
}

func assign(snap *ledger.Snapshot, coll ledger.Collection, items json.RawMessage) error {
	var err error
	switch coll {
	case ledger.CollectionAccounts:
		err = unmarshalInto(items, &snap.Accounts)
	case ledger.CollectionTransactions:
		err = unmarshalInto(items, &snap.Transactions)
		for i := range snap.Transactions {
			if snap.Transactions[i].Tags == nil {
				snap.Transactions[i].Tags = []string{}
			}
		}
	case ledger.CollectionBudgets:
		err = unmarshalInto(items, &snap.Budgets)
	case ledger.CollectionDebts:
		err = unmarshalInto(items, &snap.Debts)
	case ledger.CollectionPayments:
		err = unmarshalInto(items, &snap.Payments)
	case ledger.CollectionGuarantees:
		err = unmarshalInto(items, &snap.Guarantees)
	case ledger.CollectionSelection:
		err = unmarshalInto(items, &snap.Selection)
	}
	return err
}

func unmarshalInto[T any](items json.RawMessage, dst *[]T) error {
	var out []T
	if err := json.Unmarshal(items, &out); err != nil {
		return apperrors.Wrap(apperrors.ErrPersistence, err)
	}
	if out == nil {
		out = []T{}
	}
	*dst = out
	return nil
}

// EncodeCollection renders one collection of snap as a current-version envelope.
func EncodeCollection(snap ledger.Snapshot, coll ledger.Collection) ([]byte, error) {
	var items any
	switch coll {
	case ledger.CollectionAccounts:
		items = snap.Accounts
	case ledger.CollectionTransactions:
		items = snap.Transactions
	case ledger.CollectionBudgets:
		items = snap.Budgets
	case ledger.CollectionDebts:
		items = snap.Debts
	case ledger.CollectionPayments:
		items = snap.Payments
	case ledger.CollectionGuarantees:
		items = snap.Guarantees
	case ledger.CollectionSelection:
		items = snap.Selection
	default:
		return nil, apperrors.WithMessage(apperrors.ErrPersistence, "unknown collection "+string(coll))
	}
	return Encode(coll, items)
}
