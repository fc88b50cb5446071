package persistence

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	apperrors "finledger/internal/errors"
	"finledger/internal/ledger"
)

// record is one stored item in its untyped form. Numbers are json.Number so
// amounts and numeric ids survive migration unchanged.
type record map[string]any

// migration upgrades one record from version N to N+1.
type migration func(record)

// migrations[coll][N] upgrades coll from version N to N+1.
var migrations = map[ledger.Collection]map[int]migration{
	ledger.CollectionAccounts: {
		1: func(r record) {
			stringifyID(r, "id")
			if _, ok := r["startingBalance"]; !ok {
				if start, ok := r["start"]; ok && start != nil {
					r["startingBalance"] = start
				} else {
					r["startingBalance"] = json.Number("0")
				}
			}
			delete(r, "start")
		},
	},
	ledger.CollectionTransactions: {
		1: func(r record) {
			if tags, ok := r["tags"]; !ok || tags == nil {
				r["tags"] = []any{}
			}
		},
		2: func(r record) {
			stringifyID(r, "id")
			stringifyID(r, "accountId")
			if id, _ := r["accountId"].(string); id == "" {
				delete(r, "accountId")
			}
		},
		3: func(r record) {
			if _, ok := r["description"]; !ok {
				r["description"] = r["desc"]
			}
			delete(r, "desc")
			recurring, _ := r["isRecurring"].(bool)
			r["isRecurring"] = recurring
			if !recurring {
				delete(r, "frequency")
				delete(r, "recurrenceEndDate")
			}
		},
	},
	ledger.CollectionBudgets: {
		1: func(r record) {
			stringifyID(r, "id")
			if tag, _ := r["tag"].(string); strings.TrimSpace(tag) == "" {
				name, _ := r["name"].(string)
				r["tag"] = strings.TrimSpace(name)
			}
		},
	},
}

func migrate(coll ledger.Collection, items json.RawMessage, from, to int) (json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(items))
	dec.UseNumber()

	var records []record
	if err := dec.Decode(&records); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrPersistence, fmt.Errorf("%s v%d: %w", coll, from, err))
	}

	for v := from; v < to; v++ {
		step, ok := migrations[coll][v]
		if !ok {
			continue
		}
		for _, r := range records {
			if r != nil {
				step(r)
			}
		}
	}

	out, err := json.Marshal(records)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrPersistence, err)
	}
	return out, nil
}

// stringifyID rewrites a numeric id, as written by releases that used
// millisecond timestamps, into its decimal string form.
func stringifyID(r record, field string) {
	switch v := r[field].(type) {
	case json.Number:
		r[field] = v.String()
	case nil:
		delete(r, field)
	}
}
