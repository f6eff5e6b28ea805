package models

import "fmt"

// GroupKey identifies one logical metric series: a (script, transaction) pair.
// Both parts are compared as opaque strings; no trimming or case folding is applied.
type GroupKey struct {
	Script      string `json:"scriptName" db:"script_name"`
	Transaction string `json:"transactionName" db:"transaction_name"`
}

func NewGroupKey(script, transaction string) GroupKey {
	return GroupKey{Script: script, Transaction: transaction}
}

// Less orders keys by script, then transaction, ascending.
func (k GroupKey) Less(other GroupKey) bool {
	if k.Script != other.Script {
		return k.Script < other.Script
	}
	return k.Transaction < other.Transaction
}

func (k GroupKey) String() string {
	return fmt.Sprintf("%s/%s", k.Script, k.Transaction)
}
