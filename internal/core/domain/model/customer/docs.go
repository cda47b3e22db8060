// Package customer implements the credit-ledger aggregate. A customer owns
// a credit limit and the amount of it currently in use; Reserve and Release
// are the only operations that mutate the pair.
//
// The aggregate itself is single-threaded: serialization of concurrent
// reservations against the same customer is the responsibility of the
// persistence layer, which loads the row with SELECT ... FOR UPDATE inside
// the unit-of-work transaction. Given that, the ledger invariant
// creditUsed <= creditLimit holds after every committed operation.
package customer
