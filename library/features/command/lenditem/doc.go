// Package lenditem contains the command and the decision logic for lending a catalog item to a member.
//
// The consistency boundary spans the item's catalog and loan events plus the member's registration.
// Lending an item that is checked out is rejected with core.ErrItemAlreadyLent, which the loan manager
// reports as a non-error "already on loan" outcome.
package lenditem
