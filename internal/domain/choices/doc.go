// Package choices holds the player choice ledger: where a choice comes from
// (Location), what it offers and what was picked (Config), and the pure
// reconciliation that brings stored picks back in line with the options a
// character currently has.
package choices
