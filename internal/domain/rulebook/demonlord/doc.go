// Package demonlord holds the static rule content the engine consumes:
// ancestries, novice, expert and master paths, the registry they are looked up
// from, and pre-built characters.
package demonlord
