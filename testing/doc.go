// Package testing provides test helpers for code using the placer library.
//
// It contains a types.Logger backed by testing.T and small fixture builders
// for host and daemon inventories, so engine tests read as placement
// scenarios instead of struct literals.
package testing
