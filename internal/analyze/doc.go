// Package analyze contains the pure analysis functions of the engine:
// the trust-domain classifier, the signal detector rule table, and the
// advisory archetype guesser.
//
// Everything in this package is a total function over already-validated
// input. Nothing here touches the network, keeps mutable state, or
// returns an error on well-formed HTML.
package analyze
