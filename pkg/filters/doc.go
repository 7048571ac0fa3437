// Package filters narrows an artifact collection down to what should be
// materialized.
//
// A Chain applies its filters in a fixed order, least specific first:
// transitivity, scope, type, classifier, groupId, artifactId. Each filter
// sees only what the previous one kept. Configuration problems (an unknown
// scope, excluding the test scope) are reported when the chain is built, so
// no artifact is ever passed through a misconfigured filter.
//
// Include and exclude lists are raw comma separated strings. Tokens are
// trimmed and compared case-insensitively, and an empty string means no
// restriction.
package filters
