// Package qutils provides a small collection of general-purpose convenience
// utilities for Go programs: enhanced sequences and mappings, enumeration
// helpers, lazy and weak value holders, and readable debug representations.
//
// This module contains the following packages:
//
// SEQUENCES & MAPPINGS:
//
//   - qlist: Generic ordered list with out-of-range-safe indexed reads and a
//     name-registration helper for building public symbol manifests
//   - qdict: Attribute-style string-keyed mapping with additive combination,
//     shallow and recursive merge policies, a named-object registry, and
//     JSON/YAML/MessagePack codecs that preserve nested mapping semantics
//
// ENUMERATIONS:
//
//   - qenum: Closed, immutable sets of named constant members with ordered
//     name and value accessors, validated at definition time
//
// VALUE HOLDERS:
//
//   - props: Weak-reference-backed slots that never extend their referent's
//     lifetime, and lazily-computed memoized values with explicit overwrite
//     and reset
//
// DEBUGGING:
//
//   - pretty: Field-list driven debug representations with per-type template
//     caching, panic-safe field rendering, and a zap adapter for structured
//     logging of any pretty-printable value
//
// Each package is independent and carries no runtime of its own: there is no
// I/O, no background work, and no locking beyond a per-type format cache.
// None of these helpers claims thread-safety; concurrent mutation of the same
// value must be serialized by the caller.
package qutils
