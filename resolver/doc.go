// Package resolver finalizes clone layers after tree construction.
//
// Krita documents reference clone targets by UUID, and the target may
// appear anywhere in the document, including after the clone itself.
// The tree builder therefore leaves every clone as a placeholder, and
// this package runs a second pass over the finished forest: it indexes
// every layer by UUID, then replaces each placeholder in place with a
// CloneLayer pointing directly at its resolved target.
//
// Chained clones resolve through each other, so a clone whose target is
// itself a clone ends up referencing the target's resolved CloneLayer.
// A visited set detects cycles; a missing target or a cycle is a fatal
// document error rather than a silent default.
//
// Resolution must run to completion, single threaded, strictly after
// construction: UUID lookup assumes a finished tree.
package resolver
