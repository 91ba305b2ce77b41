// Package kradoc parses maindoc.xml and builds the layer forest.
//
// The builder dispatches on each element's nodetype attribute to
// construct the matching layer variant, recurses into group children,
// and attaches masks. Clone layers are deliberately left as placeholders
// holding only their target UUID: the target may appear later in the
// document, so resolution is a separate pass (see the resolver package)
// that runs once the whole tree exists.
//
// Error containment follows the document's structure: a single malformed
// layer (missing filename, unreadable payload, unsupported layer color
// mode) is skipped with a Warning and the rest of the document still
// parses, while document-level problems (unparsable XML, unsupported
// document color mode) abort the build.
package kradoc
