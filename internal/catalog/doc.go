// Package catalog holds the read-only content of a portfolio sheet: the
// navigable entities, decorative parts and wires, and the file tree shown in
// the sidebar.
//
// A catalog is loaded once at startup, either from the sheet embedded in the
// binary or from a user supplied YAML file, and validated before use. A
// catalog that fails validation is a startup error; the rest of the
// application assumes every lookup it performs against a validated catalog
// resolves.
package catalog
