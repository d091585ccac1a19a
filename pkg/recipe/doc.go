// Package recipe parses, scales, and renders recipes written in a
// constrained Markdown dialect.
//
// A document is split into three blocks: everything through the literal
// "## Ingredients" header and its blank line (the preface), the ingredient
// list, and everything from the next "##" header on (the instructions).
// Each "- " list item becomes one Ingredient whose leading quantity tokens
// are resolved through the volume -> simple-number -> no-quantity fallback
// chain in package quantity.
//
// Parsing is lenient: a document without the ingredients header is treated
// as all preface, unparseable quantities degrade to plainer forms, and no
// parse ever fails. Rendering an unmodified parse reproduces the input
// byte for byte.
package recipe
