// Package edgelist reads the plain-text road list a network is built from.
//
// The format is one directed road per line:
//
//	source,target,weight
//
// Fields are separated by a single comma and trimmed of surrounding
// whitespace; weight is a base-10 integer. There is no header, no comment
// syntax and no quoting, so labels cannot contain commas.
//
// Parsing is all-or-nothing: a single bad line fails the whole input and no
// records are returned. Zero and negative weights are syntactically valid
// here; whether they make sense is up to the consumer.
//
// Input location:
//
//	Resolve(path, dirs...) looks for path as given and then under each of the
//	fallback directories, in order. A path that resolves nowhere yields
//	ErrSourceNotFound, which callers keep distinct from ErrMalformedRecord.
package edgelist
