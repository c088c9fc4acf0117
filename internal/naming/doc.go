// Package naming provides the case conversion primitives behind the
// casing lambda operations (camelCase, pascalCase, kebabCase).
//
// All conversions share one word-splitting pass: input is broken on
// separator runes (underscore, hyphen, dot, slash, space) and on
// lower-to-upper case boundaries, then each style rejoins the words with
// its own capitalization. An acronym run like "HTTPClient" splits into
// "HTTP" and "Client".
package naming
