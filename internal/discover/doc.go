// Package discover enumerates the files a tool should process.
//
// A match set is built per extension, in the order the extensions are given,
// and concatenated: asking for .jpg and .jpeg yields every .jpg file before
// any .jpeg file. Within one extension, entries appear in lexical walk order.
// Non-recursive matching only considers direct children of the root;
// recursive matching covers the full subtree.
package discover
