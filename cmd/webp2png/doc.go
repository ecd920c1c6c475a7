// Package main hosts the webp2png entrypoint.
//
// webp2png runs cwebp over every .webp file in a directory, one file at a
// time in enumeration order. By default the first failure aborts the run;
// --keep-going records it and moves on.
package main
