// Package frequency computes letter-frequency distributions and uses them
// to recover the shift of a Caesar-enciphered text.
//
// A Table holds one fraction per canonical letter A..Z.  Analyze builds a
// Table for a text under a hypothesised shift; Search scores every shift
// in [0, 26) against a reference Table with a chi-squared statistic and
// picks the best one, breaking ties toward the smallest shift.
package frequency
