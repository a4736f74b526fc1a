// Package betacode converts Betacode, an ASCII encoding for polytonic
// Greek, into precomposed Greek Unicode, and validates that an input
// conforms to the Betacode grammar before a conversion is trusted to be
// lossless.
//
// Conversion is total and never fails: clusters the mapping table does
// not know pass through unchanged. Revert runs the opposite direction,
// recovering canonical Betacode from Greek Unicode. Validation is the sole source of
// truth for strict conformance and reports three categories of defect:
// non-ASCII characters, unrecognized characters, and diacritic markers
// out of canonical order.
//
//	out := betacode.Convert("mh=nin a)/eide qea\\ *phlhi+a/dew *a)xilh=os")
//	// out == "μῆνιν ἄειδε θεὰ Πηληϊάδεω Ἀχιλῆος"
package betacode
