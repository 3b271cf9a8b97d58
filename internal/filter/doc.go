// Package filter models the search form state and compiles it into query
// parameters for the listings API.
//
// # Category labels
//
// Categories arrive as underscore-joined labels such as "SALE_KONUT_DAIRE"
// (listing type, property type, optional subtype). Two projections are
// derived from the label:
//
//   - the search endpoint, by ordered substring classification ("KONUT" or
//     "DAIRE" or "VILLA" means house, "OFIS"/"BÜRO" means office, and so on
//     across six classes); first match wins and unknown labels default to
//     house
//   - the subtype, positionally: the third segment of a three-segment label
//
// # Compilation
//
// Compile merges the common projection (first city/district/neighborhood
// name, price bounds, subtype) with the selected endpoint's detail builder.
// Detail schemas are a tagged variant over the six property types; only the
// house builder emits params today, and the others are explicit empty seams.
package filter
