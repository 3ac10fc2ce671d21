// Package patentdump acquires a single patent page, extracts its title,
// publication number, abstract and claims, and stores the result as a
// normalized JSON document for later offline analysis.
//
// This package contains domain types, interfaces and the pure text logic
// (normalization and claim parsing) following Ben Johnson's Standard Package
// Layout. Implementations live in subdirectories named after their primary
// dependency (e.g., http/, goquery/, sqlite/).
package patentdump
